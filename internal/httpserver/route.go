package httpserver

import (
	"github.com/labstack/echo/v4"
)

type Deps struct {
	ProductHandler *ProductHTTP
	AdminHandler   *AdminHTTP
	UploadHandler  *UploadHTTP
	SystemHandler  *SystemHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	api := e.Group("/api")
	api.GET("/health", d.SystemHandler.Health)
	api.GET("/stats", d.SystemHandler.Stats)

	api.GET("/products", d.ProductHandler.ListProducts)
	api.POST("/products", d.ProductHandler.CreateProduct)
	api.GET("/products/:id", d.ProductHandler.GetProduct)
	api.PUT("/products/:id", d.ProductHandler.UpdateProduct)
	api.DELETE("/products/:id", d.ProductHandler.DeleteProduct)

	api.GET("/admins", d.AdminHandler.ListAdmins)
	api.POST("/admins", d.AdminHandler.CreateAdmin)
	api.POST("/register", d.AdminHandler.CreateAdmin)
	api.DELETE("/admins/:id", d.AdminHandler.DeleteAdmin)
	api.GET("/login", d.AdminHandler.LoginInfo)
	api.POST("/login", d.AdminHandler.Login)

	api.POST("/upload", d.UploadHandler.Upload)

	e.GET("/static/uploads/:filename", d.UploadHandler.Serve)
	e.HEAD("/static/uploads/:filename", d.UploadHandler.Serve)
}
