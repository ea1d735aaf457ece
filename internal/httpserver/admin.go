package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/pitipaw_catalog/internal/models"
	"github.com/Skotchmaster/pitipaw_catalog/internal/service"
	"github.com/Skotchmaster/pitipaw_catalog/internal/transport"
	"github.com/Skotchmaster/pitipaw_catalog/pkg/logging"
)

const (
	msgAdminNotFound   = "admin not found"
	msgUsernameTaken   = "username already exists"
	msgBadCredentials  = "invalid username or password"
	msgCredentialsNeed = "username and password are required"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) CreateAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create")

	var req transport.AdminRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("admin_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	admin, err := h.Svc.CreateAdmin(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("admin_create_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, msgCredentialsNeed)
		case errors.Is(err, service.ErrConflict):
			l.Warn("admin_create_error", "status", 400, "reason", msgUsernameTaken, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, msgUsernameTaken)
		}
		l.Error("admin_create_error", "status", 500, "reason", "cannot create admin", "error", err)
		return internalError("error creating admin", err)
	}

	l.Info("create_admin_success", "id", admin.ID)
	return c.JSON(http.StatusCreated, transport.AdminCreatedResponse{
		ID:       admin.ID,
		Username: admin.Username,
		Message:  "admin created successfully",
	})
}

func (h *AdminHTTP) ListAdmins(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.list")

	admins, err := h.Svc.ListAdmins(ctx)
	if err != nil {
		l.Error("list_admins_error", "status", 500, "reason", "cannot fetch admins", "error", err)
		return internalError("error fetching admins", err)
	}

	out := make([]transport.AdminView, 0, len(admins))
	for _, a := range admins {
		out = append(out, transport.AdminView{ID: a.ID, Username: a.Username})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHTTP) DeleteAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete")

	if err := h.Svc.DeleteAdmin(ctx, models.ID(c.Param("id"))); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("admin_delete_error", "status", 404, "reason", msgAdminNotFound, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, msgAdminNotFound)
		}
		l.Error("admin_delete_error", "status", 500, "reason", "cannot delete admin", "error", err)
		return internalError("error deleting admin", err)
	}

	l.Info("delete_admin_success")
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "admin deleted"})
}

func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req transport.LoginRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	admin, err := h.Svc.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("login_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, msgCredentialsNeed)
		case errors.Is(err, service.ErrUnauthorized):
			l.Warn("login_error", "status", 401, "reason", "bad credentials")
			return echo.NewHTTPError(http.StatusUnauthorized, msgBadCredentials)
		}
		l.Error("login_error", "status", 500, "reason", "cannot check credentials", "error", err)
		return internalError("error during login", err)
	}

	l.Info("login_success", "username", admin.Username)
	return c.JSON(http.StatusOK, transport.LoginResponse{
		Message: "login successful",
		Admin:   transport.LoginUser{Username: admin.Username},
	})
}

func (h *AdminHTTP) LoginInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, transport.LoginInfoResponse{
		Message: "Login endpoint ready",
		Methods: []string{http.MethodPost},
	})
}
