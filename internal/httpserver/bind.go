package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindBody decodes a JSON body whatever the Content-Type header says.
// Empty bodies are rejected.
func bindBody(c echo.Context, dst any) error {
	if c.Request().ContentLength == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "request body is empty")
	}
	if err := c.Echo().JSONSerializer.Deserialize(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON")
	}
	return nil
}
