package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kalaiarasan0/farmdesk/internal/api/middleware"
)

// ctxUser extracts the identity injected by the Auth middleware. A missing
// username means the route was mounted without the middleware.
func ctxUser(c echo.Context) (username, role string, err error) {
	username, _ = c.Get(middleware.CtxUsername).(string)
	if username == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	role, _ = c.Get(middleware.CtxRole).(string)
	return username, role, nil
}
