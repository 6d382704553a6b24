package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mangesh636/rbac-backend/internal/api/middleware"
)

// errorResponse is the error envelope handlers render directly.
type errorResponse struct {
	Error string `json:"error"`
}

// ctxClaims extracts the claims injected by the Auth middleware. A non-empty
// role proves the middleware ran; reaching a protected handler without it is
// a routing mistake, answered with 401 rather than a panic downstream.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	role, _ = c.Get(middleware.CtxRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get(middleware.CtxUserID).(string)
	return userID, role, nil
}
