package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// UserHandler serves the tiered resource endpoints. Each route is gated by
// the Auth and RBAC middleware; by the time a handler runs, the request
// carries a verified identity with a permitted role.
type UserHandler struct {
	log zerolog.Logger
}

func NewUserHandler(log zerolog.Logger) *UserHandler {
	return &UserHandler{log: log}
}

// Admin handles GET /admin (admin only).
func (h *UserHandler) Admin(c echo.Context) error {
	return h.welcome(c, "Welcome admin")
}

// Manager handles GET /manager (admin and manager).
func (h *UserHandler) Manager(c echo.Context) error {
	return h.welcome(c, "Welcome manager")
}

// User handles GET /user (admin, manager and user).
func (h *UserHandler) User(c echo.Context) error {
	return h.welcome(c, "Welcome user")
}

func (h *UserHandler) welcome(c echo.Context, message string) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	h.log.Debug().
		Str("user_id", userID).
		Str("role", role).
		Str("path", c.Path()).
		Msg("protected resource accessed")

	return c.JSON(http.StatusOK, messageResponse{Message: message})
}
