package handlers

import (
	"net/http"

	"github.com/ideacreators/backend/internal/models"
	"github.com/ideacreators/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRoutes registers user-related routes on the protected group
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
	g.GET("/users/search", h.SearchUsers)
	g.PUT("/me/password", h.ChangePassword)
}

// ListUsers retrieves all users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.Users()
	if err != nil {
		return queryError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Me retrieves the authenticated user's profile
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.userService.Me(getUserIDFromContext(c))
	if err != nil {
		return queryError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// SearchUsers searches for users by a username substring
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("username")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'username' is required")
	}

	users, err := h.userService.SearchUsers(getUserIDFromContext(c), query)
	if err != nil {
		return queryError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ChangePassword replaces the authenticated user's password
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.ChangePassword(getUserIDFromContext(c), req.Password); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.MutationResponse{
		Success: true,
		Message: "Password updated",
	})
}
