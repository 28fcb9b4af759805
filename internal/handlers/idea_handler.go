package handlers

import (
	"net/http"
	"strconv"

	"github.com/ideacreators/backend/internal/models"
	"github.com/ideacreators/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// IdeaHandler handles HTTP requests related to ideas
type IdeaHandler struct {
	ideaService *services.IdeaService
}

// NewIdeaHandler creates a new IdeaHandler
func NewIdeaHandler(ideaService *services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// RegisterIdeaRoutes registers idea-related routes
func (h *IdeaHandler) RegisterIdeaRoutes(g *echo.Group) {
	g.GET("/ideas", h.ListAllIdeas)
	g.GET("/ideas/mine", h.ListMyIdeas)
	g.GET("/users/:id/ideas", h.ListUserIdeas)
	g.POST("/ideas", h.CreateIdea)
	g.PUT("/ideas/:id", h.UpdateIdea)
	g.DELETE("/ideas/:id", h.DeleteIdea)
}

// ListAllIdeas returns the viewer's feed
func (h *IdeaHandler) ListAllIdeas(c echo.Context) error {
	ideas, err := h.ideaService.ListAll(getUserIDFromContext(c))
	if err != nil {
		return queryError(err)
	}
	return c.JSON(http.StatusOK, ideas)
}

// ListMyIdeas returns all of the viewer's own ideas
func (h *IdeaHandler) ListMyIdeas(c echo.Context) error {
	ideas, err := h.ideaService.ListMine(getUserIDFromContext(c))
	if err != nil {
		return queryError(err)
	}
	return c.JSON(http.StatusOK, ideas)
}

// ListUserIdeas returns another user's ideas as visible to the viewer
func (h *IdeaHandler) ListUserIdeas(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	ideas, err := h.ideaService.ListOf(getUserIDFromContext(c), uint(targetID))
	if err != nil {
		return queryError(err)
	}
	return c.JSON(http.StatusOK, ideas)
}

// CreateIdea posts a new idea
func (h *IdeaHandler) CreateIdea(c echo.Context) error {
	var req models.CreateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	idea, err := h.ideaService.Add(getUserIDFromContext(c), req.Content, req.Visibility)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.MutationResponse{
		Success: true,
		Idea:    idea,
	})
}

// UpdateIdea edits an existing idea; only supplied fields change
func (h *IdeaHandler) UpdateIdea(c echo.Context) error {
	ideaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid idea ID")
	}

	var req models.UpdateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	idea, err := h.ideaService.Edit(getUserIDFromContext(c), uint(ideaID), req.Content, req.Visibility)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.MutationResponse{
		Success: true,
		Idea:    idea,
	})
}

// DeleteIdea deletes one of the viewer's ideas
func (h *IdeaHandler) DeleteIdea(c echo.Context) error {
	ideaID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid idea ID")
	}

	if err := h.ideaService.Delete(getUserIDFromContext(c), uint(ideaID)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.MutationResponse{
		Success: true,
		Message: "Delete success",
	})
}
