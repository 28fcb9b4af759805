package handlers

import (
	"net/http"
	"strconv"

	"github.com/ideacreators/backend/internal/models"
	"github.com/ideacreators/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow request and follow edge HTTP requests
type FollowHandler struct {
	followService *services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.GET("/follow/requests", h.ListReceivedRequests)
	g.GET("/me/followers", h.ListFollowers)
	g.GET("/me/following", h.ListFollowing)
	g.POST("/users/:id/follow/request", h.SendFollowRequest)
	g.POST("/follow/requests/:id/respond", h.RespondFollowRequest)
	g.DELETE("/users/:id/follow", h.Unfollow)
	g.DELETE("/followers/:id", h.RemoveFollower)
}

// ListReceivedRequests returns the viewer's received follow requests,
// pending and resolved
func (h *FollowHandler) ListReceivedRequests(c echo.Context) error {
	requests, err := h.followService.ReceivedRequests(getUserIDFromContext(c))
	if err != nil {
		return queryError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// ListFollowers returns the users following the viewer
func (h *FollowHandler) ListFollowers(c echo.Context) error {
	users, err := h.followService.Followers(getUserIDFromContext(c))
	if err != nil {
		return queryError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ListFollowing returns the users the viewer follows
func (h *FollowHandler) ListFollowing(c echo.Context) error {
	users, err := h.followService.Following(getUserIDFromContext(c))
	if err != nil {
		return queryError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// SendFollowRequest creates a pending follow request to the target user
func (h *FollowHandler) SendFollowRequest(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	req, err := h.followService.Send(getUserIDFromContext(c), uint(targetID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.MutationResponse{
		Success: true,
		Message: "Request sent",
		Request: req,
	})
}

// RespondFollowRequest accepts or denies a pending follow request
func (h *FollowHandler) RespondFollowRequest(c echo.Context) error {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request ID")
	}

	var body models.RespondFollowRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req, err := h.followService.Respond(getUserIDFromContext(c), uint(requestID), *body.Approve)
	if err != nil {
		return respondError(c, err)
	}

	message := "Follow request denied"
	if req.Status == models.RequestAccepted {
		message = "Follow request accepted"
	}
	return c.JSON(http.StatusOK, models.MutationResponse{
		Success: true,
		Message: message,
		Request: req,
	})
}

// Unfollow removes the viewer's follow edge to the target user
func (h *FollowHandler) Unfollow(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	target, err := h.followService.Unfollow(getUserIDFromContext(c), uint(targetID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.MutationResponse{
		Success: true,
		Message: "Unfollowed " + target.Username,
		User:    target,
	})
}

// RemoveFollower removes a follower's edge to the viewer
func (h *FollowHandler) RemoveFollower(c echo.Context) error {
	followerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	follower, err := h.followService.RemoveFollower(getUserIDFromContext(c), uint(followerID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.MutationResponse{
		Success: true,
		Message: follower.Username + " removed from follower list",
		User:    follower,
	})
}
