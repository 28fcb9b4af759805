package handlers

import (
	"net/http"

	"github.com/ideacreators/backend/internal/apperrors"
	"github.com/ideacreators/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the authenticated user's ID, or 0 when the
// request carries no identity.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

// respondError maps an application error onto the HTTP surface.
// Unauthenticated and not-found become transport errors; validation and
// conflict failures still answer 200 with a success=false envelope so the
// client can render the messages.
func respondError(c echo.Context, err error) error {
	switch apperrors.CodeOf(err) {
	case apperrors.Unauthenticated:
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case apperrors.NotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case apperrors.Validation, apperrors.Conflict:
		return c.JSON(http.StatusOK, models.MutationResponse{
			Success: false,
			Error:   apperrors.MessagesOf(err),
		})
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// queryError is respondError for queries, where there is no envelope and
// every failure is a transport error.
func queryError(err error) error {
	switch apperrors.CodeOf(err) {
	case apperrors.Unauthenticated:
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case apperrors.NotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
