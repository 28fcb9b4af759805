package services

import (
	"errors"

	"github.com/ideacreators/backend/internal/apperrors"
	"gorm.io/gorm"
)

var errUnauthenticated = apperrors.New(apperrors.Unauthenticated, "you must be logged in")

// notFoundOr maps a missing record to a generic not-found and anything
// else to an internal error. Entities outside the caller's scope surface
// the same way as absent ones.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.NotFound, msg)
	}
	return apperrors.Wrap(apperrors.Internal, "database error", err)
}

func internal(err error) error {
	return apperrors.Wrap(apperrors.Internal, "database error", err)
}
