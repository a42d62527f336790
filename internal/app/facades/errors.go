package facades

import (
	"errors"

	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// errorDetailFor converts a business error into the error detail carried by
// per-item reports. The HTTP status mapping lives in the middleware, this
// only covers errors that are absorbed into a report instead of propagating.
func errorDetailFor(err error) *dto.ErrorDetail {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrLectureNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrInstructorNotFound,
		apperrors.ErrEnrollmentNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())

	case errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrLectureValidation):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())

	case errors.Is(err, apperrors.ErrIllegalState),
		errors.Is(err, apperrors.ErrConflict):
		return dto.NewErrorDetail(dto.ErrorCodeIllegalState, err.Error())

	default:
		return dto.NewErrorDetail(dto.ErrorCodeInternalServer, "internal error")
	}
}
