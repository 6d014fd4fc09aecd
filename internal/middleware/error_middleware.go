package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors to HTTP responses. Every controller
// routes its service errors through here so the mapping stays in one
// place.
func HandleAPIError(c *gin.Context, err error) {
	detail := errorDetailFor(err)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Details != nil {
		detail.ErrorDetail = detail.ErrorDetail.WithDetails(custom.Details)
	}

	c.JSON(detail.Status, dto.NewErrorResponse(detail.ErrorDetail))
}

type mappedError struct {
	Status      int
	ErrorDetail *dto.ErrorDetail
}

func errorDetailFor(err error) mappedError {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		return mappedError{http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already registered").WithField("email")}
	case errors.Is(err, apperrors.ErrDuplicateApplication):
		return mappedError{http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Application already submitted for this job")}

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrProfileNotFound),
		errors.Is(err, apperrors.ErrJobNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrCompanyNotFound),
		errors.Is(err, apperrors.ErrNotificationNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return mappedError{http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())}

	case errors.Is(err, apperrors.ErrInvalidStatus):
		return mappedError{http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, "Invalid application status").WithField("status")}
	case errors.Is(err, apperrors.ErrInvalidRole):
		return mappedError{http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid role").WithField("role")}
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return mappedError{http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())}

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return mappedError{http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")}
	case errors.Is(err, apperrors.ErrTokenExpired):
		return mappedError{http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")}
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return mappedError{http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")}

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return mappedError{http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")}

	case errors.Is(err, apperrors.ErrBackendUnavailable):
		return mappedError{http.StatusServiceUnavailable,
			dto.NewErrorDetail(dto.ErrorCodeBackendUnavailable, "Storage backend unavailable")}

	default:
		return mappedError{http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")}
	}
}
