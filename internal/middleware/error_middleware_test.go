package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err        error
		wantStatus int
	}{
		{apperrors.ErrDuplicateEmail, http.StatusConflict},
		{apperrors.ErrDuplicateApplication, http.StatusConflict},
		{apperrors.ErrUserNotFound, http.StatusNotFound},
		{apperrors.ErrProfileNotFound, http.StatusNotFound},
		{apperrors.ErrJobNotFound, http.StatusNotFound},
		{apperrors.ErrApplicationNotFound, http.StatusNotFound},
		{apperrors.ErrNotificationNotFound, http.StatusNotFound},
		{apperrors.ErrInvalidStatus, http.StatusBadRequest},
		{apperrors.ErrInvalidRole, http.StatusBadRequest},
		{apperrors.ErrValidationFailed, http.StatusBadRequest},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrPermissionDenied, http.StatusForbidden},
		{apperrors.ErrBackendUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("something unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleAPIError(c, tt.err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandleAPIErrorUnwrapsCustomErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	err := apperrors.NewCustomError(apperrors.ErrValidationFailed, "profile validation failed").
		WithDetails(map[string]interface{}{"field": "gpa"})
	HandleAPIError(c, err)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "gpa")
}
