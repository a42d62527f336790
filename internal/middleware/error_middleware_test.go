package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"lecture not found", apperrors.ErrLectureNotFound, http.StatusNotFound},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.NewNotFoundError("gone"), http.StatusNotFound},
		{"invalid input", apperrors.NewInvalidInputError("bad field"), http.StatusBadRequest},
		{"unpublished lecture", apperrors.ErrLectureNotPublished, http.StatusBadRequest},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusBadRequest},
		{"duplicate lecture ids", apperrors.ErrDuplicateLectureIDs, http.StatusBadRequest},
		{"email conflict", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"already published", apperrors.ErrLectureAlreadyPublished, http.StatusConflict},
		{"lecture has enrollments", apperrors.ErrLectureHasEnrollments, http.StatusConflict},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"counter write failure", apperrors.ErrWriteFailed, http.StatusInternalServerError},
		{"pool exhausted", db.ErrPoolExhausted, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}
