package services

import (
	"errors"
	"testing"

	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

func TestValidateLectureIDs(t *testing.T) {
	tests := []struct {
		name       string
		lectureIDs []int64
		wantErr    error
	}{
		{"single id", []int64{1}, nil},
		{"many distinct ids", []int64{3, 1, 2}, nil},
		{"nil list", nil, apperrors.ErrEmptyLectureIDs},
		{"empty list", []int64{}, apperrors.ErrEmptyLectureIDs},
		{"duplicate", []int64{1, 2, 1}, apperrors.ErrDuplicateLectureIDs},
		{"zero id", []int64{1, 0}, apperrors.ErrInvalidInput},
		{"negative id", []int64{-5}, apperrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLectureIDs(tt.lectureIDs)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateLectureIDs_InvalidIDBeatsDuplicate(t *testing.T) {
	// A non-positive id is reported even when the list also carries a
	// duplicate later on.
	err := ValidateLectureIDs([]int64{0, 4, 4})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("want invalid-input error, got %v", err)
	}
}
