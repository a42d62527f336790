package models

import (
	"errors"
	"testing"

	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

func TestNewStudent(t *testing.T) {
	tests := []struct {
		name     string
		nickname string
		email    string
		wantErr  bool
	}{
		{"valid", "gopher", "gopher@example.com", false},
		{"minimum nickname", "go", "go@example.com", false},
		{"nickname too short", "g", "g@example.com", true},
		{"malformed email", "gopher", "not-an-email", true},
		{"email missing domain", "gopher", "gopher@", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student, err := NewStudent(tt.nickname, tt.email)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidInput) {
					t.Fatalf("want invalid-input error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if student.Deleted {
				t.Error("new students must start active")
			}
		})
	}
}
