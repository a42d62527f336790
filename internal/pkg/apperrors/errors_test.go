package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewInvalidInputError("title: must not be empty")

	if !errors.Is(err, ErrInvalidInput) {
		t.Fatal("custom error must unwrap to its sentinel")
	}
	if err.Error() != "title: must not be empty" {
		t.Errorf("Error() = %q, want the message", err.Error())
	}
}

func TestCustomErrorWithoutMessage(t *testing.T) {
	err := &CustomError{Err: ErrConflict}
	if err.Error() != ErrConflict.Error() {
		t.Errorf("Error() = %q, want sentinel text", err.Error())
	}
}

func TestIs_MatchesAnyOf(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrLectureNotFound)

	if !Is(wrapped, ErrStudentNotFound, ErrInstructorNotFound, ErrLectureNotFound) {
		t.Error("Is must match a wrapped sentinel anywhere in the list")
	}
	if Is(wrapped, ErrStudentNotFound, ErrInstructorNotFound) {
		t.Error("Is must not match unrelated sentinels")
	}
}
