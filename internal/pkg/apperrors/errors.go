package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidInput     = errors.New("invalid input")
	ErrIllegalState     = errors.New("illegal state")

	// ErrWriteFailed signals a statement that was expected to affect exactly
	// one row affected none. Surfaced as an internal error, never retried here.
	ErrWriteFailed = errors.New("write affected no rows")

	// Authentication errors
	ErrTokenInvalid     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrPermissionDenied = errors.New("permission denied")
)

// Lecture errors
var (
	ErrLectureNotFound         = errors.New("lecture not found")
	ErrLectureNotPublished     = errors.New("lecture is not published")
	ErrLectureAlreadyPublished = errors.New("lecture is already published")
	ErrLectureHasEnrollments   = errors.New("lecture still has active enrollments")
	ErrLectureValidation       = errors.New("lecture validation failed")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrStudentValidation  = errors.New("student validation failed")
)

// Instructor errors
var (
	ErrInstructorNotFound = errors.New("instructor not found")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrAlreadyEnrolled     = errors.New("student is already enrolled in lecture")
	ErrDuplicateLectureIDs = errors.New("lecture id list contains duplicates")
	ErrEmptyLectureIDs     = errors.New("lecture id list is empty")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewInvalidInputError creates an invalid-input error with a message
func NewInvalidInputError(message string) error {
	return &CustomError{Err: ErrInvalidInput, Message: message}
}

// NewIllegalStateError creates an illegal-state error with a message
func NewIllegalStateError(message string) error {
	return &CustomError{Err: ErrIllegalState, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// Is reports whether err matches target or any error in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
