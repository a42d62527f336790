package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_students_active_email"}

	assert.True(t, IsUniqueViolation(uniqueErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("error creating student: %w", uniqueErr)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_enrollments_active"}

	assert.True(t, IsDuplicateConstraintError(err, "uq_enrollments_active"))
	assert.False(t, IsDuplicateConstraintError(err, "uq_students_active_email"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: "23503", ConstraintName: "uq_enrollments_active"}, "uq_enrollments_active"))
}

func TestIsForeignKeyConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "enrollments_student_id_fkey"}

	assert.True(t, IsForeignKeyConstraintError(err, "enrollments_student_id_fkey"))
	assert.False(t, IsForeignKeyConstraintError(err, "enrollments_lecture_id_fkey"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("error creating enrollment: %w", &pgconn.PgError{Code: "23503"})))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(errors.New("connection reset")))
}
