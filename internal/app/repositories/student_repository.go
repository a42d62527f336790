package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
	"github.com/ogulcan/lectica/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students and their
// tombstone rows.
type StudentRepository struct{}

// NewStudentRepository creates a new student repository
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{}
}

// Create inserts a new student and fills in its assigned id. Email
// uniqueness among active students is enforced by a partial unique index.
func (r *StudentRepository) Create(ctx context.Context, q db.Querier, student *models.Student) error {
	query := `
		INSERT INTO students (nickname, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		student.Nickname, student.Email, student.CreatedAt, student.UpdatedAt,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves an active student by ID
func (r *StudentRepository) GetByID(ctx context.Context, q db.Querier, id int64) (*models.Student, error) {
	query := `
		SELECT id, nickname, email, deleted, created_at, updated_at
		FROM students
		WHERE id = $1 AND NOT deleted
	`

	var student models.Student
	err := q.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Nickname,
		&student.Email,
		&student.Deleted,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByIDs retrieves the active students among ids. Soft-deleted students are
// simply absent from the result, the caller decides how to render the gap.
func (r *StudentRepository) GetByIDs(ctx context.Context, q db.Querier, ids []int64) ([]models.Student, error) {
	query := `
		SELECT id, nickname, email, deleted, created_at, updated_at
		FROM students
		WHERE id = ANY($1) AND NOT deleted
	`

	var students []models.Student
	if err := pgxscan.Select(ctx, q, &students, query, ids); err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	return students, nil
}

// ExistsByEmail checks whether an active student already uses the email
func (r *StudentRepository) ExistsByEmail(ctx context.Context, q db.Querier, email string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND NOT deleted)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}

	return exists, nil
}

// QueueExistsCheck queues a validation that the student exists and is active
func (r *StudentRepository) QueueExistsCheck(b *pgx.Batch, id int64) {
	b.Queue(`
		SELECT EXISTS(SELECT 1 FROM students WHERE id = $1 AND NOT deleted)`, id,
	).QueryRow(func(row pgx.Row) error {
		var exists bool
		if err := row.Scan(&exists); err != nil {
			return fmt.Errorf("error checking student existence: %w", err)
		}
		if !exists {
			return apperrors.ErrStudentNotFound
		}
		return nil
	})
}

// SoftDelete flags the student as deleted
func (r *StudentRepository) SoftDelete(ctx context.Context, q db.Querier, id int64) error {
	cmdTag, err := q.Exec(ctx, `
		UPDATE students SET deleted = true, updated_at = now() WHERE id = $1 AND NOT deleted`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// InsertTombstone writes the archival row that keeps historical enrollment
// views working after the canonical student row is soft-deleted.
func (r *StudentRepository) InsertTombstone(ctx context.Context, q db.Querier, student *models.Student) error {
	_, err := q.Exec(ctx, `
		INSERT INTO deleted_students (student_id, nickname, email, deleted_at)
		VALUES ($1, $2, $3, now())`,
		student.ID, student.Nickname, student.Email,
	)
	if err != nil {
		return fmt.Errorf("error archiving student: %w", err)
	}

	return nil
}
