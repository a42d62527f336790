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
)

// InstructorRepository handles database operations for instructors
type InstructorRepository struct{}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{}
}

// Create inserts a new instructor and fills in its assigned id
func (r *InstructorRepository) Create(ctx context.Context, q db.Querier, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		instructor.Name, instructor.CreatedAt, instructor.UpdatedAt,
	).Scan(&instructor.ID)
	if err != nil {
		return fmt.Errorf("error creating instructor: %w", err)
	}

	return nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, q db.Querier, id int64) (*models.Instructor, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM instructors
		WHERE id = $1
	`

	var instructor models.Instructor
	err := q.QueryRow(ctx, query, id).Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.CreatedAt,
		&instructor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	return &instructor, nil
}

// GetAll retrieves all instructors
func (r *InstructorRepository) GetAll(ctx context.Context, q db.Querier) ([]models.Instructor, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM instructors
		ORDER BY id
	`

	var instructors []models.Instructor
	if err := pgxscan.Select(ctx, q, &instructors, query); err != nil {
		return nil, fmt.Errorf("error listing instructors: %w", err)
	}

	return instructors, nil
}

// Exists checks whether an instructor exists
func (r *InstructorRepository) Exists(ctx context.Context, q db.Querier, id int64) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM instructors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking instructor existence: %w", err)
	}

	return exists, nil
}
