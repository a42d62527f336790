package services

import (
	"context"
	"strings"
	"time"

	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/app/repositories"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// InstructorService enforces instructor invariants
type InstructorService struct {
	instructorRepo *repositories.InstructorRepository
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo *repositories.InstructorRepository) *InstructorService {
	return &InstructorService{
		instructorRepo: instructorRepo,
	}
}

// CreateInstructor registers an instructor
func (s *InstructorService) CreateInstructor(ctx context.Context, q db.Querier, name string) (*models.Instructor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewInvalidInputError("name: must not be empty")
	}

	now := time.Now()
	instructor := &models.Instructor{
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.instructorRepo.Create(ctx, q, instructor); err != nil {
		return nil, err
	}

	return instructor, nil
}

// GetInstructor retrieves an instructor
func (s *InstructorService) GetInstructor(ctx context.Context, q db.Querier, id int64) (*models.Instructor, error) {
	if id <= 0 {
		return nil, apperrors.NewInvalidInputError("instructor id must be positive")
	}
	return s.instructorRepo.GetByID(ctx, q, id)
}

// ListInstructors retrieves all instructors
func (s *InstructorService) ListInstructors(ctx context.Context, q db.Querier) ([]models.Instructor, error) {
	return s.instructorRepo.GetAll(ctx, q)
}
