package services

import (
	"context"
	"fmt"

	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/app/repositories"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// StudentService enforces student invariants on a caller-supplied connection
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// CreateStudent registers a student. Emails are unique among active
// students, soft-deleted ones free their address up again.
func (s *StudentService) CreateStudent(ctx context.Context, q db.Querier, nickname, email string) (*models.Student, error) {
	student, err := models.NewStudent(nickname, email)
	if err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.ExistsByEmail(ctx, q, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if err := s.studentRepo.Create(ctx, q, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudent retrieves an active student
func (s *StudentService) GetStudent(ctx context.Context, q db.Querier, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewInvalidInputError("student id must be positive")
	}
	return s.studentRepo.GetByID(ctx, q, id)
}

// WithdrawStudent soft-deletes the canonical student row and writes the
// tombstone record, two writes on the same connection so the enclosing
// transaction keeps them atomic.
func (s *StudentService) WithdrawStudent(ctx context.Context, q db.Querier, id int64) error {
	student, err := s.studentRepo.GetByID(ctx, q, id)
	if err != nil {
		return err
	}

	if err := s.studentRepo.SoftDelete(ctx, q, student.ID); err != nil {
		return err
	}

	return s.studentRepo.InsertTombstone(ctx, q, student)
}
