package facades

import (
	"context"

	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/app/services"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
	"github.com/ogulcan/lectica/internal/pkg/logger"
)

// StudentFacade is the transactional entry point for student workflows
type StudentFacade struct {
	runner            db.Runner
	studentService    *services.StudentService
	enrollmentService *services.EnrollmentService
}

// NewStudentFacade creates a new student facade
func NewStudentFacade(
	runner db.Runner,
	studentService *services.StudentService,
	enrollmentService *services.EnrollmentService,
) *StudentFacade {
	return &StudentFacade{
		runner:            runner,
		studentService:    studentService,
		enrollmentService: enrollmentService,
	}
}

// CreateStudent registers a new student in one unit of work
func (f *StudentFacade) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	var student *models.Student

	err := f.runner.ReadWrite(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		student, err = f.studentService.CreateStudent(ctx, q, req.Nickname, req.Email)
		return err
	})
	if err != nil {
		return nil, err
	}

	response := dto.NewStudentResponse(student)
	return &response, nil
}

// GetStudent fetches one active student
func (f *StudentFacade) GetStudent(ctx context.Context, studentID int64) (*dto.StudentResponse, error) {
	var student *models.Student

	err := f.runner.ReadOnly(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		student, err = f.studentService.GetStudent(ctx, q, studentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	response := dto.NewStudentResponse(student)
	return &response, nil
}

// DeleteStudent withdraws a student: every enrollment is removed with its
// counter decrement, the canonical row is soft-deleted and the tombstone is
// written, all inside one transaction. If any branch fails the others roll
// back with it.
func (f *StudentFacade) DeleteStudent(ctx context.Context, studentID int64) error {
	if studentID <= 0 {
		return apperrors.NewInvalidInputError("student id must be positive")
	}

	err := f.runner.ReadWrite(ctx, func(ctx context.Context, q db.Querier) error {
		if err := f.enrollmentService.RemoveAllForStudent(ctx, q, studentID); err != nil {
			return err
		}
		return f.studentService.WithdrawStudent(ctx, q, studentID)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("studentId", studentID).Msg("Student withdrawn")
	return nil
}
