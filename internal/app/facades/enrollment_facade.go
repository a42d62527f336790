package facades

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/app/repositories"
	"github.com/ogulcan/lectica/internal/app/services"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
	"github.com/ogulcan/lectica/internal/pkg/logger"
)

// EnrollmentFacade is the transactional entry point for enrollment
// workflows. Each public method is exactly one unit of work: the runner
// leases a connection, demarcates the transaction, and every repository call
// below runs on that one connection.
type EnrollmentFacade struct {
	runner            db.Runner
	lectureRepo       *repositories.LectureRepository
	studentRepo       *repositories.StudentRepository
	enrollmentRepo    *repositories.EnrollmentRepository
	counterRepo       *repositories.LectureStudentCountRepository
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentFacade creates a new enrollment facade
func NewEnrollmentFacade(
	runner db.Runner,
	repos *repositories.Repositories,
	enrollmentService *services.EnrollmentService,
) *EnrollmentFacade {
	return &EnrollmentFacade{
		runner:            runner,
		lectureRepo:       repos.Lecture,
		studentRepo:       repos.Student,
		enrollmentRepo:    repos.Enrollment,
		counterRepo:       repos.LectureStudentCount,
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollments enrolls one student into every requested lecture, all or
// nothing.
//
// An empty or duplicated lecture id list is rejected before any database
// access. Inside the transaction the three data validations (student exists,
// every lecture published, no conflicting enrollment) are issued back-to-back
// in one batch and jointly awaited, first rejection wins. Only after all of
// them pass are the enrollment inserts and counter increments sent, again as
// one batch. Any failure anywhere rolls the whole transaction back, so no
// partial enrollment or counter drift is ever observable.
func (f *EnrollmentFacade) CreateEnrollments(ctx context.Context, req dto.CreateEnrollmentsRequest) (*dto.CreateEnrollmentsResponse, error) {
	if req.StudentID <= 0 {
		return nil, apperrors.NewInvalidInputError("student id must be positive")
	}
	if err := services.ValidateLectureIDs(req.LectureIDs); err != nil {
		return nil, err
	}

	created := make([]models.Enrollment, len(req.LectureIDs))

	err := f.runner.ReadWrite(ctx, func(ctx context.Context, q db.Querier) error {
		validations := &pgx.Batch{}
		f.studentRepo.QueueExistsCheck(validations, req.StudentID)
		f.lectureRepo.QueuePublishedCheck(validations, req.LectureIDs)
		f.enrollmentRepo.QueueConflictCheck(validations, req.StudentID, req.LectureIDs)
		if err := q.SendBatch(ctx, validations).Close(); err != nil {
			return err
		}

		writes := &pgx.Batch{}
		for i, lectureID := range req.LectureIDs {
			f.enrollmentRepo.QueueCreate(writes, lectureID, req.StudentID, &created[i])
			f.counterRepo.QueueIncrement(writes, lectureID)
		}
		return q.SendBatch(ctx, writes).Close()
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.EnrollmentItem, len(created))
	for i, enrollment := range created {
		items[i] = dto.EnrollmentItem{
			ID:        enrollment.ID,
			LectureID: enrollment.LectureID,
			StudentID: enrollment.StudentID,
		}
	}

	logger.Info().
		Int64("studentId", req.StudentID).
		Int("lectures", len(items)).
		Msg("Enrollments created")

	return &dto.CreateEnrollmentsResponse{Enrollments: items}, nil
}

// CancelEnrollment removes one enrollment and decrements the owning
// lecture's counter in one unit of work.
func (f *EnrollmentFacade) CancelEnrollment(ctx context.Context, enrollmentID int64) error {
	if enrollmentID <= 0 {
		return apperrors.NewInvalidInputError("enrollment id must be positive")
	}

	return f.runner.ReadWrite(ctx, func(ctx context.Context, q db.Querier) error {
		return f.enrollmentService.CancelEnrollment(ctx, q, enrollmentID)
	})
}
