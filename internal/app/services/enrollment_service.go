package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ogulcan/lectica/internal/app/repositories"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// EnrollmentService enforces enrollment invariants. Every mutation of an
// enrollment row pairs with the matching counter mutation on the same
// connection, per the counter consistency invariant.
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	counterRepo    *repositories.LectureStudentCountRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	counterRepo *repositories.LectureStudentCountRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		counterRepo:    counterRepo,
	}
}

// ValidateLectureIDs rejects an empty or duplicated lecture id list before
// any database access. Duplicates are a caller error, not silently deduped.
func ValidateLectureIDs(lectureIDs []int64) error {
	if len(lectureIDs) == 0 {
		return apperrors.ErrEmptyLectureIDs
	}

	seen := make(map[int64]struct{}, len(lectureIDs))
	for _, id := range lectureIDs {
		if id <= 0 {
			return apperrors.NewInvalidInputError(fmt.Sprintf("lecture id %d is not valid", id))
		}
		if _, ok := seen[id]; ok {
			return apperrors.ErrDuplicateLectureIDs
		}
		seen[id] = struct{}{}
	}

	return nil
}

// CancelEnrollment soft-deletes one enrollment and decrements the owning
// lecture's counter in the same unit of work.
func (s *EnrollmentService) CancelEnrollment(ctx context.Context, q db.Querier, enrollmentID int64) error {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, q, enrollmentID)
	if err != nil {
		return err
	}

	if err := s.enrollmentRepo.SoftDelete(ctx, q, enrollment.ID); err != nil {
		return err
	}

	return s.counterRepo.Decrement(ctx, q, enrollment.LectureID)
}

// RemoveAllForStudent soft-deletes every active enrollment of the student
// and decrements each affected lecture's counter. The decrements are queued
// into one batch, issued back-to-back and jointly awaited.
func (s *EnrollmentService) RemoveAllForStudent(ctx context.Context, q db.Querier, studentID int64) error {
	lectureIDs, err := s.enrollmentRepo.SoftDeleteAllByStudent(ctx, q, studentID)
	if err != nil {
		return err
	}
	if len(lectureIDs) == 0 {
		return nil
	}

	b := &pgx.Batch{}
	for _, lectureID := range lectureIDs {
		s.counterRepo.QueueDecrement(b, lectureID)
	}

	return q.SendBatch(ctx, b).Close()
}
