package services

import (
	"context"
	"fmt"

	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/app/repositories"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// LectureService enforces lecture invariants on a caller-supplied connection.
// Transaction demarcation belongs to the facade layer, never here.
type LectureService struct {
	lectureRepo    *repositories.LectureRepository
	counterRepo    *repositories.LectureStudentCountRepository
	instructorRepo *repositories.InstructorRepository
}

// NewLectureService creates a new lecture service instance
func NewLectureService(
	lectureRepo *repositories.LectureRepository,
	counterRepo *repositories.LectureStudentCountRepository,
	instructorRepo *repositories.InstructorRepository,
) *LectureService {
	return &LectureService{
		lectureRepo:    lectureRepo,
		counterRepo:    counterRepo,
		instructorRepo: instructorRepo,
	}
}

// CreateLecture validates the referenced instructor, inserts the lecture and
// its zero-valued counter row. Both writes share the supplied connection, so
// the enclosing transaction keeps the lecture and its counter in one unit.
func (s *LectureService) CreateLecture(ctx context.Context, q db.Querier, title, introduction string, instructorID int64, category models.Category, price int64) (*models.Lecture, error) {
	lecture, err := models.NewLecture(title, introduction, instructorID, category, price)
	if err != nil {
		return nil, err
	}

	exists, err := s.instructorRepo.Exists(ctx, q, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error checking instructor: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrInstructorNotFound
	}

	if err := s.lectureRepo.Create(ctx, q, lecture); err != nil {
		return nil, err
	}

	if err := s.counterRepo.Create(ctx, q, lecture.ID); err != nil {
		return nil, err
	}

	return lecture, nil
}

// GetLecture retrieves an active lecture
func (s *LectureService) GetLecture(ctx context.Context, q db.Querier, id int64) (*models.Lecture, error) {
	if id <= 0 {
		return nil, apperrors.NewInvalidInputError("lecture id must be positive")
	}
	return s.lectureRepo.GetByID(ctx, q, id)
}

// PublishLecture loads the lecture, applies the publish state transition and
// persists the updated row. Publishing twice fails on the second call.
func (s *LectureService) PublishLecture(ctx context.Context, q db.Querier, id int64) (*models.Lecture, error) {
	lecture, err := s.lectureRepo.GetByID(ctx, q, id)
	if err != nil {
		return nil, err
	}

	if err := lecture.Publish(); err != nil {
		return nil, err
	}

	if err := s.lectureRepo.Update(ctx, q, lecture); err != nil {
		return nil, err
	}

	return lecture, nil
}

// DeleteLecture soft-deletes a lecture that has no active enrollments and
// removes its counter row. The zero-enrollment precondition is validated by
// the facade before this is called.
func (s *LectureService) DeleteLecture(ctx context.Context, q db.Querier, id int64) error {
	if err := s.lectureRepo.SoftDelete(ctx, q, id); err != nil {
		return err
	}
	return s.counterRepo.Delete(ctx, q, id)
}
