package facades

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/app/repositories"
	"github.com/ogulcan/lectica/internal/app/services"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
	"github.com/ogulcan/lectica/internal/pkg/helpers"
	"github.com/ogulcan/lectica/internal/pkg/logger"
)

// MaxBulkCreateSize caps how many lectures one bulk create call may carry
const MaxBulkCreateSize = 10

// LectureFacade is the transactional entry point for lecture workflows.
// Listing and detail are read-only units of work, everything that writes is
// a read-write one.
type LectureFacade struct {
	runner         db.Runner
	lectureService *services.LectureService
	lectureRepo    *repositories.LectureRepository
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	counterRepo    *repositories.LectureStudentCountRepository
}

// NewLectureFacade creates a new lecture facade
func NewLectureFacade(
	runner db.Runner,
	repos *repositories.Repositories,
	lectureService *services.LectureService,
) *LectureFacade {
	return &LectureFacade{
		runner:         runner,
		lectureService: lectureService,
		lectureRepo:    repos.Lecture,
		studentRepo:    repos.Student,
		enrollmentRepo: repos.Enrollment,
		counterRepo:    repos.LectureStudentCount,
	}
}

// ListLectures returns one page of the filtered lecture listing
func (f *LectureFacade) ListLectures(ctx context.Context, filter dto.ListLecturesFilter) (*dto.PagedResponse, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, apperrors.NewInvalidInputError("category: is not a known category")
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)

	var (
		summaries  []models.LectureSummary
		totalItems int64
	)
	err := f.runner.ReadOnly(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		summaries, totalItems, err = f.lectureRepo.List(ctx, q, filter, offset, limit)
		return err
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.LectureListItem, len(summaries))
	for i, summary := range summaries {
		items[i] = dto.NewLectureListItem(summary)
	}

	return &dto.PagedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(totalItems, filter.Page, limit),
	}, nil
}

// DetailLecture returns the lecture, its student count and its enrollment
// list with each student resolved. The three fetches go out as one batch on
// the leased connection, jointly awaited. Students that no longer resolve
// (withdrawn members) get a placeholder instead of failing the view.
func (f *LectureFacade) DetailLecture(ctx context.Context, lectureID int64) (*dto.LectureDetailResponse, error) {
	if lectureID <= 0 {
		return nil, apperrors.NewInvalidInputError("lecture id must be positive")
	}

	var (
		lecture      models.Lecture
		studentCount int64
		enrollments  []models.Enrollment
		students     []models.Student
	)

	err := f.runner.ReadOnly(ctx, func(ctx context.Context, q db.Querier) error {
		b := &pgx.Batch{}
		f.lectureRepo.QueueGetByID(b, lectureID, &lecture)
		f.counterRepo.QueueGetStudentCount(b, lectureID, &studentCount)
		f.enrollmentRepo.QueueActiveByLecture(b, lectureID, &enrollments)
		if err := q.SendBatch(ctx, b).Close(); err != nil {
			return err
		}

		if len(enrollments) == 0 {
			return nil
		}

		studentIDs := make([]int64, len(enrollments))
		for i, enrollment := range enrollments {
			studentIDs[i] = enrollment.StudentID
		}

		var err error
		students, err = f.studentRepo.GetByIDs(ctx, q, studentIDs)
		return err
	})
	if err != nil {
		return nil, err
	}

	nicknames := make(map[int64]string, len(students))
	for _, student := range students {
		nicknames[student.ID] = student.Nickname
	}

	enrolled := make([]dto.EnrolledStudentItem, len(enrollments))
	for i, enrollment := range enrollments {
		nickname, ok := nicknames[enrollment.StudentID]
		if !ok {
			nickname = models.WithdrawnMemberNickname
		}
		enrolled[i] = dto.EnrolledStudentItem{
			EnrollmentID: enrollment.ID,
			StudentID:    enrollment.StudentID,
			Nickname:     nickname,
			EnrolledAt:   enrollment.CreatedAt,
		}
	}

	return &dto.LectureDetailResponse{
		Lecture:      dto.NewLectureResponse(&lecture),
		StudentCount: studentCount,
		Students:     enrolled,
	}, nil
}

// CreateLecture creates one lecture plus its counter row in one unit of work
func (f *LectureFacade) CreateLecture(ctx context.Context, req dto.CreateLectureRequest) (*dto.LectureResponse, error) {
	var lecture *models.Lecture

	err := f.runner.ReadWrite(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		lecture, err = f.lectureService.CreateLecture(ctx, q, req.Title, req.Introduction, req.InstructorID, req.Category, req.Price)
		return err
	})
	if err != nil {
		return nil, err
	}

	response := dto.NewLectureResponse(lecture)
	return &response, nil
}

// CreateMultipleLectures attempts each lecture creation as its own isolated
// unit of work and aggregates a per-item report instead of failing the batch
// on one bad item.
//
// This is the one sanctioned departure from "no nested units of work": the
// items run outside any shared transaction, each on its own leased
// connection, concurrently. Partial success is the desired business
// behavior, batch-level atomicity is explicitly not.
func (f *LectureFacade) CreateMultipleLectures(ctx context.Context, req dto.CreateMultipleLecturesRequest) (*dto.LectureCreateReport, error) {
	if len(req.Lectures) == 0 {
		return nil, apperrors.NewInvalidInputError("lectures: must not be empty")
	}
	if len(req.Lectures) > MaxBulkCreateSize {
		return nil, apperrors.NewInvalidInputError("lectures: batch size exceeds limit")
	}

	items := make([]dto.LectureCreateReportItem, len(req.Lectures))

	var wg sync.WaitGroup
	for i, lectureReq := range req.Lectures {
		wg.Add(1)
		go func(i int, lectureReq dto.CreateLectureRequest) {
			defer wg.Done()

			response, err := f.CreateLecture(ctx, lectureReq)
			if err != nil {
				logger.Warn().Err(err).Str("title", lectureReq.Title).Msg("Bulk lecture item failed")
				items[i] = dto.LectureCreateReportItem{
					Success: false,
					Title:   lectureReq.Title,
					Error:   errorDetailFor(err),
				}
				return
			}

			items[i] = dto.LectureCreateReportItem{
				Success:   true,
				LectureID: response.ID,
				Title:     lectureReq.Title,
			}
		}(i, lectureReq)
	}
	wg.Wait()

	return &dto.LectureCreateReport{Items: items}, nil
}

// DeleteLecture soft-deletes a lecture once it has no active enrollments
func (f *LectureFacade) DeleteLecture(ctx context.Context, lectureID int64) error {
	if lectureID <= 0 {
		return apperrors.NewInvalidInputError("lecture id must be positive")
	}

	return f.runner.ReadWrite(ctx, func(ctx context.Context, q db.Querier) error {
		if _, err := f.lectureRepo.GetByID(ctx, q, lectureID); err != nil {
			return err
		}

		activeCount, err := f.enrollmentRepo.CountActiveByLecture(ctx, q, lectureID)
		if err != nil {
			return err
		}
		if activeCount > 0 {
			return apperrors.ErrLectureHasEnrollments
		}

		return f.lectureService.DeleteLecture(ctx, q, lectureID)
	})
}

// PublishLecture runs the publish state transition in one unit of work
func (f *LectureFacade) PublishLecture(ctx context.Context, lectureID int64) (*dto.LectureResponse, error) {
	if lectureID <= 0 {
		return nil, apperrors.NewInvalidInputError("lecture id must be positive")
	}

	var lecture *models.Lecture
	err := f.runner.ReadWrite(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		lecture, err = f.lectureService.PublishLecture(ctx, q, lectureID)
		return err
	})
	if err != nil {
		return nil, err
	}

	response := dto.NewLectureResponse(lecture)
	return &response, nil
}
