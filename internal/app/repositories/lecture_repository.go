package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// LectureRepository handles database operations for lectures. It is
// stateless: every method operates on the connection supplied by the caller.
type LectureRepository struct {
	sb squirrel.StatementBuilderType
}

// NewLectureRepository creates a new lecture repository
func NewLectureRepository() *LectureRepository {
	return &LectureRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new lecture and fills in its assigned id
func (r *LectureRepository) Create(ctx context.Context, q db.Querier, lecture *models.Lecture) error {
	query := `
		INSERT INTO lectures (title, introduction, instructor_id, category, price, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		lecture.Title, lecture.Introduction, lecture.InstructorID, lecture.Category,
		lecture.Price, lecture.Published, lecture.CreatedAt, lecture.UpdatedAt,
	).Scan(&lecture.ID)
	if err != nil {
		return fmt.Errorf("error creating lecture: %w", err)
	}

	return nil
}

// GetByID retrieves an active lecture by ID
func (r *LectureRepository) GetByID(ctx context.Context, q db.Querier, id int64) (*models.Lecture, error) {
	query := `
		SELECT id, title, introduction, instructor_id, category, price, published, deleted, created_at, updated_at
		FROM lectures
		WHERE id = $1 AND NOT deleted
	`

	var lecture models.Lecture
	err := q.QueryRow(ctx, query, id).Scan(
		&lecture.ID,
		&lecture.Title,
		&lecture.Introduction,
		&lecture.InstructorID,
		&lecture.Category,
		&lecture.Price,
		&lecture.Published,
		&lecture.Deleted,
		&lecture.CreatedAt,
		&lecture.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLectureNotFound
		}
		return nil, fmt.Errorf("error retrieving lecture: %w", err)
	}

	return &lecture, nil
}

// Update persists the mutable lecture fields
func (r *LectureRepository) Update(ctx context.Context, q db.Querier, lecture *models.Lecture) error {
	query := `
		UPDATE lectures
		SET title = $1, introduction = $2, category = $3, price = $4, published = $5, updated_at = $6
		WHERE id = $7 AND NOT deleted
	`

	cmdTag, err := q.Exec(ctx, query,
		lecture.Title, lecture.Introduction, lecture.Category, lecture.Price,
		lecture.Published, lecture.UpdatedAt, lecture.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating lecture: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLectureNotFound
	}

	return nil
}

// SoftDelete flags the lecture as deleted. The row is never hard-deleted
// while enrollments reference it.
func (r *LectureRepository) SoftDelete(ctx context.Context, q db.Querier, id int64) error {
	cmdTag, err := q.Exec(ctx, `
		UPDATE lectures SET deleted = true, updated_at = now() WHERE id = $1 AND NOT deleted`, id)
	if err != nil {
		return fmt.Errorf("error deleting lecture: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLectureNotFound
	}

	return nil
}

// QueueGetByID queues the lecture fetch into a batch. The callback fills dst
// once the batch is processed.
func (r *LectureRepository) QueueGetByID(b *pgx.Batch, id int64, dst *models.Lecture) {
	b.Queue(`
		SELECT id, title, introduction, instructor_id, category, price, published, deleted, created_at, updated_at
		FROM lectures
		WHERE id = $1 AND NOT deleted`, id,
	).QueryRow(func(row pgx.Row) error {
		err := row.Scan(
			&dst.ID,
			&dst.Title,
			&dst.Introduction,
			&dst.InstructorID,
			&dst.Category,
			&dst.Price,
			&dst.Published,
			&dst.Deleted,
			&dst.CreatedAt,
			&dst.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrLectureNotFound
			}
			return fmt.Errorf("error retrieving lecture: %w", err)
		}
		return nil
	})
}

// QueuePublishedCheck queues a validation that every id in lectureIDs refers
// to an existing, published, active lecture. A missing lecture surfaces as
// not-found, an unpublished one as not-published.
func (r *LectureRepository) QueuePublishedCheck(b *pgx.Batch, lectureIDs []int64) {
	expected := int64(len(lectureIDs))
	b.Queue(`
		SELECT count(*), count(*) FILTER (WHERE published)
		FROM lectures
		WHERE id = ANY($1) AND NOT deleted`, lectureIDs,
	).QueryRow(func(row pgx.Row) error {
		var total, published int64
		if err := row.Scan(&total, &published); err != nil {
			return fmt.Errorf("error checking lecture publication: %w", err)
		}
		if total < expected {
			return apperrors.ErrLectureNotFound
		}
		if published < total {
			return apperrors.ErrLectureNotPublished
		}
		return nil
	})
}

// buildListQuery builds the filtered listing select and the matching count
// query from one shared where condition.
func (r *LectureRepository) buildListQuery(filter dto.ListLecturesFilter) (squirrel.SelectBuilder, squirrel.SelectBuilder) {
	baseSelect := r.sb.Select(
		"l.id", "l.title", "l.category", "l.price",
		"i.name AS instructor_name",
		"c.student_count",
		"l.created_at",
	).
		From("lectures l").
		Join("instructors i ON l.instructor_id = i.id").
		Join("lecture_student_counts c ON c.lecture_id = l.id")

	countSelect := r.sb.Select("COUNT(*)").
		From("lectures l").
		Join("instructors i ON l.instructor_id = i.id").
		Join("lecture_student_counts c ON c.lecture_id = l.id")

	whereCondition := squirrel.And{
		squirrel.Eq{"l.deleted": false},
		squirrel.Eq{"l.published": true},
	}
	if filter.Category != "" {
		whereCondition = append(whereCondition, squirrel.Eq{"l.category": filter.Category})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		whereCondition = append(whereCondition, squirrel.Or{
			squirrel.ILike{"l.title": pattern},
			squirrel.ILike{"l.introduction": pattern},
		})
	}
	if filter.InstructorID > 0 {
		whereCondition = append(whereCondition, squirrel.Eq{"l.instructor_id": filter.InstructorID})
	}
	if filter.StudentID > 0 {
		enrolled := squirrel.Expr(
			"EXISTS (SELECT 1 FROM enrollments e WHERE e.lecture_id = l.id AND e.student_id = ? AND NOT e.deleted)",
			filter.StudentID,
		)
		whereCondition = append(whereCondition, enrolled)
	}

	baseSelect = baseSelect.Where(whereCondition)
	countSelect = countSelect.Where(whereCondition)

	switch filter.Order {
	case dto.LectureOrderPopular:
		baseSelect = baseSelect.OrderBy("c.student_count DESC", "l.id DESC")
	default:
		baseSelect = baseSelect.OrderBy("l.created_at DESC", "l.id DESC")
	}

	return baseSelect, countSelect
}

// List retrieves one page of the filtered lecture listing plus the total
// number of matching rows.
func (r *LectureRepository) List(ctx context.Context, q db.Querier, filter dto.ListLecturesFilter, offset uint64, limit int) ([]models.LectureSummary, int64, error) {
	baseSelect, countSelect := r.buildListQuery(filter)

	countSQL, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build lecture count query: %w", err)
	}

	var totalItems int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("error counting lectures: %w", err)
	}

	listSQL, listArgs, err := baseSelect.Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build lecture list query: %w", err)
	}

	var summaries []models.LectureSummary
	if err := pgxscan.Select(ctx, q, &summaries, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("error listing lectures: %w", err)
	}

	return summaries, totalItems, nil
}
