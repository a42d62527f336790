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

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct{}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{}
}

// GetByID retrieves an active enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, q db.Querier, id int64) (*models.Enrollment, error) {
	query := `
		SELECT id, lecture_id, student_id, deleted, created_at, updated_at
		FROM enrollments
		WHERE id = $1 AND NOT deleted
	`

	var enrollment models.Enrollment
	err := q.QueryRow(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.LectureID,
		&enrollment.StudentID,
		&enrollment.Deleted,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// GetActiveByLecture retrieves every active enrollment of a lecture
func (r *EnrollmentRepository) GetActiveByLecture(ctx context.Context, q db.Querier, lectureID int64) ([]models.Enrollment, error) {
	query := `
		SELECT id, lecture_id, student_id, deleted, created_at, updated_at
		FROM enrollments
		WHERE lecture_id = $1 AND NOT deleted
		ORDER BY created_at
	`

	var enrollments []models.Enrollment
	if err := pgxscan.Select(ctx, q, &enrollments, query, lectureID); err != nil {
		return nil, fmt.Errorf("error listing lecture enrollments: %w", err)
	}

	return enrollments, nil
}

// QueueActiveByLecture queues the enrollment listing of a lecture into a
// batch, scanning the rows into dst when the batch is processed.
func (r *EnrollmentRepository) QueueActiveByLecture(b *pgx.Batch, lectureID int64, dst *[]models.Enrollment) {
	b.Queue(`
		SELECT id, lecture_id, student_id, deleted, created_at, updated_at
		FROM enrollments
		WHERE lecture_id = $1 AND NOT deleted
		ORDER BY created_at`, lectureID,
	).Query(func(rows pgx.Rows) error {
		if err := pgxscan.ScanAll(dst, rows); err != nil {
			return fmt.Errorf("error listing lecture enrollments: %w", err)
		}
		return nil
	})
}

// CountActiveByLecture counts the active enrollments of a lecture
func (r *EnrollmentRepository) CountActiveByLecture(ctx context.Context, q db.Querier, lectureID int64) (int64, error) {
	var count int64
	err := q.QueryRow(ctx, `
		SELECT count(*) FROM enrollments WHERE lecture_id = $1 AND NOT deleted`, lectureID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting lecture enrollments: %w", err)
	}

	return count, nil
}

// QueueConflictCheck queues a validation that the student has no active
// enrollment in any of lectureIDs.
func (r *EnrollmentRepository) QueueConflictCheck(b *pgx.Batch, studentID int64, lectureIDs []int64) {
	b.Queue(`
		SELECT count(*)
		FROM enrollments
		WHERE student_id = $1 AND lecture_id = ANY($2) AND NOT deleted`, studentID, lectureIDs,
	).QueryRow(func(row pgx.Row) error {
		var conflicts int64
		if err := row.Scan(&conflicts); err != nil {
			return fmt.Errorf("error checking enrollment conflicts: %w", err)
		}
		if conflicts > 0 {
			return apperrors.ErrAlreadyEnrolled
		}
		return nil
	})
}

// QueueCreate queues an enrollment insert. The callback fills dst with the
// assigned id once the batch is processed.
func (r *EnrollmentRepository) QueueCreate(b *pgx.Batch, lectureID, studentID int64, dst *models.Enrollment) {
	dst.LectureID = lectureID
	dst.StudentID = studentID
	b.Queue(`
		INSERT INTO enrollments (lecture_id, student_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`, lectureID, studentID,
	).QueryRow(func(row pgx.Row) error {
		if err := row.Scan(&dst.ID, &dst.CreatedAt, &dst.UpdatedAt); err != nil {
			// The conflict check ran earlier in this transaction, but a
			// concurrent transaction may still have won the partial unique
			// index race between check and insert.
			if dberrors.IsDuplicateConstraintError(err, "uq_enrollments_active") {
				return apperrors.ErrAlreadyEnrolled
			}
			if dberrors.IsForeignKeyConstraintError(err, "enrollments_student_id_fkey") {
				return apperrors.ErrStudentNotFound
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrLectureNotFound
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}
		return nil
	})
}

// SoftDelete flags one enrollment as deleted
func (r *EnrollmentRepository) SoftDelete(ctx context.Context, q db.Querier, id int64) error {
	cmdTag, err := q.Exec(ctx, `
		UPDATE enrollments SET deleted = true, updated_at = now() WHERE id = $1 AND NOT deleted`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// SoftDeleteAllByStudent flags every active enrollment of the student as
// deleted and returns the affected lecture ids so the caller can decrement
// the matching counters in the same transaction.
func (r *EnrollmentRepository) SoftDeleteAllByStudent(ctx context.Context, q db.Querier, studentID int64) ([]int64, error) {
	rows, err := q.Query(ctx, `
		UPDATE enrollments SET deleted = true, updated_at = now()
		WHERE student_id = $1 AND NOT deleted
		RETURNING lecture_id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error deleting student enrollments: %w", err)
	}
	defer rows.Close()

	var lectureIDs []int64
	for rows.Next() {
		var lectureID int64
		if err := rows.Scan(&lectureID); err != nil {
			return nil, fmt.Errorf("error deleting student enrollments: %w", err)
		}
		lectureIDs = append(lectureIDs, lectureID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error deleting student enrollments: %w", err)
	}

	return lectureIDs, nil
}
