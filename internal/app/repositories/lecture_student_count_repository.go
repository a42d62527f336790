package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// Counter statements. Increments and decrements are single-statement
// relative updates, never a read-modify-write pair: two transactions bumping
// the same row serialize at the storage layer instead of racing here.
const (
	incrementCountSQL = `
		UPDATE lecture_student_counts
		SET student_count = student_count + 1, updated_at = now()
		WHERE lecture_id = $1`

	decrementCountSQL = `
		UPDATE lecture_student_counts
		SET student_count = student_count - 1, updated_at = now()
		WHERE lecture_id = $1 AND student_count > 0`
)

// LectureStudentCountRepository maintains the denormalized per-lecture
// student counter. The counter row shares the owning lecture's lifecycle and
// must only ever change inside the transaction that changes the matching
// enrollment rows.
type LectureStudentCountRepository struct{}

// NewLectureStudentCountRepository creates a new counter repository
func NewLectureStudentCountRepository() *LectureStudentCountRepository {
	return &LectureStudentCountRepository{}
}

// Create inserts the zero-valued counter row. Called once, in the same
// transaction as the lecture insert.
func (r *LectureStudentCountRepository) Create(ctx context.Context, q db.Querier, lectureID int64) error {
	_, err := q.Exec(ctx, `
		INSERT INTO lecture_student_counts (lecture_id, student_count)
		VALUES ($1, 0)`, lectureID)
	if err != nil {
		return fmt.Errorf("error creating student count: %w", err)
	}

	return nil
}

// Increment bumps the counter by one. A missing counter row is a fatal
// inconsistency, not something to ignore.
func (r *LectureStudentCountRepository) Increment(ctx context.Context, q db.Querier, lectureID int64) error {
	cmdTag, err := q.Exec(ctx, incrementCountSQL, lectureID)
	if err != nil {
		return fmt.Errorf("error incrementing student count: %w", err)
	}

	return checkCounterWrite(cmdTag, lectureID)
}

// Decrement lowers the counter by one, never below zero.
func (r *LectureStudentCountRepository) Decrement(ctx context.Context, q db.Querier, lectureID int64) error {
	cmdTag, err := q.Exec(ctx, decrementCountSQL, lectureID)
	if err != nil {
		return fmt.Errorf("error decrementing student count: %w", err)
	}

	return checkCounterWrite(cmdTag, lectureID)
}

// QueueIncrement queues an increment into a batch, with the same
// zero-rows-affected check as Increment.
func (r *LectureStudentCountRepository) QueueIncrement(b *pgx.Batch, lectureID int64) {
	b.Queue(incrementCountSQL, lectureID).Exec(func(cmdTag pgconn.CommandTag) error {
		return checkCounterWrite(cmdTag, lectureID)
	})
}

// QueueDecrement queues a decrement into a batch.
func (r *LectureStudentCountRepository) QueueDecrement(b *pgx.Batch, lectureID int64) {
	b.Queue(decrementCountSQL, lectureID).Exec(func(cmdTag pgconn.CommandTag) error {
		return checkCounterWrite(cmdTag, lectureID)
	})
}

// GetStudentCount reads the counter. Display only, not invariant-bearing.
func (r *LectureStudentCountRepository) GetStudentCount(ctx context.Context, q db.Querier, lectureID int64) (int64, error) {
	var count int64
	err := q.QueryRow(ctx, `
		SELECT student_count FROM lecture_student_counts WHERE lecture_id = $1`, lectureID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrLectureNotFound
		}
		return 0, fmt.Errorf("error reading student count: %w", err)
	}

	return count, nil
}

// QueueGetStudentCount queues the counter read into a batch
func (r *LectureStudentCountRepository) QueueGetStudentCount(b *pgx.Batch, lectureID int64, dst *int64) {
	b.Queue(`
		SELECT student_count FROM lecture_student_counts WHERE lecture_id = $1`, lectureID,
	).QueryRow(func(row pgx.Row) error {
		if err := row.Scan(dst); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrLectureNotFound
			}
			return fmt.Errorf("error reading student count: %w", err)
		}
		return nil
	})
}

// Delete removes the counter row. Only valid once the owning lecture has no
// active enrollments, which the caller enforces.
func (r *LectureStudentCountRepository) Delete(ctx context.Context, q db.Querier, lectureID int64) error {
	cmdTag, err := q.Exec(ctx, `
		DELETE FROM lecture_student_counts WHERE lecture_id = $1`, lectureID)
	if err != nil {
		return fmt.Errorf("error deleting student count: %w", err)
	}

	return checkCounterWrite(cmdTag, lectureID)
}

// checkCounterWrite converts a zero-rows-affected counter write into a
// write-failure error carrying the lecture id.
func checkCounterWrite(cmdTag pgconn.CommandTag, lectureID int64) error {
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: student count for lecture %d", apperrors.ErrWriteFailed, lectureID)
	}
	return nil
}
