package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// fakeExecQuerier records Exec calls and answers with a canned command tag.
type fakeExecQuerier struct {
	tag     pgconn.CommandTag
	execErr error
	gotSQL  string
	gotArgs []any
}

func (f *fakeExecQuerier) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.gotSQL = sql
	f.gotArgs = arguments
	return f.tag, f.execErr
}

func (f *fakeExecQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("unexpected Query")
}

func (f *fakeExecQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("unexpected QueryRow")
}

func (f *fakeExecQuerier) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("unexpected SendBatch")
}

func TestIncrement_ZeroRowsAffected(t *testing.T) {
	repo := NewLectureStudentCountRepository()
	q := &fakeExecQuerier{tag: pgconn.NewCommandTag("UPDATE 0")}

	err := repo.Increment(context.Background(), q, 13)
	if !errors.Is(err, apperrors.ErrWriteFailed) {
		t.Fatalf("want ErrWriteFailed, got %v", err)
	}
	if len(q.gotArgs) != 1 || q.gotArgs[0] != int64(13) {
		t.Errorf("unexpected args: %v", q.gotArgs)
	}
}

func TestIncrement_RowUpdated(t *testing.T) {
	repo := NewLectureStudentCountRepository()
	q := &fakeExecQuerier{tag: pgconn.NewCommandTag("UPDATE 1")}

	if err := repo.Increment(context.Background(), q, 13); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecrement_GuardsAgainstNegativeCount(t *testing.T) {
	repo := NewLectureStudentCountRepository()
	q := &fakeExecQuerier{tag: pgconn.NewCommandTag("UPDATE 0")}

	// A zero counter matches no row under the student_count > 0 guard, so the
	// decrement surfaces as a write failure instead of going negative.
	err := repo.Decrement(context.Background(), q, 7)
	if !errors.Is(err, apperrors.ErrWriteFailed) {
		t.Fatalf("want ErrWriteFailed, got %v", err)
	}
}

func TestDelete_MissingCounterRow(t *testing.T) {
	repo := NewLectureStudentCountRepository()
	q := &fakeExecQuerier{tag: pgconn.NewCommandTag("DELETE 0")}

	err := repo.Delete(context.Background(), q, 99)
	if !errors.Is(err, apperrors.ErrWriteFailed) {
		t.Fatalf("want ErrWriteFailed, got %v", err)
	}
}
