package facades

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/app/repositories"
	"github.com/ogulcan/lectica/internal/app/services"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

// stubRunner hands the unit of work straight to the configured querier, no
// transaction underneath. err short-circuits the unit of work the way a
// failed acquire would. Bulk create invokes it from multiple goroutines.
type stubRunner struct {
	mu             sync.Mutex
	readWriteCalls int
	readOnlyCalls  int
	q              db.Querier
	err            error
}

func (s *stubRunner) ReadWrite(ctx context.Context, fn db.UnitOfWorkFn) error {
	s.mu.Lock()
	s.readWriteCalls++
	s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	return fn(ctx, s.q)
}

func (s *stubRunner) ReadOnly(ctx context.Context, fn db.UnitOfWorkFn) error {
	s.mu.Lock()
	s.readOnlyCalls++
	s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	return fn(ctx, s.q)
}

// fakeRow feeds scripted column values into a row callback's Scan.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scripted row has %d values, scan wants %d", len(r.values), len(dest))
	}
	for i, d := range dest {
		switch d := d.(type) {
		case *bool:
			*d = r.values[i].(bool)
		case *int64:
			*d = r.values[i].(int64)
		case *time.Time:
			*d = r.values[i].(time.Time)
		default:
			return fmt.Errorf("unsupported scan target %T", d)
		}
	}
	return nil
}

// batchQuerier replays scripted results against the real queued-query
// callbacks. Close walks the batch in queue order, records each statement
// and stops at the first callback error, the way a pgx batch does.
type batchQuerier struct {
	results []any // fakeRow per QueryRow step, pgconn.CommandTag per Exec step
	sent    []string
	batches int
}

func (q *batchQuerier) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	q.batches++
	return &scriptedBatch{q: q, queued: b.QueuedQueries}
}

func (q *batchQuerier) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected Exec outside a batch")
}

func (q *batchQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query outside a batch")
}

func (q *batchQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return fakeRow{err: errors.New("unexpected QueryRow outside a batch")}
}

type scriptedBatch struct {
	q       *batchQuerier
	queued  []*pgx.QueuedQuery
	current any
}

func (b *scriptedBatch) Close() error {
	for _, qq := range b.queued {
		b.q.sent = append(b.q.sent, strings.Join(strings.Fields(qq.SQL), " "))
		if len(b.q.results) == 0 {
			return errors.New("batch script exhausted")
		}
		b.current = b.q.results[0]
		b.q.results = b.q.results[1:]
		if err := qq.Fn(b); err != nil {
			return err
		}
	}
	return nil
}

func (b *scriptedBatch) QueryRow() pgx.Row {
	row, ok := b.current.(fakeRow)
	if !ok {
		return fakeRow{err: fmt.Errorf("scripted %T where a row was expected", b.current)}
	}
	return row
}

func (b *scriptedBatch) Exec() (pgconn.CommandTag, error) {
	tag, ok := b.current.(pgconn.CommandTag)
	if !ok {
		return pgconn.CommandTag{}, fmt.Errorf("scripted %T where a command tag was expected", b.current)
	}
	return tag, nil
}

func (b *scriptedBatch) Query() (pgx.Rows, error) {
	return nil, errors.New("unexpected Query in batch")
}

func newEnrollmentFacadeForTest(runner db.Runner) *EnrollmentFacade {
	repos := repositories.NewRepositories()
	service := services.NewEnrollmentService(repos.Enrollment, repos.LectureStudentCount)
	return NewEnrollmentFacade(runner, repos, service)
}

func TestCreateEnrollments_RejectsBeforeTransaction(t *testing.T) {
	tests := []struct {
		name    string
		request dto.CreateEnrollmentsRequest
		wantErr error
	}{
		{
			name:    "empty lecture list",
			request: dto.CreateEnrollmentsRequest{StudentID: 1, LectureIDs: []int64{}},
			wantErr: apperrors.ErrEmptyLectureIDs,
		},
		{
			name:    "nil lecture list",
			request: dto.CreateEnrollmentsRequest{StudentID: 1},
			wantErr: apperrors.ErrEmptyLectureIDs,
		},
		{
			name:    "duplicated lecture ids",
			request: dto.CreateEnrollmentsRequest{StudentID: 1, LectureIDs: []int64{5, 3, 5}},
			wantErr: apperrors.ErrDuplicateLectureIDs,
		},
		{
			name:    "non-positive lecture id",
			request: dto.CreateEnrollmentsRequest{StudentID: 1, LectureIDs: []int64{1, 0}},
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name:    "non-positive student id",
			request: dto.CreateEnrollmentsRequest{StudentID: 0, LectureIDs: []int64{1}},
			wantErr: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{}
			facade := newEnrollmentFacadeForTest(runner)

			_, err := facade.CreateEnrollments(context.Background(), tt.request)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, runner.readWriteCalls, "rejection must happen before any unit of work")
		})
	}
}

func TestCreateEnrollments_ValidatesThenWrites(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	querier := &batchQuerier{results: []any{
		fakeRow{values: []any{true}},                   // student exists
		fakeRow{values: []any{int64(2), int64(2)}},     // both lectures present, both published
		fakeRow{values: []any{int64(0)}},               // no conflicting enrollment
		fakeRow{values: []any{int64(101), created, created}},
		pgconn.NewCommandTag("UPDATE 1"),
		fakeRow{values: []any{int64(102), created, created}},
		pgconn.NewCommandTag("UPDATE 1"),
	}}
	runner := &stubRunner{q: querier}
	facade := newEnrollmentFacadeForTest(runner)

	resp, err := facade.CreateEnrollments(context.Background(), dto.CreateEnrollmentsRequest{
		StudentID:  7,
		LectureIDs: []int64{2, 3},
	})

	require.NoError(t, err)
	require.Len(t, resp.Enrollments, 2)
	assert.Equal(t, dto.EnrollmentItem{ID: 101, LectureID: 2, StudentID: 7}, resp.Enrollments[0])
	assert.Equal(t, dto.EnrollmentItem{ID: 102, LectureID: 3, StudentID: 7}, resp.Enrollments[1])

	assert.Equal(t, 1, runner.readWriteCalls, "everything happens in one unit of work")
	assert.Equal(t, 2, querier.batches, "validations and writes travel as separate batches")

	require.Len(t, querier.sent, 7)
	assert.Contains(t, querier.sent[0], "SELECT EXISTS(SELECT 1 FROM students")
	assert.Contains(t, querier.sent[1], "count(*) FILTER (WHERE published)")
	assert.Contains(t, querier.sent[2], "FROM enrollments")
	for _, sql := range querier.sent[:3] {
		assert.NotContains(t, sql, "INSERT", "validations must precede writes")
	}
	assert.Contains(t, querier.sent[3], "INSERT INTO enrollments")
	assert.Contains(t, querier.sent[4], "UPDATE lecture_student_counts")
	assert.Contains(t, querier.sent[5], "INSERT INTO enrollments")
	assert.Contains(t, querier.sent[6], "UPDATE lecture_student_counts")
}

func TestCreateEnrollments_FirstRejectionWins(t *testing.T) {
	tests := []struct {
		name    string
		results []any
		wantErr error
	}{
		{
			name: "missing student beats missing lecture",
			results: []any{
				fakeRow{values: []any{false}},
				fakeRow{values: []any{int64(1), int64(1)}},
				fakeRow{values: []any{int64(0)}},
			},
			wantErr: apperrors.ErrStudentNotFound,
		},
		{
			name: "missing lecture",
			results: []any{
				fakeRow{values: []any{true}},
				fakeRow{values: []any{int64(1), int64(1)}},
				fakeRow{values: []any{int64(0)}},
			},
			wantErr: apperrors.ErrLectureNotFound,
		},
		{
			name: "present but unpublished lecture",
			results: []any{
				fakeRow{values: []any{true}},
				fakeRow{values: []any{int64(2), int64(1)}},
				fakeRow{values: []any{int64(0)}},
			},
			wantErr: apperrors.ErrLectureNotPublished,
		},
		{
			name: "already enrolled",
			results: []any{
				fakeRow{values: []any{true}},
				fakeRow{values: []any{int64(2), int64(2)}},
				fakeRow{values: []any{int64(1)}},
			},
			wantErr: apperrors.ErrAlreadyEnrolled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			querier := &batchQuerier{results: tt.results}
			runner := &stubRunner{q: querier}
			facade := newEnrollmentFacadeForTest(runner)

			_, err := facade.CreateEnrollments(context.Background(), dto.CreateEnrollmentsRequest{
				StudentID:  7,
				LectureIDs: []int64{2, 3},
			})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, querier.batches, "a failed validation batch must stop the writes")
			for _, sql := range querier.sent {
				assert.NotContains(t, sql, "INSERT", "no write may be queued after a rejection")
			}
		})
	}
}

func TestCreateEnrollments_CounterWriteFailureRollsBack(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	querier := &batchQuerier{results: []any{
		fakeRow{values: []any{true}},
		fakeRow{values: []any{int64(1), int64(1)}},
		fakeRow{values: []any{int64(0)}},
		fakeRow{values: []any{int64(101), created, created}},
		pgconn.NewCommandTag("UPDATE 0"), // counter row missing
	}}
	runner := &stubRunner{q: querier}
	facade := newEnrollmentFacadeForTest(runner)

	_, err := facade.CreateEnrollments(context.Background(), dto.CreateEnrollmentsRequest{
		StudentID:  7,
		LectureIDs: []int64{2},
	})

	assert.ErrorIs(t, err, apperrors.ErrWriteFailed)
	assert.Equal(t, 2, querier.batches)
}

func TestCreateEnrollments_TransactionErrorPropagates(t *testing.T) {
	rollback := errors.New("acquire failed")
	runner := &stubRunner{err: rollback}
	facade := newEnrollmentFacadeForTest(runner)

	_, err := facade.CreateEnrollments(context.Background(), dto.CreateEnrollmentsRequest{
		StudentID:  1,
		LectureIDs: []int64{2, 3},
	})

	assert.ErrorIs(t, err, rollback)
	assert.Equal(t, 1, runner.readWriteCalls)
}

func TestCancelEnrollment_RejectsNonPositiveID(t *testing.T) {
	runner := &stubRunner{}
	facade := newEnrollmentFacadeForTest(runner)

	err := facade.CancelEnrollment(context.Background(), 0)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Zero(t, runner.readWriteCalls)
}
