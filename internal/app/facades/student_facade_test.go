package facades

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ogulcan/lectica/internal/app/repositories"
	"github.com/ogulcan/lectica/internal/app/services"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/pkg/apperrors"
)

func newStudentFacadeForTest(runner db.Runner) *StudentFacade {
	repos := repositories.NewRepositories()
	studentService := services.NewStudentService(repos.Student)
	enrollmentService := services.NewEnrollmentService(repos.Enrollment, repos.LectureStudentCount)
	return NewStudentFacade(runner, studentService, enrollmentService)
}

func TestDeleteStudent_RejectsNonPositiveID(t *testing.T) {
	runner := &stubRunner{}
	facade := newStudentFacadeForTest(runner)

	err := facade.DeleteStudent(context.Background(), 0)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Zero(t, runner.readWriteCalls)
}

func TestDeleteStudent_PropagatesRollback(t *testing.T) {
	rollback := errors.New("withdrawal failed")
	runner := &stubRunner{err: rollback}
	facade := newStudentFacadeForTest(runner)

	err := facade.DeleteStudent(context.Background(), 5)

	assert.ErrorIs(t, err, rollback)
	assert.Equal(t, 1, runner.readWriteCalls)
}
