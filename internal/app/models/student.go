package models

import (
	"time"

	"github.com/ogulcan/lectica/internal/pkg/validation"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id"`
	Nickname  string    `json:"nickname" db:"nickname"`
	Email     string    `json:"email" db:"email"`
	Deleted   bool      `json:"-" db:"deleted"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// NewStudent validates the given fields and returns an active student.
func NewStudent(nickname, email string) (*Student, error) {
	rules := []validation.Rule{
		validation.LengthBetween("nickname", nickname, validation.NicknameMinLength, validation.NicknameMaxLength),
		validation.Matches("email", email, validation.CompiledPatterns.Email, "must be a valid email address"),
	}
	if err := validation.Evaluate(rules); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Student{
		Nickname:  nickname,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// DeletedStudent is the tombstone row written when a student withdraws, so
// historical enrollment views keep working after the canonical row is
// soft-deleted.
type DeletedStudent struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Nickname  string    `json:"nickname" db:"nickname"`
	Email     string    `json:"email" db:"email"`
	DeletedAt time.Time `json:"deletedAt" db:"deleted_at"`
}
