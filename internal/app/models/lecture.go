package models

import (
	"time"

	"github.com/ogulcan/lectica/internal/pkg/apperrors"
	"github.com/ogulcan/lectica/internal/pkg/validation"
)

// Lecture defines the lecture model based on the 'lectures' table
type Lecture struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Introduction string    `json:"introduction" db:"introduction"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	Category     Category  `json:"category" db:"category"`
	Price        int64     `json:"price" db:"price"`
	Published    bool      `json:"published" db:"published"`
	Deleted      bool      `json:"-" db:"deleted"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// NewLecture validates the given fields and returns an unpublished lecture.
func NewLecture(title, introduction string, instructorID int64, category Category, price int64) (*Lecture, error) {
	rules := []validation.Rule{
		validation.LengthBetween("title", title, validation.TitleMinLength, validation.TitleMaxLength),
		validation.PositiveID("instructorId", instructorID),
		validation.NonNegative("price", price),
		{
			Field:     "category",
			Predicate: category.IsValid,
			Message:   "is not a known category",
		},
	}
	if err := validation.Evaluate(rules); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Lecture{
		Title:        title,
		Introduction: introduction,
		InstructorID: instructorID,
		Category:     category,
		Price:        price,
		Published:    false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Publish transitions the lecture from unpublished to published. Publishing
// an already-published lecture fails and leaves the flag untouched.
func (l *Lecture) Publish() error {
	if l.Published {
		return apperrors.ErrLectureAlreadyPublished
	}
	l.Published = true
	l.UpdatedAt = time.Now()
	return nil
}

// LectureSummary is one row of the filtered lecture listing, joined with the
// instructor name and the denormalized student count.
type LectureSummary struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Category       Category  `json:"category" db:"category"`
	Price          int64     `json:"price" db:"price"`
	InstructorName string    `json:"instructorName" db:"instructor_name"`
	StudentCount   int64     `json:"studentCount" db:"student_count"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
