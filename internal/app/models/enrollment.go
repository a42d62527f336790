package models

import "time"

// Enrollment is the many-to-many join between lectures and students. At most
// one active (non-deleted) enrollment may exist per (lecture, student) pair.
type Enrollment struct {
	ID        int64     `json:"id" db:"id"`
	LectureID int64     `json:"lectureId" db:"lecture_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Deleted   bool      `json:"-" db:"deleted"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// LectureStudentCount is the denormalized per-lecture counter row, created
// alongside the lecture and kept in step with the active enrollment rows. It
// is only ever mutated inside the transaction that mutates the corresponding
// enrollment row.
type LectureStudentCount struct {
	LectureID    int64     `json:"lectureId" db:"lecture_id"`
	StudentCount int64     `json:"studentCount" db:"student_count"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
