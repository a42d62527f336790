package models

import "time"

// Instructor defines the instructor model based on the 'instructors' table.
// Lectures reference an instructor, which must exist before the lecture does.
type Instructor struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
