package dto

import (
	"time"

	"github.com/ogulcan/lectica/internal/app/models"
)

// CreateInstructorRequest is the payload for registering an instructor
type CreateInstructorRequest struct {
	Name string `json:"name" binding:"required"`
}

// InstructorResponse is the standard instructor representation
type InstructorResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewInstructorResponse maps an instructor model into its response shape
func NewInstructorResponse(instructor *models.Instructor) InstructorResponse {
	return InstructorResponse{
		ID:        instructor.ID,
		Name:      instructor.Name,
		CreatedAt: instructor.CreatedAt,
	}
}
