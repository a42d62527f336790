package dto

import (
	"time"

	"github.com/ogulcan/lectica/internal/app/models"
)

// CreateStudentRequest is the signup payload
type CreateStudentRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// StudentResponse is the standard student representation
type StudentResponse struct {
	ID        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewStudentResponse maps a student model into its response shape
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		ID:        student.ID,
		Nickname:  student.Nickname,
		Email:     student.Email,
		CreatedAt: student.CreatedAt,
	}
}
