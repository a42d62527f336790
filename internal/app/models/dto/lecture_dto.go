package dto

import (
	"time"

	"github.com/ogulcan/lectica/internal/app/models"
)

// CreateLectureRequest is the payload for creating a single lecture
type CreateLectureRequest struct {
	Title        string          `json:"title" binding:"required"`
	Introduction string          `json:"introduction"`
	InstructorID int64           `json:"instructorId" binding:"required"`
	Category     models.Category `json:"category" binding:"required"`
	Price        int64           `json:"price"`
}

// CreateMultipleLecturesRequest is the payload for the bulk create endpoint
type CreateMultipleLecturesRequest struct {
	Lectures []CreateLectureRequest `json:"lectures" binding:"required"`
}

// LectureCreateReportItem is one entry of the bulk create report. Items are
// independent: a failed item never affects its siblings.
type LectureCreateReportItem struct {
	Success   bool         `json:"success"`
	LectureID int64        `json:"lectureId,omitempty"`
	Title     string       `json:"title"`
	Error     *ErrorDetail `json:"error,omitempty"`
}

// LectureCreateReport aggregates per-item outcomes of a bulk create
type LectureCreateReport struct {
	Items []LectureCreateReportItem `json:"items"`
}

// LectureResponse is the standard lecture representation
type LectureResponse struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Introduction string          `json:"introduction"`
	InstructorID int64           `json:"instructorId"`
	Category     models.Category `json:"category"`
	Price        int64           `json:"price"`
	Published    bool            `json:"published"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// LectureListItem is one row of the lecture listing
type LectureListItem struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Category       models.Category `json:"category"`
	Price          int64           `json:"price"`
	InstructorName string          `json:"instructorName"`
	StudentCount   int64           `json:"studentCount"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// NewLectureListItem maps a listing row into its response shape
func NewLectureListItem(summary models.LectureSummary) LectureListItem {
	return LectureListItem{
		ID:             summary.ID,
		Title:          summary.Title,
		Category:       summary.Category,
		Price:          summary.Price,
		InstructorName: summary.InstructorName,
		StudentCount:   summary.StudentCount,
		CreatedAt:      summary.CreatedAt,
	}
}

// Lecture list ordering options
const (
	LectureOrderRecent  = "recent"
	LectureOrderPopular = "popular"
)

// ListLecturesFilter carries the parsed listing filters
type ListLecturesFilter struct {
	Category     models.Category
	Search       string
	InstructorID int64
	StudentID    int64
	Order        string
	Page         int
	Size         int
}

// EnrolledStudentItem is one enrollment entry of the lecture detail view.
// Soft-deleted students appear under the withdrawn-member placeholder.
type EnrolledStudentItem struct {
	EnrollmentID int64     `json:"enrollmentId"`
	StudentID    int64     `json:"studentId"`
	Nickname     string    `json:"nickname"`
	EnrolledAt   time.Time `json:"enrolledAt"`
}

// LectureDetailResponse is the full detail view of a lecture
type LectureDetailResponse struct {
	Lecture      LectureResponse       `json:"lecture"`
	StudentCount int64                 `json:"studentCount"`
	Students     []EnrolledStudentItem `json:"students"`
}

// NewLectureResponse maps a lecture model into its response shape
func NewLectureResponse(lecture *models.Lecture) LectureResponse {
	return LectureResponse{
		ID:           lecture.ID,
		Title:        lecture.Title,
		Introduction: lecture.Introduction,
		InstructorID: lecture.InstructorID,
		Category:     lecture.Category,
		Price:        lecture.Price,
		Published:    lecture.Published,
		CreatedAt:    lecture.CreatedAt,
	}
}
