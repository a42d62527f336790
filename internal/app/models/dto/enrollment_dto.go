package dto

// CreateEnrollmentsRequest enrolls one student into a set of lectures.
// The lecture id list must be non-empty and duplicate-free; duplicates are a
// caller error, not something this backend silently dedupes.
type CreateEnrollmentsRequest struct {
	StudentID  int64   `json:"studentId" binding:"required"`
	LectureIDs []int64 `json:"lectureIds" binding:"required"`
}

// EnrollmentItem is one created enrollment in the response
type EnrollmentItem struct {
	ID        int64 `json:"id"`
	LectureID int64 `json:"lectureId"`
	StudentID int64 `json:"studentId"`
}

// CreateEnrollmentsResponse lists every enrollment created by the call
type CreateEnrollmentsResponse struct {
	Enrollments []EnrollmentItem `json:"enrollments"`
}
