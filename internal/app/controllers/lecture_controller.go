package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ogulcan/lectica/internal/app/facades"
	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/middleware"
	"github.com/ogulcan/lectica/internal/pkg/helpers"
)

// LectureController handles lecture-related operations
type LectureController struct {
	lectureFacade *facades.LectureFacade
}

// NewLectureController creates a new LectureController
func NewLectureController(lectureFacade *facades.LectureFacade) *LectureController {
	return &LectureController{
		lectureFacade: lectureFacade,
	}
}

// ListLectures returns a paginated listing of published lectures
func (c *LectureController) ListLectures(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := dto.ListLecturesFilter{
		Category: models.Category(ctx.Query("category")),
		Search:   ctx.Query("search"),
		Order:    ctx.DefaultQuery("order", dto.LectureOrderRecent),
		Page:     page,
		Size:     size,
	}
	if filter.Category != "" && !filter.Category.IsValid() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid category")
		errorDetail = errorDetail.WithDetails("Category must be one of " + models.CategoryNames())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if idStr := ctx.Query("instructorId"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor ID")
			errorDetail = errorDetail.WithDetails("Instructor ID must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.InstructorID = id
	}
	if idStr := ctx.Query("studentId"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
			errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.StudentID = id
	}

	result, err := c.lectureFacade.ListLectures(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetLecture returns the full detail view of one lecture
func (c *LectureController) GetLecture(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "lecture ID")
	if !ok {
		return
	}

	detail, err := c.lectureFacade.DetailLecture(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}

// CreateLecture handles single lecture creation
func (c *LectureController) CreateLecture(ctx *gin.Context) {
	var req dto.CreateLectureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid lecture data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	lecture, err := c.lectureFacade.CreateLecture(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      lecture,
		Timestamp: time.Now(),
	})
}

// CreateMultipleLectures handles bulk lecture creation. Items succeed or fail
// independently, so the endpoint always answers 200 with a per-item report.
func (c *LectureController) CreateMultipleLectures(ctx *gin.Context) {
	var req dto.CreateMultipleLecturesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid lecture list")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The facade fans the items out to goroutines, so it gets a copy of the
	// request context rather than the live one.
	report, err := c.lectureFacade.CreateMultipleLectures(ctx.Copy(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// PublishLecture publishes a draft lecture
func (c *LectureController) PublishLecture(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "lecture ID")
	if !ok {
		return
	}

	lecture, err := c.lectureFacade.PublishLecture(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      lecture,
		Timestamp: time.Now(),
	})
}

// DeleteLecture removes a lecture without active enrollments
func (c *LectureController) DeleteLecture(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "lecture ID")
	if !ok {
		return
	}

	if err := c.lectureFacade.DeleteLecture(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
