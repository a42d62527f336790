package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ogulcan/lectica/internal/app/facades"
	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/middleware"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentFacade *facades.EnrollmentFacade
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentFacade *facades.EnrollmentFacade) *EnrollmentController {
	return &EnrollmentController{
		enrollmentFacade: enrollmentFacade,
	}
}

// CreateEnrollments enrolls a student into one or more lectures atomically
func (c *EnrollmentController) CreateEnrollments(ctx *gin.Context) {
	var req dto.CreateEnrollmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.enrollmentFacade.CreateEnrollments(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// CancelEnrollment cancels one active enrollment
func (c *EnrollmentController) CancelEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "enrollment ID")
	if !ok {
		return
	}

	if err := c.enrollmentFacade.CancelEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
