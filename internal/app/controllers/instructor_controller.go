package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ogulcan/lectica/internal/app/models"
	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/app/services"
	"github.com/ogulcan/lectica/internal/db"
	"github.com/ogulcan/lectica/internal/middleware"
)

// InstructorController handles instructor-related operations
type InstructorController struct {
	runner            db.Runner
	instructorService *services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(runner db.Runner, instructorService *services.InstructorService) *InstructorController {
	return &InstructorController{
		runner:            runner,
		instructorService: instructorService,
	}
}

// CreateInstructor registers a new instructor
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var instructor *models.Instructor
	err := c.runner.ReadWrite(ctx, func(ctx2 context.Context, q db.Querier) error {
		var err error
		instructor, err = c.instructorService.CreateInstructor(ctx2, q, req.Name)
		return err
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewInstructorResponse(instructor),
		Timestamp: time.Now(),
	})
}

// GetInstructor retrieves an instructor by ID
func (c *InstructorController) GetInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "instructor ID")
	if !ok {
		return
	}

	var instructor *models.Instructor
	err := c.runner.ReadOnly(ctx, func(ctx2 context.Context, q db.Querier) error {
		var err error
		instructor, err = c.instructorService.GetInstructor(ctx2, q, id)
		return err
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewInstructorResponse(instructor),
		Timestamp: time.Now(),
	})
}

// ListInstructors retrieves all instructors
func (c *InstructorController) ListInstructors(ctx *gin.Context) {
	var instructors []models.Instructor
	err := c.runner.ReadOnly(ctx, func(ctx2 context.Context, q db.Querier) error {
		var err error
		instructors, err = c.instructorService.ListInstructors(ctx2, q)
		return err
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.InstructorResponse, 0, len(instructors))
	for i := range instructors {
		responses = append(responses, dto.NewInstructorResponse(&instructors[i]))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}
