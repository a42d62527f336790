package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ogulcan/lectica/internal/app/facades"
	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentFacade *facades.StudentFacade
}

// NewStudentController creates a new StudentController
func NewStudentController(studentFacade *facades.StudentFacade) *StudentController {
	return &StudentController{
		studentFacade: studentFacade,
	}
}

// CreateStudent handles student registration
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentFacade.CreateStudent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetStudent retrieves a student by ID
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student ID")
	if !ok {
		return
	}

	student, err := c.studentFacade.GetStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent withdraws a student, cancelling all active enrollments
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student ID")
	if !ok {
		return
	}

	if err := c.studentFacade.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}
