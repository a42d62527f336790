package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ogulcan/lectica/internal/app/controllers"
	"github.com/ogulcan/lectica/internal/app/models/dto"
	"github.com/ogulcan/lectica/internal/middleware"
	"github.com/ogulcan/lectica/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	lectureController *controllers.LectureController,
	studentController *controllers.StudentController,
	enrollmentController *controllers.EnrollmentController,
	instructorController *controllers.InstructorController,
	jwtService *auth.JWTService,
) {
	router.Use(middleware.RequestID(), middleware.RequestLogger())

	// API version group
	v1 := router.Group("/api/v1")

	authRequired := middleware.AuthMiddleware(jwtService)

	// Lecture routes; the catalog is public, mutations are operator-only
	lectures := v1.Group("/lectures")
	{
		lectures.GET("", lectureController.ListLectures)
		lectures.GET("/:id", lectureController.GetLecture)

		lecturesProtected := lectures.Group("")
		lecturesProtected.Use(authRequired)
		{
			lecturesProtected.POST("", lectureController.CreateLecture)
			lecturesProtected.POST("/bulk", lectureController.CreateMultipleLectures)
			lecturesProtected.POST("/:id/publish", lectureController.PublishLecture)
			lecturesProtected.DELETE("/:id", lectureController.DeleteLecture)
		}
	}

	// Student routes (public self-service)
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("/:id", studentController.GetStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Enrollment routes
	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", enrollmentController.CreateEnrollments)
		enrollments.DELETE("/:id", enrollmentController.CancelEnrollment)
	}

	// Instructor routes; reads are public, registration is operator-only
	instructors := v1.Group("/instructors")
	{
		instructors.GET("", instructorController.ListInstructors)
		instructors.GET("/:id", instructorController.GetInstructor)

		instructorsProtected := instructors.Group("")
		instructorsProtected.Use(authRequired)
		{
			instructorsProtected.POST("", instructorController.CreateInstructor)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
