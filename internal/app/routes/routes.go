package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/academiahq/academia/internal/app/controllers"
	"github.com/academiahq/academia/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrls.AuthController.Login)
		auth.POST("/refresh", ctrls.AuthController.Refresh)
		auth.GET("/me", authMiddleware.JWTAuth(), ctrls.AuthController.Me)
	}

	// --- Resource routes ---
	departments := api.Group("/departments")
	{
		departments.GET("", ctrls.DepartmentController.List)
		departments.POST("", ctrls.DepartmentController.Create)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", ctrls.CourseController.List)
		courses.POST("", ctrls.CourseController.Create)
	}

	users := api.Group("/users")
	{
		users.GET("", ctrls.UserController.List)
		users.POST("", ctrls.UserController.Create)
	}

	subjects := api.Group("/subjects")
	{
		subjects.GET("", ctrls.SubjectController.List)
		subjects.POST("", ctrls.SubjectController.Create)
	}

	classes := api.Group("/classes")
	{
		classes.GET("", ctrls.ClassController.List)
		classes.POST("", ctrls.ClassController.Create)
	}

	attendance := api.Group("/attendance")
	{
		attendance.GET("", ctrls.AttendanceController.List)
		attendance.POST("", ctrls.AttendanceController.Record)
	}

	assignments := api.Group("/assignments")
	{
		assignments.GET("", ctrls.AssignmentController.List)
		assignments.POST("", ctrls.AssignmentController.Create)
	}

	submissions := api.Group("/submissions")
	{
		submissions.GET("", ctrls.SubmissionController.List)
		submissions.POST("", ctrls.SubmissionController.Create)
		submissions.PATCH("/:id", ctrls.SubmissionController.Grade)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/stats", ctrls.StatsController.AdminStats)
	}
}
