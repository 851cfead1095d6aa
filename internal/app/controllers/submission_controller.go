package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/app/services"
	"github.com/academiahq/academia/internal/middleware"
)

// SubmissionController handles submission endpoints
type SubmissionController struct {
	submissionService services.SubmissionService
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// Create handles POST /api/submissions
func (c *SubmissionController) Create(ctx *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	created, err := c.submissionService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// List handles GET /api/submissions. assignment_id takes precedence over
// student_id.
func (c *SubmissionController) List(ctx *gin.Context) {
	var filter repositories.SubmissionFilter
	var ok bool

	if filter.AssignmentID, ok = parseOptionalID(ctx, "assignment_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("assignment_id must be numeric"))
		return
	}
	if filter.StudentID, ok = parseOptionalID(ctx, "student_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("student_id must be numeric"))
		return
	}

	submissions, err := c.submissionService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, submissions)
}

// Grade handles PATCH /api/submissions/:id. Grading always leaves the
// submission in the "graded" status.
func (c *SubmissionController) Grade(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("id must be numeric"))
		return
	}

	var req dto.GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.submissionService.Grade(ctx, id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
