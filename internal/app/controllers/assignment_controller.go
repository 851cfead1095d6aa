package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/app/services"
	"github.com/academiahq/academia/internal/middleware"
)

// AssignmentController handles assignment endpoints
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// Create handles POST /api/assignments
func (c *AssignmentController) Create(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	created, err := c.assignmentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// List handles GET /api/assignments. staff_id takes precedence over
// student_id.
func (c *AssignmentController) List(ctx *gin.Context) {
	var filter repositories.AssignmentFilter
	var ok bool

	if filter.StaffID, ok = parseOptionalID(ctx, "staff_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("staff_id must be numeric"))
		return
	}
	if filter.StudentID, ok = parseOptionalID(ctx, "student_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("student_id must be numeric"))
		return
	}

	assignments, err := c.assignmentService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assignments)
}
