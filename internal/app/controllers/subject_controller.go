package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/app/services"
	"github.com/academiahq/academia/internal/middleware"
)

// SubjectController handles subject endpoints
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// Create handles POST /api/subjects
func (c *SubjectController) Create(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	created, err := c.subjectService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// List handles GET /api/subjects. The staff_id, course_id and department_id
// filters combine with AND.
func (c *SubjectController) List(ctx *gin.Context) {
	var filter repositories.SubjectFilter
	var ok bool

	if filter.StaffID, ok = parseOptionalID(ctx, "staff_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("staff_id must be numeric"))
		return
	}
	if filter.CourseID, ok = parseOptionalID(ctx, "course_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("course_id must be numeric"))
		return
	}
	if filter.DepartmentID, ok = parseOptionalID(ctx, "department_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("department_id must be numeric"))
		return
	}

	subjects, err := c.subjectService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}
