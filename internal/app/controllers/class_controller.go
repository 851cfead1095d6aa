package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/app/services"
	"github.com/academiahq/academia/internal/middleware"
)

// ClassController handles class session endpoints
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// Create handles POST /api/classes
func (c *ClassController) Create(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	created, err := c.classService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// List handles GET /api/classes. staff_id takes precedence over student_id;
// date narrows either scope.
func (c *ClassController) List(ctx *gin.Context) {
	var filter repositories.ClassFilter
	var ok bool

	if filter.StaffID, ok = parseOptionalID(ctx, "staff_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("staff_id must be numeric"))
		return
	}
	if filter.StudentID, ok = parseOptionalID(ctx, "student_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("student_id must be numeric"))
		return
	}
	if raw := ctx.Query("date"); raw != "" {
		filter.Date = &raw
	}

	classes, err := c.classService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, classes)
}
