package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/app/services"
	"github.com/academiahq/academia/internal/middleware"
)

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Record handles POST /api/attendance. Posting again for the same class and
// student updates the stored status.
func (c *AttendanceController) Record(ctx *gin.Context) {
	var req dto.RecordAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.attendanceService.Record(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// List handles GET /api/attendance. class_id takes precedence over student_id.
func (c *AttendanceController) List(ctx *gin.Context) {
	var filter repositories.AttendanceFilter
	var ok bool

	if filter.ClassID, ok = parseOptionalID(ctx, "class_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("class_id must be numeric"))
		return
	}
	if filter.StudentID, ok = parseOptionalID(ctx, "student_id"); !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("student_id must be numeric"))
		return
	}

	records, err := c.attendanceService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}
