package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/academiahq/academia/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController       *AuthController
	DepartmentController *DepartmentController
	CourseController     *CourseController
	UserController       *UserController
	SubjectController    *SubjectController
	ClassController      *ClassController
	AttendanceController *AttendanceController
	AssignmentController *AssignmentController
	SubmissionController *SubmissionController
	StatsController      *StatsController
}

// NewControllers wires every controller over the shared services.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svcs.AuthService),
		DepartmentController: NewDepartmentController(svcs.DepartmentService),
		CourseController:     NewCourseController(svcs.CourseService),
		UserController:       NewUserController(svcs.UserService),
		SubjectController:    NewSubjectController(svcs.SubjectService),
		ClassController:      NewClassController(svcs.ClassService),
		AttendanceController: NewAttendanceController(svcs.AttendanceService),
		AssignmentController: NewAssignmentController(svcs.AssignmentService),
		SubmissionController: NewSubmissionController(svcs.SubmissionService),
		StatsController:      NewStatsController(svcs.StatsService),
	}
}

// parseOptionalID reads an optional numeric query parameter. An absent
// parameter yields (nil, true); a malformed one yields (nil, false).
func parseOptionalID(ctx *gin.Context, name string) (*int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}
