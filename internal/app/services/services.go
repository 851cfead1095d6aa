// Package services holds the business logic layer.
//
// Services defined in this package:
// - AuthService: login, token refresh and profile lookup
// - DepartmentService, CourseService, UserService, SubjectService: catalog resources
// - ClassService, AttendanceService: scheduling and attendance
// - AssignmentService, SubmissionService: coursework and grading
// - StatsService: admin dashboard counts
package services

import (
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService       AuthService
	DepartmentService DepartmentService
	CourseService     CourseService
	UserService       UserService
	SubjectService    SubjectService
	ClassService      ClassService
	AttendanceService AttendanceService
	AssignmentService AssignmentService
	SubmissionService SubmissionService
	StatsService      StatsService
}

// NewServices wires every service over the shared repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository, repos.UserRepository),
		CourseService:     NewCourseService(repos.CourseRepository, repos.DepartmentRepository),
		UserService:       NewUserService(repos.UserRepository, repos.DepartmentRepository, repos.CourseRepository),
		SubjectService:    NewSubjectService(repos.SubjectRepository, repos.CourseRepository, repos.UserRepository),
		ClassService:      NewClassService(repos.ClassRepository, repos.SubjectRepository),
		AttendanceService: NewAttendanceService(repos.AttendanceRepository, repos.ClassRepository, repos.UserRepository),
		AssignmentService: NewAssignmentService(repos.AssignmentRepository, repos.SubjectRepository),
		SubmissionService: NewSubmissionService(repos.SubmissionRepository, repos.AssignmentRepository, repos.UserRepository),
		StatsService:      NewStatsService(repos.StatsRepository),
	}
}
