package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql is the shared statement builder for PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	UserRepository       *UserRepository
	SubjectRepository    *SubjectRepository
	ClassRepository      *ClassRepository
	AttendanceRepository *AttendanceRepository
	AssignmentRepository *AssignmentRepository
	SubmissionRepository *SubmissionRepository
	TokenRepository      *TokenRepository
	StatsRepository      *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		UserRepository:       NewUserRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		ClassRepository:      NewClassRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		SubmissionRepository: NewSubmissionRepository(db),
		TokenRepository:      NewTokenRepository(db),
		StatsRepository:      NewStatsRepository(db),
	}
}
