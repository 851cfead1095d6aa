package services

import (
	"context"
	"strings"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/validation"
)

// Course defaults applied when the request omits the fields.
const (
	defaultDurationYears  = 4
	defaultTotalSemesters = 8
)

// CourseService handles course-related operations
type CourseService interface {
	Create(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseCreated, error)
	List(ctx context.Context) ([]dto.CourseRow, error)
}

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context) ([]dto.CourseRow, error)
}

type departmentExistence interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type courseService struct {
	courseRepo     courseRepository
	departmentRepo departmentExistence
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseRepository, departmentRepo departmentExistence) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *courseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseCreated, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)

	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if !validation.ValidCode(code) {
		return nil, apperrors.NewValidationError("code must be uppercase alphanumeric")
	}

	exists, err := s.departmentRepo.ExistsByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrDepartmentNotFound
	}

	course := &models.Course{
		Name:           name,
		Code:           code,
		DepartmentID:   req.DepartmentID,
		DurationYears:  req.DurationYears,
		TotalSemesters: req.TotalSemesters,
		Description:    req.Description,
	}
	if course.DurationYears <= 0 {
		course.DurationYears = defaultDurationYears
	}
	if course.TotalSemesters <= 0 {
		course.TotalSemesters = defaultTotalSemesters
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return &dto.CourseCreated{
		ID:   course.ID,
		Name: course.Name,
		Code: course.Code,
	}, nil
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseRow, error) {
	return s.courseRepo.List(ctx)
}
