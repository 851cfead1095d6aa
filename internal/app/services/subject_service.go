package services

import (
	"context"
	"strings"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/validation"
)

// defaultCredits is applied when the request omits credits.
const defaultCredits = 3

// SubjectService handles subject-related operations
type SubjectService interface {
	Create(ctx context.Context, req dto.CreateSubjectRequest) (*dto.SubjectCreated, error)
	List(ctx context.Context, filter repositories.SubjectFilter) ([]dto.SubjectRow, error)
}

type subjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	List(ctx context.Context, filter repositories.SubjectFilter) ([]dto.SubjectRow, error)
}

type subjectService struct {
	subjectRepo subjectRepository
	courseRepo  courseExistence
	userRepo    userExistence
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo subjectRepository, courseRepo courseExistence, userRepo userExistence) SubjectService {
	return &subjectService{
		subjectRepo: subjectRepo,
		courseRepo:  courseRepo,
		userRepo:    userRepo,
	}
}

func (s *subjectService) Create(ctx context.Context, req dto.CreateSubjectRequest) (*dto.SubjectCreated, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)

	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if !validation.ValidCode(code) {
		return nil, apperrors.NewValidationError("code must be uppercase alphanumeric")
	}
	if req.Semester <= 0 {
		return nil, apperrors.NewValidationError("semester must be positive")
	}

	subjectType := models.SubjectCore
	if req.Type != "" {
		if !models.ValidSubjectType(req.Type) {
			return nil, apperrors.NewValidationError("type must be core, elective or lab")
		}
		subjectType = models.SubjectType(req.Type)
	}

	exists, err := s.courseRepo.ExistsByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	if req.StaffID != nil {
		exists, err := s.userRepo.ExistsByID(ctx, *req.StaffID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFoundError("staff user not found")
		}
	}

	subject := &models.Subject{
		Name:        name,
		Code:        code,
		CourseID:    req.CourseID,
		StaffID:     req.StaffID,
		Semester:    req.Semester,
		Credits:     req.Credits,
		Type:        subjectType,
		Description: req.Description,
	}
	if subject.Credits <= 0 {
		subject.Credits = defaultCredits
	}

	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}

	return &dto.SubjectCreated{
		ID:   subject.ID,
		Name: subject.Name,
		Code: subject.Code,
	}, nil
}

func (s *subjectService) List(ctx context.Context, filter repositories.SubjectFilter) ([]dto.SubjectRow, error) {
	return s.subjectRepo.List(ctx, filter)
}
