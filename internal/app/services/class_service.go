package services

import (
	"context"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/helpers"
)

// ClassService handles class session operations
type ClassService interface {
	Create(ctx context.Context, req dto.CreateClassRequest) (*dto.ClassCreated, error)
	List(ctx context.Context, filter repositories.ClassFilter) ([]dto.ClassRow, error)
}

type classRepository interface {
	Create(ctx context.Context, class *models.ClassSession) error
	List(ctx context.Context, filter repositories.ClassFilter) ([]dto.ClassRow, error)
}

type subjectExistence interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type classService struct {
	classRepo   classRepository
	subjectRepo subjectExistence
}

// NewClassService creates a new class service instance
func NewClassService(classRepo classRepository, subjectRepo subjectExistence) ClassService {
	return &classService{
		classRepo:   classRepo,
		subjectRepo: subjectRepo,
	}
}

func (s *classService) Create(ctx context.Context, req dto.CreateClassRequest) (*dto.ClassCreated, error) {
	if !helpers.ValidDate(req.Date) {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD")
	}
	if req.Time == "" {
		return nil, apperrors.NewValidationError("time cannot be empty")
	}

	exists, err := s.subjectRepo.ExistsByID(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrSubjectNotFound
	}

	class := &models.ClassSession{
		SubjectID:   req.SubjectID,
		Date:        req.Date,
		Time:        req.Time,
		Topic:       req.Topic,
		Description: req.Description,
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}

	return &dto.ClassCreated{
		ID:        class.ID,
		SubjectID: class.SubjectID,
		Date:      class.Date,
		Time:      class.Time,
	}, nil
}

func (s *classService) List(ctx context.Context, filter repositories.ClassFilter) ([]dto.ClassRow, error) {
	if filter.Date != nil && !helpers.ValidDate(*filter.Date) {
		return nil, apperrors.NewValidationError("date filter must be YYYY-MM-DD")
	}
	return s.classRepo.List(ctx, filter)
}
