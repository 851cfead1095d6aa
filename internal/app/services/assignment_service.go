package services

import (
	"context"
	"strings"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/helpers"
)

// defaultTotalMarks is applied when the request omits total_marks.
const defaultTotalMarks = 100

// AssignmentService handles assignment operations
type AssignmentService interface {
	Create(ctx context.Context, req dto.CreateAssignmentRequest) (*dto.AssignmentCreated, error)
	List(ctx context.Context, filter repositories.AssignmentFilter) ([]dto.AssignmentRow, error)
}

type assignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	List(ctx context.Context, filter repositories.AssignmentFilter) ([]dto.AssignmentRow, error)
}

type assignmentService struct {
	assignmentRepo assignmentRepository
	subjectRepo    subjectExistence
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(assignmentRepo assignmentRepository, subjectRepo subjectExistence) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		subjectRepo:    subjectRepo,
	}
}

func (s *assignmentService) Create(ctx context.Context, req dto.CreateAssignmentRequest) (*dto.AssignmentCreated, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title cannot be empty")
	}
	if !helpers.ValidDate(req.Deadline) {
		return nil, apperrors.NewValidationError("deadline must be YYYY-MM-DD")
	}

	exists, err := s.subjectRepo.ExistsByID(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrSubjectNotFound
	}

	assignment := &models.Assignment{
		SubjectID:   req.SubjectID,
		Title:       title,
		Description: req.Description,
		Deadline:    req.Deadline,
		TotalMarks:  req.TotalMarks,
	}
	if assignment.TotalMarks <= 0 {
		assignment.TotalMarks = defaultTotalMarks
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	return &dto.AssignmentCreated{
		ID:    assignment.ID,
		Title: assignment.Title,
	}, nil
}

func (s *assignmentService) List(ctx context.Context, filter repositories.AssignmentFilter) ([]dto.AssignmentRow, error) {
	return s.assignmentRepo.List(ctx, filter)
}
