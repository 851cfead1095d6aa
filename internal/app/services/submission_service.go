package services

import (
	"context"
	"time"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/pkg/apperrors"
)

// SubmissionService handles submission and grading operations
type SubmissionService interface {
	Create(ctx context.Context, req dto.CreateSubmissionRequest) (*dto.SubmissionCreated, error)
	List(ctx context.Context, filter repositories.SubmissionFilter) ([]models.Submission, error)
	Grade(ctx context.Context, id int64, req dto.GradeSubmissionRequest) error
}

type submissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	List(ctx context.Context, filter repositories.SubmissionFilter) ([]models.Submission, error)
	Grade(ctx context.Context, id int64, marks int, feedback *string) error
}

type assignmentExistence interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type submissionService struct {
	submissionRepo submissionRepository
	assignmentRepo assignmentExistence
	userRepo       userExistence

	now func() time.Time
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(submissionRepo submissionRepository, assignmentRepo assignmentExistence, userRepo userExistence) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

// Create stamps the submission date server-side; status starts as "submitted".
func (s *submissionService) Create(ctx context.Context, req dto.CreateSubmissionRequest) (*dto.SubmissionCreated, error) {
	exists, err := s.assignmentRepo.ExistsByID(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrAssignmentNotFound
	}

	exists, err = s.userRepo.ExistsByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("student not found")
	}

	submission := &models.Submission{
		AssignmentID:   req.AssignmentID,
		StudentID:      req.StudentID,
		Content:        req.Content,
		SubmissionDate: s.now().UTC(),
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	return &dto.SubmissionCreated{ID: submission.ID}, nil
}

func (s *submissionService) List(ctx context.Context, filter repositories.SubmissionFilter) ([]models.Submission, error) {
	return s.submissionRepo.List(ctx, filter)
}

// Grade sets marks and feedback and forces the status to "graded". Zero is
// a valid grade; only missing or negative marks are rejected.
func (s *submissionService) Grade(ctx context.Context, id int64, req dto.GradeSubmissionRequest) error {
	if req.Marks == nil {
		return apperrors.NewValidationError("marks is required")
	}
	if *req.Marks < 0 {
		return apperrors.NewValidationError("marks cannot be negative")
	}
	return s.submissionRepo.Grade(ctx, id, *req.Marks, req.Feedback)
}
