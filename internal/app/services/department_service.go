package services

import (
	"context"
	"strings"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/validation"
)

// DepartmentService handles department-related operations
type DepartmentService interface {
	Create(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentCreated, error)
	List(ctx context.Context) ([]dto.DepartmentRow, error)
}

type departmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	List(ctx context.Context) ([]dto.DepartmentRow, error)
}

type userExistence interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type departmentService struct {
	departmentRepo departmentRepository
	userRepo       userExistence
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo departmentRepository, userRepo userExistence) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
	}
}

func (s *departmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentCreated, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)

	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if !validation.ValidCode(code) {
		return nil, apperrors.NewValidationError("code must be uppercase alphanumeric")
	}

	if req.HodID != nil {
		exists, err := s.userRepo.ExistsByID(ctx, *req.HodID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFoundError("head of department user not found")
		}
	}

	department := &models.Department{
		Name:        name,
		Code:        code,
		HodID:       req.HodID,
		Description: req.Description,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	return &dto.DepartmentCreated{
		ID:   department.ID,
		Name: department.Name,
		Code: department.Code,
	}, nil
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentRow, error) {
	return s.departmentRepo.List(ctx)
}
