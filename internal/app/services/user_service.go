package services

import (
	"context"
	"strings"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/auth"
	"github.com/academiahq/academia/internal/pkg/validation"
)

// UserService handles user-related operations
type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserCreated, error)
	List(ctx context.Context, role *string) ([]models.User, error)
}

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context, role *string) ([]models.User, error)
}

type courseExistence interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type userService struct {
	userRepo       userRepository
	departmentRepo departmentExistence
	courseRepo     courseExistence
}

// NewUserService creates a new user service instance
func NewUserService(userRepo userRepository, departmentRepo departmentExistence, courseRepo courseExistence) UserService {
	return &userService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
	}
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserCreated, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)

	if !validation.ValidEmail(email) {
		return nil, apperrors.NewValidationError("invalid email address")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewValidationError("password too short")
	}
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewValidationError("role must be admin, staff or student")
	}

	if req.DepartmentID != nil {
		exists, err := s.departmentRepo.ExistsByID(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrDepartmentNotFound
		}
	}
	if req.CourseID != nil {
		exists, err := s.courseRepo.ExistsByID(ctx, *req.CourseID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrCourseNotFound
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Password:     hashed,
		Name:         name,
		Role:         models.RoleType(req.Role),
		DepartmentID: req.DepartmentID,
		CourseID:     req.CourseID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UserCreated{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}, nil
}

func (s *userService) List(ctx context.Context, role *string) ([]models.User, error) {
	if role != nil && !models.ValidRole(*role) {
		return nil, apperrors.NewValidationError("unknown role filter")
	}
	return s.userRepo.List(ctx, role)
}
