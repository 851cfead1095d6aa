package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/auth"
)

// CreateDefaultData seeds the demo departments and one user per role so a
// fresh database is immediately usable. Existing rows are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := repositories.NewDepartmentRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/creating default data...")
	var finalErr error

	departments, err := departmentRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		cse := &models.Department{Name: "Computer Science & Engineering", Code: "CSE"}
		if err := departmentRepo.Create(ctx, cse); err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Msg("Error seeding CSE department")
			finalErr = errors.Join(finalErr, err)
		}
		ee := &models.Department{Name: "Electrical Engineering", Code: "EE"}
		if err := departmentRepo.Create(ctx, ee); err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Msg("Error seeding EE department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	demoUsers := []struct {
		email    string
		password string
		name     string
		role     models.RoleType
	}{
		{"admin@academia.edu", "admin123", "Admin User", models.RoleAdmin},
		{"staff@academia.edu", "staff123", "Staff User", models.RoleStaff},
		{"student@academia.edu", "student123", "Student User", models.RoleStudent},
	}

	for _, demo := range demoUsers {
		role := string(demo.role)
		existing, err := userRepo.List(ctx, &role)
		if err != nil {
			lgr.Error().Err(err).Str("role", role).Msg("Error checking for seeded role")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if len(existing) > 0 {
			continue
		}

		lgr.Info().Str("email", demo.email).Msg("Creating demo user")
		hashed, err := auth.HashPassword(demo.password)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing demo password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &models.User{
			Email:    demo.email,
			Password: hashed,
			Name:     demo.name,
			Role:     demo.role,
		}
		if err := userRepo.Create(ctx, user); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("email", demo.email).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
