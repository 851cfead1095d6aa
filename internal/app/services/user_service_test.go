package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/auth"
)

type fakeUserRepo struct {
	created []*models.User
	users   []models.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	u.ID = int64(len(f.created) + 1)
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, role *string) ([]models.User, error) {
	if role == nil {
		return f.users, nil
	}
	var out []models.User
	for _, u := range f.users {
		if string(u.Role) == *role {
			out = append(out, u)
		}
	}
	return out, nil
}

func TestUserServiceCreateHashesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, &fakeExistence{}, &fakeExistence{})

	created, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Email:    "Jane.Doe@academia.edu",
		Password: "secret1",
		Name:     "Jane Doe",
		Role:     "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@academia.edu", created.Email)
	require.Len(t, repo.created, 1)
	stored := repo.created[0].Password
	assert.NotEqual(t, "secret1", stored)
	assert.True(t, auth.CheckPassword(stored, "secret1"))
}

func TestUserServiceCreateValidation(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeExistence{}, &fakeExistence{})

	tests := []struct {
		name string
		req  dto.CreateUserRequest
	}{
		{"bad email", dto.CreateUserRequest{Email: "not-an-email", Password: "secret1", Name: "X", Role: "staff"}},
		{"short password", dto.CreateUserRequest{Email: "a@b.edu", Password: "abc", Name: "X", Role: "staff"}},
		{"unknown role", dto.CreateUserRequest{Email: "a@b.edu", Password: "secret1", Name: "X", Role: "dean"}},
		{"empty name", dto.CreateUserRequest{Email: "a@b.edu", Password: "secret1", Name: " ", Role: "staff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestUserServiceCreateUnknownReferences(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeExistence{exists: map[int64]bool{}}, &fakeExistence{exists: map[int64]bool{}})

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Email: "a@b.edu", Password: "secret1", Name: "X", Role: "student",
		DepartmentID: int64p(5),
	})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)

	_, err = svc.Create(context.Background(), dto.CreateUserRequest{
		Email: "a@b.edu", Password: "secret1", Name: "X", Role: "student",
		CourseID: int64p(7),
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestUserServiceListRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeExistence{}, &fakeExistence{})

	role := "dean"
	_, err := svc.List(context.Background(), &role)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
