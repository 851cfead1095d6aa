package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/pkg/apperrors"
)

type fakeSubjectRepo struct {
	created []*models.Subject
	rows    []dto.SubjectRow
}

func (f *fakeSubjectRepo) Create(_ context.Context, s *models.Subject) error {
	s.ID = int64(len(f.created) + 1)
	s.Status = models.StatusActive
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSubjectRepo) List(_ context.Context, _ repositories.SubjectFilter) ([]dto.SubjectRow, error) {
	return f.rows, nil
}

func TestSubjectServiceCreateAppliesDefaults(t *testing.T) {
	repo := &fakeSubjectRepo{}
	svc := NewSubjectService(repo,
		&fakeExistence{exists: map[int64]bool{1: true}},
		&fakeExistence{exists: map[int64]bool{2: true}})

	created, err := svc.Create(context.Background(), dto.CreateSubjectRequest{
		Name:     "Data Structures",
		Code:     "CS201",
		CourseID: 1,
		Semester: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "CS201", created.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 3, repo.created[0].Credits)
	assert.Equal(t, models.SubjectCore, repo.created[0].Type)
}

func TestSubjectServiceCreateValidation(t *testing.T) {
	svc := NewSubjectService(&fakeSubjectRepo{},
		&fakeExistence{exists: map[int64]bool{1: true}},
		&fakeExistence{})

	tests := []struct {
		name string
		req  dto.CreateSubjectRequest
	}{
		{"bad type", dto.CreateSubjectRequest{Name: "X", Code: "CS1", CourseID: 1, Semester: 1, Type: "seminar"}},
		{"zero semester", dto.CreateSubjectRequest{Name: "X", Code: "CS1", CourseID: 1, Semester: 0}},
		{"lowercase code", dto.CreateSubjectRequest{Name: "X", Code: "cs1", CourseID: 1, Semester: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestSubjectServiceCreateUnknownReferences(t *testing.T) {
	svc := NewSubjectService(&fakeSubjectRepo{},
		&fakeExistence{exists: map[int64]bool{}},
		&fakeExistence{exists: map[int64]bool{}})

	_, err := svc.Create(context.Background(), dto.CreateSubjectRequest{
		Name: "X", Code: "CS1", CourseID: 9, Semester: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	svc = NewSubjectService(&fakeSubjectRepo{},
		&fakeExistence{exists: map[int64]bool{1: true}},
		&fakeExistence{exists: map[int64]bool{}})

	_, err = svc.Create(context.Background(), dto.CreateSubjectRequest{
		Name: "X", Code: "CS1", CourseID: 1, Semester: 1, StaffID: int64p(77),
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
