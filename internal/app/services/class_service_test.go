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

type fakeClassRepo struct {
	created []*models.ClassSession
	rows    []dto.ClassRow
}

func (f *fakeClassRepo) Create(_ context.Context, c *models.ClassSession) error {
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, c)
	return nil
}

func (f *fakeClassRepo) List(_ context.Context, _ repositories.ClassFilter) ([]dto.ClassRow, error) {
	return f.rows, nil
}

func TestClassServiceCreate(t *testing.T) {
	repo := &fakeClassRepo{}
	svc := NewClassService(repo, &fakeExistence{exists: map[int64]bool{1: true}})

	created, err := svc.Create(context.Background(), dto.CreateClassRequest{
		SubjectID: 1,
		Date:      "2026-03-02",
		Time:      "10:00",
		Topic:     strp("Graphs"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", created.Date)
	assert.Equal(t, "10:00", created.Time)
	require.Len(t, repo.created, 1)
}

func TestClassServiceCreateValidation(t *testing.T) {
	svc := NewClassService(&fakeClassRepo{}, &fakeExistence{exists: map[int64]bool{1: true}})

	_, err := svc.Create(context.Background(), dto.CreateClassRequest{
		SubjectID: 1, Date: "02/03/2026", Time: "10:00",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(context.Background(), dto.CreateClassRequest{
		SubjectID: 1, Date: "2026-03-02", Time: "",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestClassServiceCreateUnknownSubject(t *testing.T) {
	svc := NewClassService(&fakeClassRepo{}, &fakeExistence{exists: map[int64]bool{}})

	_, err := svc.Create(context.Background(), dto.CreateClassRequest{
		SubjectID: 9, Date: "2026-03-02", Time: "10:00",
	})
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
}

func TestClassServiceListRejectsBadDateFilter(t *testing.T) {
	svc := NewClassService(&fakeClassRepo{}, &fakeExistence{})

	bad := "not-a-date"
	_, err := svc.List(context.Background(), repositories.ClassFilter{Date: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
