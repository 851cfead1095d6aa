package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/pkg/apperrors"
)

type fakeCourseRepo struct {
	created []*models.Course
	rows    []dto.CourseRow
}

func (f *fakeCourseRepo) Create(_ context.Context, c *models.Course) error {
	c.ID = int64(len(f.created) + 1)
	c.Status = models.StatusActive
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCourseRepo) List(_ context.Context) ([]dto.CourseRow, error) {
	return f.rows, nil
}

func TestCourseServiceCreateAppliesDefaults(t *testing.T) {
	repo := &fakeCourseRepo{}
	svc := NewCourseService(repo, &fakeExistence{exists: map[int64]bool{1: true}})

	created, err := svc.Create(context.Background(), dto.CreateCourseRequest{
		Name:         "B.Tech Computer Science",
		Code:         "BTECH-CSE",
		DepartmentID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "BTECH-CSE", created.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 4, repo.created[0].DurationYears)
	assert.Equal(t, 8, repo.created[0].TotalSemesters)
}

func TestCourseServiceCreateKeepsExplicitValues(t *testing.T) {
	repo := &fakeCourseRepo{}
	svc := NewCourseService(repo, &fakeExistence{exists: map[int64]bool{1: true}})

	_, err := svc.Create(context.Background(), dto.CreateCourseRequest{
		Name:           "M.Tech Computer Science",
		Code:           "MTECH-CSE",
		DepartmentID:   1,
		DurationYears:  2,
		TotalSemesters: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.created[0].DurationYears)
	assert.Equal(t, 4, repo.created[0].TotalSemesters)
}

func TestCourseServiceCreateUnknownDepartment(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{}, &fakeExistence{exists: map[int64]bool{}})

	_, err := svc.Create(context.Background(), dto.CreateCourseRequest{
		Name:         "B.Tech Computer Science",
		Code:         "BTECH-CSE",
		DepartmentID: 42,
	})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}
