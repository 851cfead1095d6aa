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

// fakeAttendanceRepo mimics the upsert: one logical row per
// (class_id, student_id), later writes replacing the status.
type fakeAttendanceRepo struct {
	records map[[2]int64]models.AttendanceStatus
	calls   int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[[2]int64]models.AttendanceStatus{}}
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, r *models.Attendance) error {
	f.calls++
	f.records[[2]int64{r.ClassID, r.StudentID}] = r.Status
	r.ID = int64(len(f.records))
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ repositories.AttendanceFilter) ([]models.Attendance, error) {
	var out []models.Attendance
	for key, status := range f.records {
		out = append(out, models.Attendance{ClassID: key[0], StudentID: key[1], Status: status})
	}
	return out, nil
}

func TestAttendanceServiceRecordUpsert(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo,
		&fakeExistence{exists: map[int64]bool{1: true}},
		&fakeExistence{exists: map[int64]bool{2: true}})

	req := dto.RecordAttendanceRequest{ClassID: 1, StudentID: 2, Status: "present"}
	require.NoError(t, svc.Record(context.Background(), req))

	// Recording again for the same pair updates, never duplicates.
	req.Status = "late"
	require.NoError(t, svc.Record(context.Background(), req))

	assert.Equal(t, 2, repo.calls)
	assert.Len(t, repo.records, 1)
	assert.Equal(t, models.AttendanceLate, repo.records[[2]int64{1, 2}])
}

func TestAttendanceServiceRecordValidation(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(),
		&fakeExistence{exists: map[int64]bool{1: true}},
		&fakeExistence{exists: map[int64]bool{2: true}})

	err := svc.Record(context.Background(), dto.RecordAttendanceRequest{ClassID: 1, StudentID: 2, Status: "sick"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAttendanceServiceRecordUnknownReferences(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(),
		&fakeExistence{exists: map[int64]bool{}},
		&fakeExistence{exists: map[int64]bool{2: true}})

	err := svc.Record(context.Background(), dto.RecordAttendanceRequest{ClassID: 9, StudentID: 2, Status: "present"})
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)

	svc = NewAttendanceService(newFakeAttendanceRepo(),
		&fakeExistence{exists: map[int64]bool{1: true}},
		&fakeExistence{exists: map[int64]bool{}})

	err = svc.Record(context.Background(), dto.RecordAttendanceRequest{ClassID: 1, StudentID: 9, Status: "present"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
