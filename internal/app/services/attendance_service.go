package services

import (
	"context"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/app/repositories"
	"github.com/academiahq/academia/internal/pkg/apperrors"
)

// AttendanceService handles attendance recording and listing
type AttendanceService interface {
	Record(ctx context.Context, req dto.RecordAttendanceRequest) error
	List(ctx context.Context, filter repositories.AttendanceFilter) ([]models.Attendance, error)
}

type attendanceRepository interface {
	Upsert(ctx context.Context, record *models.Attendance) error
	List(ctx context.Context, filter repositories.AttendanceFilter) ([]models.Attendance, error)
}

type classExistence interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type attendanceService struct {
	attendanceRepo attendanceRepository
	classRepo      classExistence
	userRepo       userExistence
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo attendanceRepository, classRepo classExistence, userRepo userExistence) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		classRepo:      classRepo,
		userRepo:       userRepo,
	}
}

// Record validates the referenced class and student, then upserts the status.
// Recording twice for the same pair updates the status in place.
func (s *attendanceService) Record(ctx context.Context, req dto.RecordAttendanceRequest) error {
	if !models.ValidAttendanceStatus(req.Status) {
		return apperrors.NewValidationError("status must be present, absent or late")
	}

	exists, err := s.classRepo.ExistsByID(ctx, req.ClassID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrClassNotFound
	}

	exists, err = s.userRepo.ExistsByID(ctx, req.StudentID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError("student not found")
	}

	record := &models.Attendance{
		ClassID:   req.ClassID,
		StudentID: req.StudentID,
		Status:    models.AttendanceStatus(req.Status),
	}
	return s.attendanceRepo.Upsert(ctx, record)
}

func (s *attendanceService) List(ctx context.Context, filter repositories.AttendanceFilter) ([]models.Attendance, error) {
	return s.attendanceRepo.List(ctx, filter)
}
