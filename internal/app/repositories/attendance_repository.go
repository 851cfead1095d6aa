package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academiahq/academia/internal/app/models"
)

// AttendanceFilter holds the optional attendance list filters. ClassID takes
// precedence over StudentID.
type AttendanceFilter struct {
	ClassID   *int64
	StudentID *int64
}

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert records attendance atomically: the unique constraint on
// (class_id, student_id) plus ON CONFLICT makes a repeated post for the same
// pair an update of the status rather than a second row.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.Attendance) error {
	query := `
		INSERT INTO attendance (class_id, student_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT attendance_class_student_key
		DO UPDATE SET status = EXCLUDED.status
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		record.ClassID, record.StudentID, record.Status,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("error recording attendance: %w", err)
	}

	return nil
}

// buildAttendanceListQuery composes the attendance list query with the
// class-before-student filter precedence.
func buildAttendanceListQuery(filter AttendanceFilter) (string, []interface{}, error) {
	builder := psql.Select("id", "class_id", "student_id", "status").
		From("attendance")

	if filter.ClassID != nil {
		builder = builder.Where(squirrel.Eq{"class_id": *filter.ClassID})
	} else if filter.StudentID != nil {
		builder = builder.Where(squirrel.Eq{"student_id": *filter.StudentID})
	}

	return builder.OrderBy("id").ToSql()
}

// List retrieves raw attendance rows matching the filter.
func (r *AttendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]models.Attendance, error) {
	query, args, err := buildAttendanceListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	records := []models.Attendance{}
	for rows.Next() {
		var record models.Attendance
		if err := rows.Scan(
			&record.ID,
			&record.ClassID,
			&record.StudentID,
			&record.Status,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
