package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/dberrors"
)

// SubjectFilter holds the optional subject list filters. Absent filters add
// no predicate; present filters are AND-combined.
type SubjectFilter struct {
	StaffID      *int64
	CourseID     *int64
	DepartmentID *int64
}

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// Create inserts a new subject and fills in the assigned id and defaulted status.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, code, course_id, staff_id, semester, credits, type, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status
	`

	err := r.db.QueryRow(ctx, query,
		subject.Name, subject.Code, subject.CourseID, subject.StaffID,
		subject.Semester, subject.Credits, subject.Type, subject.Description,
	).Scan(&subject.ID, &subject.Status)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSubjectAlreadyExists
		}
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// ExistsByID checks whether a subject with the given id exists.
func (r *SubjectRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM subjects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject existence: %w", err)
	}
	return exists, nil
}

// buildSubjectListQuery composes the enriched subject list query. Each count
// is a correlated subquery evaluated per returned row.
func buildSubjectListQuery(filter SubjectFilter) (string, []interface{}, error) {
	builder := psql.Select(
		"s.id", "s.name", "s.code", "s.course_id", "s.staff_id", "s.semester",
		"s.credits", "s.type", "s.status", "s.description",
		"c.name AS course_name",
		"d.name AS department_name",
		"u.name AS staff_name",
		"(SELECT COUNT(*) FROM users st WHERE st.course_id = s.course_id AND st.role = 'student') AS student_count",
		"(SELECT COUNT(*) FROM classes cl WHERE cl.subject_id = s.id) AS class_count",
		"(SELECT COUNT(*) FROM assignments a WHERE a.subject_id = s.id) AS assignment_count",
	).
		From("subjects s").
		Join("courses c ON s.course_id = c.id").
		Join("departments d ON c.department_id = d.id").
		LeftJoin("users u ON s.staff_id = u.id")

	if filter.StaffID != nil {
		builder = builder.Where(squirrel.Eq{"s.staff_id": *filter.StaffID})
	}
	if filter.CourseID != nil {
		builder = builder.Where(squirrel.Eq{"s.course_id": *filter.CourseID})
	}
	if filter.DepartmentID != nil {
		builder = builder.Where(squirrel.Eq{"c.department_id": *filter.DepartmentID})
	}

	return builder.OrderBy("s.id").ToSql()
}

// List retrieves subjects matching the filter, enriched with course,
// department and staff names plus per-row counts.
func (r *SubjectRepository) List(ctx context.Context, filter SubjectFilter) ([]dto.SubjectRow, error) {
	query, args, err := buildSubjectListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build subject list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	subjects := []dto.SubjectRow{}
	for rows.Next() {
		var row dto.SubjectRow
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Code,
			&row.CourseID,
			&row.StaffID,
			&row.Semester,
			&row.Credits,
			&row.Type,
			&row.Status,
			&row.Description,
			&row.CourseName,
			&row.DepartmentName,
			&row.StaffName,
			&row.StudentCount,
			&row.ClassCount,
			&row.AssignmentCount,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}
