package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course and fills in the assigned id and defaulted status.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, code, department_id, duration_years, total_semesters, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status
	`

	err := r.db.QueryRow(ctx, query,
		course.Name, course.Code, course.DepartmentID,
		course.DurationYears, course.TotalSemesters, course.Description,
	).Scan(&course.ID, &course.Status)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// ExistsByID checks whether a course with the given id exists.
func (r *CourseRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// List retrieves all courses with their department name and per-row student
// and subject counts. The inner join means a course whose department row is
// missing is simply absent from the result.
func (r *CourseRepository) List(ctx context.Context) ([]dto.CourseRow, error) {
	query := `
		SELECT c.id, c.name, c.code, c.department_id, c.duration_years,
		       c.total_semesters, c.status, c.description,
		       d.name AS department_name,
		       (SELECT COUNT(*) FROM users u WHERE u.course_id = c.id AND u.role = 'student') AS student_count,
		       (SELECT COUNT(*) FROM subjects s WHERE s.course_id = c.id) AS subject_count
		FROM courses c
		JOIN departments d ON c.department_id = d.id
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := []dto.CourseRow{}
	for rows.Next() {
		var row dto.CourseRow
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Code,
			&row.DepartmentID,
			&row.DurationYears,
			&row.TotalSemesters,
			&row.Status,
			&row.Description,
			&row.DepartmentName,
			&row.StudentCount,
			&row.SubjectCount,
		); err != nil {
			return nil, err
		}
		courses = append(courses, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
