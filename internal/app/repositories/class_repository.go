package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
)

// ClassFilter holds the optional class list filters. StaffID takes
// precedence over StudentID: the student branch is reached only when no
// staff filter is present. Date is ANDed on top of either scope.
type ClassFilter struct {
	StaffID   *int64
	StudentID *int64
	Date      *string
}

// ClassRepository handles database operations for class sessions
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create inserts a new class session and fills in the assigned id.
func (r *ClassRepository) Create(ctx context.Context, class *models.ClassSession) error {
	query := `
		INSERT INTO classes (subject_id, date, time, topic, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		class.SubjectID, class.Date, class.Time, class.Topic, class.Description,
	).Scan(&class.ID)
	if err != nil {
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// ExistsByID checks whether a class with the given id exists.
func (r *ClassRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM classes WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking class existence: %w", err)
	}
	return exists, nil
}

// buildClassListQuery composes the class list query. A staff filter scopes
// by the subject's assigned staff member; a student filter scopes by the
// student's course and is only applied when no staff filter is given.
func buildClassListQuery(filter ClassFilter) (string, []interface{}, error) {
	builder := psql.Select(
		"cl.id", "cl.subject_id", "to_char(cl.date, 'YYYY-MM-DD') AS date",
		"cl.time", "cl.topic", "cl.description",
		"s.name AS subject_name",
	).
		From("classes cl").
		Join("subjects s ON cl.subject_id = s.id")

	if filter.StaffID != nil {
		builder = builder.Where(squirrel.Eq{"s.staff_id": *filter.StaffID})
	} else if filter.StudentID != nil {
		builder = builder.
			Join("users u ON s.course_id = u.course_id").
			Where(squirrel.Eq{"u.id": *filter.StudentID})
	}

	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"cl.date": *filter.Date})
	}

	return builder.OrderBy("cl.date", "cl.time").ToSql()
}

// List retrieves class sessions matching the filter, with the subject name
// joined in.
func (r *ClassRepository) List(ctx context.Context, filter ClassFilter) ([]dto.ClassRow, error) {
	query, args, err := buildClassListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build class list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	defer rows.Close()

	classes := []dto.ClassRow{}
	for rows.Next() {
		var row dto.ClassRow
		if err := rows.Scan(
			&row.ID,
			&row.SubjectID,
			&row.Date,
			&row.Time,
			&row.Topic,
			&row.Description,
			&row.SubjectName,
		); err != nil {
			return nil, err
		}
		classes = append(classes, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}
