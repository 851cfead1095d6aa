package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
)

// AssignmentFilter holds the optional assignment list filters. StaffID takes
// precedence over StudentID, mirroring the class list scoping.
type AssignmentFilter struct {
	StaffID   *int64
	StudentID *int64
}

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts a new assignment and fills in the assigned id.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (subject_id, title, description, deadline, total_marks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		assignment.SubjectID, assignment.Title, assignment.Description,
		assignment.Deadline, assignment.TotalMarks,
	).Scan(&assignment.ID)
	if err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}

	return nil
}

// ExistsByID checks whether an assignment with the given id exists.
func (r *AssignmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM assignments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking assignment existence: %w", err)
	}
	return exists, nil
}

// buildAssignmentListQuery composes the assignment list query with the
// staff-before-student filter precedence.
func buildAssignmentListQuery(filter AssignmentFilter) (string, []interface{}, error) {
	builder := psql.Select(
		"a.id", "a.subject_id", "a.title", "a.description",
		"to_char(a.deadline, 'YYYY-MM-DD') AS deadline", "a.total_marks",
		"s.name AS subject_name",
	).
		From("assignments a").
		Join("subjects s ON a.subject_id = s.id")

	if filter.StaffID != nil {
		builder = builder.Where(squirrel.Eq{"s.staff_id": *filter.StaffID})
	} else if filter.StudentID != nil {
		builder = builder.
			Join("users u ON s.course_id = u.course_id").
			Where(squirrel.Eq{"u.id": *filter.StudentID})
	}

	return builder.OrderBy("a.deadline").ToSql()
}

// List retrieves assignments matching the filter, with the subject name
// joined in.
func (r *AssignmentRepository) List(ctx context.Context, filter AssignmentFilter) ([]dto.AssignmentRow, error) {
	query, args, err := buildAssignmentListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build assignment list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	assignments := []dto.AssignmentRow{}
	for rows.Next() {
		var row dto.AssignmentRow
		if err := rows.Scan(
			&row.ID,
			&row.SubjectID,
			&row.Title,
			&row.Description,
			&row.Deadline,
			&row.TotalMarks,
			&row.SubjectName,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
