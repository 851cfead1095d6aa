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

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create inserts a new department and fills in the assigned id and defaulted
// status.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, code, hod_id, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status
	`

	err := r.db.QueryRow(ctx, query,
		department.Name, department.Code, department.HodID, department.Description,
	).Scan(&department.ID, &department.Status)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// ExistsByID checks whether a department with the given id exists.
func (r *DepartmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return exists, nil
}

// List retrieves all departments with the HOD's name joined in.
func (r *DepartmentRepository) List(ctx context.Context) ([]dto.DepartmentRow, error) {
	query := `
		SELECT d.id, d.name, d.code, d.hod_id, d.status, d.description, u.name AS hod_name
		FROM departments d
		LEFT JOIN users u ON d.hod_id = u.id
		ORDER BY d.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	departments := []dto.DepartmentRow{}
	for rows.Next() {
		var row dto.DepartmentRow
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Code,
			&row.HodID,
			&row.Status,
			&row.Description,
			&row.HodName,
		); err != nil {
			return nil, err
		}
		departments = append(departments, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}
