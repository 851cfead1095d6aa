package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/pkg/apperrors"
)

// SubmissionFilter holds the optional submission list filters. AssignmentID
// takes precedence over StudentID.
type SubmissionFilter struct {
	AssignmentID *int64
	StudentID    *int64
}

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a new submission and fills in the assigned id and defaulted
// status. SubmissionDate must already be stamped by the caller.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	query := `
		INSERT INTO submissions (assignment_id, student_id, content, submission_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status
	`

	err := r.db.QueryRow(ctx, query,
		submission.AssignmentID, submission.StudentID,
		submission.Content, submission.SubmissionDate,
	).Scan(&submission.ID, &submission.Status)
	if err != nil {
		return fmt.Errorf("error creating submission: %w", err)
	}

	return nil
}

// Grade sets marks and feedback and forces status to "graded" regardless of
// the prior status.
func (r *SubmissionRepository) Grade(ctx context.Context, id int64, marks int, feedback *string) error {
	query := `
		UPDATE submissions
		SET marks = $1, feedback = $2, status = 'graded'
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, marks, feedback, id)
	if err != nil {
		return fmt.Errorf("error grading submission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}

	return nil
}

// buildSubmissionListQuery composes the submission list query with the
// assignment-before-student filter precedence.
func buildSubmissionListQuery(filter SubmissionFilter) (string, []interface{}, error) {
	builder := psql.Select(
		"id", "assignment_id", "student_id", "content",
		"submission_date", "marks", "feedback", "status",
	).
		From("submissions")

	if filter.AssignmentID != nil {
		builder = builder.Where(squirrel.Eq{"assignment_id": *filter.AssignmentID})
	} else if filter.StudentID != nil {
		builder = builder.Where(squirrel.Eq{"student_id": *filter.StudentID})
	}

	return builder.OrderBy("id").ToSql()
}

// List retrieves raw submission rows matching the filter.
func (r *SubmissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error) {
	query, args, err := buildSubmissionListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build submission list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing submissions: %w", err)
	}
	defer rows.Close()

	submissions := []models.Submission{}
	for rows.Next() {
		var submission models.Submission
		if err := rows.Scan(
			&submission.ID,
			&submission.AssignmentID,
			&submission.StudentID,
			&submission.Content,
			&submission.SubmissionDate,
			&submission.Marks,
			&submission.Feedback,
			&submission.Status,
		); err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}
