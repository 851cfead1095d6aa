package dto

import (
	"github.com/academiahq/academia/internal/app/models"
)

// CreateAssignmentRequest represents the body of POST /api/assignments.
// Deadline is a YYYY-MM-DD date string.
type CreateAssignmentRequest struct {
	SubjectID   int64   `json:"subject_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Deadline    string  `json:"deadline" binding:"required"`
	TotalMarks  int     `json:"total_marks"`
}

// AssignmentCreated is the minimal echo returned on creation.
type AssignmentCreated struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// AssignmentRow is an assignment list row enriched with its subject name.
type AssignmentRow struct {
	models.Assignment
	SubjectName string `json:"subject_name"`
}
