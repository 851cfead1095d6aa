package dto

// CreateSubmissionRequest represents the body of POST /api/submissions.
// The submission date is stamped server-side.
type CreateSubmissionRequest struct {
	AssignmentID int64   `json:"assignment_id" binding:"required"`
	StudentID    int64   `json:"student_id" binding:"required"`
	Content      *string `json:"content"`
}

// SubmissionCreated is the minimal echo returned on creation.
type SubmissionCreated struct {
	ID int64 `json:"id"`
}

// GradeSubmissionRequest represents the body of PATCH /api/submissions/:id.
// Grading forces status to "graded" whatever the prior status was. Marks is
// a pointer so a zero grade survives the required check.
type GradeSubmissionRequest struct {
	Marks    *int    `json:"marks" binding:"required"`
	Feedback *string `json:"feedback"`
}
