package models

import "time"

// Submission is a student's response to an Assignment. Marks and Feedback
// are nil until the submission is graded.
type Submission struct {
	ID             int64            `json:"id"`
	AssignmentID   int64            `json:"assignment_id"`
	StudentID      int64            `json:"student_id"`
	Content        *string          `json:"content"`
	SubmissionDate time.Time        `json:"submission_date"`
	Marks          *int             `json:"marks"`
	Feedback       *string          `json:"feedback"`
	Status         SubmissionStatus `json:"status"`
}
