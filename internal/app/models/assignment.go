package models

// Assignment is a graded task set against a subject. Deadline is
// YYYY-MM-DD, like ClassSession dates.
type Assignment struct {
	ID          int64   `json:"id"`
	SubjectID   int64   `json:"subject_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Deadline    string  `json:"deadline"`
	TotalMarks  int     `json:"total_marks"`
}
