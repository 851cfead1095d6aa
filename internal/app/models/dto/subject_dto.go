package dto

import "github.com/academiahq/academia/internal/app/models"

// CreateSubjectRequest represents the body of POST /api/subjects
type CreateSubjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	CourseID    int64   `json:"course_id" binding:"required"`
	StaffID     *int64  `json:"staff_id"`
	Semester    int     `json:"semester" binding:"required"`
	Credits     int     `json:"credits"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}

// SubjectCreated is the minimal echo returned on creation.
type SubjectCreated struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// SubjectRow is a subject list row denormalized with course, department and
// staff names plus per-row aggregates.
type SubjectRow struct {
	models.Subject
	CourseName      string  `json:"course_name"`
	DepartmentName  string  `json:"department_name"`
	StaffName       *string `json:"staff_name"`
	StudentCount    int     `json:"student_count"`
	ClassCount      int     `json:"class_count"`
	AssignmentCount int     `json:"assignment_count"`
}
