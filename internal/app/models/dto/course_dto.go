package dto

import "github.com/academiahq/academia/internal/app/models"

// CreateCourseRequest represents the body of POST /api/courses
type CreateCourseRequest struct {
	Name           string  `json:"name" binding:"required"`
	Code           string  `json:"code" binding:"required"`
	DepartmentID   int64   `json:"department_id" binding:"required"`
	DurationYears  int     `json:"duration_years"`
	TotalSemesters int     `json:"total_semesters"`
	Description    *string `json:"description"`
}

// CourseCreated is the minimal echo returned on creation.
type CourseCreated struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// CourseRow is a course list row enriched with its department name and
// per-row aggregates computed at query time.
type CourseRow struct {
	models.Course
	DepartmentName string `json:"department_name"`
	StudentCount   int    `json:"student_count"`
	SubjectCount   int    `json:"subject_count"`
}
