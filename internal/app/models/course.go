package models

// Course represents a degree programme offered by a department.
// TotalSemesters is conventionally 2*DurationYears but not enforced.
type Course struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Code           string       `json:"code"`
	DepartmentID   int64        `json:"department_id"`
	DurationYears  int          `json:"duration_years"`
	TotalSemesters int          `json:"total_semesters"`
	Status         EntityStatus `json:"status"`
	Description    *string      `json:"description"`
}
