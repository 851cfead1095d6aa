package models

// User defines the user model based on the 'users' table.
// CourseID is set for students only.
type User struct {
	ID           int64    `json:"id"`
	Email        string   `json:"email"`
	Password     string   `json:"-"` // bcrypt hash, excluded from JSON
	Name         string   `json:"name"`
	Role         RoleType `json:"role"`
	DepartmentID *int64   `json:"department_id"`
	CourseID     *int64   `json:"course_id"`
}
