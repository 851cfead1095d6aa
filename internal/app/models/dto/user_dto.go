package dto

// CreateUserRequest represents the body of POST /api/users
type CreateUserRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Role         string `json:"role" binding:"required"`
	DepartmentID *int64 `json:"department_id"`
	CourseID     *int64 `json:"course_id"`
}

// UserCreated is the minimal echo returned on creation.
type UserCreated struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
