package dto

import "github.com/academiahq/academia/internal/app/models"

// CreateDepartmentRequest represents the body of POST /api/departments
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Description *string `json:"description"`
	HodID       *int64  `json:"hod_id"`
}

// DepartmentCreated is the minimal echo returned on creation.
type DepartmentCreated struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// DepartmentRow is a department list row enriched with the HOD's name.
type DepartmentRow struct {
	models.Department
	HodName *string `json:"hod_name"`
}
