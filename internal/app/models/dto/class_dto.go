package dto

import "github.com/academiahq/academia/internal/app/models"

// CreateClassRequest represents the body of POST /api/classes
type CreateClassRequest struct {
	SubjectID   int64   `json:"subject_id" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	Topic       *string `json:"topic"`
	Description *string `json:"description"`
}

// ClassCreated is the minimal echo returned on creation.
type ClassCreated struct {
	ID        int64  `json:"id"`
	SubjectID int64  `json:"subject_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// ClassRow is a class session list row enriched with its subject name.
type ClassRow struct {
	models.ClassSession
	SubjectName string `json:"subject_name"`
}
