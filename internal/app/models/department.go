package models

// Department represents an academic department
type Department struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Code        string       `json:"code"`
	HodID       *int64       `json:"hod_id"`
	Status      EntityStatus `json:"status"`
	Description *string      `json:"description"`
}
