package dto

// AdminStats carries the dashboard headline counts.
type AdminStats struct {
	Students    int `json:"students"`
	Staff       int `json:"staff"`
	Departments int `json:"departments"`
}
