package models

// Subject is a taught course-unit within a Course, assigned to one primary
// staff member and scheduled for a specific semester.
type Subject struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Code        string       `json:"code"`
	CourseID    int64        `json:"course_id"`
	StaffID     *int64       `json:"staff_id"`
	Semester    int          `json:"semester"`
	Credits     int          `json:"credits"`
	Type        SubjectType  `json:"type"`
	Status      EntityStatus `json:"status"`
	Description *string      `json:"description"`
}
