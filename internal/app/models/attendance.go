package models

// Attendance records a single student's status for a class session.
// At most one row exists per (class_id, student_id); writes are upserts.
type Attendance struct {
	ID        int64            `json:"id"`
	ClassID   int64            `json:"class_id"`
	StudentID int64            `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
}
