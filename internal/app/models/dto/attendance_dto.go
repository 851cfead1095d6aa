package dto

// RecordAttendanceRequest represents the body of POST /api/attendance.
// Posting twice for the same (class_id, student_id) updates the status.
type RecordAttendanceRequest struct {
	ClassID   int64  `json:"class_id" binding:"required"`
	StudentID int64  `json:"student_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
}
