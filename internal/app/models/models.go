package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleStaff   RoleType = "staff"
	RoleStudent RoleType = "student"
)

// ValidRole reports whether the given role is one of the known roles.
func ValidRole(r string) bool {
	switch RoleType(r) {
	case RoleAdmin, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// EntityStatus is the archival flag shared by departments, courses and subjects.
// Rows are never hard-deleted; archival flips this flag.
type EntityStatus string

const (
	StatusActive   EntityStatus = "active"
	StatusArchived EntityStatus = "archived"
)

// SubjectType classifies a subject within its course.
type SubjectType string

const (
	SubjectCore     SubjectType = "core"
	SubjectElective SubjectType = "elective"
	SubjectLab      SubjectType = "lab"
)

// ValidSubjectType reports whether t is a known subject type.
func ValidSubjectType(t string) bool {
	switch SubjectType(t) {
	case SubjectCore, SubjectElective, SubjectLab:
		return true
	}
	return false
}

// AttendanceStatus is the per-student status recorded against a class session.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// ValidAttendanceStatus reports whether s is a known attendance status.
func ValidAttendanceStatus(s string) bool {
	switch AttendanceStatus(s) {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// SubmissionStatus tracks a submission's lifecycle. Grading forces the
// terminal "graded" status regardless of the prior value.
type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionLate      SubmissionStatus = "late"
	SubmissionGraded    SubmissionStatus = "graded"
)
