package models

// ClassSession is one scheduled occurrence of a Subject on a date/time,
// the unit against which attendance is recorded. Date is YYYY-MM-DD,
// Time is HH:MM as entered.
type ClassSession struct {
	ID          int64   `json:"id"`
	SubjectID   int64   `json:"subject_id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Topic       *string `json:"topic"`
	Description *string `json:"description"`
}
