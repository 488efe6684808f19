package models

import "time"

// AttendanceStatus represents the status for attendance records. Holidays are
// informational only and never count as attendance opportunities.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
	AttendanceHoliday AttendanceStatus = "holiday"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave, AttendanceHoliday:
		return true
	default:
		return false
	}
}

// AttendanceRecord is one student's attendance for one subject on one date.
// At most one record exists per (StudentID, SubjectID, Date); marking the
// same slot again replaces the earlier record.
type AttendanceRecord struct {
	ID        string           `json:"id"`
	StudentID string           `json:"studentId"`
	SubjectID string           `json:"subjectId"`
	Date      string           `json:"date"` // 2006-01-02
	Status    AttendanceStatus `json:"status"`
	MarkedBy  string           `json:"markedBy"`
	MarkedAt  time.Time        `json:"markedAt"`
}

// EntityID implements Entity.
func (a AttendanceRecord) EntityID() string { return a.ID }

// SlotKey identifies the unique marking slot for the record.
func (a AttendanceRecord) SlotKey() string {
	return a.StudentID + "|" + a.SubjectID + "|" + a.Date
}
