package models

// StudentStatus represents the lifecycle state of a student record.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentSuspended StudentStatus = "suspended"
)

// Valid returns true when the status is a supported value.
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentActive, StudentInactive, StudentSuspended:
		return true
	default:
		return false
	}
}

// Student is an enrolled student. AttendancePercentage and CGPA are cached
// conveniences for list views; the authoritative values come from the compute
// package and are recomputed on read.
type Student struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Gender        string        `json:"gender"`
	DateOfBirth   string        `json:"dateOfBirth"`
	Address       string        `json:"address"`
	Course        string        `json:"course"`
	Branch        string        `json:"branch"`
	Semester      int           `json:"semester"`
	Year          int           `json:"year"`
	Batch         string        `json:"batch"`
	EnrollmentNo  string        `json:"enrollmentNo"`
	GuardianName  string        `json:"guardianName"`
	GuardianPhone string        `json:"guardianPhone"`
	AdmissionDate string        `json:"admissionDate"`
	Status        StudentStatus `json:"status"`

	AttendancePercentage int     `json:"attendancePercentage"`
	CGPA                 float64 `json:"cgpa"`
}

// EntityID implements Entity.
func (s Student) EntityID() string { return s.ID }
