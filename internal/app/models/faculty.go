package models

// FacultyStatus represents the employment state of a faculty member.
type FacultyStatus string

const (
	FacultyActive   FacultyStatus = "active"
	FacultyInactive FacultyStatus = "inactive"
	FacultyOnLeave  FacultyStatus = "on_leave"
)

// Valid returns true when the status is a supported value.
func (s FacultyStatus) Valid() bool {
	switch s {
	case FacultyActive, FacultyInactive, FacultyOnLeave:
		return true
	default:
		return false
	}
}

// Faculty is a teaching staff member. BasicSalary is the input figure for the
// payroll calculator; everything on a Salary record derives from it.
type Faculty struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Department    string        `json:"department"`
	Designation   string        `json:"designation"`
	Qualification string        `json:"qualification"`
	Experience    int           `json:"experience"`
	Subjects      []string      `json:"subjects"`
	BasicSalary   float64       `json:"basicSalary"`
	EmployeeID    string        `json:"employeeId"`
	JoiningDate   string        `json:"joiningDate"`
	Status        FacultyStatus `json:"status"`
}

// EntityID implements Entity.
func (f Faculty) EntityID() string { return f.ID }
