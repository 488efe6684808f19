// Package store is the single authoritative owner of all domain records. It
// exposes a closed command set, a pure reducer over State, and a Store object
// that serializes dispatch and notifies subscribers after each transition.
package store

import "github.com/emirhank/campuscore/internal/app/models"

// Command is a tagged instruction requesting one state transition. The set is
// closed: the marker method is unexported, so every variant lives in this
// package and the reducer's type switch covers all of them.
type Command interface {
	isCommand()
}

// Add commands append a record to their collection in insertion order.
type (
	AddStudent            struct{ Record models.Student }
	AddFaculty            struct{ Record models.Faculty }
	AddCourse             struct{ Record models.Course }
	AddAttendance         struct{ Record models.AttendanceRecord }
	AddExam               struct{ Record models.Exam }
	AddResult             struct{ Record models.Result }
	AddFeeStructure       struct{ Record models.FeeStructure }
	AddFeePayment         struct{ Record models.FeePayment }
	AddSalary             struct{ Record models.Salary }
	AddTransportRoute     struct{ Record models.TransportRoute }
	AddVehicle            struct{ Record models.Vehicle }
	AddDriver             struct{ Record models.Driver }
	AddHostel             struct{ Record models.Hostel }
	AddBook               struct{ Record models.Book }
	AddLibraryTransaction struct{ Record models.LibraryTransaction }
	AddClub               struct{ Record models.Club }
	AddNotice             struct{ Record models.Notice }
	AddTimetableEntry     struct{ Record models.TimetableEntry }
	AddLeaveApplication   struct{ Record models.LeaveApplication }
	AddActivity           struct{ Record models.Activity }
	AddNotification       struct{ Record models.Notification }
)

// Update commands replace the record whose identifier matches, preserving
// collection order and every other record.
type (
	UpdateStudent            struct{ Record models.Student }
	UpdateFaculty            struct{ Record models.Faculty }
	UpdateCourse             struct{ Record models.Course }
	UpdateAttendance         struct{ Record models.AttendanceRecord }
	UpdateExam               struct{ Record models.Exam }
	UpdateResult             struct{ Record models.Result }
	UpdateFeeStructure       struct{ Record models.FeeStructure }
	UpdateFeePayment         struct{ Record models.FeePayment }
	UpdateSalary             struct{ Record models.Salary }
	UpdateTransportRoute     struct{ Record models.TransportRoute }
	UpdateVehicle            struct{ Record models.Vehicle }
	UpdateDriver             struct{ Record models.Driver }
	UpdateHostel             struct{ Record models.Hostel }
	UpdateBook               struct{ Record models.Book }
	UpdateLibraryTransaction struct{ Record models.LibraryTransaction }
	UpdateClub               struct{ Record models.Club }
	UpdateNotice             struct{ Record models.Notice }
	UpdateTimetableEntry     struct{ Record models.TimetableEntry }
	UpdateLeaveApplication   struct{ Record models.LeaveApplication }
	UpdateNotification       struct{ Record models.Notification }
)

// Delete commands remove exactly the record with the matching identifier.
type (
	DeleteStudent            struct{ ID string }
	DeleteFaculty            struct{ ID string }
	DeleteCourse             struct{ ID string }
	DeleteAttendance         struct{ ID string }
	DeleteExam               struct{ ID string }
	DeleteResult             struct{ ID string }
	DeleteFeeStructure       struct{ ID string }
	DeleteFeePayment         struct{ ID string }
	DeleteSalary             struct{ ID string }
	DeleteTransportRoute     struct{ ID string }
	DeleteVehicle            struct{ ID string }
	DeleteDriver             struct{ ID string }
	DeleteHostel             struct{ ID string }
	DeleteBook               struct{ ID string }
	DeleteLibraryTransaction struct{ ID string }
	DeleteClub               struct{ ID string }
	DeleteNotice             struct{ ID string }
	DeleteTimetableEntry     struct{ ID string }
	DeleteLeaveApplication   struct{ ID string }
	DeleteNotification       struct{ ID string }
)

// ResetAll installs a freshly generated seed state while keeping the current
// session sub-state.
type ResetAll struct{ Seed models.State }

// LoadSnapshot replaces the whole state with one rehydrated from persistence.
type LoadSnapshot struct{ State models.State }

// SetSession records the logged-in user for the session.
type SetSession struct{ UserID, SessionID string }

// ClearSession ends the current session.
type ClearSession struct{}

// UpdateUser replaces an administrative user record inside the session
// sub-state (last login, password changes).
type UpdateUser struct{ Record models.User }

func (AddStudent) isCommand()            {}
func (AddFaculty) isCommand()            {}
func (AddCourse) isCommand()             {}
func (AddAttendance) isCommand()         {}
func (AddExam) isCommand()               {}
func (AddResult) isCommand()             {}
func (AddFeeStructure) isCommand()       {}
func (AddFeePayment) isCommand()         {}
func (AddSalary) isCommand()             {}
func (AddTransportRoute) isCommand()     {}
func (AddVehicle) isCommand()            {}
func (AddDriver) isCommand()             {}
func (AddHostel) isCommand()             {}
func (AddBook) isCommand()               {}
func (AddLibraryTransaction) isCommand() {}
func (AddClub) isCommand()               {}
func (AddNotice) isCommand()             {}
func (AddTimetableEntry) isCommand()     {}
func (AddLeaveApplication) isCommand()   {}
func (AddActivity) isCommand()           {}
func (AddNotification) isCommand()       {}

func (UpdateStudent) isCommand()            {}
func (UpdateFaculty) isCommand()            {}
func (UpdateCourse) isCommand()             {}
func (UpdateAttendance) isCommand()         {}
func (UpdateExam) isCommand()               {}
func (UpdateResult) isCommand()             {}
func (UpdateFeeStructure) isCommand()       {}
func (UpdateFeePayment) isCommand()         {}
func (UpdateSalary) isCommand()             {}
func (UpdateTransportRoute) isCommand()     {}
func (UpdateVehicle) isCommand()            {}
func (UpdateDriver) isCommand()             {}
func (UpdateHostel) isCommand()             {}
func (UpdateBook) isCommand()               {}
func (UpdateLibraryTransaction) isCommand() {}
func (UpdateClub) isCommand()               {}
func (UpdateNotice) isCommand()             {}
func (UpdateTimetableEntry) isCommand()     {}
func (UpdateLeaveApplication) isCommand()   {}
func (UpdateNotification) isCommand()       {}

func (DeleteStudent) isCommand()            {}
func (DeleteFaculty) isCommand()            {}
func (DeleteCourse) isCommand()             {}
func (DeleteAttendance) isCommand()         {}
func (DeleteExam) isCommand()               {}
func (DeleteResult) isCommand()             {}
func (DeleteFeeStructure) isCommand()       {}
func (DeleteFeePayment) isCommand()         {}
func (DeleteSalary) isCommand()             {}
func (DeleteTransportRoute) isCommand()     {}
func (DeleteVehicle) isCommand()            {}
func (DeleteDriver) isCommand()             {}
func (DeleteHostel) isCommand()             {}
func (DeleteBook) isCommand()               {}
func (DeleteLibraryTransaction) isCommand() {}
func (DeleteClub) isCommand()               {}
func (DeleteNotice) isCommand()             {}
func (DeleteTimetableEntry) isCommand()     {}
func (DeleteLeaveApplication) isCommand()   {}
func (DeleteNotification) isCommand()       {}

func (ResetAll) isCommand()     {}
func (LoadSnapshot) isCommand() {}
func (SetSession) isCommand()   {}
func (ClearSession) isCommand() {}
func (UpdateUser) isCommand()   {}
