package store

import (
	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
)

// Reduce applies one command to the state and returns the next state. It is
// total, deterministic and synchronous: no I/O, no randomness, no clock. The
// input state is never mutated; changed collections are rebuilt copy-on-write.
//
// A nil or unrecognized command returns the input state unchanged. An update
// or delete addressing a missing identifier also returns the input state, but
// with apperrors.ErrRecordNotFound so callers can tell "applied" from
// "ignored".
func Reduce(s models.State, cmd Command) (models.State, error) {
	var err error
	switch c := cmd.(type) {
	case AddStudent:
		s.Students = appendRecord(s.Students, c.Record)
	case AddFaculty:
		s.Faculty = appendRecord(s.Faculty, c.Record)
	case AddCourse:
		s.Courses = appendRecord(s.Courses, c.Record)
	case AddAttendance:
		s.Attendance = upsertAttendance(s.Attendance, c.Record)
	case AddExam:
		s.Exams = appendRecord(s.Exams, c.Record)
	case AddResult:
		s.Results = appendRecord(s.Results, c.Record)
	case AddFeeStructure:
		s.FeeStructures = appendRecord(s.FeeStructures, c.Record)
	case AddFeePayment:
		s.FeePayments = appendRecord(s.FeePayments, c.Record)
	case AddSalary:
		s.Salaries = appendRecord(s.Salaries, c.Record)
	case AddTransportRoute:
		s.TransportRoutes = appendRecord(s.TransportRoutes, c.Record)
	case AddVehicle:
		s.Vehicles = appendRecord(s.Vehicles, c.Record)
	case AddDriver:
		s.Drivers = appendRecord(s.Drivers, c.Record)
	case AddHostel:
		s.Hostels = appendRecord(s.Hostels, c.Record)
	case AddBook:
		s.Books = appendRecord(s.Books, c.Record)
	case AddLibraryTransaction:
		s.LibraryTransactions = appendRecord(s.LibraryTransactions, c.Record)
	case AddClub:
		s.Clubs = appendRecord(s.Clubs, c.Record)
	case AddNotice:
		s.Notices = appendRecord(s.Notices, c.Record)
	case AddTimetableEntry:
		s.Timetable = appendRecord(s.Timetable, c.Record)
	case AddLeaveApplication:
		s.LeaveApplications = appendRecord(s.LeaveApplications, c.Record)
	case AddActivity:
		s.Activities = appendRecord(s.Activities, c.Record)
	case AddNotification:
		s.Notifications = appendRecord(s.Notifications, c.Record)

	case UpdateStudent:
		s.Students, err = replaceRecord(s.Students, c.Record)
	case UpdateFaculty:
		s.Faculty, err = replaceRecord(s.Faculty, c.Record)
	case UpdateCourse:
		s.Courses, err = replaceRecord(s.Courses, c.Record)
	case UpdateAttendance:
		s.Attendance, err = replaceRecord(s.Attendance, c.Record)
	case UpdateExam:
		s.Exams, err = replaceRecord(s.Exams, c.Record)
	case UpdateResult:
		s.Results, err = replaceRecord(s.Results, c.Record)
	case UpdateFeeStructure:
		s.FeeStructures, err = replaceRecord(s.FeeStructures, c.Record)
	case UpdateFeePayment:
		s.FeePayments, err = replaceRecord(s.FeePayments, c.Record)
	case UpdateSalary:
		s.Salaries, err = replaceRecord(s.Salaries, c.Record)
	case UpdateTransportRoute:
		s.TransportRoutes, err = replaceRecord(s.TransportRoutes, c.Record)
	case UpdateVehicle:
		s.Vehicles, err = replaceRecord(s.Vehicles, c.Record)
	case UpdateDriver:
		s.Drivers, err = replaceRecord(s.Drivers, c.Record)
	case UpdateHostel:
		s.Hostels, err = replaceRecord(s.Hostels, c.Record)
	case UpdateBook:
		s.Books, err = replaceRecord(s.Books, c.Record)
	case UpdateLibraryTransaction:
		s.LibraryTransactions, err = replaceRecord(s.LibraryTransactions, c.Record)
	case UpdateClub:
		s.Clubs, err = replaceRecord(s.Clubs, c.Record)
	case UpdateNotice:
		s.Notices, err = replaceRecord(s.Notices, c.Record)
	case UpdateTimetableEntry:
		s.Timetable, err = replaceRecord(s.Timetable, c.Record)
	case UpdateLeaveApplication:
		s.LeaveApplications, err = replaceRecord(s.LeaveApplications, c.Record)
	case UpdateNotification:
		s.Notifications, err = replaceRecord(s.Notifications, c.Record)

	case DeleteStudent:
		s.Students, err = removeRecord(s.Students, c.ID)
	case DeleteFaculty:
		s.Faculty, err = removeRecord(s.Faculty, c.ID)
	case DeleteCourse:
		s.Courses, err = removeRecord(s.Courses, c.ID)
	case DeleteAttendance:
		s.Attendance, err = removeRecord(s.Attendance, c.ID)
	case DeleteExam:
		s.Exams, err = removeRecord(s.Exams, c.ID)
	case DeleteResult:
		s.Results, err = removeRecord(s.Results, c.ID)
	case DeleteFeeStructure:
		s.FeeStructures, err = removeRecord(s.FeeStructures, c.ID)
	case DeleteFeePayment:
		s.FeePayments, err = removeRecord(s.FeePayments, c.ID)
	case DeleteSalary:
		s.Salaries, err = removeRecord(s.Salaries, c.ID)
	case DeleteTransportRoute:
		s.TransportRoutes, err = removeRecord(s.TransportRoutes, c.ID)
	case DeleteVehicle:
		s.Vehicles, err = removeRecord(s.Vehicles, c.ID)
	case DeleteDriver:
		s.Drivers, err = removeRecord(s.Drivers, c.ID)
	case DeleteHostel:
		s.Hostels, err = removeRecord(s.Hostels, c.ID)
	case DeleteBook:
		s.Books, err = removeRecord(s.Books, c.ID)
	case DeleteLibraryTransaction:
		s.LibraryTransactions, err = removeRecord(s.LibraryTransactions, c.ID)
	case DeleteClub:
		s.Clubs, err = removeRecord(s.Clubs, c.ID)
	case DeleteNotice:
		s.Notices, err = removeRecord(s.Notices, c.ID)
	case DeleteTimetableEntry:
		s.Timetable, err = removeRecord(s.Timetable, c.ID)
	case DeleteLeaveApplication:
		s.LeaveApplications, err = removeRecord(s.LeaveApplications, c.ID)
	case DeleteNotification:
		s.Notifications, err = removeRecord(s.Notifications, c.ID)

	case ResetAll:
		next := c.Seed
		next.Auth = s.Auth
		return next, nil
	case LoadSnapshot:
		return c.State, nil
	case SetSession:
		s.Auth.CurrentUserID = c.UserID
		s.Auth.SessionID = c.SessionID
	case ClearSession:
		s.Auth.CurrentUserID = ""
		s.Auth.SessionID = ""
	case UpdateUser:
		s.Auth.Users, err = replaceRecord(s.Auth.Users, c.Record)
	}
	return s, err
}

// appendRecord returns a new slice with the record appended; the input slice
// is left untouched so earlier states stay valid.
func appendRecord[T models.Entity](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

// replaceRecord swaps in the record whose identifier matches, preserving
// order and all other elements.
func replaceRecord[T models.Entity](xs []T, x T) ([]T, error) {
	for i := range xs {
		if xs[i].EntityID() == x.EntityID() {
			out := make([]T, len(xs))
			copy(out, xs)
			out[i] = x
			return out, nil
		}
	}
	return xs, apperrors.ErrRecordNotFound
}

// removeRecord drops exactly the record with the matching identifier.
func removeRecord[T models.Entity](xs []T, id string) ([]T, error) {
	for i := range xs {
		if xs[i].EntityID() == id {
			out := make([]T, 0, len(xs)-1)
			out = append(out, xs[:i]...)
			return append(out, xs[i+1:]...), nil
		}
	}
	return xs, apperrors.ErrRecordNotFound
}

// upsertAttendance keeps at most one record per (student, subject, date)
// slot: re-marking a slot replaces the earlier record in place, otherwise the
// record appends as usual.
func upsertAttendance(xs []models.AttendanceRecord, x models.AttendanceRecord) []models.AttendanceRecord {
	for i := range xs {
		if xs[i].SlotKey() == x.SlotKey() {
			out := make([]models.AttendanceRecord, len(xs))
			copy(out, xs)
			out[i] = x
			return out
		}
	}
	return appendRecord(xs, x)
}
