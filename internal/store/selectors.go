package store

import "github.com/emirhank/campuscore/internal/app/models"

// Read-only selectors over a settled State value. None of these mutate; they
// are safe to call concurrently on the same snapshot.

// StudentByID finds a student record.
func StudentByID(s models.State, id string) (models.Student, bool) {
	for _, st := range s.Students {
		if st.ID == id {
			return st, true
		}
	}
	return models.Student{}, false
}

// FacultyByID finds a faculty record.
func FacultyByID(s models.State, id string) (models.Faculty, bool) {
	for _, f := range s.Faculty {
		if f.ID == id {
			return f, true
		}
	}
	return models.Faculty{}, false
}

// CourseByID finds a course record.
func CourseByID(s models.State, id string) (models.Course, bool) {
	for _, c := range s.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// ExamByID finds an exam record.
func ExamByID(s models.State, id string) (models.Exam, bool) {
	for _, e := range s.Exams {
		if e.ID == id {
			return e, true
		}
	}
	return models.Exam{}, false
}

// BookByID finds a book record.
func BookByID(s models.State, id string) (models.Book, bool) {
	for _, b := range s.Books {
		if b.ID == id {
			return b, true
		}
	}
	return models.Book{}, false
}

// UserByEmail finds an administrative user by login email.
func UserByEmail(s models.State, email string) (models.User, bool) {
	for _, u := range s.Auth.Users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByID finds an administrative user.
func UserByID(s models.State, id string) (models.User, bool) {
	for _, u := range s.Auth.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// SubjectByID searches the course hierarchy for a subject.
func SubjectByID(s models.State, id string) (models.Subject, bool) {
	for _, c := range s.Courses {
		for _, b := range c.Branches {
			for _, sub := range b.Subjects {
				if sub.ID == id {
					return sub, true
				}
			}
		}
	}
	return models.Subject{}, false
}

// FeeStructureFor returns the fee structure applicable to a placement, or
// nil when none exists. The nil return is meaningful: it distinguishes "no
// applicable fee" from a structure with a zero total.
func FeeStructureFor(s models.State, course, branch string, semester int) *models.FeeStructure {
	for i := range s.FeeStructures {
		fs := s.FeeStructures[i]
		if fs.Course == course && fs.Branch == branch && fs.Semester == semester {
			return &fs
		}
	}
	return nil
}

// PaymentsFor returns all payments one student made against one structure.
func PaymentsFor(s models.State, studentID, feeStructureID string) []models.FeePayment {
	var out []models.FeePayment
	for _, p := range s.FeePayments {
		if p.StudentID == studentID && p.FeeStructureID == feeStructureID {
			out = append(out, p)
		}
	}
	return out
}

// AttendanceForStudent returns a student's attendance records, optionally
// narrowed to one subject (empty subjectID means all).
func AttendanceForStudent(s models.State, studentID, subjectID string) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, r := range s.Attendance {
		if r.StudentID != studentID {
			continue
		}
		if subjectID != "" && r.SubjectID != subjectID {
			continue
		}
		out = append(out, r)
	}
	return out
}

// AttendanceForSubject returns every record for one subject, optionally
// narrowed to one date.
func AttendanceForSubject(s models.State, subjectID, date string) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, r := range s.Attendance {
		if r.SubjectID != subjectID {
			continue
		}
		if date != "" && r.Date != date {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ResultsForStudent returns a student's exam results.
func ResultsForStudent(s models.State, studentID string) []models.Result {
	var out []models.Result
	for _, r := range s.Results {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

// SalariesFor returns payroll records for one faculty member, all months.
func SalariesFor(s models.State, facultyID string) []models.Salary {
	var out []models.Salary
	for _, sal := range s.Salaries {
		if sal.FacultyID == facultyID {
			out = append(out, sal)
		}
	}
	return out
}

// SalaryForMonth reports whether payroll already ran for a faculty member in
// a given month.
func SalaryForMonth(s models.State, facultyID string, month, year int) (models.Salary, bool) {
	for _, sal := range s.Salaries {
		if sal.FacultyID == facultyID && sal.Month == month && sal.Year == year {
			return sal, true
		}
	}
	return models.Salary{}, false
}
