package seed

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
)

func generateFixture(t *testing.T) models.State {
	t.Helper()
	return Generate(idgen.New(), rand.New(rand.NewSource(42)), zerolog.Nop())
}

func TestGenerateCoreCollectionsPopulated(t *testing.T) {
	s := generateFixture(t)

	assert.NotEmpty(t, s.Students)
	assert.NotEmpty(t, s.Faculty)
	assert.NotEmpty(t, s.Courses)
	assert.NotEmpty(t, s.FeeStructures)
	assert.NotEmpty(t, s.Attendance)
	assert.NotEmpty(t, s.Exams)
	assert.NotEmpty(t, s.Results)
	assert.NotEmpty(t, s.Salaries)
	assert.NotEmpty(t, s.Books)
	assert.NotEmpty(t, s.Timetable)
}

func TestGenerateEnrollmentNumbersUnique(t *testing.T) {
	s := generateFixture(t)

	seen := map[string]bool{}
	for _, st := range s.Students {
		require.NotEmpty(t, st.EnrollmentNo)
		assert.False(t, seen[st.EnrollmentNo], "duplicate enrollment number %s", st.EnrollmentNo)
		seen[st.EnrollmentNo] = true
	}
}

func TestGenerateEmployeeIDsUnique(t *testing.T) {
	s := generateFixture(t)

	seen := map[string]bool{}
	for _, f := range s.Faculty {
		require.NotEmpty(t, f.EmployeeID)
		assert.False(t, seen[f.EmployeeID], "duplicate employee id %s", f.EmployeeID)
		seen[f.EmployeeID] = true
	}
}

func TestGenerateFeeTotalsMatchComponents(t *testing.T) {
	s := generateFixture(t)

	for _, fs := range s.FeeStructures {
		assert.InDelta(t, fs.CoreComponentSum(), fs.TotalFee, 0.001)
	}
}

func TestGenerateMarksWithinExamBounds(t *testing.T) {
	s := generateFixture(t)

	exams := map[string]models.Exam{}
	for _, e := range s.Exams {
		exams[e.ID] = e
	}
	for _, r := range s.Results {
		exam, ok := exams[r.ExamID]
		require.True(t, ok, "result %s references unknown exam", r.ID)
		assert.GreaterOrEqual(t, r.MarksObtained, 0.0)
		assert.LessOrEqual(t, r.MarksObtained, exam.MaxMarks)
	}
}

func TestGenerateAttendanceSlotsUnique(t *testing.T) {
	s := generateFixture(t)

	seen := map[string]bool{}
	for _, r := range s.Attendance {
		key := r.SlotKey()
		assert.False(t, seen[key], "duplicate attendance slot %s", key)
		seen[key] = true
	}
}

func TestGeneratePaymentsReferenceRealRecords(t *testing.T) {
	s := generateFixture(t)

	students := map[string]bool{}
	for _, st := range s.Students {
		students[st.ID] = true
	}
	structures := map[string]bool{}
	for _, fs := range s.FeeStructures {
		structures[fs.ID] = true
	}
	for _, p := range s.FeePayments {
		assert.True(t, students[p.StudentID])
		assert.True(t, structures[p.FeeStructureID])
		assert.NotEmpty(t, p.ReceiptNo)
		assert.Contains(t, []models.PaymentStatus{models.PaymentPaid, models.PaymentPartial}, p.Status)
	}
}

func TestGenerateReceiptNumbersUnique(t *testing.T) {
	s := generateFixture(t)

	seen := map[string]bool{}
	for _, p := range s.FeePayments {
		assert.False(t, seen[p.ReceiptNo], "duplicate receipt number %s", p.ReceiptNo)
		seen[p.ReceiptNo] = true
	}
}

func TestGenerateLibraryCopyAccounting(t *testing.T) {
	s := generateFixture(t)

	issued := map[string]int{}
	for _, tx := range s.LibraryTransactions {
		if tx.Status == models.LoanIssued {
			issued[tx.BookID]++
		}
	}
	books := map[string]models.Book{}
	for _, b := range s.Books {
		books[b.ID] = b
	}
	for bookID, n := range issued {
		b, ok := books[bookID]
		require.True(t, ok)
		assert.Equal(t, b.Copies-n, b.AvailableCopies)
	}
}

func TestGenerateAuthUsers(t *testing.T) {
	s := generateFixture(t)

	require.Len(t, s.Auth.Users, 3)
	roles := map[models.UserRole]bool{}
	for _, u := range s.Auth.Users {
		assert.NotEmpty(t, u.Password)
		assert.NotEqual(t, "Admin123!", u.Password) // stored hashed, never plain
		roles[u.Role] = true
	}
	assert.True(t, roles[models.RoleAdmin])
	assert.True(t, roles[models.RoleRegistrar])
	assert.True(t, roles[models.RoleAccounts])
}

func TestGenerateDerivedStudentFieldsRefreshed(t *testing.T) {
	s := generateFixture(t)

	withAttendance := 0
	for _, st := range s.Students {
		if st.AttendancePercentage > 0 {
			withAttendance++
		}
	}
	assert.NotZero(t, withAttendance)
}
