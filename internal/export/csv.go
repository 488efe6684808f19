// Package export renders store collections as CSV documents for download.
// Encoding goes through encoding/csv, so fields containing commas, quotes or
// newlines are quoted correctly.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/emirhank/campuscore/internal/app/models"
)

// CSV renders one named collection. The collection names match the JSON keys
// of the snapshot document.
func CSV(state models.State, collection string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var err error
	switch collection {
	case "students":
		err = writeStudents(w, state.Students)
	case "faculty":
		err = writeFaculty(w, state.Faculty)
	case "attendance":
		err = writeAttendance(w, state.Attendance)
	case "results":
		err = writeResults(w, state.Results)
	case "feePayments":
		err = writeFeePayments(w, state.FeePayments)
	case "salaries":
		err = writeSalaries(w, state.Salaries)
	case "books":
		err = writeBooks(w, state.Books)
	default:
		return nil, fmt.Errorf("no CSV export for collection %q", collection)
	}
	if err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeStudents(w *csv.Writer, students []models.Student) error {
	if err := w.Write([]string{"id", "enrollmentNo", "name", "email", "course", "branch", "semester", "year", "status"}); err != nil {
		return err
	}
	for _, s := range students {
		err := w.Write([]string{
			s.ID, s.EnrollmentNo, s.Name, s.Email, s.Course, s.Branch,
			strconv.Itoa(s.Semester), strconv.Itoa(s.Year), string(s.Status),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFaculty(w *csv.Writer, faculty []models.Faculty) error {
	if err := w.Write([]string{"id", "employeeId", "name", "email", "department", "designation", "basicSalary", "subjects", "status"}); err != nil {
		return err
	}
	for _, f := range faculty {
		err := w.Write([]string{
			f.ID, f.EmployeeID, f.Name, f.Email, f.Department, f.Designation,
			formatAmount(f.BasicSalary), strings.Join(f.Subjects, ";"), string(f.Status),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeAttendance(w *csv.Writer, records []models.AttendanceRecord) error {
	if err := w.Write([]string{"id", "studentId", "subjectId", "date", "status", "markedBy"}); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write([]string{r.ID, r.StudentID, r.SubjectID, r.Date, string(r.Status), r.MarkedBy}); err != nil {
			return err
		}
	}
	return nil
}

func writeResults(w *csv.Writer, results []models.Result) error {
	if err := w.Write([]string{"id", "examId", "studentId", "marksObtained"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{r.ID, r.ExamID, r.StudentID, formatAmount(r.MarksObtained)}); err != nil {
			return err
		}
	}
	return nil
}

func writeFeePayments(w *csv.Writer, payments []models.FeePayment) error {
	if err := w.Write([]string{"id", "studentId", "feeStructureId", "amount", "paymentDate", "paymentMode", "receiptNo", "status"}); err != nil {
		return err
	}
	for _, p := range payments {
		err := w.Write([]string{
			p.ID, p.StudentID, p.FeeStructureID, formatAmount(p.Amount),
			p.PaymentDate, p.PaymentMode, p.ReceiptNo, string(p.Status),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeSalaries(w *csv.Writer, salaries []models.Salary) error {
	if err := w.Write([]string{"id", "facultyId", "month", "year", "basicSalary", "grossSalary", "totalDeductions", "netSalary", "status", "paidOn"}); err != nil {
		return err
	}
	for _, s := range salaries {
		err := w.Write([]string{
			s.ID, s.FacultyID, strconv.Itoa(s.Month), strconv.Itoa(s.Year),
			formatAmount(s.BasicSalary), formatAmount(s.GrossSalary),
			formatAmount(s.TotalDeductions), formatAmount(s.NetSalary),
			string(s.Status), s.PaidOn,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeBooks(w *csv.Writer, books []models.Book) error {
	if err := w.Write([]string{"id", "title", "author", "isbn", "category", "copies", "availableCopies"}); err != nil {
		return err
	}
	for _, b := range books {
		err := w.Write([]string{
			b.ID, b.Title, b.Author, b.ISBN, b.Category,
			strconv.Itoa(b.Copies), strconv.Itoa(b.AvailableCopies),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
