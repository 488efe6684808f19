package dto

import "github.com/emirhank/campuscore/internal/compute"

// GradedResult is one exam result with its derived grade.
type GradedResult struct {
	ExamID        string        `json:"examId"`
	ExamName      string        `json:"examName"`
	SubjectID     string        `json:"subjectId"`
	MarksObtained float64       `json:"marksObtained"`
	MaxMarks      float64       `json:"maxMarks"`
	Grade         compute.Grade `json:"grade"`
	Passed        bool          `json:"passed"`
}

// StudentReport is the academic summary for one student.
type StudentReport struct {
	StudentID  string                  `json:"studentId"`
	Name       string                  `json:"name"`
	Results    []GradedResult          `json:"results"`
	CGPA       float64                 `json:"cgpa"`
	Attendance compute.AttendanceStats `json:"attendance"`
}

// FeeStatus is the ledger summary for one student, with the applicability
// flag that tells "no fee structure" apart from "zero balance".
type FeeStatus struct {
	StudentID      string             `json:"studentId"`
	FeeStructureID string             `json:"feeStructureId,omitempty"`
	Applicable     bool               `json:"applicable"`
	Summary        compute.FeeSummary `json:"summary"`
}

// DashboardCounts summarizes collection sizes for the admin landing page.
type DashboardCounts struct {
	Students        int     `json:"students"`
	Faculty         int     `json:"faculty"`
	Courses         int     `json:"courses"`
	PendingLeaves   int     `json:"pendingLeaves"`
	ActiveNotices   int     `json:"activeNotices"`
	FeesCollected   float64 `json:"feesCollected"`
	BooksIssued     int     `json:"booksIssued"`
	HostelOccupancy int     `json:"hostelOccupancy"`
}
