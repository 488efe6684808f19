package dto

// MarkAttendanceRequest marks one student's attendance slot. Marking the
// same (student, subject, date) slot again overwrites the earlier status.
type MarkAttendanceRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	SubjectID string `json:"subjectId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// RecordResultRequest records marks for one student in one exam.
type RecordResultRequest struct {
	ExamID        string  `json:"examId" binding:"required"`
	StudentID     string  `json:"studentId" binding:"required"`
	MarksObtained float64 `json:"marksObtained"`
}

// RecordPaymentRequest records one fee payment.
type RecordPaymentRequest struct {
	StudentID   string  `json:"studentId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"paymentDate" binding:"required"`
	PaymentMode string  `json:"paymentMode" binding:"required"`
}

// GeneratePayrollRequest runs payroll for one faculty member and month.
type GeneratePayrollRequest struct {
	FacultyID       string  `json:"facultyId" binding:"required"`
	Month           int     `json:"month" binding:"required,min=1,max=12"`
	Year            int     `json:"year" binding:"required"`
	OtherDeductions float64 `json:"otherDeductions"`
}

// IssueBookRequest issues one copy of a book to a student.
type IssueBookRequest struct {
	BookID    string `json:"bookId" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
	IssueDate string `json:"issueDate" binding:"required"`
	DueDate   string `json:"dueDate" binding:"required"`
}

// ReturnBookRequest closes a library transaction.
type ReturnBookRequest struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	ReturnDate    string  `json:"returnDate" binding:"required"`
	Fine          float64 `json:"fine"`
}

// ReviewLeaveRequest approves or rejects a pending leave application.
type ReviewLeaveRequest struct {
	Status     string `json:"status" binding:"required,oneof=approved rejected"`
	ReviewedBy string `json:"reviewedBy" binding:"required"`
}
