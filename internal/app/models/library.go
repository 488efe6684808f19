package models

// Book is a library title with a copy count. AvailableCopies moves with
// issue and return transactions.
type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Category        string `json:"category"`
	Copies          int    `json:"copies"`
	AvailableCopies int    `json:"availableCopies"`
}

// EntityID implements Entity.
func (b Book) EntityID() string { return b.ID }

// LibraryTransactionStatus represents the lifecycle of a book loan.
type LibraryTransactionStatus string

const (
	LoanIssued   LibraryTransactionStatus = "issued"
	LoanReturned LibraryTransactionStatus = "returned"
	LoanOverdue  LibraryTransactionStatus = "overdue"
)

// LibraryTransaction is one issue/return cycle of one book copy.
type LibraryTransaction struct {
	ID         string                   `json:"id"`
	BookID     string                   `json:"bookId"`
	StudentID  string                   `json:"studentId"`
	IssueDate  string                   `json:"issueDate"`
	DueDate    string                   `json:"dueDate"`
	ReturnDate string                   `json:"returnDate"`
	Fine       float64                  `json:"fine"`
	Status     LibraryTransactionStatus `json:"status"`
}

// EntityID implements Entity.
func (t LibraryTransaction) EntityID() string { return t.ID }
