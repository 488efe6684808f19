package models

// SalaryStatus represents whether a payroll record has been disbursed.
type SalaryStatus string

const (
	SalaryPending SalaryStatus = "pending"
	SalaryPaid    SalaryStatus = "paid"
)

// Salary is the payroll record for one faculty member for one month. Every
// figure except BasicSalary and OtherDeductions derives from BasicSalary via
// the payroll calculator.
type Salary struct {
	ID              string       `json:"id"`
	FacultyID       string       `json:"facultyId"`
	Month           int          `json:"month"`
	Year            int          `json:"year"`
	BasicSalary     float64      `json:"basicSalary"`
	DA              float64      `json:"da"`
	HRA             float64      `json:"hra"`
	TA              float64      `json:"ta"`
	Medical         float64      `json:"medical"`
	GrossSalary     float64      `json:"grossSalary"`
	PF              float64      `json:"pf"`
	ESI             float64      `json:"esi"`
	TDS             float64      `json:"tds"`
	OtherDeductions float64      `json:"otherDeductions"`
	TotalDeductions float64      `json:"totalDeductions"`
	NetSalary       float64      `json:"netSalary"`
	Status          SalaryStatus `json:"status"`
	PaidOn          string       `json:"paidOn"`
}

// EntityID implements Entity.
func (s Salary) EntityID() string { return s.ID }
