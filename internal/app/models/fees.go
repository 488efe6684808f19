package models

// FeeStructure is the priced catalog of fee components applicable to one
// (course, branch, semester) triple. TotalFee must equal the sum of the six
// core components; transport, hostel and mess charges are tracked on the
// record but billed separately and excluded from TotalFee.
type FeeStructure struct {
	ID          string  `json:"id"`
	Course      string  `json:"course"`
	Branch      string  `json:"branch"`
	Semester    int     `json:"semester"`
	Tuition     float64 `json:"tuition"`
	Lab         float64 `json:"lab"`
	Library     float64 `json:"library"`
	Sports      float64 `json:"sports"`
	Development float64 `json:"development"`
	Examination float64 `json:"examination"`
	Transport   float64 `json:"transport"`
	Hostel      float64 `json:"hostel"`
	Mess        float64 `json:"mess"`
	TotalFee    float64 `json:"totalFee"`
}

// EntityID implements Entity.
func (f FeeStructure) EntityID() string { return f.ID }

// CoreComponentSum returns the sum of the components that make up TotalFee.
func (f FeeStructure) CoreComponentSum() float64 {
	return f.Tuition + f.Lab + f.Library + f.Sports + f.Development + f.Examination
}

// PaymentStatus represents how far a fee structure has been settled.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
	PaymentUnpaid  PaymentStatus = "unpaid"
)

// FeePayment is one payment a student made against a fee structure. Status is
// derived from the cumulative payments at the time of recording.
type FeePayment struct {
	ID             string        `json:"id"`
	StudentID      string        `json:"studentId"`
	FeeStructureID string        `json:"feeStructureId"`
	Amount         float64       `json:"amount"`
	PaymentDate    string        `json:"paymentDate"`
	PaymentMode    string        `json:"paymentMode"`
	ReceiptNo      string        `json:"receiptNo"`
	Status         PaymentStatus `json:"status"`
}

// EntityID implements Entity.
func (p FeePayment) EntityID() string { return p.ID }
