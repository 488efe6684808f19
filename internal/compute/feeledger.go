package compute

import "github.com/emirhank/campuscore/internal/app/models"

// FeeSummary reconciles a student's fee structure against recorded payments.
type FeeSummary struct {
	TotalFee  float64              `json:"totalFee"`
	TotalPaid float64              `json:"totalPaid"`
	Pending   float64              `json:"pending"`
	Status    models.PaymentStatus `json:"status"`
}

// Ledger computes the fee summary for one student against one fee structure.
// A nil structure means no fee applies to the student's placement: the
// summary degrades to zeroes with status unpaid, and callers that need to
// tell "no applicable fee" from "zero balance" must check the pointer, not
// the numbers. Pending goes negative on overpayment; it is not clamped.
func Ledger(structure *models.FeeStructure, payments []models.FeePayment) FeeSummary {
	s := FeeSummary{Status: models.PaymentUnpaid}
	if structure != nil {
		s.TotalFee = structure.TotalFee
	}
	for _, p := range payments {
		s.TotalPaid += p.Amount
	}
	s.Pending = s.TotalFee - s.TotalPaid
	switch {
	case s.Pending <= 0 && structure != nil:
		s.Status = models.PaymentPaid
	case s.TotalPaid > 0:
		s.Status = models.PaymentPartial
	}
	return s
}
