package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emirhank/campuscore/internal/app/models"
)

func feeStructure(total float64) *models.FeeStructure {
	return &models.FeeStructure{ID: "FEE1", TotalFee: total}
}

func payments(amounts ...float64) []models.FeePayment {
	var out []models.FeePayment
	for _, a := range amounts {
		out = append(out, models.FeePayment{Amount: a})
	}
	return out
}

func TestLedgerPaid(t *testing.T) {
	s := Ledger(feeStructure(54000), payments(30000, 24000))

	assert.InDelta(t, 54000.0, s.TotalFee, 0.001)
	assert.InDelta(t, 54000.0, s.TotalPaid, 0.001)
	assert.InDelta(t, 0.0, s.Pending, 0.001)
	assert.Equal(t, models.PaymentPaid, s.Status)
}

func TestLedgerPartial(t *testing.T) {
	s := Ledger(feeStructure(54000), payments(20000))

	assert.InDelta(t, 34000.0, s.Pending, 0.001)
	assert.Equal(t, models.PaymentPartial, s.Status)
}

func TestLedgerUnpaid(t *testing.T) {
	s := Ledger(feeStructure(54000), nil)

	assert.InDelta(t, 54000.0, s.Pending, 0.001)
	assert.Equal(t, models.PaymentUnpaid, s.Status)
}

func TestLedgerOverpaymentGoesNegative(t *testing.T) {
	s := Ledger(feeStructure(54000), payments(60000))

	assert.InDelta(t, -6000.0, s.Pending, 0.001)
	assert.Equal(t, models.PaymentPaid, s.Status)
}

func TestLedgerNilStructureIsNeverPaid(t *testing.T) {
	// No applicable fee: all zeroes, but the status must not read as settled.
	s := Ledger(nil, nil)

	assert.InDelta(t, 0.0, s.TotalFee, 0.001)
	assert.InDelta(t, 0.0, s.Pending, 0.001)
	assert.Equal(t, models.PaymentUnpaid, s.Status)
}
