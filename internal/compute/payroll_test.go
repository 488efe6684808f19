package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayrollFullBreakdown(t *testing.T) {
	b := Payroll(40000, 0)

	assert.InDelta(t, 40000.0, b.BasicSalary, 0.001)
	assert.InDelta(t, 6800.0, b.DA, 0.001)
	assert.InDelta(t, 9600.0, b.HRA, 0.001)
	assert.InDelta(t, 3200.0, b.TA, 0.001)
	assert.InDelta(t, 1500.0, b.Medical, 0.001)
	assert.InDelta(t, 61100.0, b.GrossSalary, 0.001)
	assert.InDelta(t, 4800.0, b.PF, 0.001)
	assert.InDelta(t, 0.0, b.ESI, 0.001) // gross above the ceiling
	assert.InDelta(t, 3055.0, b.TDS, 0.001)
	assert.InDelta(t, 7855.0, b.TotalDeductions, 0.001)
	assert.InDelta(t, 53245.0, b.NetSalary, 0.001)
}

func TestPayrollESIBelowCeiling(t *testing.T) {
	b := Payroll(12000, 0)

	// gross = 12000 * 1.49 + 1500 = 19380, within the ESI ceiling
	assert.InDelta(t, 19380.0, b.GrossSalary, 0.001)
	assert.InDelta(t, 19380.0*0.0075, b.ESI, 0.001)
	assert.InDelta(t, b.GrossSalary-b.TotalDeductions, b.NetSalary, 0.001)
}

func TestPayrollOtherDeductions(t *testing.T) {
	plain := Payroll(40000, 0)
	withDeduction := Payroll(40000, 500)

	assert.InDelta(t, plain.TotalDeductions+500, withDeduction.TotalDeductions, 0.001)
	assert.InDelta(t, plain.NetSalary-500, withDeduction.NetSalary, 0.001)
}

func TestESIExactCeilingStillContributes(t *testing.T) {
	// The exemption comparison is strictly greater-than: a gross of exactly
	// 21000 still pays the contribution.
	assert.InDelta(t, 157.5, esi(21000), 0.001)
	assert.InDelta(t, 0.0, esi(21000.01), 0.001)
	assert.InDelta(t, 150.0, esi(20000), 0.001)
}
