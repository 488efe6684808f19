package compute

// Payroll rates. These are fixed constants of the institution, not
// configuration.
const (
	daRate       = 0.17
	hraRate      = 0.24
	taRate       = 0.08
	medicalFixed = 1500.0
	pfRate       = 0.12
	esiRate      = 0.0075
	esiCeiling   = 21000.0
	tdsRate      = 0.05
)

// SalaryBreakdown is the full derivation of a month's pay from a base figure.
type SalaryBreakdown struct {
	BasicSalary     float64 `json:"basicSalary"`
	DA              float64 `json:"da"`
	HRA             float64 `json:"hra"`
	TA              float64 `json:"ta"`
	Medical         float64 `json:"medical"`
	GrossSalary     float64 `json:"grossSalary"`
	PF              float64 `json:"pf"`
	ESI             float64 `json:"esi"`
	TDS             float64 `json:"tds"`
	OtherDeductions float64 `json:"otherDeductions"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetSalary       float64 `json:"netSalary"`
}

// Payroll computes the full salary breakdown for a base salary.
// otherDeductions covers manually entered deductions and is usually 0.
func Payroll(basicSalary, otherDeductions float64) SalaryBreakdown {
	b := SalaryBreakdown{
		BasicSalary:     basicSalary,
		DA:              basicSalary * daRate,
		HRA:             basicSalary * hraRate,
		TA:              basicSalary * taRate,
		Medical:         medicalFixed,
		OtherDeductions: otherDeductions,
	}
	b.GrossSalary = basicSalary + b.DA + b.HRA + b.TA + b.Medical
	b.PF = basicSalary * pfRate
	b.ESI = esi(b.GrossSalary)
	b.TDS = b.GrossSalary * tdsRate
	b.TotalDeductions = b.PF + b.ESI + b.TDS + otherDeductions
	b.NetSalary = b.GrossSalary - b.TotalDeductions
	return b
}

// esi applies the statutory exemption: contributions stop once gross pay
// exceeds the ceiling. The comparison is strictly greater-than, so a gross of
// exactly 21000 still contributes.
func esi(gross float64) float64 {
	if gross > esiCeiling {
		return 0
	}
	return gross * esiRate
}
