package services

import (
	"fmt"
	"time"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/compute"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

// PayrollService derives and records monthly salaries for faculty.
type PayrollService struct {
	store *store.Store
	ids   *idgen.Generator
}

// NewPayrollService creates a new payroll service instance
func NewPayrollService(st *store.Store, ids *idgen.Generator) *PayrollService {
	return &PayrollService{store: st, ids: ids}
}

// Generate runs payroll for one faculty member for one month. Each
// (faculty, month, year) combination may hold at most one record.
func (s *PayrollService) Generate(req dto.GeneratePayrollRequest) (models.Salary, error) {
	if req.Month < 1 || req.Month > 12 {
		return models.Salary{}, apperrors.NewValidationError("month must lie within [1, 12]")
	}
	if req.OtherDeductions < 0 {
		return models.Salary{}, apperrors.NewValidationError("other deductions cannot be negative")
	}

	// The duplicate-month guard and the write run atomically so concurrent
	// generations cannot both pass the check.
	var salary models.Salary
	var faculty models.Faculty
	err := s.store.Update(func(state models.State) ([]store.Command, error) {
		var ok bool
		faculty, ok = store.FacultyByID(state, req.FacultyID)
		if !ok {
			return nil, apperrors.ErrFacultyNotFound
		}
		if _, exists := store.SalaryForMonth(state, req.FacultyID, req.Month, req.Year); exists {
			return nil, apperrors.ErrSalaryAlreadyGenerated
		}

		b := compute.Payroll(faculty.BasicSalary, req.OtherDeductions)
		salary = models.Salary{
			ID:              s.ids.NextID("SAL"),
			FacultyID:       faculty.ID,
			Month:           req.Month,
			Year:            req.Year,
			BasicSalary:     b.BasicSalary,
			DA:              b.DA,
			HRA:             b.HRA,
			TA:              b.TA,
			Medical:         b.Medical,
			GrossSalary:     b.GrossSalary,
			PF:              b.PF,
			ESI:             b.ESI,
			TDS:             b.TDS,
			OtherDeductions: b.OtherDeductions,
			TotalDeductions: b.TotalDeductions,
			NetSalary:       b.NetSalary,
			Status:          models.SalaryPending,
		}
		return []store.Command{store.AddSalary{Record: salary}}, nil
	})
	if err != nil {
		return models.Salary{}, err
	}
	recordActivity(s.store, s.ids, "payroll_generated",
		fmt.Sprintf("Payroll %d/%d generated for %s", req.Month, req.Year, faculty.Name), faculty.ID)
	return salary, nil
}

// Preview computes a breakdown for a faculty member's current basic salary
// without recording anything.
func (s *PayrollService) Preview(facultyID string, otherDeductions float64) (compute.SalaryBreakdown, error) {
	faculty, ok := store.FacultyByID(s.store.State(), facultyID)
	if !ok {
		return compute.SalaryBreakdown{}, apperrors.ErrFacultyNotFound
	}
	return compute.Payroll(faculty.BasicSalary, otherDeductions), nil
}

// MarkPaid flips a pending salary record to paid, stamping the payout date.
func (s *PayrollService) MarkPaid(salaryID string) (models.Salary, error) {
	for _, sal := range s.store.State().Salaries {
		if sal.ID != salaryID {
			continue
		}
		sal.Status = models.SalaryPaid
		sal.PaidOn = time.Now().Format("2006-01-02")
		if err := s.store.Dispatch(store.UpdateSalary{Record: sal}); err != nil {
			return models.Salary{}, err
		}
		return sal, nil
	}
	return models.Salary{}, apperrors.ErrRecordNotFound
}

// Delete removes a salary record.
func (s *PayrollService) Delete(id string) error {
	return s.store.Dispatch(store.DeleteSalary{ID: id})
}

// List returns salary records, optionally filtered by faculty member.
func (s *PayrollService) List(facultyID string) []models.Salary {
	state := s.store.State()
	if facultyID == "" {
		return state.Salaries
	}
	return store.SalariesFor(state, facultyID)
}
