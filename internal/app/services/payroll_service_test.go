package services

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

func payrollFixture() *store.Store {
	return store.New(models.State{
		Faculty: []models.Faculty{
			{ID: "FAC1", Name: "Dr. Rajesh Kumar", BasicSalary: 40000, Status: models.FacultyActive},
		},
	}, zerolog.Nop())
}

func TestGeneratePayrollRecordsSalary(t *testing.T) {
	svc := NewPayrollService(payrollFixture(), idgen.New())

	salary, err := svc.Generate(dto.GeneratePayrollRequest{FacultyID: "FAC1", Month: 7, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, models.SalaryPending, salary.Status)
	assert.InDelta(t, 61100.0, salary.GrossSalary, 0.001)
	assert.InDelta(t, 53245.0, salary.NetSalary, 0.001)
}

func TestGeneratePayrollRejectsDuplicateMonth(t *testing.T) {
	svc := NewPayrollService(payrollFixture(), idgen.New())

	_, err := svc.Generate(dto.GeneratePayrollRequest{FacultyID: "FAC1", Month: 7, Year: 2026})
	require.NoError(t, err)

	_, err = svc.Generate(dto.GeneratePayrollRequest{FacultyID: "FAC1", Month: 7, Year: 2026})
	assert.ErrorIs(t, err, apperrors.ErrSalaryAlreadyGenerated)
}

func TestConcurrentGenerationsYieldOneRecord(t *testing.T) {
	st := payrollFixture()
	svc := NewPayrollService(st, idgen.New())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Generate(dto.GeneratePayrollRequest{FacultyID: "FAC1", Month: 7, Year: 2026})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrSalaryAlreadyGenerated)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, st.State().Salaries, 1)
}

func TestGeneratePayrollUnknownFaculty(t *testing.T) {
	svc := NewPayrollService(payrollFixture(), idgen.New())

	_, err := svc.Generate(dto.GeneratePayrollRequest{FacultyID: "FAC9", Month: 7, Year: 2026})
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}
