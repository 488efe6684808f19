package services

import (
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

func feeFixture() *store.Store {
	fs := models.FeeStructure{
		ID: "FEE1", Course: "BT", Branch: "CSE", Semester: 3,
		Tuition: 40000, Lab: 5000, Library: 2000, Sports: 1500,
		Development: 3000, Examination: 2500,
	}
	fs.TotalFee = fs.CoreComponentSum()

	return store.New(models.State{
		Students: []models.Student{
			{ID: "STU1", Name: "Aarav Sharma", Course: "BT", Branch: "CSE", Semester: 3},
			{ID: "STU2", Name: "Riya Iyer", Course: "BT", Branch: "ECE", Semester: 5},
		},
		FeeStructures: []models.FeeStructure{fs},
	}, zerolog.Nop())
}

func TestRecordPaymentDerivesStatus(t *testing.T) {
	svc := NewFeeService(feeFixture(), idgen.New())

	partial, err := svc.RecordPayment(dto.RecordPaymentRequest{
		StudentID: "STU1", Amount: 20000, PaymentDate: "2026-08-01", PaymentMode: "upi",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPartial, partial.Status)
	assert.NotEmpty(t, partial.ReceiptNo)

	settling, err := svc.RecordPayment(dto.RecordPaymentRequest{
		StudentID: "STU1", Amount: 34000, PaymentDate: "2026-08-15", PaymentMode: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, settling.Status)

	status, err := svc.Status("STU1")
	require.NoError(t, err)
	assert.True(t, status.Applicable)
	assert.InDelta(t, 0.0, status.Summary.Pending, 0.001)
	assert.Equal(t, models.PaymentPaid, status.Summary.Status)
}

func TestRecordPaymentWithoutStructure(t *testing.T) {
	svc := NewFeeService(feeFixture(), idgen.New())

	_, err := svc.RecordPayment(dto.RecordPaymentRequest{
		StudentID: "STU2", Amount: 5000, PaymentDate: "2026-08-01", PaymentMode: "cash",
	})

	assert.ErrorIs(t, err, apperrors.ErrFeeStructureNotFound)
}

func TestRecordPaymentUnknownStudent(t *testing.T) {
	svc := NewFeeService(feeFixture(), idgen.New())

	_, err := svc.RecordPayment(dto.RecordPaymentRequest{
		StudentID: "STU9", Amount: 5000, PaymentDate: "2026-08-01", PaymentMode: "cash",
	})

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStatusWithoutStructureIsNotApplicable(t *testing.T) {
	svc := NewFeeService(feeFixture(), idgen.New())

	status, err := svc.Status("STU2")
	require.NoError(t, err)

	assert.False(t, status.Applicable)
	assert.Empty(t, status.FeeStructureID)
	assert.NotEqual(t, models.PaymentPaid, status.Summary.Status)
}

func TestCreateStructureRecomputesTotal(t *testing.T) {
	svc := NewFeeService(feeFixture(), idgen.New())

	created, err := svc.CreateStructure(models.FeeStructure{
		Course: "BT", Branch: "ECE", Semester: 5,
		Tuition: 40000, Lab: 5000, Library: 2000, Sports: 1500,
		Development: 3000, Examination: 2500,
		TotalFee: 999999, // client-supplied total must be ignored
	})
	require.NoError(t, err)

	assert.InDelta(t, 54000.0, created.TotalFee, 0.001)
	assert.NotEmpty(t, created.ID)
}

func TestCreateStructureRejectsDuplicatePlacement(t *testing.T) {
	svc := NewFeeService(feeFixture(), idgen.New())

	_, err := svc.CreateStructure(models.FeeStructure{
		Course: "BT", Branch: "CSE", Semester: 3, Tuition: 1000,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
