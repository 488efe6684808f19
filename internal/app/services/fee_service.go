package services

import (
	"fmt"
	"math"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/compute"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

// FeeService manages fee structures, payments and ledger summaries.
type FeeService struct {
	store *store.Store
	ids   *idgen.Generator
}

// NewFeeService creates a new fee service instance
func NewFeeService(st *store.Store, ids *idgen.Generator) *FeeService {
	return &FeeService{store: st, ids: ids}
}

func (s *FeeService) validateStructure(fs *models.FeeStructure) error {
	for _, amount := range []float64{fs.Tuition, fs.Lab, fs.Library, fs.Sports, fs.Development, fs.Examination, fs.Transport, fs.Hostel, fs.Mess} {
		if amount < 0 {
			return apperrors.NewValidationError("fee components cannot be negative")
		}
	}
	if fs.Semester < 1 {
		return apperrors.NewValidationError("semester must be at least 1")
	}
	// TotalFee is derived, never trusted from input.
	fs.TotalFee = fs.CoreComponentSum()
	return nil
}

// CreateStructure registers the fee catalog for one placement triple. Only
// one structure may exist per (course, branch, semester).
func (s *FeeService) CreateStructure(fs models.FeeStructure) (models.FeeStructure, error) {
	if err := s.validateStructure(&fs); err != nil {
		return models.FeeStructure{}, err
	}
	if existing := store.FeeStructureFor(s.store.State(), fs.Course, fs.Branch, fs.Semester); existing != nil {
		return models.FeeStructure{}, apperrors.NewValidationError(
			fmt.Sprintf("fee structure already defined for %s/%s semester %d", fs.Course, fs.Branch, fs.Semester))
	}
	fs.ID = s.ids.NextID("FEE")
	if err := s.store.Dispatch(store.AddFeeStructure{Record: fs}); err != nil {
		return models.FeeStructure{}, err
	}
	return fs, nil
}

// UpdateStructure replaces a fee structure, recomputing the derived total.
func (s *FeeService) UpdateStructure(fs models.FeeStructure) error {
	if err := s.validateStructure(&fs); err != nil {
		return err
	}
	return s.store.Dispatch(store.UpdateFeeStructure{Record: fs})
}

// DeleteStructure removes a fee structure.
func (s *FeeService) DeleteStructure(id string) error {
	return s.store.Dispatch(store.DeleteFeeStructure{ID: id})
}

// ListStructures returns all fee structures.
func (s *FeeService) ListStructures() []models.FeeStructure {
	return s.store.State().FeeStructures
}

// RecordPayment records a payment against the structure applicable to the
// student's placement. The payment status is derived at recording time from
// the cumulative total including this payment; the derivation, the receipt
// uniqueness check and the write run as one atomic store update.
func (s *FeeService) RecordPayment(req dto.RecordPaymentRequest) (models.FeePayment, error) {
	var payment models.FeePayment
	var student models.Student
	err := s.store.Update(func(state models.State) ([]store.Command, error) {
		var ok bool
		student, ok = store.StudentByID(state, req.StudentID)
		if !ok {
			return nil, apperrors.ErrStudentNotFound
		}
		structure := store.FeeStructureFor(state, student.Course, student.Branch, student.Semester)
		if structure == nil {
			return nil, apperrors.ErrFeeStructureNotFound
		}

		paidSoFar := 0.0
		for _, p := range store.PaymentsFor(state, student.ID, structure.ID) {
			paidSoFar += p.Amount
		}
		status := models.PaymentPartial
		if paidSoFar+req.Amount >= structure.TotalFee {
			status = models.PaymentPaid
		}

		receiptNo := idgen.Unique(
			s.ids.ReceiptNumber,
			func(no string) bool {
				for _, p := range state.FeePayments {
					if p.ReceiptNo == no {
						return true
					}
				}
				return false
			},
		)

		payment = models.FeePayment{
			ID:             s.ids.NextID("PAY"),
			StudentID:      student.ID,
			FeeStructureID: structure.ID,
			Amount:         math.Round(req.Amount*100) / 100,
			PaymentDate:    req.PaymentDate,
			PaymentMode:    req.PaymentMode,
			ReceiptNo:      receiptNo,
			Status:         status,
		}
		return []store.Command{store.AddFeePayment{Record: payment}}, nil
	})
	if err != nil {
		return models.FeePayment{}, err
	}
	recordActivity(s.store, s.ids, "fee_payment", fmt.Sprintf("Received %.2f from %s", payment.Amount, student.Name), student.ID)
	return payment, nil
}

// DeletePayment removes a payment record.
func (s *FeeService) DeletePayment(id string) error {
	return s.store.Dispatch(store.DeleteFeePayment{ID: id})
}

// ListPayments returns all payments, optionally filtered by student.
func (s *FeeService) ListPayments(studentID string) []models.FeePayment {
	payments := s.store.State().FeePayments
	if studentID == "" {
		return payments
	}
	var out []models.FeePayment
	for _, p := range payments {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out
}

// Status reconciles one student's ledger. Applicable is false when no fee
// structure covers the student's placement; in that case the summary is all
// zeroes and must not be read as "fully paid".
func (s *FeeService) Status(studentID string) (dto.FeeStatus, error) {
	state := s.store.State()
	student, ok := store.StudentByID(state, studentID)
	if !ok {
		return dto.FeeStatus{}, apperrors.ErrStudentNotFound
	}

	structure := store.FeeStructureFor(state, student.Course, student.Branch, student.Semester)
	status := dto.FeeStatus{
		StudentID:  student.ID,
		Applicable: structure != nil,
	}
	if structure != nil {
		status.FeeStructureID = structure.ID
		status.Summary = compute.Ledger(structure, store.PaymentsFor(state, student.ID, structure.ID))
	} else {
		status.Summary = compute.Ledger(nil, nil)
	}
	return status, nil
}
