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

func libraryFixture(copies int) *store.Store {
	return store.New(models.State{
		Students: []models.Student{
			{ID: "STU1", Name: "Aarav Sharma"},
			{ID: "STU2", Name: "Riya Iyer"},
		},
		Books: []models.Book{
			{ID: "BKS1", Title: "Operating Systems", Copies: copies, AvailableCopies: copies},
		},
	}, zerolog.Nop())
}

func issueRequest(studentID string) dto.IssueBookRequest {
	return dto.IssueBookRequest{
		BookID: "BKS1", StudentID: studentID,
		IssueDate: "2026-08-01", DueDate: "2026-08-15",
	}
}

func TestIssueDecrementsAvailableCopies(t *testing.T) {
	st := libraryFixture(2)
	svc := NewLibraryService(st, idgen.New())

	txn, err := svc.Issue(issueRequest("STU1"))
	require.NoError(t, err)
	assert.Equal(t, models.LoanIssued, txn.Status)
	assert.Equal(t, 1, st.State().Books[0].AvailableCopies)
}

func TestIssueRefusesWhenNoCopiesLeft(t *testing.T) {
	st := libraryFixture(1)
	svc := NewLibraryService(st, idgen.New())

	_, err := svc.Issue(issueRequest("STU1"))
	require.NoError(t, err)

	_, err = svc.Issue(issueRequest("STU2"))
	assert.ErrorIs(t, err, apperrors.ErrNoCopiesAvailable)
	assert.Equal(t, 0, st.State().Books[0].AvailableCopies)
}

func TestConcurrentIssuesCannotShareLastCopy(t *testing.T) {
	st := libraryFixture(1)
	svc := NewLibraryService(st, idgen.New())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, studentID := range []string{"STU1", "STU2"} {
		wg.Add(1)
		go func(i int, studentID string) {
			defer wg.Done()
			_, errs[i] = svc.Issue(issueRequest(studentID))
		}(i, studentID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrNoCopiesAvailable)
		}
	}
	assert.Equal(t, 1, succeeded)

	state := st.State()
	assert.Equal(t, 0, state.Books[0].AvailableCopies)
	assert.Len(t, state.LibraryTransactions, 1)
}

func TestReturnRestoresCopyAndClosesLoan(t *testing.T) {
	st := libraryFixture(1)
	svc := NewLibraryService(st, idgen.New())

	txn, err := svc.Issue(issueRequest("STU1"))
	require.NoError(t, err)

	returned, err := svc.Return(dto.ReturnBookRequest{
		TransactionID: txn.ID, ReturnDate: "2026-08-10", Fine: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LoanReturned, returned.Status)
	assert.Equal(t, 1, st.State().Books[0].AvailableCopies)

	_, err = svc.Return(dto.ReturnBookRequest{TransactionID: txn.ID, ReturnDate: "2026-08-11"})
	assert.ErrorIs(t, err, apperrors.ErrLoanClosed)
}
