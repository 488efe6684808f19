package services

import (
	"strings"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

// LibraryService manages the book catalog and issue/return transactions.
type LibraryService struct {
	store *store.Store
	ids   *idgen.Generator
}

// NewLibraryService creates a new library service instance
func NewLibraryService(st *store.Store, ids *idgen.Generator) *LibraryService {
	return &LibraryService{store: st, ids: ids}
}

// AddBook registers a title. AvailableCopies starts equal to Copies.
func (s *LibraryService) AddBook(book models.Book) (models.Book, error) {
	if strings.TrimSpace(book.Title) == "" {
		return models.Book{}, apperrors.NewValidationError("book title cannot be empty")
	}
	if book.Copies < 0 {
		return models.Book{}, apperrors.NewValidationError("copy count cannot be negative")
	}
	book.ID = s.ids.NextID("BKS")
	book.AvailableCopies = book.Copies
	if err := s.store.Dispatch(store.AddBook{Record: book}); err != nil {
		return models.Book{}, err
	}
	return book, nil
}

// UpdateBook replaces a book record wholesale.
func (s *LibraryService) UpdateBook(book models.Book) error {
	if book.AvailableCopies < 0 || book.AvailableCopies > book.Copies {
		return apperrors.NewValidationError("available copies must lie within [0, copies]")
	}
	return s.store.Dispatch(store.UpdateBook{Record: book})
}

// DeleteBook removes a title from the catalog.
func (s *LibraryService) DeleteBook(id string) error {
	return s.store.Dispatch(store.DeleteBook{ID: id})
}

// ListBooks returns the catalog.
func (s *LibraryService) ListBooks() []models.Book {
	return s.store.State().Books
}

// Issue lends one copy of a book to a student: opens a transaction and
// decrements the book's available count. The availability check and both
// writes run as one atomic store update, so two issues cannot claim the same
// last copy.
func (s *LibraryService) Issue(req dto.IssueBookRequest) (models.LibraryTransaction, error) {
	var txn models.LibraryTransaction
	err := s.store.Update(func(state models.State) ([]store.Command, error) {
		book, ok := store.BookByID(state, req.BookID)
		if !ok {
			return nil, apperrors.ErrBookNotFound
		}
		if _, ok := store.StudentByID(state, req.StudentID); !ok {
			return nil, apperrors.ErrStudentNotFound
		}
		if book.AvailableCopies <= 0 {
			return nil, apperrors.ErrNoCopiesAvailable
		}

		txn = models.LibraryTransaction{
			ID:        s.ids.NextID("LTX"),
			BookID:    book.ID,
			StudentID: req.StudentID,
			IssueDate: req.IssueDate,
			DueDate:   req.DueDate,
			Status:    models.LoanIssued,
		}
		book.AvailableCopies--
		return []store.Command{
			store.AddLibraryTransaction{Record: txn},
			store.UpdateBook{Record: book},
		}, nil
	})
	if err != nil {
		return models.LibraryTransaction{}, err
	}
	return txn, nil
}

// Return closes an open loan: stamps the return date and fine, and gives the
// copy back to the catalog.
func (s *LibraryService) Return(req dto.ReturnBookRequest) (models.LibraryTransaction, error) {
	var txn models.LibraryTransaction
	err := s.store.Update(func(state models.State) ([]store.Command, error) {
		found := false
		for _, t := range state.LibraryTransactions {
			if t.ID == req.TransactionID {
				txn, found = t, true
				break
			}
		}
		if !found {
			return nil, apperrors.ErrLoanNotFound
		}
		if txn.Status == models.LoanReturned {
			return nil, apperrors.ErrLoanClosed
		}

		txn.ReturnDate = req.ReturnDate
		txn.Fine = req.Fine
		txn.Status = models.LoanReturned
		cmds := []store.Command{store.UpdateLibraryTransaction{Record: txn}}

		if book, ok := store.BookByID(state, txn.BookID); ok && book.AvailableCopies < book.Copies {
			book.AvailableCopies++
			cmds = append(cmds, store.UpdateBook{Record: book})
		}
		return cmds, nil
	})
	if err != nil {
		return models.LibraryTransaction{}, err
	}
	return txn, nil
}

// ListTransactions returns loans, optionally filtered by student.
func (s *LibraryService) ListTransactions(studentID string) []models.LibraryTransaction {
	txns := s.store.State().LibraryTransactions
	if studentID == "" {
		return txns
	}
	var out []models.LibraryTransaction
	for _, t := range txns {
		if t.StudentID == studentID {
			out = append(out, t)
		}
	}
	return out
}
