package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

// FacultyService handles faculty employment records.
type FacultyService struct {
	store *store.Store
	ids   *idgen.Generator
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(st *store.Store, ids *idgen.Generator) *FacultyService {
	return &FacultyService{store: st, ids: ids}
}

func (s *FacultyService) validate(faculty *models.Faculty) error {
	if strings.TrimSpace(faculty.Name) == "" {
		return apperrors.NewValidationError("faculty name cannot be empty")
	}
	if faculty.Status == "" {
		faculty.Status = models.FacultyActive
	}
	if !faculty.Status.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown faculty status %q", faculty.Status))
	}
	if faculty.BasicSalary < 0 {
		return apperrors.NewValidationError("basic salary cannot be negative")
	}
	return nil
}

// Create registers a faculty member with a fresh identifier and a unique
// employee code.
func (s *FacultyService) Create(faculty models.Faculty) (models.Faculty, error) {
	if err := s.validate(&faculty); err != nil {
		return models.Faculty{}, err
	}

	faculty.ID = s.ids.NextID("FAC")
	if faculty.JoiningDate == "" {
		faculty.JoiningDate = time.Now().Format("2006-01-02")
	}

	existing := s.store.State().Faculty
	faculty.EmployeeID = idgen.Unique(
		func() string { return s.ids.EmployeeID(time.Now().Year()) },
		func(id string) bool {
			for _, f := range existing {
				if f.EmployeeID == id {
					return true
				}
			}
			return false
		},
	)

	if err := s.store.Dispatch(store.AddFaculty{Record: faculty}); err != nil {
		return models.Faculty{}, err
	}
	recordActivity(s.store, s.ids, "faculty_joined", "Appointed "+faculty.Name, faculty.ID)
	return faculty, nil
}

// Update replaces a faculty record wholesale.
func (s *FacultyService) Update(faculty models.Faculty) error {
	if err := s.validate(&faculty); err != nil {
		return err
	}
	return s.store.Dispatch(store.UpdateFaculty{Record: faculty})
}

// Delete removes a faculty record.
func (s *FacultyService) Delete(id string) error {
	return s.store.Dispatch(store.DeleteFaculty{ID: id})
}

// List returns all faculty in insertion order.
func (s *FacultyService) List() []models.Faculty {
	return s.store.State().Faculty
}

// Get returns one faculty record.
func (s *FacultyService) Get(id string) (models.Faculty, error) {
	f, ok := store.FacultyByID(s.store.State(), id)
	if !ok {
		return models.Faculty{}, apperrors.ErrFacultyNotFound
	}
	return f, nil
}
