package services

import (
	"strings"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

// AcademicService manages the course / branch / subject hierarchy.
type AcademicService struct {
	store *store.Store
	ids   *idgen.Generator
}

// NewAcademicService creates a new academic service instance
func NewAcademicService(st *store.Store, ids *idgen.Generator) *AcademicService {
	return &AcademicService{store: st, ids: ids}
}

func (s *AcademicService) validate(course *models.Course) error {
	if strings.TrimSpace(course.Name) == "" || strings.TrimSpace(course.Code) == "" {
		return apperrors.NewValidationError("course name and code are required")
	}
	if course.Duration < 1 {
		return apperrors.NewValidationError("course duration must be at least one year")
	}
	return nil
}

// assignIDs gives fresh identifiers to any branch or subject added without
// one; existing identifiers survive a wholesale course update.
func (s *AcademicService) assignIDs(course *models.Course) {
	for i := range course.Branches {
		if course.Branches[i].ID == "" {
			course.Branches[i].ID = s.ids.NextID("BRN")
		}
		for j := range course.Branches[i].Subjects {
			if course.Branches[i].Subjects[j].ID == "" {
				course.Branches[i].Subjects[j].ID = s.ids.NextID("SUB")
			}
		}
	}
}

// Create registers a course with its full branch/subject tree.
func (s *AcademicService) Create(course models.Course) (models.Course, error) {
	if err := s.validate(&course); err != nil {
		return models.Course{}, err
	}
	course.ID = s.ids.NextID("CRS")
	s.assignIDs(&course)
	if err := s.store.Dispatch(store.AddCourse{Record: course}); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// Update replaces a course tree wholesale.
func (s *AcademicService) Update(course models.Course) error {
	if err := s.validate(&course); err != nil {
		return err
	}
	s.assignIDs(&course)
	return s.store.Dispatch(store.UpdateCourse{Record: course})
}

// Delete removes a course and its owned branches and subjects.
func (s *AcademicService) Delete(id string) error {
	return s.store.Dispatch(store.DeleteCourse{ID: id})
}

// List returns all courses.
func (s *AcademicService) List() []models.Course {
	return s.store.State().Courses
}

// Get returns one course tree.
func (s *AcademicService) Get(id string) (models.Course, error) {
	c, ok := store.CourseByID(s.store.State(), id)
	if !ok {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	return c, nil
}
