package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/compute"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

// StudentService handles student records and their derived academic figures.
type StudentService struct {
	store *store.Store
	ids   *idgen.Generator
}

// NewStudentService creates a new student service instance
func NewStudentService(st *store.Store, ids *idgen.Generator) *StudentService {
	return &StudentService{store: st, ids: ids}
}

func (s *StudentService) validate(student *models.Student) error {
	if strings.TrimSpace(student.Name) == "" {
		return apperrors.NewValidationError("student name cannot be empty")
	}
	if student.Status == "" {
		student.Status = models.StudentActive
	}
	if !student.Status.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown student status %q", student.Status))
	}
	if student.Semester < 1 {
		return apperrors.NewValidationError("semester must be at least 1")
	}

	state := s.store.State()
	for _, c := range state.Courses {
		if c.Code != student.Course {
			continue
		}
		for _, b := range c.Branches {
			if b.Code == student.Branch {
				return nil
			}
		}
	}
	return apperrors.NewValidationError(fmt.Sprintf("no branch %q in course %q", student.Branch, student.Course))
}

// Create registers a student, assigning a fresh identifier and a unique
// enrollment number derived from the course code and admission year.
func (s *StudentService) Create(student models.Student) (models.Student, error) {
	if err := s.validate(&student); err != nil {
		return models.Student{}, err
	}

	student.ID = s.ids.NextID("STU")
	student.Year = (student.Semester + 1) / 2
	if student.AdmissionDate == "" {
		student.AdmissionDate = time.Now().Format("2006-01-02")
	}

	admissionYear := time.Now().Year()
	if t, err := time.Parse("2006-01-02", student.AdmissionDate); err == nil {
		admissionYear = t.Year()
	}
	students := s.store.State().Students
	student.EnrollmentNo = idgen.Unique(
		func() string { return s.ids.EnrollmentNumber(student.Course, admissionYear) },
		func(no string) bool {
			for _, st := range students {
				if st.EnrollmentNo == no {
					return true
				}
			}
			return false
		},
	)

	if err := s.store.Dispatch(store.AddStudent{Record: student}); err != nil {
		return models.Student{}, err
	}
	recordActivity(s.store, s.ids, "student_admitted", "Admitted "+student.Name, student.ID)
	return student, nil
}

// Update replaces a student record wholesale.
func (s *StudentService) Update(student models.Student) error {
	if err := s.validate(&student); err != nil {
		return err
	}
	student.Year = (student.Semester + 1) / 2
	return s.store.Dispatch(store.UpdateStudent{Record: student})
}

// Delete removes a student record.
func (s *StudentService) Delete(id string) error {
	return s.store.Dispatch(store.DeleteStudent{ID: id})
}

// List returns all students in insertion order.
func (s *StudentService) List() []models.Student {
	return s.store.State().Students
}

// Get returns one student with the cached derived fields recomputed from the
// live attendance and result collections.
func (s *StudentService) Get(id string) (models.Student, error) {
	state := s.store.State()
	student, ok := store.StudentByID(state, id)
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	student.AttendancePercentage = compute.Attendance(store.AttendanceForStudent(state, id, "")).Percentage
	student.CGPA = studentCGPA(state, id)
	return student, nil
}

// studentCGPA recomputes a student's CGPA from stored results, weighting each
// exam's grade point by the credits of its subject.
func studentCGPA(state models.State, studentID string) float64 {
	var entries []compute.GradeCredit
	for _, r := range store.ResultsForStudent(state, studentID) {
		exam, ok := store.ExamByID(state, r.ExamID)
		if !ok {
			continue
		}
		credits := 3
		if sub, ok := store.SubjectByID(state, exam.SubjectID); ok {
			credits = sub.Credits
		}
		grade := compute.GradeFor(r.MarksObtained, exam.MaxMarks)
		entries = append(entries, compute.GradeCredit{GradePoint: grade.Points, Credits: credits})
	}
	return compute.CGPA(entries)
}
