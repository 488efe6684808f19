package services

import (
	"strings"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/compute"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

// ExamService manages exams, results and the derived academic reports.
type ExamService struct {
	store *store.Store
	ids   *idgen.Generator
}

// NewExamService creates a new exam service instance
func NewExamService(st *store.Store, ids *idgen.Generator) *ExamService {
	return &ExamService{store: st, ids: ids}
}

// CreateExam registers an exam definition.
func (s *ExamService) CreateExam(exam models.Exam) (models.Exam, error) {
	if strings.TrimSpace(exam.Name) == "" {
		return models.Exam{}, apperrors.NewValidationError("exam name cannot be empty")
	}
	if exam.MaxMarks <= 0 {
		return models.Exam{}, apperrors.NewValidationError("max marks must be positive")
	}
	if exam.PassingMarks < 0 || exam.PassingMarks > exam.MaxMarks {
		return models.Exam{}, apperrors.NewValidationError("passing marks must lie within [0, max marks]")
	}
	exam.ID = s.ids.NextID("EXM")
	if err := s.store.Dispatch(store.AddExam{Record: exam}); err != nil {
		return models.Exam{}, err
	}
	return exam, nil
}

// UpdateExam replaces an exam definition wholesale.
func (s *ExamService) UpdateExam(exam models.Exam) error {
	if exam.MaxMarks <= 0 {
		return apperrors.NewValidationError("max marks must be positive")
	}
	return s.store.Dispatch(store.UpdateExam{Record: exam})
}

// DeleteExam removes an exam definition.
func (s *ExamService) DeleteExam(id string) error {
	return s.store.Dispatch(store.DeleteExam{ID: id})
}

// ListExams returns all exam definitions.
func (s *ExamService) ListExams() []models.Exam {
	return s.store.State().Exams
}

// RecordResult stores marks for one student in one exam, enforcing
// 0 <= marks <= exam.MaxMarks. Recording the same (exam, student) pair again
// replaces the earlier marks.
func (s *ExamService) RecordResult(req dto.RecordResultRequest) (models.Result, error) {
	state := s.store.State()
	exam, ok := store.ExamByID(state, req.ExamID)
	if !ok {
		return models.Result{}, apperrors.ErrExamNotFound
	}
	if _, ok := store.StudentByID(state, req.StudentID); !ok {
		return models.Result{}, apperrors.ErrStudentNotFound
	}
	if req.MarksObtained < 0 || req.MarksObtained > exam.MaxMarks {
		return models.Result{}, apperrors.ErrMarksOutOfRange
	}

	for _, existing := range state.Results {
		if existing.ExamID == req.ExamID && existing.StudentID == req.StudentID {
			existing.MarksObtained = req.MarksObtained
			if err := s.store.Dispatch(store.UpdateResult{Record: existing}); err != nil {
				return models.Result{}, err
			}
			return existing, nil
		}
	}

	result := models.Result{
		ID:            s.ids.NextID("RES"),
		ExamID:        req.ExamID,
		StudentID:     req.StudentID,
		MarksObtained: req.MarksObtained,
	}
	if err := s.store.Dispatch(store.AddResult{Record: result}); err != nil {
		return models.Result{}, err
	}
	return result, nil
}

// DeleteResult removes a result record.
func (s *ExamService) DeleteResult(id string) error {
	return s.store.Dispatch(store.DeleteResult{ID: id})
}

// Report assembles the full academic summary for one student: every result
// graded against its exam, the credit-weighted CGPA, and attendance.
func (s *ExamService) Report(studentID string) (dto.StudentReport, error) {
	state := s.store.State()
	student, ok := store.StudentByID(state, studentID)
	if !ok {
		return dto.StudentReport{}, apperrors.ErrStudentNotFound
	}

	report := dto.StudentReport{
		StudentID:  student.ID,
		Name:       student.Name,
		Attendance: compute.Attendance(store.AttendanceForStudent(state, studentID, "")),
	}

	var entries []compute.GradeCredit
	for _, r := range store.ResultsForStudent(state, studentID) {
		exam, ok := store.ExamByID(state, r.ExamID)
		if !ok {
			// Orphaned result: the exam was deleted out from under it.
			continue
		}
		grade := compute.GradeFor(r.MarksObtained, exam.MaxMarks)
		report.Results = append(report.Results, dto.GradedResult{
			ExamID:        exam.ID,
			ExamName:      exam.Name,
			SubjectID:     exam.SubjectID,
			MarksObtained: r.MarksObtained,
			MaxMarks:      exam.MaxMarks,
			Grade:         grade,
			Passed:        r.MarksObtained >= exam.PassingMarks,
		})

		credits := 3
		if sub, ok := store.SubjectByID(state, exam.SubjectID); ok {
			credits = sub.Credits
		}
		entries = append(entries, compute.GradeCredit{GradePoint: grade.Points, Credits: credits})
	}
	report.CGPA = compute.CGPA(entries)
	return report, nil
}
