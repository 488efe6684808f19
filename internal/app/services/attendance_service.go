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

// AttendanceService marks attendance slots and aggregates statistics.
type AttendanceService struct {
	store *store.Store
	ids   *idgen.Generator
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(st *store.Store, ids *idgen.Generator) *AttendanceService {
	return &AttendanceService{store: st, ids: ids}
}

// Mark records one attendance slot. The store keeps at most one record per
// (student, subject, date): re-marking replaces the earlier status.
func (s *AttendanceService) Mark(req dto.MarkAttendanceRequest, markedBy string) (models.AttendanceRecord, error) {
	status := models.AttendanceStatus(req.Status)
	if !status.Valid() {
		return models.AttendanceRecord{}, apperrors.NewValidationError(fmt.Sprintf("unknown attendance status %q", req.Status))
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return models.AttendanceRecord{}, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	state := s.store.State()
	if _, ok := store.StudentByID(state, req.StudentID); !ok {
		return models.AttendanceRecord{}, apperrors.ErrStudentNotFound
	}
	if _, ok := store.SubjectByID(state, req.SubjectID); !ok {
		return models.AttendanceRecord{}, apperrors.ErrSubjectNotFound
	}

	record := models.AttendanceRecord{
		ID:        s.ids.NextID("ATT"),
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Date:      req.Date,
		Status:    status,
		MarkedBy:  markedBy,
		MarkedAt:  time.Now(),
	}
	if err := s.store.Dispatch(store.AddAttendance{Record: record}); err != nil {
		return models.AttendanceRecord{}, err
	}
	return record, nil
}

// Delete removes one attendance record by identifier.
func (s *AttendanceService) Delete(id string) error {
	return s.store.Dispatch(store.DeleteAttendance{ID: id})
}

// ForStudent returns a student's records, optionally narrowed to a subject.
func (s *AttendanceService) ForStudent(studentID, subjectID string) []models.AttendanceRecord {
	return store.AttendanceForStudent(s.store.State(), studentID, subjectID)
}

// StudentStats aggregates one student's attendance.
func (s *AttendanceService) StudentStats(studentID, subjectID string) (compute.AttendanceStats, error) {
	state := s.store.State()
	if _, ok := store.StudentByID(state, studentID); !ok {
		return compute.AttendanceStats{}, apperrors.ErrStudentNotFound
	}
	return compute.Attendance(store.AttendanceForStudent(state, studentID, subjectID)), nil
}

// SubjectStats aggregates a whole cohort's attendance for one subject,
// optionally on a single date.
func (s *AttendanceService) SubjectStats(subjectID, date string) (compute.AttendanceStats, error) {
	state := s.store.State()
	if _, ok := store.SubjectByID(state, subjectID); !ok {
		return compute.AttendanceStats{}, apperrors.ErrSubjectNotFound
	}
	return compute.Attendance(store.AttendanceForSubject(state, subjectID, date)), nil
}
