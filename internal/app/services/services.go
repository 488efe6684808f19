// Package services sits between the HTTP controllers and the store. Services
// validate input, generate identifiers, construct commands, and read derived
// values through the compute engines. They never mutate state directly; every
// write goes through store.Dispatch.
package services

import (
	"time"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

// Services bundles all application services for dependency wiring.
type Services struct {
	Auth       *AuthService
	Student    *StudentService
	Faculty    *FacultyService
	Academic   *AcademicService
	Attendance *AttendanceService
	Exam       *ExamService
	Fee        *FeeService
	Payroll    *PayrollService
	Library    *LibraryService
	Registry   *RegistryService
	Admin      *AdminService
}

// recordActivity appends an audit-trail entry. Failures are ignored: the
// trail is advisory and must never block the operation it describes.
func recordActivity(st *store.Store, ids *idgen.Generator, kind, description, actorID string) {
	_ = st.Dispatch(store.AddActivity{Record: models.Activity{
		ID:          ids.NextID("ACT"),
		Kind:        kind,
		Description: description,
		ActorID:     actorID,
		OccurredAt:  time.Now(),
	}})
}

// notify creates an in-app notification for one user; advisory like the
// activity trail.
func notify(st *store.Store, ids *idgen.Generator, userID, title, body string) {
	_ = st.Dispatch(store.AddNotification{Record: models.Notification{
		ID:        ids.NextID("NTF"),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}})
}
