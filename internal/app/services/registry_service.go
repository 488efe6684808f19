package services

import (
	"time"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/idgen"
	"github.com/emirhank/campuscore/internal/store"
)

// RegistryService covers the campus registries that are plain record keeping:
// transport, hostels, clubs, notices, timetable, leave and notifications.
// These collections have no derived computation, so the service is thin
// validation plus command dispatch.
type RegistryService struct {
	store *store.Store
	ids   *idgen.Generator
}

// NewRegistryService creates a new registry service instance
func NewRegistryService(st *store.Store, ids *idgen.Generator) *RegistryService {
	return &RegistryService{store: st, ids: ids}
}

// Transport fleet.

func (s *RegistryService) CreateRoute(r models.TransportRoute) (models.TransportRoute, error) {
	r.ID = s.ids.NextID("TRT")
	if err := s.store.Dispatch(store.AddTransportRoute{Record: r}); err != nil {
		return models.TransportRoute{}, err
	}
	return r, nil
}

func (s *RegistryService) UpdateRoute(r models.TransportRoute) error {
	return s.store.Dispatch(store.UpdateTransportRoute{Record: r})
}

func (s *RegistryService) DeleteRoute(id string) error {
	return s.store.Dispatch(store.DeleteTransportRoute{ID: id})
}

func (s *RegistryService) ListRoutes() []models.TransportRoute {
	return s.store.State().TransportRoutes
}

func (s *RegistryService) CreateVehicle(v models.Vehicle) (models.Vehicle, error) {
	v.ID = s.ids.NextID("VHC")
	if err := s.store.Dispatch(store.AddVehicle{Record: v}); err != nil {
		return models.Vehicle{}, err
	}
	return v, nil
}

func (s *RegistryService) UpdateVehicle(v models.Vehicle) error {
	return s.store.Dispatch(store.UpdateVehicle{Record: v})
}

func (s *RegistryService) DeleteVehicle(id string) error {
	return s.store.Dispatch(store.DeleteVehicle{ID: id})
}

func (s *RegistryService) ListVehicles() []models.Vehicle {
	return s.store.State().Vehicles
}

func (s *RegistryService) CreateDriver(d models.Driver) (models.Driver, error) {
	d.ID = s.ids.NextID("DRV")
	if err := s.store.Dispatch(store.AddDriver{Record: d}); err != nil {
		return models.Driver{}, err
	}
	return d, nil
}

func (s *RegistryService) UpdateDriver(d models.Driver) error {
	return s.store.Dispatch(store.UpdateDriver{Record: d})
}

func (s *RegistryService) DeleteDriver(id string) error {
	return s.store.Dispatch(store.DeleteDriver{ID: id})
}

func (s *RegistryService) ListDrivers() []models.Driver {
	return s.store.State().Drivers
}

// Hostels.

func (s *RegistryService) CreateHostel(h models.Hostel) (models.Hostel, error) {
	h.ID = s.ids.NextID("HST")
	for i := range h.Rooms {
		if h.Rooms[i].ID == "" {
			h.Rooms[i].ID = s.ids.NextID("ROM")
		}
	}
	if err := s.store.Dispatch(store.AddHostel{Record: h}); err != nil {
		return models.Hostel{}, err
	}
	return h, nil
}

func (s *RegistryService) UpdateHostel(h models.Hostel) error {
	for i := range h.Rooms {
		if h.Rooms[i].ID == "" {
			h.Rooms[i].ID = s.ids.NextID("ROM")
		}
	}
	return s.store.Dispatch(store.UpdateHostel{Record: h})
}

func (s *RegistryService) DeleteHostel(id string) error {
	return s.store.Dispatch(store.DeleteHostel{ID: id})
}

func (s *RegistryService) ListHostels() []models.Hostel {
	return s.store.State().Hostels
}

// Clubs.

func (s *RegistryService) CreateClub(c models.Club) (models.Club, error) {
	c.ID = s.ids.NextID("CLB")
	if err := s.store.Dispatch(store.AddClub{Record: c}); err != nil {
		return models.Club{}, err
	}
	return c, nil
}

func (s *RegistryService) UpdateClub(c models.Club) error {
	return s.store.Dispatch(store.UpdateClub{Record: c})
}

func (s *RegistryService) DeleteClub(id string) error {
	return s.store.Dispatch(store.DeleteClub{ID: id})
}

func (s *RegistryService) ListClubs() []models.Club {
	return s.store.State().Clubs
}

// Notices.

func (s *RegistryService) PostNotice(n models.Notice) (models.Notice, error) {
	if n.Title == "" {
		return models.Notice{}, apperrors.NewValidationError("notice title cannot be empty")
	}
	if n.Audience == "" {
		n.Audience = "all"
	}
	n.ID = s.ids.NextID("NTC")
	n.PostedAt = time.Now()
	if err := s.store.Dispatch(store.AddNotice{Record: n}); err != nil {
		return models.Notice{}, err
	}
	// Fan the notice out to every portal user's notification feed.
	for _, u := range s.store.State().Auth.Users {
		notify(s.store, s.ids, u.ID, n.Title, n.Body)
	}
	return n, nil
}

func (s *RegistryService) DeleteNotice(id string) error {
	return s.store.Dispatch(store.DeleteNotice{ID: id})
}

func (s *RegistryService) ListNotices() []models.Notice {
	return s.store.State().Notices
}

// Timetable.

func (s *RegistryService) CreateTimetableEntry(t models.TimetableEntry) (models.TimetableEntry, error) {
	if _, ok := store.SubjectByID(s.store.State(), t.SubjectID); !ok {
		return models.TimetableEntry{}, apperrors.ErrSubjectNotFound
	}
	t.ID = s.ids.NextID("TTE")
	if err := s.store.Dispatch(store.AddTimetableEntry{Record: t}); err != nil {
		return models.TimetableEntry{}, err
	}
	return t, nil
}

func (s *RegistryService) UpdateTimetableEntry(t models.TimetableEntry) error {
	return s.store.Dispatch(store.UpdateTimetableEntry{Record: t})
}

func (s *RegistryService) DeleteTimetableEntry(id string) error {
	return s.store.Dispatch(store.DeleteTimetableEntry{ID: id})
}

// Timetable returns entries for one cohort; zero semester means all.
func (s *RegistryService) Timetable(course, branch string, semester int) []models.TimetableEntry {
	var out []models.TimetableEntry
	for _, t := range s.store.State().Timetable {
		if course != "" && t.Course != course {
			continue
		}
		if branch != "" && t.Branch != branch {
			continue
		}
		if semester != 0 && t.Semester != semester {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Leave applications.

func (s *RegistryService) ApplyLeave(l models.LeaveApplication) (models.LeaveApplication, error) {
	if l.ApplicantID == "" || l.FromDate == "" || l.ToDate == "" {
		return models.LeaveApplication{}, apperrors.NewValidationError("applicant and date range are required")
	}
	l.ID = s.ids.NextID("LVE")
	l.Status = models.LeavePending
	l.ReviewedBy = ""
	if err := s.store.Dispatch(store.AddLeaveApplication{Record: l}); err != nil {
		return models.LeaveApplication{}, err
	}
	return l, nil
}

// ReviewLeave settles a pending application. Settled applications are final.
func (s *RegistryService) ReviewLeave(id string, req dto.ReviewLeaveRequest) (models.LeaveApplication, error) {
	for _, l := range s.store.State().LeaveApplications {
		if l.ID != id {
			continue
		}
		if l.Status != models.LeavePending {
			return models.LeaveApplication{}, apperrors.NewValidationError("leave application is already settled")
		}
		l.Status = models.LeaveStatus(req.Status)
		l.ReviewedBy = req.ReviewedBy
		if err := s.store.Dispatch(store.UpdateLeaveApplication{Record: l}); err != nil {
			return models.LeaveApplication{}, err
		}
		return l, nil
	}
	return models.LeaveApplication{}, apperrors.ErrRecordNotFound
}

func (s *RegistryService) DeleteLeave(id string) error {
	return s.store.Dispatch(store.DeleteLeaveApplication{ID: id})
}

func (s *RegistryService) ListLeaves() []models.LeaveApplication {
	return s.store.State().LeaveApplications
}

// Activity trail and notifications.

func (s *RegistryService) ListActivities() []models.Activity {
	return s.store.State().Activities
}

// Notifications returns one user's notifications.
func (s *RegistryService) Notifications(userID string) []models.Notification {
	var out []models.Notification
	for _, n := range s.store.State().Notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// MarkNotificationRead flips one notification to read.
func (s *RegistryService) MarkNotificationRead(id string) error {
	for _, n := range s.store.State().Notifications {
		if n.ID == id {
			n.Read = true
			return s.store.Dispatch(store.UpdateNotification{Record: n})
		}
	}
	return apperrors.ErrRecordNotFound
}
