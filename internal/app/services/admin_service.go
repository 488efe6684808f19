package services

import (
	"github.com/rs/zerolog"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/export"
	"github.com/emirhank/campuscore/internal/snapshot"
	"github.com/emirhank/campuscore/internal/store"
)

// AdminService covers cross-cutting administration: full reset, explicit
// snapshot writes, CSV exports and the dashboard.
type AdminService struct {
	store    *store.Store
	snapshot *snapshot.Store
	seedFn   func() models.State
	logger   zerolog.Logger
}

// NewAdminService creates a new admin service instance. seedFn regenerates
// the demo dataset; it owns its random source, so resets never touch the
// generators used for live identifiers.
func NewAdminService(st *store.Store, snap *snapshot.Store, seedFn func() models.State, logger zerolog.Logger) *AdminService {
	return &AdminService{store: st, snapshot: snap, seedFn: seedFn, logger: logger}
}

// Reset discards every collection and reinstalls freshly generated seed data.
// The session sub-state survives, so the caller stays logged in.
func (s *AdminService) Reset() error {
	if err := s.store.Dispatch(store.ResetAll{Seed: s.seedFn()}); err != nil {
		return err
	}
	s.logger.Info().Msg("Store reset to seed data")
	return nil
}

// SaveNow writes the snapshot synchronously, bypassing the debounced writer.
// Used at shutdown and by the explicit save endpoint.
func (s *AdminService) SaveNow() error {
	return s.snapshot.Save(s.store.State())
}

// Export renders one collection as CSV.
func (s *AdminService) Export(collection string) ([]byte, error) {
	return export.CSV(s.store.State(), collection)
}

// Dashboard aggregates the landing-page counters from the live state.
func (s *AdminService) Dashboard() dto.DashboardCounts {
	state := s.store.State()
	counts := dto.DashboardCounts{
		Students: len(state.Students),
		Faculty:  len(state.Faculty),
		Courses:  len(state.Courses),
	}
	for _, l := range state.LeaveApplications {
		if l.Status == models.LeavePending {
			counts.PendingLeaves++
		}
	}
	counts.ActiveNotices = len(state.Notices)
	for _, p := range state.FeePayments {
		counts.FeesCollected += p.Amount
	}
	for _, t := range state.LibraryTransactions {
		if t.Status == models.LoanIssued {
			counts.BooksIssued++
		}
	}
	for _, h := range state.Hostels {
		for _, r := range h.Rooms {
			counts.HostelOccupancy += len(r.Occupants)
		}
	}
	return counts
}
