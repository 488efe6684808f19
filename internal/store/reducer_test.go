package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
)

func TestReduceNilCommandIsIdentity(t *testing.T) {
	s := models.State{Students: []models.Student{{ID: "STU1"}}}

	next, err := Reduce(s, nil)

	require.NoError(t, err)
	assert.Equal(t, s, next)
}

func TestReduceAddAppendsInOrder(t *testing.T) {
	s := models.State{}

	s, err := Reduce(s, AddStudent{Record: models.Student{ID: "STU1", Name: "First"}})
	require.NoError(t, err)
	s, err = Reduce(s, AddStudent{Record: models.Student{ID: "STU2", Name: "Second"}})
	require.NoError(t, err)

	require.Len(t, s.Students, 2)
	assert.Equal(t, "STU1", s.Students[0].ID)
	assert.Equal(t, "STU2", s.Students[1].ID)
}

func TestReduceUpdatePreservesOrder(t *testing.T) {
	s := models.State{Students: []models.Student{
		{ID: "STU1", Name: "First"},
		{ID: "STU2", Name: "Second"},
		{ID: "STU3", Name: "Third"},
	}}

	next, err := Reduce(s, UpdateStudent{Record: models.Student{ID: "STU2", Name: "Renamed"}})

	require.NoError(t, err)
	require.Len(t, next.Students, 3)
	assert.Equal(t, "STU1", next.Students[0].ID)
	assert.Equal(t, "Renamed", next.Students[1].Name)
	assert.Equal(t, "STU3", next.Students[2].ID)
	// the original state must be untouched
	assert.Equal(t, "Second", s.Students[1].Name)
}

func TestReduceUpdateMissingIDFails(t *testing.T) {
	s := models.State{Students: []models.Student{{ID: "STU1"}}}

	next, err := Reduce(s, UpdateStudent{Record: models.Student{ID: "STU9"}})

	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
	assert.Equal(t, s, next)
}

func TestReduceDeleteRemovesExactlyOne(t *testing.T) {
	s := models.State{Books: []models.Book{
		{ID: "BKS1"}, {ID: "BKS2"}, {ID: "BKS3"},
	}}

	next, err := Reduce(s, DeleteBook{ID: "BKS2"})

	require.NoError(t, err)
	require.Len(t, next.Books, 2)
	assert.Equal(t, "BKS1", next.Books[0].ID)
	assert.Equal(t, "BKS3", next.Books[1].ID)
}

func TestReduceDeleteMissingIDFails(t *testing.T) {
	s := models.State{}

	_, err := Reduce(s, DeleteBook{ID: "BKS9"})

	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
}

func TestReduceAttendanceUpsertsOnSlot(t *testing.T) {
	first := models.AttendanceRecord{
		ID: "ATT1", StudentID: "STU1", SubjectID: "SUB1",
		Date: "2026-03-02", Status: models.AttendanceAbsent,
	}
	corrected := models.AttendanceRecord{
		ID: "ATT2", StudentID: "STU1", SubjectID: "SUB1",
		Date: "2026-03-02", Status: models.AttendancePresent,
	}
	otherDay := models.AttendanceRecord{
		ID: "ATT3", StudentID: "STU1", SubjectID: "SUB1",
		Date: "2026-03-03", Status: models.AttendancePresent,
	}

	s := models.State{}
	s, err := Reduce(s, AddAttendance{Record: first})
	require.NoError(t, err)
	s, err = Reduce(s, AddAttendance{Record: corrected})
	require.NoError(t, err)
	s, err = Reduce(s, AddAttendance{Record: otherDay})
	require.NoError(t, err)

	require.Len(t, s.Attendance, 2)
	assert.Equal(t, models.AttendancePresent, s.Attendance[0].Status)
	assert.Equal(t, "ATT2", s.Attendance[0].ID)
	assert.Equal(t, "2026-03-03", s.Attendance[1].Date)
}

func TestReduceResetAllPreservesSession(t *testing.T) {
	s := models.State{
		Students: []models.Student{{ID: "STU1"}},
		Auth: models.AuthState{
			Users:         []models.User{{ID: "USR1", Email: "admin@campuscore.edu"}},
			CurrentUserID: "USR1",
			SessionID:     "session-1",
		},
	}
	seed := models.State{
		Students: []models.Student{{ID: "STU-NEW"}},
		Auth:     models.AuthState{Users: []models.User{{ID: "USR-SEED"}}},
	}

	next, err := Reduce(s, ResetAll{Seed: seed})

	require.NoError(t, err)
	require.Len(t, next.Students, 1)
	assert.Equal(t, "STU-NEW", next.Students[0].ID)
	// the session sub-state survives the reset
	assert.Equal(t, "USR1", next.Auth.CurrentUserID)
	assert.Equal(t, "session-1", next.Auth.SessionID)
	assert.Equal(t, "admin@campuscore.edu", next.Auth.Users[0].Email)
}

func TestReduceLoadSnapshotReplacesWholesale(t *testing.T) {
	s := models.State{
		Students: []models.Student{{ID: "STU1"}},
		Auth:     models.AuthState{CurrentUserID: "USR1"},
	}
	doc := models.State{Faculty: []models.Faculty{{ID: "FAC1"}}}

	next, err := Reduce(s, LoadSnapshot{State: doc})

	require.NoError(t, err)
	assert.Empty(t, next.Students)
	assert.Len(t, next.Faculty, 1)
	assert.Empty(t, next.Auth.CurrentUserID)
}

func TestReduceSessionCommands(t *testing.T) {
	s := models.State{Auth: models.AuthState{Users: []models.User{{ID: "USR1"}}}}

	s, err := Reduce(s, SetSession{UserID: "USR1", SessionID: "sess"})
	require.NoError(t, err)
	assert.Equal(t, "USR1", s.Auth.CurrentUserID)
	assert.Equal(t, "sess", s.Auth.SessionID)

	s, err = Reduce(s, ClearSession{})
	require.NoError(t, err)
	assert.Empty(t, s.Auth.CurrentUserID)
	assert.Empty(t, s.Auth.SessionID)
}

func TestReduceUpdateUser(t *testing.T) {
	s := models.State{Auth: models.AuthState{Users: []models.User{
		{ID: "USR1", Name: "Before"},
	}}}

	s, err := Reduce(s, UpdateUser{Record: models.User{ID: "USR1", Name: "After"}})
	require.NoError(t, err)
	assert.Equal(t, "After", s.Auth.Users[0].Name)

	_, err = Reduce(s, UpdateUser{Record: models.User{ID: "USR9"}})
	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
}
