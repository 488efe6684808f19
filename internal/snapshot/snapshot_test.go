package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirhank/campuscore/internal/app/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), "session.json", zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	state := models.State{
		Students: []models.Student{{ID: "STU1", Name: "Aarav Sharma"}},
		Books:    []models.Book{{ID: "BKS1", Title: "Operating Systems"}},
		Auth:     models.AuthState{Users: []models.User{{ID: "USR1", Email: "admin@campuscore.edu"}}},
	}
	require.NoError(t, s.Save(state))

	loaded, ok := s.Load(models.State{})
	require.True(t, ok)
	assert.Equal(t, state.Students, loaded.Students)
	assert.Equal(t, state.Books, loaded.Books)
	assert.Equal(t, "admin@campuscore.edu", loaded.Auth.Users[0].Email)
}

func TestLoadMissingDocumentReturnsDefaults(t *testing.T) {
	s := newTestStore(t)
	defaults := models.State{Students: []models.Student{{ID: "STU-SEED"}}}

	loaded, ok := s.Load(defaults)

	assert.False(t, ok)
	assert.Equal(t, defaults, loaded)
}

func TestLoadMalformedDocumentReturnsDefaults(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))
	defaults := models.State{Students: []models.Student{{ID: "STU-SEED"}}}

	loaded, ok := s.Load(defaults)

	assert.False(t, ok)
	assert.Equal(t, defaults, loaded)
}

func TestLoadPartialDocumentKeepsSeedCollections(t *testing.T) {
	s := newTestStore(t)
	// An older document that only ever saw students: collections absent from
	// it must keep their seed values.
	doc := []byte(`{"students":[{"id":"STU-DOC","name":"From Document"}]}`)
	require.NoError(t, os.WriteFile(s.Path(), doc, 0o644))

	defaults := models.State{
		Students: []models.Student{{ID: "STU-SEED"}},
		Faculty:  []models.Faculty{{ID: "FAC-SEED"}},
	}

	loaded, ok := s.Load(defaults)

	require.True(t, ok)
	require.Len(t, loaded.Students, 1)
	assert.Equal(t, "STU-DOC", loaded.Students[0].ID)
	require.Len(t, loaded.Faculty, 1)
	assert.Equal(t, "FAC-SEED", loaded.Faculty[0].ID)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(models.State{}))

	_, err := os.Stat(s.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestWriterFlushesOnClose(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "session.json", zerolog.Nop())
	require.NoError(t, err)

	w := NewWriter(s, zerolog.Nop())
	w.Notify(models.State{Students: []models.Student{{ID: "STU1"}}})
	w.Notify(models.State{Students: []models.Student{{ID: "STU1"}, {ID: "STU2"}}})
	w.Close()

	loaded, ok := s.Load(models.State{})
	require.True(t, ok)
	// Only the latest state matters; it must be on disk after Close.
	assert.Len(t, loaded.Students, 2)

	_, err = os.Stat(filepath.Join(dir, "session.json"))
	assert.NoError(t, err)
}
