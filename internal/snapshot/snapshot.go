// Package snapshot persists the whole store as a single JSON document per
// session and rehydrates it on startup. Writes are whole-document,
// last-write-wins; there is no incremental format.
package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/emirhank/campuscore/internal/app/models"
)

// Store reads and writes the snapshot document at a fixed path.
type Store struct {
	path   string
	logger zerolog.Logger
}

// New creates the snapshot directory if needed and returns a Store for the
// document inside it.
func New(dir, file string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, file), logger: logger}, nil
}

// Path returns the snapshot document location.
func (s *Store) Path() string { return s.path }

// Save serializes the full state and replaces the document atomically (write
// to a temp file, then rename), so a crash mid-write never leaves a torn
// snapshot behind.
func (s *Store) Save(state models.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load rehydrates a state by unmarshalling the document over the provided
// defaults. The merge is shallow at the collection key: collections present
// in the document replace the defaults wholesale, collections absent from an
// older document keep their seed values. A missing or malformed document is
// treated as "no snapshot", logged and never propagated.
func (s *Store) Load(defaults models.State) (models.State, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("Failed to read snapshot")
		}
		return defaults, false
	}

	merged := defaults
	if err := json.Unmarshal(data, &merged); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Malformed snapshot, falling back to seed data")
		return defaults, false
	}
	return merged, true
}
