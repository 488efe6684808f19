package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/emirhank/campuscore/internal/app/models"
)

// Listener receives the new state after every successful transition. It is
// called synchronously under dispatch, so implementations must not block;
// slow work (snapshot writes) belongs behind a channel.
type Listener func(models.State)

// Store owns the state and serializes transitions. It is constructed once at
// startup and handed to consumers by reference; there is no package-level
// instance.
type Store struct {
	mu        sync.Mutex
	state     models.State
	listeners []Listener
	logger    zerolog.Logger
}

// New creates a store holding the given initial state.
func New(initial models.State, logger zerolog.Logger) *Store {
	return &Store{state: initial, logger: logger}
}

// Dispatch reduces one command against the current state. On success the new
// state becomes visible to the next command before Dispatch returns, and
// listeners are notified. On error the state is left untouched.
func (s *Store) Dispatch(cmd Command) error {
	return s.Update(func(models.State) ([]Command, error) {
		return []Command{cmd}, nil
	})
}

// Update atomically validates and applies commands derived from the current
// state. fn runs under the dispatch lock, so the state it inspects cannot
// change before its commands land; services use this for check-then-act
// invariants (copy counts, duplicate guards, cumulative totals). The commands
// apply all-or-nothing: any rejection leaves the state untouched. Listeners
// see the settled state, still under the lock, so notifications arrive in
// transition order.
func (s *Store) Update(fn func(models.State) ([]Command, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmds, err := fn(s.state)
	if err != nil {
		return err
	}

	next := s.state
	for _, cmd := range cmds {
		next, err = Reduce(next, cmd)
		if err != nil {
			s.logger.Debug().Err(err).Type("command", cmd).Msg("command rejected")
			return err
		}
	}
	s.state = next

	for _, listener := range s.listeners {
		listener(next)
	}
	return nil
}

// State returns the current state value. Callers treat it as immutable.
func (s *Store) State() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener for state changes. Intended for wiring at
// startup; listeners cannot be removed.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
