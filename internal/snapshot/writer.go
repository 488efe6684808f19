package snapshot

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/emirhank/campuscore/internal/app/models"
)

// Writer persists state changes in the background. Notify never blocks the
// dispatcher: the channel holds only the latest state, and intermediate
// states are dropped because every write is a complete replacement anyway.
// Save failures are logged and swallowed; a failed write can only cost
// durability of this session, never correctness of the in-memory store.
type Writer struct {
	store  *Store
	logger zerolog.Logger

	ch   chan models.State
	once sync.Once
	done chan struct{}
}

// NewWriter starts the background persistence loop.
func NewWriter(store *Store, logger zerolog.Logger) *Writer {
	w := &Writer{
		store:  store,
		logger: logger,
		ch:     make(chan models.State, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

// Notify schedules a snapshot of the given state, replacing any queued one.
// It is safe to call from the store's synchronous listener path.
func (w *Writer) Notify(state models.State) {
	for {
		select {
		case w.ch <- state:
			return
		default:
			select {
			case <-w.ch:
			default:
			}
		}
	}
}

// Close flushes any pending snapshot and stops the loop.
func (w *Writer) Close() {
	w.once.Do(func() {
		close(w.ch)
		<-w.done
	})
}

func (w *Writer) run() {
	defer close(w.done)
	for state := range w.ch {
		if err := w.store.Save(state); err != nil {
			w.logger.Error().Err(err).Msg("Snapshot write failed")
		}
	}
}
