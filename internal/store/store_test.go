package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
)

func newTestStore(initial models.State) *Store {
	return New(initial, zerolog.Nop())
}

func TestDispatchAppliesAndNotifies(t *testing.T) {
	st := newTestStore(models.State{})

	var seen []models.State
	st.Subscribe(func(s models.State) { seen = append(seen, s) })

	err := st.Dispatch(AddStudent{Record: models.Student{ID: "STU1"}})
	require.NoError(t, err)

	assert.Len(t, st.State().Students, 1)
	require.Len(t, seen, 1)
	assert.Len(t, seen[0].Students, 1)
}

func TestDispatchRejectedCommandLeavesStateAndSkipsListeners(t *testing.T) {
	st := newTestStore(models.State{})

	notified := 0
	st.Subscribe(func(models.State) { notified++ })

	err := st.Dispatch(DeleteStudent{ID: "STU9"})

	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
	assert.Empty(t, st.State().Students)
	assert.Zero(t, notified)
}

func TestUpdateAppliesCommandsAtomically(t *testing.T) {
	st := newTestStore(models.State{})

	err := st.Update(func(state models.State) ([]Command, error) {
		return []Command{
			AddBook{Record: models.Book{ID: "BKS1", Copies: 1, AvailableCopies: 1}},
			AddStudent{Record: models.Student{ID: "STU1"}},
		}, nil
	})

	require.NoError(t, err)
	assert.Len(t, st.State().Books, 1)
	assert.Len(t, st.State().Students, 1)
}

func TestUpdateAllOrNothing(t *testing.T) {
	st := newTestStore(models.State{})

	err := st.Update(func(state models.State) ([]Command, error) {
		return []Command{
			AddStudent{Record: models.Student{ID: "STU1"}},
			DeleteBook{ID: "BKS-missing"},
		}, nil
	})

	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
	// the first command must not have landed
	assert.Empty(t, st.State().Students)
}

func TestUpdateValidationErrorLeavesState(t *testing.T) {
	st := newTestStore(models.State{})
	sentinel := apperrors.NewValidationError("rejected")

	notified := 0
	st.Subscribe(func(models.State) { notified++ })

	err := st.Update(func(models.State) ([]Command, error) { return nil, sentinel })

	assert.Equal(t, sentinel, err)
	assert.Zero(t, notified)
}

func TestUpdateSeesLatestState(t *testing.T) {
	st := newTestStore(models.State{})
	require.NoError(t, st.Dispatch(AddBook{Record: models.Book{ID: "BKS1", Copies: 1, AvailableCopies: 1}}))

	// A guarded decrement: the closure reads the live count, so a second
	// attempt observes the first one's write.
	issue := func() error {
		return st.Update(func(state models.State) ([]Command, error) {
			book := state.Books[0]
			if book.AvailableCopies <= 0 {
				return nil, apperrors.ErrNoCopiesAvailable
			}
			book.AvailableCopies--
			return []Command{UpdateBook{Record: book}}, nil
		})
	}

	require.NoError(t, issue())
	assert.ErrorIs(t, issue(), apperrors.ErrNoCopiesAvailable)
	assert.Equal(t, 0, st.State().Books[0].AvailableCopies)
}

func TestListenersNotifiedInTransitionOrder(t *testing.T) {
	st := newTestStore(models.State{})

	var mu sync.Mutex
	var sizes []int
	st.Subscribe(func(s models.State) {
		mu.Lock()
		sizes = append(sizes, len(s.Students))
		mu.Unlock()
	})

	const workers, perWorker = 4, 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_ = st.Dispatch(AddStudent{Record: models.Student{ID: fmt.Sprintf("STU-%d-%d", w, i)}})
			}
		}(w)
	}
	wg.Wait()

	// Each dispatch grows the collection by one and notifies under the
	// dispatch lock, so the observed sizes must be exactly 1..N in order.
	require.Len(t, sizes, workers*perWorker)
	for i, n := range sizes {
		assert.Equal(t, i+1, n)
	}
}

func TestStateSnapshotIsStable(t *testing.T) {
	st := newTestStore(models.State{})
	require.NoError(t, st.Dispatch(AddBook{Record: models.Book{ID: "BKS1"}}))

	before := st.State()
	require.NoError(t, st.Dispatch(AddBook{Record: models.Book{ID: "BKS2"}}))

	// the earlier snapshot must not grow under the caller
	assert.Len(t, before.Books, 1)
	assert.Len(t, st.State().Books, 2)
}
