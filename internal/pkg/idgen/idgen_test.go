package idgen

import (
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedGenerator() *Generator {
	at := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	return NewWith(func() time.Time { return at }, rand.New(rand.NewSource(1)))
}

func TestNextIDFormat(t *testing.T) {
	id := fixedGenerator().NextID("STU")

	assert.Regexp(t, regexp.MustCompile(`^STU\d{13}[0-9a-z]{5}$`), id)
}

func TestNextIDDistinct(t *testing.T) {
	g := fixedGenerator()

	// Same millisecond, different random suffixes.
	assert.NotEqual(t, g.NextID("STU"), g.NextID("STU"))
}

func TestEnrollmentNumberFormat(t *testing.T) {
	n := fixedGenerator().EnrollmentNumber("BT", 2024)

	assert.Regexp(t, regexp.MustCompile(`^BT2024\d{4}$`), n)
	assert.Len(t, n, 10)
}

func TestEmployeeIDFormat(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^EMP2024\d{4}$`), fixedGenerator().EmployeeID(2024))
}

func TestReceiptNumberUsesClockDate(t *testing.T) {
	n := fixedGenerator().ReceiptNumber()

	assert.Regexp(t, regexp.MustCompile(`^RCP20260115\d{4}$`), n)
}

func TestNextIDConcurrentUse(t *testing.T) {
	g := New()

	const workers, perWorker = 8, 50
	ids := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- g.NextID("STU")
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestUniqueRetriesOnCollision(t *testing.T) {
	calls := 0
	gen := func() string {
		calls++
		return fmt.Sprintf("RCP%04d", calls)
	}
	taken := map[string]bool{"RCP0001": true, "RCP0002": true}

	id := Unique(gen, func(candidate string) bool { return taken[candidate] })

	assert.Equal(t, "RCP0003", id)
	assert.Equal(t, 3, calls)
}

func TestUniqueGivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	gen := func() string {
		calls++
		return "RCP0000"
	}

	id := Unique(gen, func(string) bool { return true })

	assert.Equal(t, "RCP0000", id)
	assert.Equal(t, maxRetries, calls)
}
