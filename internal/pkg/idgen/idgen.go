// Package idgen produces record identifiers and human-readable business
// identifiers (enrollment numbers, employee codes, receipt numbers).
// Uniqueness of raw identifiers is best-effort (millisecond time plus a
// random suffix), which is adequate for a store of at most a few thousand
// records per session. Business identifiers carry a 4-digit random suffix
// that can collide, so writers must use the Unique variant, which retries
// against the live collection.
package idgen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const (
	suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength   = 5
	maxRetries     = 100
)

// Generator creates identifiers from an injectable clock and random source,
// so tests can pin both. One Generator is shared across request handlers and
// *rand.Rand is not safe for concurrent use, so the source sits behind a
// mutex.
type Generator struct {
	now func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator backed by the wall clock and a time-seeded source.
func New() *Generator {
	return NewWith(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWith returns a Generator with an explicit clock and source.
func NewWith(now func() time.Time, rnd *rand.Rand) *Generator {
	return &Generator{now: now, rnd: rnd}
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}

// NextID returns prefix + millisecond timestamp + short random suffix.
func (g *Generator) NextID(prefix string) string {
	suffix := make([]byte, suffixLength)
	for i := range suffix {
		suffix[i] = suffixAlphabet[g.intn(len(suffixAlphabet))]
	}
	return fmt.Sprintf("%s%d%s", prefix, g.now().UnixMilli(), suffix)
}

// EnrollmentNumber builds a student enrollment number from the course code
// and admission year, e.g. BT20240042.
func (g *Generator) EnrollmentNumber(courseCode string, year int) string {
	return fmt.Sprintf("%s%d%04d", courseCode, year, g.intn(10000))
}

// EmployeeID builds a faculty employee code, e.g. EMP20240831.
func (g *Generator) EmployeeID(year int) string {
	return fmt.Sprintf("EMP%d%04d", year, g.intn(10000))
}

// ReceiptNumber builds a fee receipt number, e.g. RCP202601150042.
func (g *Generator) ReceiptNumber() string {
	return fmt.Sprintf("RCP%s%04d", g.now().Format("20060102"), g.intn(10000))
}

// Unique retries gen until exists reports the candidate unused. The random
// suffix space is four digits, so collisions against a session-sized
// collection clear within a few tries; after maxRetries the last candidate
// is returned regardless.
func Unique(gen func() string, exists func(string) bool) string {
	var id string
	for i := 0; i < maxRetries; i++ {
		id = gen()
		if !exists(id) {
			return id
		}
	}
	return id
}
