package ulid

import (
	"sync"
	"time"
)

// Locked serialises access to a Generator so it can be shared between
// goroutines. Generator and Monotonic themselves never lock.
type Locked struct {
	mu  sync.Mutex
	gen *Generator
}

func NewLocked(gen *Generator) *Locked {
	return &Locked{gen: gen}
}

func (l *Locked) Next() (ULID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.gen.Next()
}

func (l *Locked) At(t time.Time) (ULID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.gen.At(t)
}

func (l *Locked) New(ms uint64) (ULID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.gen.New(ms)
}
