package ulid

import (
	"fmt"
	"io"
	"time"
)

// New returns a ULID for timestamp ms with ten fresh bytes read from entropy.
// A nil entropy uses DefaultEntropy. Two calls with the same timestamp yield
// identifiers in no particular order; use Monotonic when order matters.
func New(ms uint64, entropy io.Reader) (ULID, error) {
	if ms > MaxTimestamp {
		return ULID{}, fmt.Errorf("%w: %d ms", ErrTimestampRange, ms)
	}

	if entropy == nil {
		entropy = DefaultEntropy()
	}

	e, err := readEntropy(entropy)
	if err != nil {
		return ULID{}, err
	}

	return FromParts(ms, e)
}

// MustNew is like New but panics on error.
func MustNew(ms uint64, entropy io.Reader) ULID {
	id, err := New(ms, entropy)
	if err != nil {
		panic(err)
	}

	return id
}

// Make returns a ULID for the current time using DefaultEntropy.
func Make() ULID {
	return MustNew(Now(), DefaultEntropy())
}

// Monotonic generates ULIDs that strictly increase for non-decreasing
// timestamps. Within one millisecond each identifier is the previous one's
// entropy plus one; a new millisecond draws fresh entropy.
//
// Monotonic holds the last timestamp and entropy it produced and is not safe
// for concurrent use. Give each goroutine its own, or share a Locked.
type Monotonic struct {
	entropy io.Reader
	ms      uint64
	last    [EntropySize]byte
	seeded  bool
}

// NewMonotonic returns a Monotonic drawing from entropy, or from
// DefaultEntropy when entropy is nil.
func NewMonotonic(entropy io.Reader) *Monotonic {
	if entropy == nil {
		entropy = DefaultEntropy()
	}

	return &Monotonic{entropy: entropy}
}

// New returns the next ULID for timestamp ms.
//
// A timestamp earlier than the previous one fails with ErrClockRegression and
// a millisecond whose entropy cannot be incremented further fails with
// ErrRandomnessExhausted. In both cases, and on entropy read errors, the
// generator state is left untouched; the caller decides whether to wait,
// retry or give up.
func (m *Monotonic) New(ms uint64) (ULID, error) {
	if ms > MaxTimestamp {
		return ULID{}, fmt.Errorf("%w: %d ms", ErrTimestampRange, ms)
	}

	switch {
	case !m.seeded || ms > m.ms:
		e, err := readEntropy(m.entropy)
		if err != nil {
			return ULID{}, err
		}

		m.ms, m.last, m.seeded = ms, e, true

	case ms == m.ms:
		next := m.last
		if !increment(&next) {
			return ULID{}, fmt.Errorf("%w: %d ms", ErrRandomnessExhausted, ms)
		}

		m.last = next

	default:
		return ULID{}, fmt.Errorf("%w: last %d ms, got %d ms", ErrClockRegression, m.ms, ms)
	}

	return FromParts(m.ms, m.last)
}

// increment adds one to e as an 80-bit big-endian integer and reports
// whether the result did not wrap around.
func increment(e *[EntropySize]byte) bool {
	for i := len(e) - 1; i >= 0; i-- {
		e[i]++
		if e[i] != 0 {
			return true
		}
	}

	return false
}

type Option func(*Generator)

// WithEntropy sets the randomness source. Defaults to DefaultEntropy.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.entropy = r
		}
	}
}

// WithClock sets the time source used by Next. Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// WithMonotonic switches the generator to monotonic mode.
func WithMonotonic() Option {
	return func(g *Generator) {
		g.monotonic = true
	}
}

// Generator bundles a clock, an entropy source and a generation mode.
// In monotonic mode it carries state and is not safe for concurrent use.
type Generator struct {
	entropy   io.Reader
	clock     func() time.Time
	monotonic bool
	mono      *Monotonic
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		entropy: DefaultEntropy(),
		clock:   time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.monotonic {
		g.mono = NewMonotonic(g.entropy)
	}

	return g
}

// Monotonic reports whether the generator runs in monotonic mode.
func (g *Generator) Monotonic() bool {
	return g.monotonic
}

// Next returns a ULID for the generator clock's current time.
func (g *Generator) Next() (ULID, error) {
	return g.At(g.clock())
}

// At returns a ULID for t.
func (g *Generator) At(t time.Time) (ULID, error) {
	ms, err := Timestamp(t)
	if err != nil {
		return ULID{}, err
	}

	return g.New(ms)
}

// New returns a ULID for timestamp ms.
func (g *Generator) New(ms uint64) (ULID, error) {
	if g.mono != nil {
		return g.mono.New(ms)
	}

	return New(ms, g.entropy)
}
