package ulid

import (
	"encoding/binary"
	"fmt"
	"time"
)

var maxTime = time.UnixMilli(int64(MaxTimestamp)).UTC()

// MaxTime returns the latest time a ULID can carry, 10889-08-02T05:31:50.655Z.
func MaxTime() time.Time {
	return maxTime
}

// Now returns the current time as a ULID timestamp. A system clock outside
// the ULID range is clamped to 0 or MaxTimestamp.
func Now() uint64 {
	return clampMillis(time.Now())
}

func clampMillis(t time.Time) uint64 {
	ms := t.UnixMilli()

	switch {
	case ms < 0:
		return 0
	case uint64(ms) > MaxTimestamp:
		return MaxTimestamp
	default:
		return uint64(ms)
	}
}

// Timestamp converts t to milliseconds since the Unix epoch. Times before the
// epoch or after MaxTime are rejected with ErrTimestampRange.
func Timestamp(t time.Time) (uint64, error) {
	ms := t.UnixMilli()
	if ms < 0 || uint64(ms) > MaxTimestamp {
		return 0, fmt.Errorf("%w: %s", ErrTimestampRange, t.UTC().Format(time.RFC3339Nano))
	}

	return uint64(ms), nil
}

// Time converts a ULID timestamp to a UTC time. Values above MaxTimestamp
// are rejected with ErrTimestampRange.
func Time(ms uint64) (time.Time, error) {
	if ms > MaxTimestamp {
		return time.Time{}, fmt.Errorf("%w: %d ms", ErrTimestampRange, ms)
	}

	return msTime(ms), nil
}

// msTime never fails for a 48-bit ms: time.Time spans the whole range.
func msTime(ms uint64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

// FromParts builds a ULID from a millisecond timestamp and entropy.
func FromParts(ms uint64, entropy [EntropySize]byte) (ULID, error) {
	var id ULID
	if ms > MaxTimestamp {
		return id, fmt.Errorf("%w: %d ms", ErrTimestampRange, ms)
	}

	putTimestamp(&id, ms)
	copy(id[6:], entropy[:])

	return id, nil
}

// Timestamp returns the top 48 bits as milliseconds since the Unix epoch.
func (id ULID) Timestamp() uint64 {
	return uint64(id[5]) | uint64(id[4])<<8 |
		uint64(id[3])<<16 | uint64(id[2])<<24 |
		uint64(id[1])<<32 | uint64(id[0])<<40
}

// Time returns the timestamp component as a UTC time.
func (id ULID) Time() time.Time {
	return msTime(id.Timestamp())
}

// Entropy returns the low 80 bits.
func (id ULID) Entropy() [EntropySize]byte {
	var e [EntropySize]byte
	copy(e[:], id[6:])

	return e
}

func putTimestamp(id *ULID, ms uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], ms)
	copy(id[:6], buf[2:])
}
