package ulid

import (
	"errors"
	"fmt"

	"github.com/vitalvas/ulid/crockford"
)

var (
	// ErrInvalidLength is returned when parsing text that is not 26 symbols long.
	ErrInvalidLength = crockford.ErrInvalidLength

	// ErrInvalidCharacter is returned when parsing text with a symbol outside
	// the Crockford alphabet.
	ErrInvalidCharacter = crockford.ErrInvalidCharacter

	// ErrOverflow is returned when parsing text whose value does not fit in 128 bits.
	ErrOverflow = crockford.ErrOverflow

	// ErrBufferSize is returned when a binary ULID is not 16 bytes long.
	ErrBufferSize = errors.New("ulid: bad buffer size")

	// ErrTimestampRange is returned when a time cannot be represented as a
	// 48-bit millisecond count since the Unix epoch.
	ErrTimestampRange = errors.New("ulid: timestamp out of range")

	// ErrRandomnessExhausted is returned by a monotonic generator when the
	// entropy of the current millisecond cannot be incremented any further.
	ErrRandomnessExhausted = errors.New("ulid: randomness exhausted within millisecond")

	// ErrClockRegression is returned by a monotonic generator when asked for a
	// timestamp earlier than the last one it produced.
	ErrClockRegression = errors.New("ulid: clock moved backwards")

	// ErrEntropy is returned when the entropy source fails.
	ErrEntropy = errors.New("ulid: entropy source failed")

	// ErrScanType is returned by Scan for unsupported source types.
	ErrScanType = errors.New("ulid: unsupported scan type")
)

func bufferSizeError(found int) error {
	return fmt.Errorf("%w: expected %d, found %d", ErrBufferSize, BinarySize, found)
}
