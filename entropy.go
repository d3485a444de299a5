package ulid

import (
	"fmt"
	"io"
)

// DefaultEntropy returns the operating system's cryptographically secure
// random source. The returned reader is safe for concurrent use.
func DefaultEntropy() io.Reader {
	return systemEntropy{}
}

func readEntropy(r io.Reader) ([EntropySize]byte, error) {
	var e [EntropySize]byte
	if _, err := io.ReadFull(r, e[:]); err != nil {
		return e, fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	return e, nil
}
