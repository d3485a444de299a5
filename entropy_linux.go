//go:build linux
// +build linux

package ulid

import (
	"crypto/rand"
	"errors"

	"golang.org/x/sys/unix"
)

// systemEntropy reads from getrandom(2), which blocks only until the kernel
// pool is initialised at boot.
type systemEntropy struct{}

func (systemEntropy) Read(p []byte) (int, error) {
	n := 0

	for n < len(p) {
		m, err := unix.Getrandom(p[n:], 0)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.ENOSYS):
			// kernels before 3.17
			m, err = rand.Read(p[n:])
			return n + m, err
		case err != nil:
			return n, err
		}

		n += m
	}

	return n, nil
}
