package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
)

// Source draws uniformly distributed values from an underlying stream of
// random bytes. Implementations are used sequentially; no concurrency
// guarantees are made or required.
type Source interface {
	// Intn returns a uniformly distributed integer in [0, n).
	Intn(n int) (int, error)

	// Chance returns true with probability num/den.
	Chance(num, den int) (bool, error)
}

// System returns a Source backed by the operating system's cryptographically
// secure random byte stream.
func System() Source {
	return reader{rand.Reader}
}

// New wraps an arbitrary byte stream as a Source. Tests use it to feed a
// deterministic stream through the same sampling path the system source uses.
func New(r io.Reader) Source {
	return reader{r}
}

type reader struct {
	r io.Reader
}

// Intn samples by rejection: 32-bit draws at or above the largest multiple of
// n are discarded and redrawn, so every residue is equally likely. A naive
// modulo would skew toward low indices whenever n does not divide 2^32.
func (s reader) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	if n == 1 {
		return 0, nil
	}

	limit := (uint64(1) << 32) - (uint64(1)<<32)%uint64(n)
	var buf [4]byte
	for {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return 0, errors.Join(ErrUnavailable, err)
		}
		v := uint64(binary.BigEndian.Uint32(buf[:]))
		if v < limit {
			return int(v % uint64(n)), nil
		}
	}
}

// Chance reduces the biased boolean to a single uniform draw: true when the
// draw lands in the first num residues of den.
func (s reader) Chance(num, den int) (bool, error) {
	if den <= 0 || num < 0 || num > den {
		return false, ErrInvalidBound
	}
	v, err := s.Intn(den)
	if err != nil {
		return false, err
	}
	return v < num, nil
}
