// Package entropy provides uniform sampling primitives backed by the
// operating system's cryptographically secure random byte stream.
//
// The package exposes a minimal Source capability — an index draw and a
// biased boolean — so generation logic never touches raw bytes and tests can
// substitute a deterministic stream without changing the sampling path.
//
// # Usage
//
// Production code uses the system source:
//
//	src := entropy.System()
//	idx, err := src.Intn(len(charset))
//	if err != nil {
//		return err
//	}
//
// Tests wrap any io.Reader:
//
//	src := entropy.New(bytes.NewReader(fixedBytes))
//
// # Sampling
//
// Intn rejects modulo bias: draws are 32-bit values, and values at or above
// the largest multiple of the bound are discarded and redrawn, so every index
// in [0, n) is equally likely regardless of whether n divides the draw space.
//
// # Failure Model
//
// A failed read of the underlying stream wraps ErrUnavailable and is fatal to
// the caller's operation. There is deliberately no fallback to a weaker
// pseudo-random source; the security of everything built on this package
// depends on entropy quality.
package entropy
