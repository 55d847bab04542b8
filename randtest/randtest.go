// Package randtest provides a deterministic entropy source for tests that
// exercise the sampling paths in field, curve, and pairing (RandomElement,
// RandomPoint, Sqrt's resampling, the Tate pairing's pole-avoidance retry).
// Those paths take an io.Reader precisely so callers can swap in a
// reproducible source instead of crypto/rand.Reader; this package is that
// source for this module's own test suite.
package randtest

import "golang.org/x/crypto/sha3"

// Reader is an io.Reader that expands a fixed seed into an unbounded,
// deterministic stream via SHAKE256 (golang.org/x/crypto/sha3). Two Readers
// built from the same seed produce identical output, which is what makes a
// failing property test reproducible.
type Reader struct {
	shake sha3.ShakeHash
}

// New returns a Reader whose output stream is the SHAKE256 expansion of seed.
func New(seed []byte) *Reader {
	r := &Reader{shake: sha3.NewShake256()}
	_, _ = r.shake.Write(seed)
	return r
}

// Read fills p from the SHAKE256 stream. It never returns an error and
// always fills p completely, per io.Reader's contract for a non-blocking
// source.
func (r *Reader) Read(p []byte) (int, error) {
	return r.shake.Read(p)
}

// Seeded is a convenience constructor taking a string seed, for call sites
// that want a named, human-readable source ("fp-sqrt-vectors", and so on).
func Seeded(seed string) *Reader {
	return New([]byte(seed))
}
