// WyRand pseudo-random number generator
// Derived from wyrand in wangyi-fudan/wyhash

package wyrand

import "math/bits"

// Source is a WyRand stream: 64 bits of state advanced by a fixed odd
// increment, mixed by a 128-bit self-multiply. It is not cryptographically
// secure. A Source is single-owner and performs no locking.
type Source struct {
	state uint64
}

// New returns a source seeded with seed. Any value is a valid seed,
// including zero.
func New(seed uint64) *Source {
	return &Source{state: seed}
}

// Seed resets the source to the stream New(seed) produces.
func (s *Source) Seed(seed uint64) {
	s.state = seed
}

// State reports the current internal state. New(s.State()) continues this
// stream from the same point.
func (s *Source) State() uint64 {
	return s.state
}

// Next advances the state and returns the next 64-bit output. Addition and
// multiplication wrap; the state walk has full period 2^64.
func (s *Source) Next() uint64 {
	s.state += 0xe7037ed1a0b428db
	hi, lo := bits.Mul64(s.state, s.state^0xe7037ed1a0b428db)
	return hi ^ lo
}
