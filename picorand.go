// Package picorand implements small, fast pseudo-random number generators
// behind a width-typed front end. Streams are deterministic functions of
// their seed: the same seed always produces the same sequence. Generation
// never allocates and none of the bundled algorithms are cryptographically
// secure.
//
// Generators perform no locking and are meant to be owned by a single
// goroutine. Sharing one across goroutines requires synchronization by the
// caller.
package picorand

import "github.com/inspier/picorand/wyrand"

// Source is the contract a PRNG algorithm provides: it owns 64 bits of
// state and advances it exactly one step per Next call. Implementations
// must accept every uint64 as a seed.
type Source interface {
	// Seed resets the source to the state it has when freshly
	// constructed from seed.
	Seed(seed uint64)
	// Next advances the state and returns the next 64-bit output.
	Next() uint64
}

// Unsigned is the closed set of output widths a generator can be bound to.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// RNG projects a Source's 64-bit stream onto a fixed unsigned width T.
// Width and source are bound at construction for the life of the value;
// changing either means constructing a new RNG.
type RNG[T Unsigned, S Source] struct {
	src S
}

// New binds src to output width T. The RNG owns src from this point on;
// advancing it elsewhere interleaves with the RNG's draws.
func New[T Unsigned, S Source](src S) *RNG[T, S] {
	return &RNG[T, S]{src: src}
}

// NewWyRand returns a generator of width T drawing from a fresh WyRand
// source seeded with seed. WyRand is the default algorithm.
func NewWyRand[T Unsigned](seed uint64) *RNG[T, *wyrand.Source] {
	return New[T](wyrand.New(seed))
}

// Seed resets the underlying source, restarting the stream as if the RNG
// had been constructed with seed.
func (r *RNG[T, S]) Seed(seed uint64) {
	r.src.Seed(seed)
}

// Generate draws one source step and returns its low-order bits as a T.
// Each call consumes exactly one step; no entropy is reused across calls.
func (r *RNG[T, S]) Generate() T {
	return T(r.src.Next())
}

// GenerateRange returns a value in [low, high], both ends inclusive.
// Inverted bounds are swapped first, so GenerateRange(high, low) draws the
// same value as GenerateRange(low, high). Every call consumes exactly one
// source step, including when low == high.
//
// The draw is reduced by remainder: for spans that do not evenly divide
// the width's domain, values at the low end of the range come up very
// slightly more often. There is no rejection loop; call cost is constant.
func (r *RNG[T, S]) GenerateRange(low, high T) T {
	if low > high {
		low, high = high, low
	}
	v := r.Generate()
	// The span is computed in uint64: it wraps to zero only when the
	// bounds cover the entire 64-bit domain, where the raw draw is
	// already the answer.
	span := uint64(high) - uint64(low) + 1
	if span == 0 {
		return v
	}
	return low + T(uint64(v)%span)
}
