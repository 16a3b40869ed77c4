// SplitMix64 pseudo-random number generator
// Derived from Sebastiano Vigna's splitmix64.c

package splitmix

// Source is a SplitMix64 stream: a Weyl sequence stepped by the golden
// gamma, finalized with two xorshift-multiply rounds. Single-owner, no
// locking.
type Source struct {
	state uint64
}

func New(seed uint64) *Source {
	return &Source{state: seed}
}

func (s *Source) Seed(seed uint64) {
	s.state = seed
}

func (s *Source) State() uint64 {
	return s.state
}

func (s *Source) Next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
