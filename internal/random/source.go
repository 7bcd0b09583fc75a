package random

import (
	mathrand "math/rand/v2"

	"github.com/myrjola/alibi/internal/errors"
)

// Source is the deterministic generator owned by one simulation. It wraps a
// PCG generator so that its exact internal position can be marshalled into a
// save file and restored for identical future draws.
//
// Source is not safe for concurrent use. The simulation owns exactly one
// Source and threads it through each sub-system call in a fixed order so that
// the draw sequence is reproducible from a seed.
type Source struct {
	seed uint64
	pcg  *mathrand.PCG
	rand *mathrand.Rand
}

// NewSource creates a deterministic Source from a seed.
func NewSource(seed uint64) *Source {
	pcg := mathrand.NewPCG(seed, seed)
	return &Source{
		seed: seed,
		pcg:  pcg,
		rand: mathrand.New(pcg),
	}
}

// Seed returns the seed the source was created from. Note that the generator
// has usually advanced past it; use MarshalBinary for the live position.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Float64 draws one uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rand.Float64()
}

// Uniform draws one uniform value in [low, high).
func (s *Source) Uniform(low, high float64) float64 {
	return low + (high-low)*s.rand.Float64()
}

// MarshalBinary captures the exact internal generator state.
func (s *Source) MarshalBinary() ([]byte, error) {
	state, err := s.pcg.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "marshal PCG state")
	}
	return state, nil
}

// UnmarshalBinary restores the exact internal generator state so that future
// draws continue the original sequence.
func (s *Source) UnmarshalBinary(data []byte) error {
	if err := s.pcg.UnmarshalBinary(data); err != nil {
		return errors.Wrap(err, "unmarshal PCG state")
	}
	return nil
}
