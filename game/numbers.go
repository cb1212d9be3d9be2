package game

import "math/rand"

// ShuffleDigits returns a uniformly random permutation of 0..9.
func ShuffleDigits(r *rand.Rand) []int {
	digits := make([]int, GridSize)
	for i := range digits {
		digits[i] = i
	}
	r.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	return digits
}

// RevealNumbers draws both axis permutations once the grid is full. It is a
// no-op when numbers are already set.
type RevealNumbers struct {
	Actor string
}

func (c RevealNumbers) apply(env Env, s *State) error {
	if err := s.requireHost(c.Actor); err != nil {
		return err
	}
	if len(s.HomeNumbers) > 0 || len(s.AwayNumbers) > 0 {
		return nil
	}
	if !s.Ready() {
		return ErrNotReady
	}
	r := env.rng()
	s.HomeNumbers = ShuffleDigits(r)
	s.AwayNumbers = ShuffleDigits(r)
	s.Status = StatusLocked
	return nil
}
