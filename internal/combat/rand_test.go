package combat

import "math/rand"

// fixedSource feeds rand.Rand a scripted sequence so tests can pin
// exact percentile rolls. Values are small enough that Intn's rejection
// sampling always accepts them.
type fixedSource struct {
	vals []int64
	i    int
}

func (s *fixedSource) Int63() int64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v << 32
}

func (s *fixedSource) Seed(int64) {}

// rollSource returns an RNG whose successive D100 results are exactly
// the given rolls (repeating).
func rollSource(rolls ...int) *rand.Rand {
	vals := make([]int64, len(rolls))
	for i, r := range rolls {
		vals[i] = int64(r - 1)
	}
	return rand.New(&fixedSource{vals: vals})
}
