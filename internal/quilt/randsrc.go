package quilt

import "math/rand"

// randSource is a thin wrapper around math/rand giving deterministic
// uniform integer sampling from a fixed seed, mirroring the pattern the
// teacher uses for seeded noise generation (pkg/stdimg/noise.go's
// rand.New(rand.NewSource(seed))) rather than the global rand functions.
type randSource struct {
	r *rand.Rand
}

func newRandSource(seed int64) *randSource {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

// intn returns a uniform integer in [0, n).
func (s *randSource) intn(n int) int {
	return s.r.Intn(n)
}
