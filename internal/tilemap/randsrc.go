package tilemap

import "math/rand"

// randSource mirrors internal/quilt's seeded sampler: a thin wrapper
// around math/rand rather than the global rand functions, so a TileMap's
// placement is reproducible under a fixed seed.
type randSource struct {
	r *rand.Rand
}

func newRandSource(seed int64) *randSource {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) intn(n int) int {
	return s.r.Intn(n)
}
