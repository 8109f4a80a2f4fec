package quilt

import "math"

// PatchSelector samples a patch for a grid cell given its left and above
// neighbors. With no neighbors it picks uniformly among all candidates;
// otherwise it scores every candidate's overlap error against those
// neighbors and samples uniformly among the ones within bestFitMargin of
// the best score.
type PatchSelector struct {
	candidates []*Patch
	rnd        *randSource
}

// NewPatchSelector builds a selector over the given read-only candidate
// set, seeded for deterministic sampling.
func NewPatchSelector(candidates []*Patch, seed int64) *PatchSelector {
	return &PatchSelector{candidates: candidates, rnd: newRandSource(seed)}
}

// Select returns a freshly cloned patch, ready to place. The shared
// candidate set is never mutated.
func (s *PatchSelector) Select(left, above *Patch) (*Patch, error) {
	if left == nil && above == nil {
		idx := s.rnd.intn(len(s.candidates))
		return s.candidates[idx].Clone(), nil
	}

	scored := make([]*Patch, len(s.candidates))
	totals := make([]int32, len(s.candidates))
	for i, c := range s.candidates {
		clone := c.Clone()
		total, err := clone.ComputeOverlapError(left, above)
		if err != nil {
			return nil, err
		}
		scored[i] = clone
		totals[i] = total
	}

	eligibleIdx := eligibleWithinMargin(totals, bestFitMargin)
	idx := eligibleIdx[s.rnd.intn(len(eligibleIdx))]
	return scored[idx], nil
}

// eligibleWithinMargin returns the indices of every total within
// margin*min(totals) of the minimum, inclusive. The minimum's own index is
// always included since margin >= 1.
func eligibleWithinMargin(totals []int32, margin float64) []int {
	best := int32(math.MaxInt32)
	for _, t := range totals {
		if t < best {
			best = t
		}
	}
	threshold := float64(best) * margin
	eligible := make([]int, 0, len(totals))
	for i, t := range totals {
		if float64(t) <= threshold {
			eligible = append(eligible, i)
		}
	}
	return eligible
}
