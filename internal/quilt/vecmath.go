package quilt

import "math"

// l2NormDiff computes round(sqrt(sum of squared channel differences))
// between two 3-element pixel vectors, per spec's L2 definition. The
// source this was distilled from computed the squared term over pointer
// values instead of their pointees (`(a - b) * (a - b)` on `int*`), a bug
// this corrects by operating on the channel values directly.
func l2NormDiff(a, b [3]int32) int32 {
	var sum int64
	for c := 0; c < 3; c++ {
		d := int64(a[c]) - int64(b[c])
		sum += d * d
	}
	return int32(math.Round(math.Sqrt(float64(sum))))
}
