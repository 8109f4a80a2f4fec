package quilt

import "github.com/sashaouellet/wangtile/internal/plane"

// leastCostPath runs the dynamic-programming least-cost path search shared
// by both the horizontal and vertical seam cuts (spec's §4.4). primary
// ranges over [0,length) — the axis the cut travels along (columns for the
// horizontal cut, rows for the vertical one) — and secondary ranges over
// [0,overlap) — the axis being crossed (row for horizontal, column for
// vertical). cost(primary, secondary) looks up the error-surface value for
// that cell.
//
// The table is built from primary=length-1 down to 0, as spec describes,
// then the path is traced forward from the minimizing secondary index at
// primary=0. Ties are broken toward the smaller secondary index, since the
// comparisons below only replace the incumbent on strict improvement.
func leastCostPath(length, overlap int, cost func(primary, secondary int) int32) []int {
	cum := make([][]int32, length)
	parent := make([][]int, length)

	for primary := length - 1; primary >= 0; primary-- {
		cum[primary] = make([]int32, overlap)
		parent[primary] = make([]int, overlap)
		for s := 0; s < overlap; s++ {
			c := cost(primary, s)
			if primary == length-1 {
				cum[primary][s] = c
				parent[primary][s] = -1
				continue
			}
			start, end := s-1, s+1
			if start < 0 {
				start = 0
			}
			if end > overlap-1 {
				end = overlap - 1
			}
			best := start
			for n := start + 1; n <= end; n++ {
				if cum[primary+1][n] < cum[primary+1][best] {
					best = n
				}
			}
			cum[primary][s] = c + cum[primary+1][best]
			parent[primary][s] = best
		}
	}

	best0 := 0
	for s := 1; s < overlap; s++ {
		if cum[0][s] < cum[0][best0] {
			best0 = s
		}
	}

	path := make([]int, length)
	path[0] = best0
	for primary := 0; primary < length-1; primary++ {
		path[primary+1] = parent[primary][path[primary]]
	}
	return path
}

// computeSeamMask derives the 0/1 keep mask for a side x side patch from
// its error surface, given whether a left and/or top neighbor were scored
// against it.
//
// The kept region is everywhere NOT above the horizontal boundary and NOT
// left of the vertical boundary (spec's invariant 5), which is exactly
// keepH && keepV below; this single AND naturally produces the monotone
// single-boundary-per-row/column cut, and the single corner where the two
// boundaries meet, without separately hunting for an intersection cell.
func computeSeamMask(errSurface *plane.IntPlane, side, overlap int, hasLeft, hasTop bool) (*plane.IntPlane, error) {
	mask := plane.NewIntPlane(side, side)

	if !hasLeft && !hasTop {
		mask.Fill(1)
		return mask, nil
	}

	var rowBoundary []int // rowBoundary[x] = boundary row for column x
	if hasTop {
		rowBoundary = leastCostPath(side, overlap, func(col, row int) int32 {
			v, err := errSurface.Get(col, row)
			if err != nil {
				return 0
			}
			return v
		})
	}

	var colBoundary []int // colBoundary[y] = boundary column for row y
	if hasLeft {
		colBoundary = leastCostPath(side, overlap, func(row, col int) int32 {
			v, err := errSurface.Get(col, row)
			if err != nil {
				return 0
			}
			return v
		})
	}

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			keepH := !hasTop || y >= rowBoundary[x]
			keepV := !hasLeft || x >= colBoundary[y]
			val := int32(0)
			if keepH && keepV {
				val = 1
			}
			if err := mask.Set(x, y, val); err != nil {
				return nil, err
			}
		}
	}
	return mask, nil
}
