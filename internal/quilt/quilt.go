// Package quilt implements the patch-based image quilting engine: patch
// extraction, overlap-error scoring, seam-cut mask computation, and the
// Quilt orchestrator that ties them together into a stitched output
// plane. It is single-threaded, synchronous, and deterministic under a
// fixed seed (spec §5).
package quilt

import (
	"fmt"
	"io"

	"github.com/sashaouellet/wangtile/internal/plane"
)

// Quilt orchestrates patch extraction, placement, and stitching over a
// grid of patchesPerSide x patchesPerSide cells. The exemplar is borrowed
// immutably for the Quilt's lifetime; the output plane and placed grid
// are owned exclusively by the Quilt.
type Quilt struct {
	exemplar       *plane.RGBPlane
	patchesPerSide int
	patchSize      int
	overlap        int
	dimension      int

	candidates []*Patch
	grid       [][]*Patch
	output     *plane.RGBPlane
	selector   *PatchSelector
}

// New builds a Quilt over the given exemplar. It fails with
// ErrInvalidArgument if patchSize isn't divisible by the overlap divisor,
// patchesPerSide is less than 1, or the exemplar's dimensions aren't a
// multiple of patchSize.
func New(exemplar *plane.RGBPlane, patchesPerSide, patchSize int, seed int64) (*Quilt, error) {
	if patchesPerSide < 1 {
		return nil, invalidArgument("patchesPerSide must be >= 1, got %d", patchesPerSide)
	}
	if patchSize <= 0 || patchSize%overlapDivisor != 0 {
		return nil, invalidArgument("patch size %d must be a positive multiple of %d", patchSize, overlapDivisor)
	}
	if exemplar.Width()%patchSize != 0 || exemplar.Height()%patchSize != 0 {
		return nil, invalidArgument("exemplar dimensions %dx%d must be a multiple of patch size %d", exemplar.Width(), exemplar.Height(), patchSize)
	}

	overlap := patchSize / overlapDivisor
	dimension := patchesPerSide*patchSize - (patchesPerSide-1)*overlap

	q := &Quilt{
		exemplar:       exemplar,
		patchesPerSide: patchesPerSide,
		patchSize:      patchSize,
		overlap:        overlap,
		dimension:      dimension,
		output:         plane.NewRGBPlane(dimension, dimension),
	}

	candidates, err := q.extractCandidates()
	if err != nil {
		return nil, err
	}
	q.candidates = candidates
	q.selector = NewPatchSelector(candidates, seed)

	return q, nil
}

// extractCandidates partitions the exemplar into a non-overlapping grid
// of patchSize x patchSize cells, each a deep-copied candidate Patch.
func (q *Quilt) extractCandidates() ([]*Patch, error) {
	perSide := q.exemplar.Width() / q.patchSize
	candidates := make([]*Patch, 0, perSide*perSide)

	for i := 0; i < perSide; i++ {
		rowLower := i * q.patchSize
		for j := 0; j < perSide; j++ {
			colLower := j * q.patchSize
			region, err := q.exemplar.CopyRegion(colLower, rowLower, colLower+q.patchSize-1, rowLower+q.patchSize-1, false)
			if err != nil {
				return nil, fmt.Errorf("extracting candidate patch (%d,%d): %w", i, j, err)
			}
			candidates = append(candidates, NewPatch(region, q.patchSize, NoCornerCode))
		}
	}
	return candidates, nil
}

// NewFixedQuilt builds a 2x2 Quilt directly from four already-chosen
// patches (top-left, top-right, bottom-left, bottom-right), skipping
// candidate extraction and PatchSelector sampling entirely. This is what
// the Wang tile driver uses: its four corner-coded patches are fixed by
// construction, not sampled.
func NewFixedQuilt(patches [4]*Patch, patchSize int) (*Quilt, error) {
	if patchSize <= 0 || patchSize%overlapDivisor != 0 {
		return nil, invalidArgument("patch size %d must be a positive multiple of %d", patchSize, overlapDivisor)
	}
	overlap := patchSize / overlapDivisor
	dimension := 2*patchSize - overlap

	q := &Quilt{
		patchesPerSide: 2,
		patchSize:      patchSize,
		overlap:        overlap,
		dimension:      dimension,
		output:         plane.NewRGBPlane(dimension, dimension),
		grid: [][]*Patch{
			{patches[0], patches[1]},
			{patches[2], patches[3]},
		},
	}
	return q, nil
}

// Generate populates the placement grid in row-major order: each cell is
// selected conditioned only on its already-placed left and above
// neighbors.
func (q *Quilt) Generate() error {
	q.grid = make([][]*Patch, q.patchesPerSide)

	for i := 0; i < q.patchesPerSide; i++ {
		row := make([]*Patch, q.patchesPerSide)
		for j := 0; j < q.patchesPerSide; j++ {
			var left, above *Patch
			if j > 0 {
				left = row[j-1]
			}
			if i > 0 {
				above = q.grid[i-1][j]
			}
			p, err := q.selector.Select(left, above)
			if err != nil {
				return fmt.Errorf("selecting patch at (%d,%d): %w", i, j, err)
			}
			row[j] = p
		}
		q.grid[i] = row
	}
	return nil
}

// Stitch scores each placed patch against its left and top neighbors,
// computes its seam mask from that error surface, and composites the kept
// pixels into the output plane. progress may be nil; if non-nil, row/column
// progress is written to it the way the original C++ traced its stitch
// loop with cout.
func (q *Quilt) Stitch(progress io.Writer) (*plane.RGBPlane, error) {
	if q.grid == nil {
		return nil, fmt.Errorf("stitch called before generate")
	}

	for i := 0; i < q.patchesPerSide; i++ {
		if progress != nil {
			fmt.Fprintf(progress, "row: %d\n", i)
		}
		for j := 0; j < q.patchesPerSide; j++ {
			if progress != nil {
				fmt.Fprintf(progress, "\tcol: %d\n", j)
			}
			patch := q.grid[i][j]
			var left, top *Patch
			if j > 0 {
				left = q.grid[i][j-1]
			}
			if i > 0 {
				top = q.grid[i-1][j]
			}
			if _, err := patch.ComputeOverlapError(left, top); err != nil {
				return nil, err
			}
			if err := patch.ComputeSeamMask(left, top); err != nil {
				return nil, err
			}
			if err := q.setOutputPixels(patch, j, i); err != nil {
				return nil, err
			}
		}
	}
	return q.output, nil
}

// setOutputPixels composites the masked pixels of a single placed patch
// into the output plane, at the grid offset implied by (patchX, patchY).
func (q *Quilt) setOutputPixels(patch *Patch, patchX, patchY int) error {
	step := q.patchSize - q.overlap
	for y := 0; y < q.patchSize; y++ {
		for x := 0; x < q.patchSize; x++ {
			maskVal, err := patch.Mask(x, y)
			if err != nil {
				return err
			}
			if maskVal == 0 {
				continue
			}
			r, g, b, err := patch.Pixel(x, y)
			if err != nil {
				return err
			}
			quiltX := patchX*step + x
			quiltY := patchY*step + y
			if err := q.output.Set(quiltX, quiltY, r, g, b, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// Output returns the quilt's output plane (valid after Stitch).
func (q *Quilt) Output() *plane.RGBPlane { return q.output }

// Dimension returns the output plane's side length.
func (q *Quilt) Dimension() int { return q.dimension }

// Patches returns the placed grid (valid after Generate).
func (q *Quilt) Patches() [][]*Patch { return q.grid }
