package quilt

import (
	"fmt"

	"github.com/sashaouellet/wangtile/internal/plane"
)

// overlapDivisor relates a patch's side length to its overlap width:
// O = S / overlapDivisor.
const overlapDivisor = 6

// bestFitMargin is the multiplicative tolerance around the minimum
// overlap error used by PatchSelector to form its sampling set.
const bestFitMargin = 1.1

// NoCornerCode is the sentinel corner-code value for patches that don't
// participate in Wang tile construction.
const NoCornerCode byte = 0

// Patch is a square RGB sub-image of the exemplar, plus the per-pixel
// error surface and seam mask computed against specific neighbors, and
// (for Wang tile construction) an optional corner code.
//
// A Patch does not know its position in any grid; neighbors are supplied
// explicitly to ComputeOverlapError and ComputeSeamMask rather than held
// as back-references, per the ownership model this system generalizes
// from its C++ original.
type Patch struct {
	side       int
	pixels     *plane.RGBPlane
	errSurface *plane.IntPlane
	mask       *plane.IntPlane
	totalError int32
	cornerCode byte
}

// NewPatch builds a Patch by copying the given side x side pixel plane.
// cornerCode may be NoCornerCode when the patch isn't part of Wang tile
// construction.
func NewPatch(pixels *plane.RGBPlane, side int, cornerCode byte) *Patch {
	return &Patch{
		side:       side,
		pixels:     pixels.Copy(),
		errSurface: plane.NewIntPlane(side, side),
		mask:       plane.NewIntPlane(side, side),
		cornerCode: cornerCode,
	}
}

// Clone deep-copies the pixel, error, and mask planes, so each placement
// attempt's scoring state is independent of the shared candidate set.
func (p *Patch) Clone() *Patch {
	return &Patch{
		side:       p.side,
		pixels:     p.pixels.Copy(),
		errSurface: p.errSurface.Clone(),
		mask:       p.mask.Clone(),
		totalError: p.totalError,
		cornerCode: p.cornerCode,
	}
}

// Side returns the patch's side length.
func (p *Patch) Side() int { return p.side }

// CornerCode returns the patch's corner code (NoCornerCode if unset).
func (p *Patch) CornerCode() byte { return p.cornerCode }

// Pixel returns the (r,g,b) triple at (x,y) within the patch.
func (p *Patch) Pixel(x, y int) (r, g, b byte, err error) {
	return p.pixels.Get(x, y, false)
}

// TotalError returns the cached sum from the last ComputeOverlapError call.
func (p *Patch) TotalError() int32 { return p.totalError }

func (p *Patch) pixelVec(x, y int) ([3]int32, error) {
	r, g, b, err := p.pixels.Get(x, y, false)
	if err != nil {
		return [3]int32{}, err
	}
	return [3]int32{int32(r), int32(g), int32(b)}, nil
}

// ComputeOverlapError writes the per-pixel L2 overlap error into the
// patch's error plane and returns its sum. left and/or top may be nil.
// Idempotent: repeated calls with the same neighbors don't accumulate.
func (p *Patch) ComputeOverlapError(left, top *Patch) (int32, error) {
	overlap := p.side / overlapDivisor
	p.errSurface.Fill(0)
	p.totalError = 0

	for i := 0; i < p.side; i++ {
		for j := 0; j < p.side; j++ {
			var errVal int32
			switch {
			case i < overlap && top != nil:
				self, err := p.pixelVec(j, i)
				if err != nil {
					return 0, err
				}
				other, err := top.pixelVec(j, p.side-overlap+i)
				if err != nil {
					return 0, err
				}
				errVal = l2NormDiff(self, other)
			case j < overlap && left != nil:
				self, err := p.pixelVec(j, i)
				if err != nil {
					return 0, err
				}
				other, err := left.pixelVec(p.side-overlap+j, i)
				if err != nil {
					return 0, err
				}
				errVal = l2NormDiff(self, other)
			default:
				errVal = 0
			}
			if err := p.errSurface.Set(j, i, errVal); err != nil {
				return 0, err
			}
			p.totalError += errVal
		}
	}
	return p.totalError, nil
}

// ComputeSeamMask populates the mask plane via SeamCut, given the same
// left/top neighbors used for scoring. After this call Mask holds exactly
// 0 or 1 at every cell; 1 means the pixel is kept.
func (p *Patch) ComputeSeamMask(left, top *Patch) error {
	m, err := computeSeamMask(p.errSurface, p.side, p.side/overlapDivisor, left != nil, top != nil)
	if err != nil {
		return fmt.Errorf("compute seam mask: %w", err)
	}
	p.mask = m
	return nil
}

// Mask returns the kept/discard mask computed by the last
// ComputeSeamMask call.
func (p *Patch) Mask(x, y int) (int32, error) {
	return p.mask.Get(x, y)
}
