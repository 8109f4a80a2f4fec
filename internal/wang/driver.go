// Package wang is the thin driver spec.md §6 describes: it assembles
// eight fixed 2x2 quilts from a corner-coded exemplar, rotates each 45
// degrees, crops the central diamond, and labels the result with the
// edge codes a Wang tile needs.
package wang

import (
	"fmt"

	"github.com/sashaouellet/wangtile/internal/plane"
	"github.com/sashaouellet/wangtile/internal/quilt"
)

// Tile is a square Wang tile: its pixel image plus the color codes on its
// four edges, which must match between abutting tiles in a tile-map.
type Tile struct {
	Image *plane.RGBPlane
	North byte
	East  byte
	South byte
	West  byte
}

// arrangement names a 2x2 corner-code layout: top-left, top-right,
// bottom-left, bottom-right. These are the eight fixed arrangements the
// original driver built, reproduced from its main() (spec.md §8 S6).
type arrangement [4]byte

var arrangements = [8]arrangement{
	{'r', 'y', 'b', 'g'},
	{'g', 'b', 'b', 'g'},
	{'r', 'y', 'y', 'r'},
	{'g', 'b', 'y', 'r'},
	{'r', 'b', 'y', 'g'},
	{'g', 'y', 'y', 'g'},
	{'r', 'b', 'b', 'r'},
	{'g', 'y', 'b', 'r'},
}

// edgeCodes reads an arrangement's corners off clockwise starting from
// top-left: N=top-left, E=top-right, S=bottom-right, W=bottom-left.
func (a arrangement) edgeCodes() (n, e, s, w byte) {
	return a[0], a[1], a[3], a[2]
}

// BuildTileSet partitions a corner-coded exemplar into its four
// quadrants (top-left=R, top-right=Y, bottom-left=B, bottom-right=G),
// builds the eight fixed 2x2 quilts from those corner patches, and
// returns the eight resulting Wang tiles with their edge codes.
//
// patchSize is the side length of each corner patch the quilts are built
// from (so the exemplar's quadrants, and hence the exemplar itself, must
// be exactly 2*patchSize square).
func BuildTileSet(exemplar *plane.RGBPlane, patchSize int) ([8]Tile, error) {
	var tiles [8]Tile

	dim := patchSize
	if exemplar.Width() != 2*dim || exemplar.Height() != 2*dim {
		return tiles, fmt.Errorf("wang: exemplar must be %dx%d for patch size %d, got %dx%d", 2*dim, 2*dim, dim, exemplar.Width(), exemplar.Height())
	}

	corners, err := extractCorners(exemplar, dim)
	if err != nil {
		return tiles, err
	}

	for i, arr := range arrangements {
		fixed := [4]*quilt.Patch{
			corners[arr[0]],
			corners[arr[1]],
			corners[arr[2]],
			corners[arr[3]],
		}
		q, err := quilt.NewFixedQuilt(fixed, dim)
		if err != nil {
			return tiles, fmt.Errorf("building quilt %d: %w", i, err)
		}
		stitched, err := q.Stitch(nil)
		if err != nil {
			return tiles, fmt.Errorf("stitching quilt %d: %w", i, err)
		}

		rotated := stitched.Rotate45()
		cropped, err := cropCentralDiamond(rotated, q.Dimension())
		if err != nil {
			return tiles, fmt.Errorf("cropping quilt %d: %w", i, err)
		}

		n, e, s, w := arr.edgeCodes()
		tiles[i] = Tile{Image: cropped, North: n, East: e, South: s, West: w}
	}

	return tiles, nil
}

// extractCorners splits a 2*dim square exemplar into its four dim x dim
// corner patches, each tagged with its corner code: top-left 'r',
// top-right 'y', bottom-left 'b', bottom-right 'g'.
func extractCorners(exemplar *plane.RGBPlane, dim int) (map[byte]*quilt.Patch, error) {
	type corner struct {
		code           byte
		x1, y1, x2, y2 int
	}
	specs := []corner{
		{'r', 0, 0, dim - 1, dim - 1},
		{'y', dim, 0, 2*dim - 1, dim - 1},
		{'b', 0, dim, dim - 1, 2*dim - 1},
		{'g', dim, dim, 2*dim - 1, 2*dim - 1},
	}

	out := make(map[byte]*quilt.Patch, 4)
	for _, s := range specs {
		region, err := exemplar.CopyRegion(s.x1, s.y1, s.x2, s.y2, false)
		if err != nil {
			return nil, fmt.Errorf("extracting corner %q patch: %w", s.code, err)
		}
		out[s.code] = quilt.NewPatch(region, dim, s.code)
	}
	return out, nil
}

// cropCentralDiamond crops the central sub-region spec.md §6 describes:
// side D/2-12 offset by D/4+6 from the (already-rotated) plane, where D
// is the pre-rotation quilt dimension. These constants are empirical,
// carried over unchanged from the original driver's crop geometry.
func cropCentralDiamond(rotated *plane.RGBPlane, quiltDimension int) (*plane.RGBPlane, error) {
	side := quiltDimension/2 - 12
	offset := quiltDimension/4 + 6
	if side <= 0 {
		return nil, fmt.Errorf("wang: quilt dimension %d too small to crop a central diamond", quiltDimension)
	}
	return rotated.CopyRegion(offset, offset, offset+side-1, offset+side-1, false)
}
