// Package tilemap assembles a set of Wang tiles into a width x height
// grid of edge-compatible placements, then stitches that grid into a
// single output plane. Grounded on original_source/TileMap.cpp's greedy
// placement loop, re-expressed deterministically: rather than the
// original's retry-a-random-pick-until-it-fits loop (whose retry counter
// was dead code in the source, meaning it could spin forever on an
// unsatisfiable tile set), each cell filters the full tile set down to
// the edge-compatible candidates and samples uniformly among those.
package tilemap

import (
	"fmt"

	"github.com/sashaouellet/wangtile/internal/plane"
	"github.com/sashaouellet/wangtile/internal/wang"
)

// TileMap holds a placed grid of Wang tiles, in row-major order.
type TileMap struct {
	tileSet []wang.Tile
	grid    [][]wang.Tile
	width   int
	height  int
}

// Generate builds a width x height TileMap from the given tile set,
// greedily placing tiles left-to-right, top-to-bottom so every placed
// tile's west code matches its left neighbor's east code and its north
// code matches its neighbor above's south code. Placement is seeded for
// reproducibility.
func Generate(tiles [8]wang.Tile, width, height int, seed int64) (*TileMap, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidArgument("width and height must be positive, got %dx%d", width, height)
	}

	tileSet := tiles[:]
	rnd := newRandSource(seed)

	tm := &TileMap{
		tileSet: tileSet,
		width:   width,
		height:  height,
		grid:    make([][]wang.Tile, height),
	}

	for i := 0; i < height; i++ {
		row := make([]wang.Tile, width)
		for j := 0; j < width; j++ {
			var requiredWest, requiredNorth *byte
			if j > 0 {
				e := row[j-1].East
				requiredWest = &e
			}
			if i > 0 {
				s := tm.grid[i-1][j].South
				requiredNorth = &s
			}

			candidates := eligibleTiles(tileSet, requiredWest, requiredNorth)
			if len(candidates) == 0 {
				return nil, fmt.Errorf("placing tile at row %d, col %d: %w", i, j, ErrUnsatisfiable)
			}
			row[j] = tileSet[candidates[rnd.intn(len(candidates))]]
		}
		tm.grid[i] = row
	}

	return tm, nil
}

// eligibleTiles returns the indices of tiles in tileSet whose West code
// matches requiredWest (if non-nil) and whose North code matches
// requiredNorth (if non-nil). A nil requirement imposes no constraint on
// that side, matching the original's "first row/column" special case.
func eligibleTiles(tileSet []wang.Tile, requiredWest, requiredNorth *byte) []int {
	var eligible []int
	for idx, t := range tileSet {
		if requiredWest != nil && t.West != *requiredWest {
			continue
		}
		if requiredNorth != nil && t.North != *requiredNorth {
			continue
		}
		eligible = append(eligible, idx)
	}
	return eligible
}

// TileAt returns the tile placed at grid position (row, col).
func (tm *TileMap) TileAt(row, col int) (wang.Tile, error) {
	if row < 0 || row >= tm.height || col < 0 || col >= tm.width {
		return wang.Tile{}, fmt.Errorf("tilemap: position (%d,%d) out of bounds for %dx%d grid: %w", row, col, tm.width, tm.height, ErrInvalidArgument)
	}
	return tm.grid[row][col], nil
}

// Width returns the map's width in tiles.
func (tm *TileMap) Width() int { return tm.width }

// Height returns the map's height in tiles.
func (tm *TileMap) Height() int { return tm.height }

// Assemble stitches every placed tile's image into a single output
// plane, laid out left-to-right, top-to-bottom with no gaps. All tiles
// must share the same square side length; this mirrors
// original_source/TileMap.h's makeArray/placeTile, which wrote each
// tile's pixels into a shared output buffer at its grid offset.
func (tm *TileMap) Assemble() (*plane.RGBPlane, error) {
	if len(tm.grid) == 0 || len(tm.grid[0]) == 0 {
		return nil, fmt.Errorf("tilemap: cannot assemble an empty grid: %w", ErrInvalidArgument)
	}

	side := tm.grid[0][0].Image.Width()
	if side != tm.grid[0][0].Image.Height() {
		return nil, fmt.Errorf("tilemap: tile images must be square, got %dx%d: %w", side, tm.grid[0][0].Image.Height(), ErrInvalidArgument)
	}

	out := plane.NewRGBPlane(tm.width*side, tm.height*side)

	for i := 0; i < tm.height; i++ {
		for j := 0; j < tm.width; j++ {
			tile := tm.grid[i][j]
			img := tile.Image
			if img.Width() != side || img.Height() != side {
				return nil, fmt.Errorf("tilemap: tile at (%d,%d) has size %dx%d, expected %dx%d: %w", i, j, img.Width(), img.Height(), side, side, ErrInvalidArgument)
			}
			offsetX, offsetY := j*side, i*side
			for y := 0; y < side; y++ {
				for x := 0; x < side; x++ {
					r, g, b, err := img.Get(x, y, false)
					if err != nil {
						return nil, err
					}
					if err := out.Set(offsetX+x, offsetY+y, r, g, b, false); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return out, nil
}

// PixelWidth returns the assembled output's width in pixels.
func (tm *TileMap) PixelWidth() int {
	if len(tm.grid) == 0 || len(tm.grid[0]) == 0 {
		return 0
	}
	return tm.width * tm.grid[0][0].Image.Width()
}

// PixelHeight returns the assembled output's height in pixels.
func (tm *TileMap) PixelHeight() int {
	if len(tm.grid) == 0 || len(tm.grid[0]) == 0 {
		return 0
	}
	return tm.height * tm.grid[0][0].Image.Height()
}
