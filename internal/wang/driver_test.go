package wang

import (
	"testing"

	"github.com/sashaouellet/wangtile/internal/plane"
)

func quadrantExemplar(dim int) *plane.RGBPlane {
	ex := plane.NewRGBPlane(2*dim, 2*dim)
	fill := func(x1, y1, x2, y2 int, r, g, b byte) {
		for y := y1; y < y2; y++ {
			for x := x1; x < x2; x++ {
				_ = ex.Set(x, y, r, g, b, false)
			}
		}
	}
	fill(0, 0, dim, dim, 255, 0, 0)         // top-left: red
	fill(dim, 0, 2*dim, dim, 255, 255, 0)   // top-right: yellow
	fill(0, dim, dim, 2*dim, 0, 0, 255)     // bottom-left: blue
	fill(dim, dim, 2*dim, 2*dim, 0, 255, 0) // bottom-right: green
	return ex
}

func TestBuildTileSetProducesEightTiles(t *testing.T) {
	const dim = 24
	ex := quadrantExemplar(dim)

	tiles, err := BuildTileSet(ex, dim)
	if err != nil {
		t.Fatal(err)
	}
	for i, tile := range tiles {
		if tile.Image == nil {
			t.Fatalf("tile %d has no image", i)
		}
		if tile.Image.Width() <= 0 || tile.Image.Height() <= 0 {
			t.Fatalf("tile %d has non-positive dimensions", i)
		}
	}
}

func TestBuildTileSetEdgeCodesMatchArrangementTable(t *testing.T) {
	const dim = 24
	ex := quadrantExemplar(dim)

	tiles, err := BuildTileSet(ex, dim)
	if err != nil {
		t.Fatal(err)
	}

	// First arrangement is {r,y,b,g} (top-left, top-right, bottom-left,
	// bottom-right); clockwise from top-left gives N=r, E=y, S=g, W=b.
	first := tiles[0]
	if first.North != 'r' || first.East != 'y' || first.South != 'g' || first.West != 'b' {
		t.Fatalf("unexpected edge codes for arrangement 0: N=%c E=%c S=%c W=%c", first.North, first.East, first.South, first.West)
	}
}

func TestBuildTileSetRejectsWrongExemplarSize(t *testing.T) {
	ex := plane.NewRGBPlane(10, 10)
	if _, err := BuildTileSet(ex, 6); err == nil {
		t.Fatal("expected error for mis-sized exemplar")
	}
}
