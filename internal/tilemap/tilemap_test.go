package tilemap

import (
	"testing"

	"github.com/sashaouellet/wangtile/internal/plane"
	"github.com/sashaouellet/wangtile/internal/wang"
)

func solidTile(side int, r, g, b byte, n, e, s, w byte) wang.Tile {
	img := plane.NewRGBPlane(side, side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			_ = img.Set(x, y, r, g, b, false)
		}
	}
	return wang.Tile{Image: img, North: n, East: e, South: s, West: w}
}

// a toy 8-tile set where every tile is mutually compatible: every edge of
// every tile uses the same code 'r', so a match is always available and
// Generate should never hit ErrUnsatisfiable.
func uniformCompatibleTileSet(side int) [8]wang.Tile {
	var tiles [8]wang.Tile
	for i := range tiles {
		tiles[i] = solidTile(side, byte(10*i), byte(20*i), byte(30*i), 'r', 'r', 'r', 'r')
	}
	return tiles
}

func TestGenerateProducesFullyConnectedGrid(t *testing.T) {
	tiles := uniformCompatibleTileSet(4)
	tm, err := Generate(tiles, 3, 2, 42)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			tile, err := tm.TileAt(i, j)
			if err != nil {
				t.Fatal(err)
			}
			if j > 0 {
				left, _ := tm.TileAt(i, j-1)
				if tile.West != left.East {
					t.Fatalf("west/east mismatch at (%d,%d)", i, j)
				}
			}
			if i > 0 {
				above, _ := tm.TileAt(i-1, j)
				if tile.North != above.South {
					t.Fatalf("north/south mismatch at (%d,%d)", i, j)
				}
			}
		}
	}
}

func TestGenerateRejectsNonPositiveDimensions(t *testing.T) {
	tiles := uniformCompatibleTileSet(4)
	if _, err := Generate(tiles, 0, 2, 1); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestGenerateFailsWhenNoCompatibleTileExists(t *testing.T) {
	var tiles [8]wang.Tile
	for i := range tiles {
		// every tile demands an incompatible west code from its
		// predecessor, guaranteeing no eligible candidate past column 0.
		tiles[i] = solidTile(2, 0, 0, 0, 'r', 'g', 'b', 'y')
	}
	if _, err := Generate(tiles, 2, 1, 1); err == nil {
		t.Fatal("expected ErrUnsatisfiable when no tile's west code matches")
	}
}

func TestAssembleStitchesTileImagesByGridPosition(t *testing.T) {
	side := 2
	tiles := uniformCompatibleTileSet(side)
	tm, err := Generate(tiles, 2, 2, 7)
	if err != nil {
		t.Fatal(err)
	}

	out, err := tm.Assemble()
	if err != nil {
		t.Fatal(err)
	}
	if out.Width() != 2*side || out.Height() != 2*side {
		t.Fatalf("got %dx%d, want %dx%d", out.Width(), out.Height(), 2*side, 2*side)
	}
	if tm.PixelWidth() != out.Width() || tm.PixelHeight() != out.Height() {
		t.Fatalf("PixelWidth/PixelHeight mismatch with assembled output")
	}

	// every placed tile is solid-colored, so the top-left pixel of each
	// tile's region should match that tile's own fill color.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			tile, _ := tm.TileAt(i, j)
			wantR, wantG, wantB, _ := tile.Image.Get(0, 0, false)
			gotR, gotG, gotB, err := out.Get(j*side, i*side, false)
			if err != nil {
				t.Fatal(err)
			}
			if gotR != wantR || gotG != wantG || gotB != wantB {
				t.Fatalf("tile (%d,%d) pixel mismatch: got (%d,%d,%d), want (%d,%d,%d)", i, j, gotR, gotG, gotB, wantR, wantG, wantB)
			}
		}
	}
}
