package debugviz

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/sashaouellet/wangtile/internal/plane"
	"github.com/sashaouellet/wangtile/internal/wang"
)

func solidTile(side int, r, g, b byte) wang.Tile {
	img := plane.NewRGBPlane(side, side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			_ = img.Set(x, y, r, g, b, false)
		}
	}
	return wang.Tile{Image: img, North: 'r', East: 'g', South: 'b', West: 'y'}
}

func TestContactSheetProducesValidPNG(t *testing.T) {
	var tiles [8]wang.Tile
	for i := range tiles {
		tiles[i] = solidTile(16, byte(i*10), 100, 200)
	}

	var buf bytes.Buffer
	if err := ContactSheet(&buf, tiles); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PNG output")
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		t.Fatal("decoded image has non-positive dimensions")
	}
}

func TestContactSheetRejectsMissingTileImage(t *testing.T) {
	var tiles [8]wang.Tile
	for i := range tiles {
		tiles[i] = solidTile(16, 0, 0, 0)
	}
	tiles[3].Image = nil

	var buf bytes.Buffer
	if err := ContactSheet(&buf, tiles); err == nil {
		t.Fatal("expected error for tile with nil image")
	}
}
