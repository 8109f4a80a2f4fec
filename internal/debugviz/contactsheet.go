// Package debugviz renders a PNG contact sheet of a generated Wang tile
// set, labeling each tile's corner codes so edge compatibility can be
// checked by eye. It has no counterpart in original_source; it exists to
// give golang.org/x/image's font and draw subpackages a concrete home,
// the way the teacher's pkg/stdimg exercises golang.org/x/image for its
// own image composition (this module has no bitmap-font renderer of its
// own, so it borrows basicfont rather than shipping a font file).
package debugviz

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sashaouellet/wangtile/internal/plane"
	"github.com/sashaouellet/wangtile/internal/wang"
)

// cellSize is the on-screen pixel size each tile is scaled to before its
// label is drawn over it.
const cellSize = 128

// margin separates adjacent cells in the contact sheet.
const margin = 8

// ContactSheet composites the eight Wang tiles into a single PNG, each
// scaled to a fixed cell size and labeled with its North/East/South/West
// corner codes, and writes the result to w.
func ContactSheet(w io.Writer, tiles [8]wang.Tile) error {
	const cols = 4
	rows := (len(tiles) + cols - 1) / cols

	sheetW := cols*cellSize + (cols+1)*margin
	sheetH := rows*cellSize + (rows+1)*margin
	sheet := image.NewRGBA(image.Rect(0, 0, sheetW, sheetH))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, tile := range tiles {
		if tile.Image == nil {
			return fmt.Errorf("debugviz: tile %d has no image", i)
		}
		row, col := i/cols, i%cols
		ox := margin + col*(cellSize+margin)
		oy := margin + row*(cellSize+margin)

		src := toRGBAImage(tile.Image)
		dstRect := image.Rect(ox, oy, ox+cellSize, oy+cellSize)
		xdraw.CatmullRom.Scale(sheet, dstRect, src, src.Bounds(), xdraw.Over, nil)

		label := fmt.Sprintf("N%c E%c S%c W%c", tile.North, tile.East, tile.South, tile.West)
		drawLabel(sheet, label, ox+4, oy+cellSize-4)
	}

	return png.Encode(w, sheet)
}

// toRGBAImage converts an RGBPlane into a standard library image.RGBA so
// it can be fed through golang.org/x/image/draw's scaler.
func toRGBAImage(p *plane.RGBPlane) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width(), p.Height()))
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			r, g, b, err := p.Get(x, y, false)
			if err != nil {
				continue
			}
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// drawLabel draws text at the given baseline origin using the standard
// library's built-in 7x13 bitmap font, the same font.Drawer pattern the
// teacher's text rendering code uses for outline fonts.
func drawLabel(dst draw.Image, text string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
