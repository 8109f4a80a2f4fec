// Package plane holds the 2D pixel storage types the quilting engine
// builds on: RGBPlane for 24-bit pixel data and IntPlane for the per-pixel
// error surfaces and seam masks derived from it.
package plane

import "math"

// RGBPlane owns a contiguous row-major byte buffer, 3 bytes per pixel
// (R, G, B interleaved). It does not perform any file I/O; that is the
// job of internal/bmp.
type RGBPlane struct {
	width, height int
	pix           []byte
}

// NewRGBPlane allocates a zero-initialized width x height plane.
func NewRGBPlane(width, height int) *RGBPlane {
	return &RGBPlane{
		width:  width,
		height: height,
		pix:    make([]byte, 3*width*height),
	}
}

// Width returns the plane's width in pixels.
func (p *RGBPlane) Width() int { return p.width }

// Height returns the plane's height in pixels.
func (p *RGBPlane) Height() int { return p.height }

// Copy returns a deep copy, including storage.
func (p *RGBPlane) Copy() *RGBPlane {
	out := &RGBPlane{width: p.width, height: p.height, pix: make([]byte, len(p.pix))}
	copy(out.pix, p.pix)
	return out
}

func (p *RGBPlane) index(x, y int, flipY bool) (int, error) {
	if flipY {
		y = p.height - 1 - y
	}
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, outOfBounds(x, y, p.width, p.height)
	}
	return 3 * (y*p.width + x), nil
}

// Get returns the (r,g,b) triple at (x,y). When flipY is set, row y is
// reinterpreted as height-1-y, to accommodate bottom-up bitmap storage.
func (p *RGBPlane) Get(x, y int, flipY bool) (r, g, b byte, err error) {
	i, err := p.index(x, y, flipY)
	if err != nil {
		return 0, 0, 0, err
	}
	return p.pix[i], p.pix[i+1], p.pix[i+2], nil
}

// Set writes the (r,g,b) triple at (x,y), honoring the same flipY
// convention as Get.
func (p *RGBPlane) Set(x, y int, r, g, b byte, flipY bool) error {
	i, err := p.index(x, y, flipY)
	if err != nil {
		return err
	}
	p.pix[i], p.pix[i+1], p.pix[i+2] = r, g, b
	return nil
}

// CopyRegion returns a new plane holding the inclusive rectangle
// [x1,x2]x[y1,y2] of p.
func (p *RGBPlane) CopyRegion(x1, y1, x2, y2 int, flipY bool) (*RGBPlane, error) {
	if x1 < 0 || y1 < 0 || x2 < x1 || y2 < y1 {
		return nil, outOfBounds(x2, y2, p.width, p.height)
	}
	w := x2 - x1 + 1
	h := y2 - y1 + 1
	out := NewRGBPlane(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, err := p.Get(x1+x, y1+y, flipY)
			if err != nil {
				return nil, err
			}
			// out is never flipped; it holds the region in source order.
			_ = out.Set(x, y, r, g, b, false)
		}
	}
	return out, nil
}

// SwapRAndB swaps the R and B channels of every pixel in place.
func (p *RGBPlane) SwapRAndB() {
	for i := 0; i+2 < len(p.pix); i += 3 {
		p.pix[i], p.pix[i+2] = p.pix[i+2], p.pix[i]
	}
}

// RawData exposes the plane's interleaved R,G,B byte buffer.
func (p *RGBPlane) RawData() []byte {
	return p.pix
}

// Rotate45 rotates the plane by -45 degrees about its center and returns a
// new plane sized to the axis-aligned bounding box of the rotated
// rectangle, bilinearly sampled. Output pixels whose source falls outside
// the input stay at their zero-initialized value.
//
// The source this system was distilled from added an empirical correction
// constant (0.858) to its inverse-rotation math to compensate for a
// half-pixel center offset; per spec.md's design notes this implementation
// instead uses the exact pixel-center convention (cx=(width-1)/2,
// cy=(height-1)/2) with bilinear sampling, which eliminates the magic
// number at the cost of not reproducing the original's pixel-for-pixel
// output.
func (p *RGBPlane) Rotate45() *RGBPlane {
	const degrees = -45.0
	rad := degrees * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)

	w0, h0 := float64(p.width), float64(p.height)
	cx := (w0 - 1) / 2.0
	cy := (h0 - 1) / 2.0

	corners := [4][2]float64{
		{0 - cx, 0 - cy},
		{w0 - 1 - cx, 0 - cy},
		{w0 - 1 - cx, h0 - 1 - cy},
		{0 - cx, h0 - 1 - cy},
	}
	var xs, ys [4]float64
	for i, c := range corners {
		xs[i] = c[0]*cos - c[1]*sin
		ys[i] = c[0]*sin + c[1]*cos
	}
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < 4; i++ {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}

	newW := int(math.Ceil(maxX - minX + 1))
	newH := int(math.Ceil(maxY - minY + 1))
	out := NewRGBPlane(newW, newH)

	for y := 0; y < newH; y++ {
		for x := 0; x < newW; x++ {
			xRel := float64(x) + minX
			yRel := float64(y) + minY
			// inverse rotation: map destination coordinate back to source space
			sx := xRel*cos + yRel*sin + cx
			sy := -xRel*sin + yRel*cos + cy
			r, g, b, ok := p.sampleBilinear(sx, sy)
			if ok {
				_ = out.Set(x, y, r, g, b, false)
			}
		}
	}
	return out
}

func (p *RGBPlane) sampleBilinear(sx, sy float64) (r, g, b byte, ok bool) {
	if sx < 0 || sy < 0 || sx > float64(p.width-1) || sy > float64(p.height-1) {
		return 0, 0, 0, false
	}
	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > p.width-1 {
		x1 = p.width - 1
	}
	if y1 > p.height-1 {
		y1 = p.height - 1
	}
	fx := sx - float64(x0)
	fy := sy - float64(y0)

	r00, g00, b00, _ := p.Get(x0, y0, false)
	r10, g10, b10, _ := p.Get(x1, y0, false)
	r01, g01, b01, _ := p.Get(x0, y1, false)
	r11, g11, b11, _ := p.Get(x1, y1, false)

	lerp := func(a, b byte, t float64) float64 {
		return float64(a) + (float64(b)-float64(a))*t
	}
	top := func(a0, a1 byte) float64 { return lerp(a0, a1, fx) }
	rf := (top(r00, r10))*(1-fy) + (top(r01, r11))*fy
	gf := (top(g00, g10))*(1-fy) + (top(g01, g11))*fy
	bf := (top(b00, b10))*(1-fy) + (top(b01, b11))*fy

	return clampByte(rf), clampByte(gf), clampByte(bf), true
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v + 0.5)
}
