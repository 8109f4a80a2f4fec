// Package bmp is the external BMP file I/O collaborator spec.md scopes
// out of the quilting engine (see SPEC_FULL.md §3): it reads and writes
// the plain 54-byte-header, 24-bit, bottom-up BMP format the engine's
// RGBPlane never touches directly.
package bmp

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/sashaouellet/wangtile/internal/plane"
)

// ErrIOFailure wraps every error this package returns, matching spec's
// reserved IOFailure error kind (the core engine never raises it).
var ErrIOFailure = fmt.Errorf("bmp: io failure")

const (
	fileHeaderSize = 14
	dibHeaderSize  = 40
	headerSize     = fileHeaderSize + dibHeaderSize
	bitsPerPixel   = 24
)

func ioFailure(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrIOFailure)...)
}

func rowSize(width int) int {
	// rows are padded to a 4-byte boundary
	return ((width*3 + 3) / 4) * 4
}

// Read loads a 24-bit uncompressed, bottom-up BMP file into an RGBPlane,
// byte-swapping BGR storage order to the plane's RGB convention and
// reversing row order via the plane's flipY addressing.
func Read(path string) (*plane.RGBPlane, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioFailure("opening %s", path)
	}
	defer f.Close()

	var fileHeader [fileHeaderSize]byte
	if _, err := readFull(f, fileHeader[:]); err != nil {
		return nil, ioFailure("reading file header of %s", path)
	}
	if fileHeader[0] != 'B' || fileHeader[1] != 'M' {
		return nil, ioFailure("%s is not a BMP file (bad signature)", path)
	}
	dataOffset := binary.LittleEndian.Uint32(fileHeader[10:14])

	var dib [dibHeaderSize]byte
	if _, err := readFull(f, dib[:]); err != nil {
		return nil, ioFailure("reading DIB header of %s", path)
	}
	width := int(int32(binary.LittleEndian.Uint32(dib[4:8])))
	height := int(int32(binary.LittleEndian.Uint32(dib[8:12])))
	bpp := binary.LittleEndian.Uint16(dib[14:16])
	if bpp != bitsPerPixel {
		return nil, ioFailure("%s has %d bits per pixel, only 24-bit BMPs are supported", path, bpp)
	}
	if width <= 0 || height <= 0 {
		return nil, ioFailure("%s has non-positive dimensions %dx%d", path, width, height)
	}

	if dataOffset > headerSize {
		if _, err := f.Seek(int64(dataOffset), 0); err != nil {
			return nil, ioFailure("seeking to pixel data in %s", path)
		}
	}

	p := plane.NewRGBPlane(width, height)
	stride := rowSize(width)
	row := make([]byte, stride)

	for fileRow := 0; fileRow < height; fileRow++ {
		if _, err := readFull(f, row); err != nil {
			return nil, ioFailure("reading row %d of %s", fileRow, path)
		}
		for x := 0; x < width; x++ {
			b := row[x*3+0]
			g := row[x*3+1]
			r := row[x*3+2]
			// the file stores rows bottom-up; flipY reinterprets fileRow as
			// height-1-fileRow so the plane ends up in top-down order.
			if err := p.Set(x, fileRow, r, g, b, true); err != nil {
				return nil, ioFailure("writing pixel (%d,%d) of %s", x, fileRow, path)
			}
		}
	}
	return p, nil
}

// Write emits a 24-bit uncompressed, bottom-up BMP file from an RGBPlane.
func Write(path string, p *plane.RGBPlane) error {
	f, err := os.Create(path)
	if err != nil {
		return ioFailure("creating %s", path)
	}
	defer f.Close()

	width, height := p.Width(), p.Height()
	stride := rowSize(width)
	pixelBytes := stride * height
	fileSize := headerSize + pixelBytes

	var header [headerSize]byte
	header[0], header[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(header[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint32(header[10:14], uint32(headerSize))

	binary.LittleEndian.PutUint32(header[14:18], uint32(dibHeaderSize))
	binary.LittleEndian.PutUint32(header[18:22], uint32(width))
	binary.LittleEndian.PutUint32(header[22:26], uint32(height))
	binary.LittleEndian.PutUint16(header[26:28], 1)
	binary.LittleEndian.PutUint16(header[28:30], bitsPerPixel)
	binary.LittleEndian.PutUint32(header[34:38], uint32(pixelBytes))

	if _, err := f.Write(header[:]); err != nil {
		return ioFailure("writing header of %s", path)
	}

	row := make([]byte, stride)
	for fileRow := 0; fileRow < height; fileRow++ {
		for x := 0; x < width; x++ {
			r, g, b, err := p.Get(x, fileRow, true)
			if err != nil {
				return ioFailure("reading pixel (%d,%d) for %s", x, fileRow, path)
			}
			row[x*3+0] = b
			row[x*3+1] = g
			row[x*3+2] = r
		}
		for i := width * 3; i < stride; i++ {
			row[i] = 0
		}
		if _, err := f.Write(row); err != nil {
			return ioFailure("writing row %d of %s", fileRow, path)
		}
	}
	return nil
}

func readFull(f *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := f.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
