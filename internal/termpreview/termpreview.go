// Package termpreview renders an RGBPlane inline in terminals that
// support it, so a quilt or tile-map output can be eyeballed without
// opening a separate image viewer. Adapted from the teacher's
// pkg/cli/terminal_preview.go: the kitty/iTerm2/sixel/chafa protocol
// detection and transmission logic carries over unchanged (a terminal's
// image-protocol support has nothing to do with what kind of image is
// being shown), but the input type changes from image.Image to
// plane.RGBPlane, and JPEG output is dropped since this module only ever
// produces lossless quilted pixel data.
package termpreview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/sashaouellet/wangtile/internal/plane"
)

var previewDebug = os.Getenv("WANGTILE_PREVIEW_DEBUG") == "1"

func debugf(format string, args ...interface{}) {
	if previewDebug {
		fmt.Fprintf(os.Stderr, "wangtile-preview: "+format+"\n", args...)
	}
}

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "kitty") || strings.Contains(term, "ghostty") || strings.Contains(term, "ghost") {
		return true
	}
	return os.Getenv("KONSOLE_VERSION") != ""
}

func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "Hyper", "vscode", "VSCode", "Tabby", "Bobcat":
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "wezterm") || strings.Contains(term, "warp") || strings.Contains(term, "tabby") ||
		strings.Contains(term, "vscode") || strings.Contains(term, "wez") {
		return true
	}
	return os.Getenv("ITERM_SESSION_ID") != ""
}

func isSixelCapable() bool {
	if os.Getenv("WANGTILE_SIXEL_PREVIEW") == "1" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "foot") || strings.Contains(term, "st") || strings.Contains(term, "linux") {
		return true
	}
	return os.Getenv("WT_SESSION") != ""
}

func hasChafa() bool {
	_, err := exec.LookPath("chafa")
	return err == nil
}

// Supported reports whether the running terminal is likely to support an
// inline preview through any of the protocols this package knows.
func Supported() bool {
	return isKitty() || isInlineImageCapable() || isSixelCapable() || hasChafa()
}

// PreviewSize conveys a target placement in terminal character cells.
type PreviewSize struct {
	Cols, Rows              int
	PixelWidth, PixelHeight int
}

func computePreviewSize(w, h int) PreviewSize {
	const charW, charH = 8, 16
	const minCols, minRows, maxCols, maxRows = 6, 3, 80, 40

	maxPixelW, maxPixelH := maxCols*charW, maxRows*charH
	scale := math.Min(1.0, math.Min(float64(maxPixelW)/float64(w), float64(maxPixelH)/float64(h)))
	targetW, targetH := int(math.Round(float64(w)*scale)), int(math.Round(float64(h)*scale))

	cols := clampInt(int(math.Round(float64(targetW)/charW)), minCols, maxCols)
	rows := clampInt(int(math.Round(float64(targetH)/charH)), minRows, maxRows)

	return PreviewSize{Cols: cols, Rows: rows, PixelWidth: cols * charW, PixelHeight: rows * charH}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Preview PNG-encodes p and sends it to the terminal via the best
// available inline-image protocol.
func Preview(p *plane.RGBPlane) error {
	img := toStdImage(p)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("termpreview: png encode failed: %w", err)
	}
	size := computePreviewSize(p.Width(), p.Height())
	return previewBytes(buf.Bytes(), size)
}

func toStdImage(p *plane.RGBPlane) image.Image {
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

func previewBytes(blob []byte, size PreviewSize) error {
	if len(blob) == 0 {
		return fmt.Errorf("termpreview: empty image blob")
	}
	debugf("previewBytes: %d bytes, cols=%d rows=%d", len(blob), size.Cols, size.Rows)

	if isInlineImageCapable() {
		if err := sendInlineImage(blob, size); err == nil {
			return nil
		}
		debugf("inline protocol failed, falling back")
	}
	if isKitty() {
		if err := sendKittyImage(blob, size); err == nil {
			return nil
		}
		debugf("kitty protocol failed, falling back")
	}
	if isSixelCapable() {
		if err := sendSixelImage(blob); err == nil {
			return nil
		}
		debugf("sixel protocol failed, falling back")
	}
	if hasChafa() {
		if err := sendChafaImage(blob, size); err == nil {
			return nil
		}
	}
	return fmt.Errorf("termpreview: no preview protocol matched")
}

func sendKittyImage(data []byte, size PreviewSize) error {
	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096

	total := len(enc)
	first := true
	for pos := 0; pos < total; pos += chunkSize {
		end := pos + chunkSize
		if end > total {
			end = total
		}
		chunk := enc[pos:end]
		last := end == total
		mVal := "0"
		if !last {
			mVal = "1"
		}
		var seq string
		if first {
			seq = fmt.Sprintf("\x1b_Ga=T,f=100,t=d,q=2,c=%d,r=%d,m=%s;%s\x1b\\", size.Cols, size.Rows, mVal, chunk)
			first = false
		} else {
			seq = "\x1b_Gm=" + mVal + ";" + chunk + "\x1b\\"
		}
		if _, err := os.Stdout.Write([]byte(seq)); err != nil {
			return err
		}
	}
	fmt.Println()
	return nil
}

func sendInlineImage(data []byte, size PreviewSize) error {
	enc := base64.StdEncoding.EncodeToString(data)
	meta := fmt.Sprintf("size=%d;", len(data))
	if size.PixelWidth > 0 && size.PixelHeight > 0 {
		meta += fmt.Sprintf("width=%dpx;height=%dpx;", size.PixelWidth, size.PixelHeight)
	}
	seq := "\x1b]1337;File=name=preview.png;inline=1;" + meta + ":" + enc + "\a"
	_, err := os.Stdout.Write([]byte(seq))
	fmt.Println()
	return err
}

func sendSixelImage(data []byte) error {
	cmd := exec.Command("img2sixel", "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err == nil {
		return nil
	}
	return fmt.Errorf("termpreview: img2sixel unavailable")
}

func sendChafaImage(data []byte, size PreviewSize) error {
	if _, err := exec.LookPath("chafa"); err != nil {
		return fmt.Errorf("termpreview: chafa not found: %w", err)
	}
	chafaSize := fmt.Sprintf("%dx%d", size.Cols, size.Rows)
	cmd := exec.Command("chafa", "--fill=block", "--symbols=block", "-s", chafaSize, "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("termpreview: chafa failed: %w", err)
	}
	fmt.Println()
	return nil
}
