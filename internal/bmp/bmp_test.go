package bmp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sashaouellet/wangtile/internal/plane"
)

func TestWriteReadRoundTrip(t *testing.T) {
	p := plane.NewRGBPlane(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			_ = p.Set(x, y, byte(x*40), byte(y*60), byte((x+y)*10), false)
		}
	}

	path := filepath.Join(t.TempDir(), "sample.bmp")
	if err := Write(path, p); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 5 || got.Height() != 3 {
		t.Fatalf("round-tripped dimensions %dx%d, want 5x3", got.Width(), got.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			wr, wg, wb, _ := p.Get(x, y, false)
			gr, gg, gb, _ := got.Get(x, y, false)
			if wr != gr || wg != gg || wb != gb {
				t.Fatalf("pixel (%d,%d): wrote (%d,%d,%d), read (%d,%d,%d)", x, y, wr, wg, wb, gr, gg, gb)
			}
		}
	}
}

func TestReadRejectsBadSignature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bmp")
	if err := os.WriteFile(path, []byte("not a bmp file at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for bad signature")
	}
}
