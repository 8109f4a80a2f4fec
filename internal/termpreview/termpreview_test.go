package termpreview

import (
	"testing"

	"github.com/sashaouellet/wangtile/internal/plane"
)

func TestComputePreviewSizeClampsToMinimums(t *testing.T) {
	size := computePreviewSize(4, 4)
	if size.Cols < 6 || size.Rows < 3 {
		t.Fatalf("expected clamped minimums, got %+v", size)
	}
}

func TestComputePreviewSizeClampsToMaximums(t *testing.T) {
	size := computePreviewSize(100000, 100000)
	if size.Cols > 80 || size.Rows > 40 {
		t.Fatalf("expected clamped maximums, got %+v", size)
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(5, 10, 20); got != 10 {
		t.Errorf("clampInt(5,10,20) = %d, want 10", got)
	}
	if got := clampInt(25, 10, 20); got != 20 {
		t.Errorf("clampInt(25,10,20) = %d, want 20", got)
	}
	if got := clampInt(15, 10, 20); got != 15 {
		t.Errorf("clampInt(15,10,20) = %d, want 15", got)
	}
}

func TestToStdImagePreservesPixels(t *testing.T) {
	p := plane.NewRGBPlane(2, 2)
	_ = p.Set(1, 0, 10, 20, 30, false)

	img := toStdImage(p)
	r, g, b, _ := img.At(1, 0).RGBA()
	if byte(r>>8) != 10 || byte(g>>8) != 20 || byte(b>>8) != 30 {
		t.Fatalf("pixel mismatch: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestPreviewBytesRejectsEmptyBlob(t *testing.T) {
	if err := previewBytes(nil, PreviewSize{}); err == nil {
		t.Fatal("expected error for empty blob")
	}
}
