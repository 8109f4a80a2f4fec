package quilt

import (
	"testing"

	"github.com/sashaouellet/wangtile/internal/plane"
)

func TestSeamMaskAllOnesWhenNoNeighbors(t *testing.T) {
	err := plane.NewIntPlane(12, 12)
	mask, e := computeSeamMask(err, 12, 2, false, false)
	if e != nil {
		t.Fatal(e)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			v, _ := mask.Get(x, y)
			if v != 1 {
				t.Fatalf("expected all-1 mask, got 0 at (%d,%d)", x, y)
			}
		}
	}
}

func TestSeamMaskOnlyZeroOrOne(t *testing.T) {
	const S, O = 18, 3
	errP := plane.NewIntPlane(S, S)
	for y := 0; y < O; y++ {
		for x := 0; x < S; x++ {
			_ = errP.Set(x, y, int32((x*7+y*3)%11))
		}
	}
	for y := 0; y < S; y++ {
		for x := 0; x < O; x++ {
			_ = errP.Set(x, y, int32((x*5+y*2)%9))
		}
	}
	mask, err := computeSeamMask(errP, S, O, true, true)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < S; y++ {
		for x := 0; x < S; x++ {
			v, _ := mask.Get(x, y)
			if v != 0 && v != 1 {
				t.Fatalf("mask value %d at (%d,%d) not binary", v, x, y)
			}
		}
	}
}

func TestSeamMaskBodyAlwaysKept(t *testing.T) {
	const S, O = 12, 2
	errP := plane.NewIntPlane(S, S)
	for y := 0; y < O; y++ {
		for x := 0; x < S; x++ {
			_ = errP.Set(x, y, 100)
		}
	}
	for y := 0; y < S; y++ {
		for x := 0; x < O; x++ {
			_ = errP.Set(x, y, 100)
		}
	}
	mask, err := computeSeamMask(errP, S, O, true, true)
	if err != nil {
		t.Fatal(err)
	}
	for y := O; y < S; y++ {
		for x := O; x < S; x++ {
			v, _ := mask.Get(x, y)
			if v != 1 {
				t.Fatalf("body cell (%d,%d) not kept", x, y)
			}
		}
	}
}

func TestHorizontalBoundaryFollowsValley(t *testing.T) {
	const S, O = 10, 6
	errP := plane.NewIntPlane(S, S)
	errP.Fill(0)
	for x := 0; x < S; x++ {
		for r := 0; r < O; r++ {
			v := int32(50)
			if r == 3 {
				v = 0
			}
			_ = errP.Set(x, r, v)
		}
	}
	mask, err := computeSeamMask(errP, S, O, false, true)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < S; x++ {
		for y := 0; y < O; y++ {
			v, _ := mask.Get(x, y)
			want := int32(0)
			if y >= 3 {
				want = 1
			}
			if v != want {
				t.Fatalf("column %d row %d: got %d, want %d (valley at row 3)", x, y, v, want)
			}
		}
	}
}

func TestVerticalCutOnlyWhenTopAbsent(t *testing.T) {
	const S, O = 8, 2
	errP := plane.NewIntPlane(S, S)
	for y := 0; y < S; y++ {
		for x := 0; x < O; x++ {
			_ = errP.Set(x, y, int32(y%3))
		}
	}
	mask, err := computeSeamMask(errP, S, O, true, false)
	if err != nil {
		t.Fatal(err)
	}
	// with no top neighbor there is no horizontal cut, so every column right
	// of the left overlap strip (x >= O) is kept in every row, the top O rows
	// included; the exact vertical cut inside the strip depends on the DP
	// result and is not asserted.
	for y := 0; y < S; y++ {
		for x := O; x < S; x++ {
			v, _ := mask.Get(x, y)
			if v != 1 {
				t.Fatalf("cell (%d,%d) right of the left overlap strip should be kept", x, y)
			}
		}
	}
}
