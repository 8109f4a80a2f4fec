package plane

import "testing"

func TestIntPlaneGetSet(t *testing.T) {
	p := NewIntPlane(3, 3)
	if err := p.Set(1, 2, -7); err != nil {
		t.Fatal(err)
	}
	v, err := p.Get(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v != -7 {
		t.Fatalf("got %d, want -7", v)
	}
}

func TestIntPlaneOutOfBounds(t *testing.T) {
	p := NewIntPlane(2, 2)
	if _, err := p.Get(2, 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestIntPlaneFill(t *testing.T) {
	p := NewIntPlane(4, 4)
	p.Fill(7)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v, _ := p.Get(x, y)
			if v != 7 {
				t.Fatalf("Fill did not set (%d,%d)", x, y)
			}
		}
	}
}

func TestIntPlaneCloneIsDeep(t *testing.T) {
	p := NewIntPlane(2, 2)
	_ = p.Set(0, 0, 3)
	c := p.Clone()
	_ = c.Set(0, 0, 99)
	v, _ := p.Get(0, 0)
	if v != 3 {
		t.Fatal("Clone shares storage with source")
	}
}
