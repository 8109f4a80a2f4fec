package wang

import "testing"

func TestParseCornerCodesValid(t *testing.T) {
	codes, err := ParseCornerCodes("exemplar_rgby.bmp", '_')
	if err != nil {
		t.Fatal(err)
	}
	want := [4]byte{'r', 'g', 'b', 'y'}
	if codes != want {
		t.Fatalf("got %v, want %v", codes, want)
	}
}

func TestParseCornerCodesNoDelimiter(t *testing.T) {
	if _, err := ParseCornerCodes("exemplar.bmp", '_'); err == nil {
		t.Fatal("expected error when delimiter is missing")
	}
}

func TestParseCornerCodesInvalidChar(t *testing.T) {
	if _, err := ParseCornerCodes("exemplar_rgbx.bmp", '_'); err == nil {
		t.Fatal("expected error for invalid corner code character")
	}
}

func TestParseCornerCodesWrongLength(t *testing.T) {
	if _, err := ParseCornerCodes("exemplar_rgb.bmp", '_'); err == nil {
		t.Fatal("expected error for wrong-length code suffix")
	}
}
