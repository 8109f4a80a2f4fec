package wang

import (
	"fmt"
	"strings"
)

// validCodes is the closed set of corner codes a Wang tile exemplar may
// use (spec.md §4.3's {'r','g','b','y'}).
var validCodes = map[byte]bool{'r': true, 'g': true, 'b': true, 'y': true}

// ParseCornerCodes extracts the four corner-code characters from an
// exemplar filename, following the original source's filename convention
// (e.g. "exemplar_rgby.bmp"): everything after the given delimiter, up to
// the extension, must be exactly four characters drawn from {r,g,b,y}.
func ParseCornerCodes(name string, delimiter byte) ([4]byte, error) {
	var codes [4]byte

	idx := strings.IndexByte(name, delimiter)
	if idx == -1 {
		return codes, fmt.Errorf("wang: filename %q has no %q delimiter separating corner codes", name, delimiter)
	}
	suffix := name[idx+1:]
	if dot := strings.LastIndexByte(suffix, '.'); dot != -1 {
		suffix = suffix[:dot]
	}
	if len(suffix) != 4 {
		return codes, fmt.Errorf("wang: filename %q must have exactly 4 corner-code characters after %q, got %q", name, delimiter, suffix)
	}
	for i := 0; i < 4; i++ {
		c := suffix[i]
		if !validCodes[c] {
			return codes, fmt.Errorf("wang: invalid corner code %q in filename %q (must be one of r,g,b,y)", c, name)
		}
		codes[i] = c
	}
	return codes, nil
}
