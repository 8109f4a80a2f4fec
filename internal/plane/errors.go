package plane

import "fmt"

// ErrOutOfBounds is returned whenever a plane coordinate falls outside
// [0,width)x[0,height), and by CopyRegion for an inverted or negative
// rectangle.
var ErrOutOfBounds = fmt.Errorf("plane: out of bounds")

func outOfBounds(x, y, width, height int) error {
	return fmt.Errorf("coordinate (%d,%d) outside [0,%d)x[0,%d): %w", x, y, width, height, ErrOutOfBounds)
}
