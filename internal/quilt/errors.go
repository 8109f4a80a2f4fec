package quilt

import "fmt"

// ErrInvalidArgument is returned by Quilt constructors when the given
// exemplar/patch-size combination cannot satisfy the quilting invariants.
var ErrInvalidArgument = fmt.Errorf("quilt: invalid argument")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}
