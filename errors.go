package stdin

import (
	"github.com/pkg/errors"
)

// ErrConsumed is returned when standard input (or a single-use Source) is
// read more than once. Standard input is a shared, position-advancing
// stream; once any value in the process has consumed it, every later
// attempt fails with this error. Use errors.Is to detect it through the
// wrapping added at adapter boundaries.
var ErrConsumed = errors.New("stdin: read more than once")
