package eval

import "errors"

// Error kinds callers can test for with errors.Is. Bad configuration and bad
// data stay distinguishable; neither is ever retried here.
var (
	// ErrInvalidGrid reports a malformed threshold grid: empty, a value
	// outside (0,1), not strictly increasing, or a negative tolerance.
	ErrInvalidGrid = errors.New("eval: invalid threshold grid")

	// ErrDegenerateSet reports an evaluation set that cannot be scored:
	// empty, X/Y lengths that disagree, or labels all of one class. All
	// three are defects of the supplied data; ErrInvalidGrid is reserved
	// for the sweep configuration (grid and tolerance).
	ErrDegenerateSet = errors.New("eval: evaluation set lacks class variety")
)
