package dragscroll

import "errors"

// Construction errors. Gesture handling itself never fails.
var (
	// ErrNilRef indicates New was called without a surface reference.
	ErrNilRef = errors.New("dragscroll: nil surface ref")

	// ErrNilHub indicates New was called without an input hub.
	ErrNilHub = errors.New("dragscroll: nil event hub")

	// ErrNilScheduler indicates New was called without a scheduler.
	ErrNilScheduler = errors.New("dragscroll: nil scheduler")

	// ErrInvalidOption is matched by every OptionError.
	ErrInvalidOption = errors.New("dragscroll: invalid option")
)
