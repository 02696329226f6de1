package image2oled

import "errors"

// Kind classifies the failures the pipeline can produce.
type Kind int

// Failure kinds, in pipeline order.
const (
	KindUsage Kind = iota + 1
	KindDecode
	KindWrite
	KindDisplay
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindDecode:
		return "decode"
	case KindWrite:
		return "write"
	case KindDisplay:
		return "display"
	}
	return "unknown"
}

// Error is returned by every stage of the pipeline. Err holds either one of
// the package sentinel errors or the underlying I/O or decoding error.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or zero if
// there isn't one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
