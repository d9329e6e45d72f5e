package advanced

import "github.com/pkg/errors"

// The kernel operations are meant to be called in tight loops by a
// triangulator, so they return plain values. When a validating operation finds
// a precondition violation it panics with a *KernelError, and the public API
// recovers that into an ordinary error.

var (
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	ErrMismatchedEdges    = errors.New("edges do not match vertices")
	ErrEmptyInput         = errors.New("empty point set")
	ErrNonFinitePoint     = errors.New("non-finite point")
)

type KernelError struct {
	err error
}

func (e *KernelError) Error() string {
	return e.err.Error()
}

func (e *KernelError) Unwrap() error {
	return e.err
}

func (e *KernelError) Cause() error {
	return errors.Cause(e.err)
}

// Panic with a KernelError wrapping one of the sentinel errors.
func fatal(cause error, format string, args ...interface{}) {
	panic(&KernelError{errors.Wrapf(cause, format, args...)})
}

// Converts a recovered KernelError into an error. Any other panic value is
// re-raised, so programming errors are not swallowed.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if kernelError, ok := r.(*KernelError); ok {
			return kernelError
		}
		panic(r)
	}
	return nil
}
