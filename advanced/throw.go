package advanced

import (
	"runtime"

	"github.com/pkg/errors"
)

// The clip loop and its helpers would all need error returns for a condition
// that can only come from invalid input. Instead, we use panics, and the
// exported entry points recover to convert to an error.

type TriangulateError error

var (
	// No vertex of the remaining ring is an ear. The input was not a simple
	// counterclockwise polygon.
	ErrNoEar = errors.New("no ear found")
	// The engine was handed fewer than three vertices.
	ErrDegenerate = errors.New("degenerate polygon")
)

// Panic with a TriangulateError wrapping a sentinel.
func fatal(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}

// Convert a recovered TriangulateError to an error. Runtime errors and
// non-error panics are bugs, not triangulation failures, so they are re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
