package geom

import "github.com/pkg/errors"

// Cursor arithmetic happens in a lot of small methods that have no sensible
// way to return an error (Next() on an empty polygon, say). Rather than thread
// errors through all of them, they panic with a GeometryError, and the public
// entry points recover and convert it back into an error.

type GeometryError interface {
	error
	geometryError()
}

type thrown struct {
	error
}

func (thrown) geometryError() {}

// Unwrap lets errors.As reach the typed error underneath.
func (t thrown) Unwrap() error {
	return t.error
}

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(thrown{errors.Errorf(format, args...)})
}

// Panic with a GeometryError wrapping err.
func throw(err error) {
	panic(thrown{errors.WithStack(err)})
}

// HandlePanicRecover converts a recovered GeometryError into an error. Any
// other panic value is re-panicked, since it is a real bug.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
