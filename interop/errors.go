package interop

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned by Load where the shim cannot exist.
var ErrUnsupportedPlatform = errors.New("interop: the aura shim is only available on windows")

// LoadError reports a shim library or one of its symbols that could not be bound.
type LoadError struct {
	Path         string
	Symbol       string
	WrappedError error
}

func (e *LoadError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("could not load native library %q: %v", e.Path, e.WrappedError)
	}
	return fmt.Sprintf("native library %q has no usable symbol %q: %v", e.Path, e.Symbol, e.WrappedError)
}

func (e *LoadError) Unwrap() error {
	return e.WrappedError
}
