package aura

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned by calls that need a working subsystem on
// an inert or closed Device.
var ErrUnavailable = errors.New("aura: lighting subsystem is not available")

type EffectNotFoundError struct {
	Name string
}

func (e *EffectNotFoundError) Error() string {
	return fmt.Sprintf("aura: no effect named %q", e.Name)
}
