package aura

import (
	"fmt"

	"github.com/goaura/aura/interop"
)

// LED is one addressable light. It keeps no colour of its own: every
// read and write goes straight to the native layer.
type LED struct {
	id   string
	name string
	lib  *interop.Lib
}

func newLED(lib *interop.Lib, id, name string) *LED {
	return &LED{id: id, name: name, lib: lib}
}

// ID returns the opaque id the native layer assigned.
func (l *LED) ID() string { return l.id }

// Name returns the human readable name.
func (l *LED) Name() string { return l.name }

// HSL reads the current colour. A closed Device reads as black.
func (l *LED) HSL() HSL {
	h, s, lightness := l.lib.HSL(l.id)
	return HSL{H: h, S: s, L: lightness}
}

// SetHSL writes the colour. It becomes visible with the next Device.Apply.
// Channels are passed on unchecked; the native layer defines what
// happens outside [0, 1].
func (l *LED) SetHSL(c HSL) {
	l.lib.SetHSL(l.id, c.H, c.S, c.L)
}

func (l *LED) String() string {
	return fmt.Sprintf("%s (%s)", l.name, l.id)
}
