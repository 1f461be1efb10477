package aura

import "github.com/rs/zerolog"

type Option func(*Device)

// WithLogger sets the logger for the Device and its interop layer.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Device) {
		d.log = logger
	}
}

// WithDebugHandler receives the native layer's diagnostic messages.
// By default they are logged at error level.
func WithDebugHandler(fn func(msg string)) Option {
	return func(d *Device) {
		d.debugHandler = fn
	}
}

// WithLibrary sets the path OpenSystem loads the native shim from.
func WithLibrary(path string) Option {
	return func(d *Device) {
		if path != "" {
			d.libraryPath = path
		}
	}
}
