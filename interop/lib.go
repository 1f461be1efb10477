package interop

import (
	"github.com/rs/zerolog"
)

// Lib converts the raw ABI into Go values. It owns every handle the
// native layer returns and releases each of them exactly once.
type Lib struct {
	abi ABI
	log zerolog.Logger
}

// New returns a Lib on top of the given native surface.
func New(abi ABI, logger zerolog.Logger) *Lib {
	if abi == nil {
		abi = Inert{}
	}
	return &Lib{
		abi: abi,
		log: logger.With().Str("component", "interop").Logger(),
	}
}

// IsAvailable reports whether the native subsystem came up. A missing
// vendor service is reported as false.
func (l *Lib) IsAvailable() bool {
	return l.abi.IsAvailable()
}

// QuerySwitchState reports whether the lighting master switch is on.
func (l *Lib) QuerySwitchState() bool {
	return l.abi.QuerySwitchState()
}

// SetSwitchState turns the lighting master switch on or off.
func (l *Lib) SetSwitchState(on bool) {
	l.abi.SetSwitchState(on)
}

// DeviceNames returns at most ListCapacity device names.
func (l *Lib) DeviceNames() []string {
	cols := l.fetch("devices", ListCapacity, 1, func(bufs ...[]Handle) int {
		return l.abi.DeviceNameList(bufs[0])
	})
	return cols[0]
}

// Effects returns positionally paired effect ids and names, at most
// ListCapacity of each.
func (l *Lib) Effects() (ids, names []string) {
	cols := l.fetch("effects", ListCapacity, 2, func(bufs ...[]Handle) int {
		return l.abi.EffectList(bufs[0], bufs[1])
	})
	return cols[0], cols[1]
}

// LEDs returns positionally paired LED ids and names, at most
// LEDListCapacity of each.
func (l *Lib) LEDs() (ids, names []string) {
	cols := l.fetch("leds", LEDListCapacity, 2, func(bufs ...[]Handle) int {
		return l.abi.LEDList(bufs[0], bufs[1])
	})
	return cols[0], cols[1]
}

// CurrentEffect returns what the native layer reports as the active effect.
func (l *Lib) CurrentEffect() string {
	return l.take(l.abi.CurrentEffect())
}

// SetEffect selects an effect by its native id.
func (l *Lib) SetEffect(id string) {
	l.abi.SetEffect(id)
}

// HSL reads the colour of one LED.
func (l *Lib) HSL(ledID string) (h, s, lightness float32) {
	return l.abi.HSL(ledID)
}

// SetHSL writes the colour of one LED. The native layer batches writes
// until Apply.
func (l *Lib) SetHSL(ledID string, h, s, lightness float32) {
	l.abi.SetHSL(ledID, h, s, lightness)
}

// Apply pushes all pending state to the hardware.
func (l *Lib) Apply() {
	l.abi.Apply()
}

// SetDebugLogFunc registers fn for native diagnostics. nil unregisters.
func (l *Lib) SetDebugLogFunc(fn func(msg string)) {
	l.abi.SetDebugLogFunc(fn)
}

// Close detaches l from the native layer. Afterwards every call,
// including those through values that hold l, behaves like Inert.
// The native library stays loaded.
func (l *Lib) Close() {
	l.abi = Inert{}
}

// take copies the string behind h and releases it.
func (l *Lib) take(h Handle) string {
	if h == 0 {
		return ""
	}
	s := l.abi.ReadString(h)
	l.abi.FreeString(h)
	return s
}

// fetch hands columns buffers of capacity handles to call and converts
// the entries call reports. The count is clamped to [0, capacity];
// handles past it are never read or freed.
func (l *Lib) fetch(list string, capacity, columns int, call func(bufs ...[]Handle) int) [][]string {
	bufs := make([][]Handle, columns)
	for i := range bufs {
		bufs[i] = make([]Handle, capacity)
	}

	n := call(bufs...)
	switch {
	case n < 0:
		l.log.Warn().Str("list", list).Int("reported", n).Msg("negative list length from native layer")
		n = 0
	case n > capacity:
		l.log.Warn().Str("list", list).Int("reported", n).Int("capacity", capacity).Msg("native list truncated")
		n = capacity
	case n == capacity:
		l.log.Debug().Str("list", list).Int("capacity", capacity).Msg("native list filled to capacity, later entries are dropped")
	}

	out := make([][]string, columns)
	for c, buf := range bufs {
		out[c] = make([]string, n)
		for i := 0; i < n; i++ {
			out[c][i] = l.take(buf[i])
		}
	}

	l.log.Debug().Str("list", list).Int("len", n).Msg("fetched")
	return out
}
