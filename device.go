// Package aura drives ASUS Aura RGB lighting through the vendor SDK shim.
package aura

import (
	"github.com/rs/zerolog"

	"github.com/goaura/aura/interop"
)

// Device is the view of the Aura lighting subsystem. It is created with
// Open, owned by whoever drives the update loop and ended with Close.
//
// A Device is not safe for concurrent use. Every call is a synchronous
// round trip to the native layer.
type Device struct {
	lib          *interop.Lib
	log          zerolog.Logger
	debugHandler func(msg string)
	libraryPath  string

	available bool
	closed    bool
	leds      []*LED
}

// Open takes the subsystem into use through abi.
//
// If the subsystem is unavailable Open still succeeds and the Device
// stays inert: every query returns an empty result and no mutating
// native call is made. Otherwise the master switch is turned on if
// needed so the lighting is active right away.
func Open(abi interop.ABI, options ...Option) *Device {
	d := newDevice(options...)
	d.open(abi)
	return d
}

// OpenSystem loads the native shim (see WithLibrary) and opens it. When
// the shim cannot be loaded the returned Device is inert.
func OpenSystem(options ...Option) *Device {
	d := newDevice(options...)
	abi, err := interop.Load(d.libraryPath)
	if err != nil {
		d.log.Warn().Err(err).Str("library", d.libraryPath).Msg("native library unavailable, lighting is inert")
		abi = interop.Inert{}
	}
	d.open(abi)
	return d
}

func newDevice(options ...Option) *Device {
	d := &Device{
		log:         zerolog.Nop(),
		libraryPath: interop.DefaultLibrary,
	}
	for _, opt := range options {
		opt(d)
	}
	if d.debugHandler == nil {
		d.debugHandler = func(msg string) {
			d.log.Error().Str("source", "native").Msg(msg)
		}
	}
	return d
}

func (d *Device) open(abi interop.ABI) {
	d.lib = interop.New(abi, d.log)
	d.lib.SetDebugLogFunc(d.debugHandler)

	d.available = d.lib.IsAvailable()
	if !d.available {
		d.log.Info().Msg("aura subsystem not available")
		return
	}

	if !d.lib.QuerySwitchState() {
		d.log.Debug().Msg("switching lighting on")
		d.lib.SetSwitchState(true)
		d.lib.Apply()
	}
}

// Close unregisters the debug callback. Afterwards the Device and the
// LEDs it handed out behave as if the subsystem were unavailable.
//
// The native layer has a single debug callback per process, so only the
// most recently opened Device receives diagnostics. Closing an older
// Device leaves the newer one registered.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.lib.SetDebugLogFunc(nil)
	d.lib.Close()
	return nil
}

func (d *Device) active() bool {
	return d.available && !d.closed
}

// Available reports whether the subsystem came up when the Device was opened.
func (d *Device) Available() bool {
	return d.active()
}

// DeviceNames lists the lighting devices the SDK knows about.
func (d *Device) DeviceNames() []string {
	if !d.active() {
		return nil
	}
	return d.lib.DeviceNames()
}

// Effects lists the effects the hardware offers.
func (d *Device) Effects() []Effect {
	if !d.active() {
		return nil
	}
	ids, names := d.lib.Effects()
	effects := make([]Effect, len(ids))
	for i := range ids {
		effects[i] = Effect{ID: ids[i], Name: names[i]}
	}
	return effects
}

// EffectNames lists the names of the available effects.
func (d *Device) EffectNames() []string {
	effects := d.Effects()
	if effects == nil {
		return nil
	}
	names := make([]string, len(effects))
	for i, e := range effects {
		names[i] = e.Name
	}
	return names
}

// CurrentEffect returns the active effect if the native layer reports
// one that is in the effect list.
func (d *Device) CurrentEffect() (Effect, bool) {
	if !d.active() {
		return Effect{}, false
	}
	current := d.lib.CurrentEffect()
	return findEffect(d.Effects(), func(e Effect) bool { return e.ID == current })
}

// CurrentEffectName returns the name of the active effect. The native
// layer reports an id; an id without a matching effect is returned as is.
func (d *Device) CurrentEffectName() string {
	if !d.active() {
		return ""
	}
	current := d.lib.CurrentEffect()
	if e, ok := findEffect(d.Effects(), func(e Effect) bool { return e.ID == current }); ok {
		return e.Name
	}
	return current
}

// LEDs returns the addressable lights. The list is read once and then
// cached for the lifetime of the Device, so LEDs that appear later are
// not seen.
func (d *Device) LEDs() []*LED {
	if !d.active() {
		return nil
	}
	if d.leds != nil {
		return d.leds
	}
	ids, names := d.lib.LEDs()
	d.leds = make([]*LED, len(ids))
	for i := range ids {
		d.leds[i] = newLED(d.lib, ids[i], names[i])
	}
	d.log.Debug().Int("count", len(d.leds)).Msg("leds cached")
	return d.leds
}

// SetEffect selects the first effect whose name equals name exactly.
// An unknown name is ignored.
func (d *Device) SetEffect(name string) {
	if err := d.SelectEffect(name); err != nil {
		d.log.Debug().Err(err).Msg("set effect ignored")
	}
}

// SelectEffect is SetEffect with an explicit result: it returns
// ErrUnavailable on an inert Device and an *EffectNotFoundError when no
// effect has the given name.
func (d *Device) SelectEffect(name string) error {
	if !d.active() {
		return ErrUnavailable
	}
	e, ok := findEffect(d.Effects(), func(e Effect) bool { return e.Name == name })
	if !ok {
		return &EffectNotFoundError{Name: name}
	}
	d.lib.SetEffect(e.ID)
	return nil
}

// Apply pushes all pending LED and effect changes to the hardware.
func (d *Device) Apply() {
	if !d.active() {
		return
	}
	d.lib.Apply()
}

// Switch reports whether the lighting master switch is on.
func (d *Device) Switch() bool {
	if !d.active() {
		return false
	}
	return d.lib.QuerySwitchState()
}

// SetSwitch turns the lighting master switch on or off.
// Like any other change it takes effect with Apply.
func (d *Device) SetSwitch(on bool) {
	if !d.active() {
		return
	}
	d.lib.SetSwitchState(on)
}

// Fill sets every LED to c and applies.
func (d *Device) Fill(c HSL) {
	leds := d.LEDs()
	if len(leds) == 0 {
		return
	}
	for _, led := range leds {
		led.SetHSL(c)
	}
	d.Apply()
}
