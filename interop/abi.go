// Package interop is the only code that talks to the native Aura shim.
//
// The shim hands out strings it allocated itself. Whoever receives a
// Handle owns it and must release it exactly once, after copying.
package interop

// Handle is an opaque reference to a string allocated by the native library.
type Handle uintptr

const (
	// ListCapacity bounds the device name and effect lists.
	ListCapacity = 32

	// LEDListCapacity bounds the LED list. LED counts grow with
	// addressable zones, not with devices.
	LEDListCapacity = 2048
)

// ABI is the raw C surface of the native lighting library.
// List calls fill caller-allocated buffers and return the number of
// entries written. Every handle they produce must be passed to
// ReadString and then FreeString.
type ABI interface {
	IsAvailable() bool
	QuerySwitchState() bool
	SetSwitchState(on bool)

	DeviceNameList(names []Handle) int
	EffectList(ids, names []Handle) int
	LEDList(ids, names []Handle) int

	CurrentEffect() Handle
	SetEffect(id string)
	HSL(ledID string) (h, s, l float32)
	SetHSL(ledID string, h, s, l float32)
	Apply()

	// SetDebugLogFunc registers the function the native layer calls with
	// diagnostic messages. nil unregisters it.
	SetDebugLogFunc(fn func(msg string))

	ReadString(h Handle) string
	FreeString(h Handle)
}

// DefaultLibrary is the file name of the native shim.
const DefaultLibrary = "UnityASUSAura.dll"
