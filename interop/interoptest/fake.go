// Package interoptest provides a fake native layer that keeps books on
// every string handle it hands out.
package interoptest

import (
	"fmt"

	"github.com/goaura/aura/interop"
)

var _ interop.ABI = &Fake{}

// Color is an HSL triple as the fake stores it.
type Color [3]float32

// Fake behaves like the native shim: list calls write at most
// len(buffer) freshly allocated handles and return how many were written.
type Fake struct {
	Available   bool
	SwitchOn    bool
	DeviceNames []string
	EffectIDs   []string
	EffectNames []string
	LEDIDs      []string
	LEDNames    []string

	// Current is the id of the active effect.
	Current string
	Colors  map[string]Color

	// Overreport makes list calls return the full list length even when
	// the buffer is smaller, as a misbehaving native layer would.
	Overreport bool

	// Calls records every mutating call in order.
	Calls []string

	logFn  func(string)
	next   interop.Handle
	values map[interop.Handle]string
	reads  map[interop.Handle]int
	frees  map[interop.Handle]int

	// BadReads and BadFrees count accesses to handles that were never
	// allocated or were already freed.
	BadReads int
	BadFrees int
}

// New returns an available fake with the master switch on.
func New() *Fake {
	return &Fake{
		Available: true,
		SwitchOn:  true,
		Colors:    map[string]Color{},
	}
}

func (f *Fake) init() {
	if f.values == nil {
		f.values = map[interop.Handle]string{}
		f.reads = map[interop.Handle]int{}
		f.frees = map[interop.Handle]int{}
	}
	if f.Colors == nil {
		f.Colors = map[string]Color{}
	}
}

func (f *Fake) alloc(s string) interop.Handle {
	f.init()
	f.next++
	f.values[f.next] = s
	return f.next
}

func (f *Fake) record(call string) {
	f.Calls = append(f.Calls, call)
}

func (f *Fake) IsAvailable() bool      { return f.Available }
func (f *Fake) QuerySwitchState() bool { return f.SwitchOn }

func (f *Fake) SetSwitchState(on bool) {
	f.record(fmt.Sprintf("SetSwitchState(%v)", on))
	f.SwitchOn = on
}

func (f *Fake) fill(buf []interop.Handle, src []string) int {
	n := len(src)
	if n > len(buf) {
		n = len(buf)
	}
	for i := 0; i < n; i++ {
		buf[i] = f.alloc(src[i])
	}
	if f.Overreport {
		return len(src)
	}
	return n
}

func (f *Fake) DeviceNameList(names []interop.Handle) int {
	return f.fill(names, f.DeviceNames)
}

func (f *Fake) EffectList(ids, names []interop.Handle) int {
	n := f.fill(ids, f.EffectIDs)
	f.fill(names, pad(f.EffectNames, len(f.EffectIDs)))
	return n
}

func (f *Fake) LEDList(ids, names []interop.Handle) int {
	n := f.fill(ids, f.LEDIDs)
	f.fill(names, pad(f.LEDNames, len(f.LEDIDs)))
	return n
}

func pad(s []string, n int) []string {
	if len(s) >= n {
		return s[:n]
	}
	out := make([]string, n)
	copy(out, s)
	return out
}

func (f *Fake) CurrentEffect() interop.Handle {
	return f.alloc(f.Current)
}

func (f *Fake) SetEffect(id string) {
	f.record("SetEffect(" + id + ")")
	f.Current = id
}

func (f *Fake) HSL(ledID string) (h, s, l float32) {
	f.init()
	c := f.Colors[ledID]
	return c[0], c[1], c[2]
}

func (f *Fake) SetHSL(ledID string, h, s, l float32) {
	f.init()
	f.record("SetHSL(" + ledID + ")")
	f.Colors[ledID] = Color{h, s, l}
}

func (f *Fake) Apply() {
	f.record("Apply")
}

func (f *Fake) SetDebugLogFunc(fn func(msg string)) {
	f.logFn = fn
}

// Log emits a diagnostic message the way the native layer would.
// It reports whether a callback was registered to receive it.
func (f *Fake) Log(msg string) bool {
	if f.logFn == nil {
		return false
	}
	f.logFn(msg)
	return true
}

func (f *Fake) ReadString(h interop.Handle) string {
	f.init()
	s, ok := f.values[h]
	if !ok || f.frees[h] > 0 {
		f.BadReads++
		return ""
	}
	f.reads[h]++
	return s
}

func (f *Fake) FreeString(h interop.Handle) {
	f.init()
	if _, ok := f.values[h]; !ok || f.frees[h] > 0 {
		f.BadFrees++
		return
	}
	f.frees[h]++
}

// Allocated returns how many handles the fake has handed out.
func (f *Fake) Allocated() int {
	return len(f.values)
}

// Leaked returns how many handed-out handles were never freed.
func (f *Fake) Leaked() int {
	var n int
	for h := range f.values {
		if f.frees[h] == 0 {
			n++
		}
	}
	return n
}

// Reads returns how often h was read.
func (f *Fake) Reads(h interop.Handle) int {
	return f.reads[h]
}

// Frees returns how often h was freed.
func (f *Fake) Frees(h interop.Handle) int {
	return f.frees[h]
}

// Mutated reports whether any mutating native call was issued.
func (f *Fake) Mutated() bool {
	return len(f.Calls) > 0
}

// WithLEDs fills LEDIDs and LEDNames with n generated entries.
func (f *Fake) WithLEDs(n int) *Fake {
	f.LEDIDs = make([]string, n)
	f.LEDNames = make([]string, n)
	for i := 0; i < n; i++ {
		f.LEDIDs[i] = fmt.Sprintf("L%d", i)
		f.LEDNames[i] = fmt.Sprintf("LED %d", i)
	}
	return f
}
