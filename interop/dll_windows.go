//go:build windows && (amd64 || 386)

package interop

import (
	"math"
	"sync"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

const nativeTrue = 1

var (
	nativeDebug   debugRelay
	debugCallback uintptr
	callbackOnce  sync.Once
)

// debugTrampoline is the only function pointer ever handed to the shim.
// It lives for the whole process; registering a new Go function only
// swaps the target of nativeDebug.
func debugTrampoline(msg uintptr) uintptr {
	if msg == 0 {
		return 0
	}
	nativeDebug.forward(windows.UTF16PtrToString((*uint16)(unsafe.Pointer(msg))))
	return 0
}

type dll struct {
	path         string
	registerOnce sync.Once
	debugToken   *func(string)

	isAvailable       *windows.LazyProc
	querySwitchState  *windows.LazyProc
	setSwitchState    *windows.LazyProc
	getDeviceNameList *windows.LazyProc
	getEffectList     *windows.LazyProc
	getLEDList        *windows.LazyProc
	getCurrentEffect  *windows.LazyProc
	setEffect         *windows.LazyProc
	getHSL            *windows.LazyProc
	setHSL            *windows.LazyProc
	apply             *windows.LazyProc
	setDebugLogFunc   *windows.LazyProc
}

var _ ABI = &dll{}

// Load binds the native shim at path and resolves all of its symbols.
func Load(path string) (ABI, error) {
	if path == "" {
		path = DefaultLibrary
	}
	lib := windows.NewLazyDLL(path)
	if err := lib.Load(); err != nil {
		return nil, &LoadError{Path: path, WrappedError: err}
	}

	d := &dll{path: path}
	symbols := []struct {
		name string
		proc **windows.LazyProc
	}{
		{"is_available", &d.isAvailable},
		{"query_switch_state", &d.querySwitchState},
		{"set_switch_state", &d.setSwitchState},
		{"get_device_name_list", &d.getDeviceNameList},
		{"get_effect_list", &d.getEffectList},
		{"get_LED_list", &d.getLEDList},
		{"get_current_effect", &d.getCurrentEffect},
		{"set_effect", &d.setEffect},
		{"get_HSL", &d.getHSL},
		{"set_HSL", &d.setHSL},
		{"apply", &d.apply},
		{"set_debug_log_func", &d.setDebugLogFunc},
	}
	for _, sym := range symbols {
		p := lib.NewProc(sym.name)
		if err := p.Find(); err != nil {
			return nil, &LoadError{Path: path, Symbol: sym.name, WrappedError: err}
		}
		*sym.proc = p
	}
	return d, nil
}

func (d *dll) IsAvailable() bool {
	r, _, _ := d.isAvailable.Call()
	return int32(r) == nativeTrue
}

func (d *dll) QuerySwitchState() bool {
	r, _, _ := d.querySwitchState.Call()
	return int32(r) == nativeTrue
}

func (d *dll) SetSwitchState(on bool) {
	var state uintptr
	if on {
		state = nativeTrue
	}
	d.setSwitchState.Call(state)
}

func (d *dll) DeviceNameList(names []Handle) int {
	if len(names) == 0 {
		return 0
	}
	r, _, _ := d.getDeviceNameList.Call(
		uintptr(unsafe.Pointer(&names[0])),
		uintptr(len(names)),
	)
	return int(int32(r))
}

func (d *dll) EffectList(ids, names []Handle) int {
	return d.pairList(d.getEffectList, ids, names)
}

func (d *dll) LEDList(ids, names []Handle) int {
	return d.pairList(d.getLEDList, ids, names)
}

func (d *dll) pairList(proc *windows.LazyProc, ids, names []Handle) int {
	n := len(ids)
	if len(names) < n {
		n = len(names)
	}
	if n == 0 {
		return 0
	}
	r, _, _ := proc.Call(
		uintptr(unsafe.Pointer(&ids[0])),
		uintptr(unsafe.Pointer(&names[0])),
		uintptr(n),
	)
	return int(int32(r))
}

func (d *dll) CurrentEffect() Handle {
	r, _, _ := d.getCurrentEffect.Call()
	return Handle(r)
}

func (d *dll) SetEffect(id string) {
	withBSTR(id, func(p uintptr) {
		d.setEffect.Call(p)
	})
}

func (d *dll) HSL(ledID string) (h, s, l float32) {
	withBSTR(ledID, func(p uintptr) {
		d.getHSL.Call(
			p,
			uintptr(unsafe.Pointer(&h)),
			uintptr(unsafe.Pointer(&s)),
			uintptr(unsafe.Pointer(&l)),
		)
	})
	return h, s, l
}

// SetHSL passes the floats by value. On amd64 the runtime mirrors the
// first four arguments into the XMM registers, on 386 they go on the stack.
func (d *dll) SetHSL(ledID string, h, s, l float32) {
	withBSTR(ledID, func(p uintptr) {
		d.setHSL.Call(
			p,
			uintptr(math.Float32bits(h)),
			uintptr(math.Float32bits(s)),
			uintptr(math.Float32bits(l)),
		)
	})
}

func (d *dll) Apply() {
	d.apply.Call()
}

func (d *dll) SetDebugLogFunc(fn func(msg string)) {
	if fn == nil {
		nativeDebug.release(d.debugToken)
		d.debugToken = nil
		return
	}
	d.debugToken = nativeDebug.set(fn)

	callbackOnce.Do(func() {
		debugCallback = windows.NewCallback(debugTrampoline)
	})
	d.registerOnce.Do(func() {
		d.setDebugLogFunc.Call(debugCallback)
	})
}

func (d *dll) ReadString(h Handle) string {
	if h == 0 {
		return ""
	}
	return ole.BstrToString((*uint16)(unsafe.Pointer(h)))
}

func (d *dll) FreeString(h Handle) {
	if h == 0 {
		return
	}
	ole.SysFreeString((*int16)(unsafe.Pointer(h)))
}

// withBSTR passes s to fn as a BSTR that is released when fn returns.
func withBSTR(s string, fn func(p uintptr)) {
	b := ole.SysAllocString(s)
	defer ole.SysFreeString(b)
	fn(uintptr(unsafe.Pointer(b)))
}
