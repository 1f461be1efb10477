package interop

var _ ABI = Inert{}

// Inert stands in for a native library that could not be loaded.
// It is never available and all of its results are empty.
type Inert struct{}

func (Inert) IsAvailable() bool                        { return false }
func (Inert) QuerySwitchState() bool                   { return false }
func (Inert) SetSwitchState(bool)                      {}
func (Inert) DeviceNameList([]Handle) int              { return 0 }
func (Inert) EffectList(_, _ []Handle) int             { return 0 }
func (Inert) LEDList(_, _ []Handle) int                { return 0 }
func (Inert) CurrentEffect() Handle                    { return 0 }
func (Inert) SetEffect(string)                         {}
func (Inert) HSL(string) (h, s, l float32)             { return 0, 0, 0 }
func (Inert) SetHSL(string, float32, float32, float32) {}
func (Inert) Apply()                                   {}
func (Inert) SetDebugLogFunc(func(string))             {}
func (Inert) ReadString(Handle) string                 { return "" }
func (Inert) FreeString(Handle)                        {}
