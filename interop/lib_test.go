package interop_test

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goaura/aura/interop"
	"github.com/goaura/aura/interop/interoptest"
)

func names(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return out
}

func TestDeviceNamesWithinCapacity(t *testing.T) {
	for _, k := range []int{0, 1, 5, interop.ListCapacity - 1, interop.ListCapacity} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			fake := interoptest.New()
			fake.DeviceNames = names("dev", k)
			lib := interop.New(fake, zerolog.Nop())

			got := lib.DeviceNames()

			require.Len(t, got, k)
			assert.Equal(t, fake.DeviceNames, got)
			assert.Equal(t, k, fake.Allocated())
			assert.Zero(t, fake.Leaked())
			assert.Zero(t, fake.BadReads)
			assert.Zero(t, fake.BadFrees)
		})
	}
}

func TestEveryHandleReadAndFreedOnce(t *testing.T) {
	fake := interoptest.New().WithLEDs(40)
	lib := interop.New(fake, zerolog.Nop())

	ids, lnames := lib.LEDs()

	require.Len(t, ids, 40)
	require.Len(t, lnames, 40)
	require.Equal(t, 80, fake.Allocated())
	for h := interop.Handle(1); h <= 80; h++ {
		assert.Equal(t, 1, fake.Reads(h), "reads of handle %d", h)
		assert.Equal(t, 1, fake.Frees(h), "frees of handle %d", h)
	}
}

func TestListsTruncatedAtCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		fetch    func(lib *interop.Lib) int
		fill     func(f *interoptest.Fake, n int)
	}{
		{
			name:     "devices",
			capacity: interop.ListCapacity,
			fetch:    func(lib *interop.Lib) int { return len(lib.DeviceNames()) },
			fill:     func(f *interoptest.Fake, n int) { f.DeviceNames = names("dev", n) },
		},
		{
			name:     "effects",
			capacity: interop.ListCapacity,
			fetch: func(lib *interop.Lib) int {
				ids, names := lib.Effects()
				if len(ids) != len(names) {
					return -1
				}
				return len(ids)
			},
			fill: func(f *interoptest.Fake, n int) {
				f.EffectIDs = names("id", n)
				f.EffectNames = names("effect", n)
			},
		},
		{
			name:     "leds",
			capacity: interop.LEDListCapacity,
			fetch: func(lib *interop.Lib) int {
				ids, names := lib.LEDs()
				if len(ids) != len(names) {
					return -1
				}
				return len(ids)
			},
			fill: func(f *interoptest.Fake, n int) { f.WithLEDs(n) },
		},
	}

	for _, tt := range tests {
		for _, overreport := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/overreport=%v", tt.name, overreport), func(t *testing.T) {
				fake := interoptest.New()
				fake.Overreport = overreport
				tt.fill(fake, tt.capacity+7)
				lib := interop.New(fake, zerolog.Nop())

				assert.Equal(t, tt.capacity, tt.fetch(lib))
				assert.Zero(t, fake.Leaked())
				assert.Zero(t, fake.BadReads)
				assert.Zero(t, fake.BadFrees)
			})
		}
	}
}

func TestEffectsArePaired(t *testing.T) {
	fake := interoptest.New()
	fake.EffectIDs = []string{"0", "1", "2"}
	fake.EffectNames = []string{"Static", "Breathing", "Rainbow"}
	lib := interop.New(fake, zerolog.Nop())

	ids, got := lib.Effects()

	assert.Equal(t, []string{"0", "1", "2"}, ids)
	assert.Equal(t, []string{"Static", "Breathing", "Rainbow"}, got)
	assert.Zero(t, fake.Leaked())
}

func TestCurrentEffectReleasesHandle(t *testing.T) {
	fake := interoptest.New()
	fake.Current = "rainbow"
	lib := interop.New(fake, zerolog.Nop())

	assert.Equal(t, "rainbow", lib.CurrentEffect())
	assert.Equal(t, 1, fake.Allocated())
	assert.Zero(t, fake.Leaked())
}

// negative is a native layer that reports a nonsensical length.
type negative struct {
	*interoptest.Fake
}

func (negative) DeviceNameList([]interop.Handle) int { return -3 }

func TestNegativeLengthYieldsEmpty(t *testing.T) {
	fake := interoptest.New()
	lib := interop.New(negative{fake}, zerolog.Nop())

	assert.Empty(t, lib.DeviceNames())
	assert.Zero(t, fake.BadReads)
	assert.Zero(t, fake.BadFrees)
}

func TestHSLRoundTrip(t *testing.T) {
	lib := interop.New(interoptest.New(), zerolog.Nop())
	values := []float32{0.0, 0.5, 1.0}

	for _, h := range values {
		for _, s := range values {
			for _, l := range values {
				lib.SetHSL("L0", h, s, l)
				gh, gs, gl := lib.HSL("L0")
				assert.Equal(t, [3]float32{h, s, l}, [3]float32{gh, gs, gl})
			}
		}
	}
}

func TestInertIsEmpty(t *testing.T) {
	lib := interop.New(nil, zerolog.Nop())

	assert.False(t, lib.IsAvailable())
	assert.Empty(t, lib.DeviceNames())
	ids, effects := lib.Effects()
	assert.Empty(t, ids)
	assert.Empty(t, effects)
	assert.Equal(t, "", lib.CurrentEffect())
}

func TestClosedLibIsInert(t *testing.T) {
	fake := interoptest.New().WithLEDs(2)
	fake.Colors["L0"] = interoptest.Color{0.5, 0.5, 0.5}
	lib := interop.New(fake, zerolog.Nop())
	require.True(t, lib.IsAvailable())

	lib.Close()

	assert.False(t, lib.IsAvailable())
	ids, _ := lib.LEDs()
	assert.Empty(t, ids)
	h, s, l := lib.HSL("L0")
	assert.Equal(t, [3]float32{}, [3]float32{h, s, l})
	lib.SetHSL("L1", 1, 1, 1)
	lib.SetEffect("0")
	lib.SetSwitchState(false)
	lib.Apply()

	assert.False(t, fake.Mutated())
	assert.Zero(t, fake.Allocated())
}

func TestDebugLogFunc(t *testing.T) {
	fake := interoptest.New()
	lib := interop.New(fake, zerolog.Nop())

	var got []string
	lib.SetDebugLogFunc(func(msg string) { got = append(got, msg) })
	require.True(t, fake.Log("service not running"))
	assert.Equal(t, []string{"service not running"}, got)

	lib.SetDebugLogFunc(nil)
	assert.False(t, fake.Log("dropped"))
}
