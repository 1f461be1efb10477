package aura_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goaura/aura"
)

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name string
		in   aura.HSL
		want color.NRGBA
	}{
		{"black", aura.HSL{}, color.NRGBA{0, 0, 0, 255}},
		{"white", aura.HSL{L: 1}, color.NRGBA{255, 255, 255, 255}},
		{"grey", aura.HSL{H: 0.7, L: 0.5}, color.NRGBA{128, 128, 128, 255}},
		{"red", aura.HSL{H: 0, S: 1, L: 0.5}, color.NRGBA{255, 0, 0, 255}},
		{"green", aura.HSL{H: 1.0 / 3, S: 1, L: 0.5}, color.NRGBA{0, 255, 0, 255}},
		{"blue", aura.HSL{H: 2.0 / 3, S: 1, L: 0.5}, color.NRGBA{0, 0, 255, 255}},
		{"hue wraps", aura.HSL{H: 1, S: 1, L: 0.5}, color.NRGBA{255, 0, 0, 255}},
		{"negative hue wraps", aura.HSL{H: -1.0 / 3, S: 1, L: 0.5}, color.NRGBA{0, 0, 255, 255}},
		{"pastel", aura.HSL{H: 0, S: 1, L: 0.75}, color.NRGBA{255, 128, 128, 255}},
		{"clamped", aura.HSL{H: 0, S: 4, L: 2}, color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.NRGBA())
		})
	}
}

func TestFromRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    aura.HSL
	}{
		{"black", 0, 0, 0, aura.HSL{}},
		{"white", 255, 255, 255, aura.HSL{L: 1}},
		{"red", 255, 0, 0, aura.HSL{H: 0, S: 1, L: 0.5}},
		{"green", 0, 255, 0, aura.HSL{H: 1.0 / 3, S: 1, L: 0.5}},
		{"blue", 0, 0, 255, aura.HSL{H: 2.0 / 3, S: 1, L: 0.5}},
		{"magenta", 255, 0, 255, aura.HSL{H: 5.0 / 6, S: 1, L: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aura.FromRGB(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.want.H, got.H, 1e-6)
			assert.InDelta(t, tt.want.S, got.S, 1e-6)
			assert.InDelta(t, tt.want.L, got.L, 1e-6)
		})
	}
}

func TestRGBRoundTrip(t *testing.T) {
	for _, in := range []color.NRGBA{
		{255, 0, 0, 255},
		{12, 200, 99, 255},
		{128, 128, 128, 255},
		{250, 240, 7, 255},
	} {
		got := aura.FromRGB(in.R, in.G, in.B).NRGBA()
		assert.Equal(t, in, got)
	}
}

func TestNRGBALeavesValueUnclamped(t *testing.T) {
	c := aura.HSL{H: 1.5, S: -1, L: 2}
	assert.Equal(t, aura.HSL{H: 1.5, S: -1, L: 2}, c)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, c.NRGBA())
}

func TestHSLModel(t *testing.T) {
	got := aura.HSLModel.Convert(color.RGBA{R: 0, G: 0, B: 255, A: 255}).(aura.HSL)
	assert.InDelta(t, 2.0/3, got.H, 1e-6)

	same := aura.HSL{H: 0.1, S: 0.2, L: 0.3}
	assert.Equal(t, same, aura.HSLModel.Convert(same))

	r, g, b, a := aura.HSL{S: 1, L: 0.5}.RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}
