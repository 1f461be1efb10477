package aura

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a colour as the native layer takes it: hue, saturation and
// lightness, each normalized to [0, 1].
type HSL struct {
	H float32 `yaml:"h"`
	S float32 `yaml:"s"`
	L float32 `yaml:"l"`
}

var _ color.Color = HSL{}

// HSLModel converts any colour to HSL.
var HSLModel = color.ModelFunc(hslModel)

func hslModel(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(n.R, n.G, n.B)
}

// RGBA implements color.Color. The colour is always opaque.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to 8 bit RGB. Hue wraps around, saturation and
// lightness are clamped to [0, 1].
func (c HSL) NRGBA() color.NRGBA {
	h := float64(c.H) - math.Floor(float64(c.H))
	rgb := colorful.Hsl(h*360, clamp01(float64(c.S)), clamp01(float64(c.L)))
	r, g, b := rgb.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// FromRGB converts 8 bit RGB to HSL.
func FromRGB(r, g, b uint8) HSL {
	h, s, l := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hsl()
	return HSL{H: float32(h / 360), S: float32(s), L: float32(l)}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
