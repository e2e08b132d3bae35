// Package colour provides the colour model, WCAG colorimetry and colour-vision
// simulation used by the palette engine.
package colour

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// maxAdjustedSaturation caps saturation after Adjust so generated tones never
// become fully saturated.
const maxAdjustedSaturation = 0.85

// RGBA is a normalised colour with every channel in [0, 1].
// The zero value is transparent black. Values are immutable; every operation
// returns a new RGBA.
type RGBA struct {
	r, g, b, a float64
}

var (
	// Black is opaque pure black.
	Black = NewRGB(0, 0, 0)

	// White is opaque pure white.
	White = NewRGB(1, 1, 1)

	// SystemDarkGray is the soft dark text colour (#1C1C1E).
	SystemDarkGray = NewRGB(0.110, 0.110, 0.118)

	// SystemLightGray is the soft light text colour (#F5F5F7).
	SystemLightGray = NewRGB(0.961, 0.961, 0.969)
)

// NewRGBA creates a colour, clamping each channel to [0, 1].
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{
		r: clamp01(r),
		g: clamp01(g),
		b: clamp01(b),
		a: clamp01(a),
	}
}

// NewRGB creates an opaque colour, clamping each channel to [0, 1].
func NewRGB(r, g, b float64) RGBA {
	return NewRGBA(r, g, b, 1)
}

// FromRGB8 creates an opaque colour from 8-bit channels.
func FromRGB8(r, g, b uint8) RGBA {
	return NewRGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// Red returns the red channel.
func (c RGBA) Red() float64 { return c.r }

// Green returns the green channel.
func (c RGBA) Green() float64 { return c.g }

// Blue returns the blue channel.
func (c RGBA) Blue() float64 { return c.b }

// Alpha returns the alpha channel.
func (c RGBA) Alpha() float64 { return c.a }

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	const max16 = 0xffff
	a = uint32(c.a*max16 + 0.5)
	r = uint32(c.r*c.a*max16 + 0.5)
	g = uint32(c.g*c.a*max16 + 0.5)
	b = uint32(c.b*c.a*max16 + 0.5)
	return r, g, b, a
}

var _ color.Color = RGBA{}

// Mix linearly interpolates every channel, alpha included, from c towards
// other. amount is clamped to [0, 1]; 0 returns c and 1 returns other.
func (c RGBA) Mix(other RGBA, amount float64) RGBA {
	t := clamp01(amount)
	return NewRGBA(
		c.r+(other.r-c.r)*t,
		c.g+(other.g-c.g)*t,
		c.b+(other.b-c.b)*t,
		c.a+(other.a-c.a)*t,
	)
}

// Adjust shifts brightness and saturation in HSB space while keeping hue.
// Saturation is clamped to [0, 0.85] and brightness to [0, 1]; alpha is kept.
func (c RGBA) Adjust(brightnessDelta, saturationDelta float64) RGBA {
	h, s, v := colorful.Color{R: c.r, G: c.g, B: c.b}.Hsv()
	s = clamp(s+saturationDelta, 0, maxAdjustedSaturation)
	v = clamp(v+brightnessDelta, 0, 1)

	out := colorful.Hsv(h, s, v)
	return NewRGBA(out.R, out.G, out.B, c.a)
}

// Hue returns the HSB hue in degrees [0, 360).
func (c RGBA) Hue() float64 {
	h, _, _ := colorful.Color{R: c.r, G: c.g, B: c.b}.Hsv()
	return h
}

// String returns the colour as an uppercase hex string.
func (c RGBA) String() string {
	return c.Hex()
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// clamp also maps NaN to lo.
func clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
