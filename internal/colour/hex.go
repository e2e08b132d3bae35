package colour

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not a #RGB or #RRGGBB colour.
var ErrInvalidHex = errors.New("invalid hex colour")

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// RGB represents a colour as 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// ToRGB rounds each channel of c to the nearest 8-bit value.
// Halves round away from zero. Alpha is dropped.
func (c RGBA) ToRGB() RGB {
	return RGB{
		R: to8(c.r),
		G: to8(c.g),
		B: to8(c.b),
	}
}

// Hex returns c as "#RRGGBB" with uppercase digits and no alpha.
func (c RGBA) Hex() string {
	return c.ToRGB().Hex()
}

// ParseHex parses "#RRGGBB" or "#RGB" (the leading # is optional) into an
// opaque colour.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	return NewRGB(c.R, c.G, c.B), nil
}

// MustParseHex is like ParseHex but panics on error. Intended for constants.
func MustParseHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
