package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/huebridge/internal/colour"
)

// ErrUnknownPreset is returned when a preset name is not recognised.
var ErrUnknownPreset = errors.New("unknown base colour preset")

// Preset is a named starting colour.
type Preset struct {
	Name   string
	Colour colour.RGBA
}

var presets = [...]Preset{
	{Name: "Campus", Colour: colour.NewRGB(0.24, 0.46, 0.86)},
	{Name: "Club", Colour: colour.NewRGB(0.69, 0.30, 0.71)},
	{Name: "Poster", Colour: colour.NewRGB(0.91, 0.40, 0.28)},
	{Name: "Night", Colour: colour.NewRGB(0.16, 0.28, 0.52)},
	{Name: "Nature", Colour: colour.NewRGB(0.24, 0.58, 0.37)},
}

// Presets returns the built-in base colours. The first is the default.
func Presets() []Preset {
	return append([]Preset(nil), presets[:]...)
}

// DefaultBase is the colour of the first preset.
func DefaultBase() colour.RGBA {
	return presets[0].Colour
}

// PresetByName finds a preset case-insensitively.
func PresetByName(name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}

	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = strings.ToLower(p.Name)
	}
	return Preset{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownPreset, name, strings.Join(names, ", "))
}
