package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVisionMode is returned when a vision mode name is not recognised.
var ErrUnknownVisionMode = errors.New("unknown vision mode")

// VisionMode selects how colours are perceived.
type VisionMode int

const (
	// VisionNormal is typical trichromatic vision.
	VisionNormal VisionMode = iota
	// VisionProtanopia lacks long-wavelength (red) cones.
	VisionProtanopia
	// VisionDeuteranopia lacks medium-wavelength (green) cones.
	VisionDeuteranopia
	// VisionTritanopia lacks short-wavelength (blue) cones.
	VisionTritanopia
	// VisionGrayscale sees luma only.
	VisionGrayscale
)

var visionModes = [...]VisionMode{
	VisionNormal,
	VisionProtanopia,
	VisionDeuteranopia,
	VisionTritanopia,
	VisionGrayscale,
}

// AllVisionModes returns every vision mode in canonical order.
func AllVisionModes() []VisionMode {
	return visionModes[:]
}

// String returns the lowercase mode name used on the command line.
func (m VisionMode) String() string {
	switch m {
	case VisionNormal:
		return "normal"
	case VisionProtanopia:
		return "protanopia"
	case VisionDeuteranopia:
		return "deuteranopia"
	case VisionTritanopia:
		return "tritanopia"
	case VisionGrayscale:
		return "grayscale"
	default:
		return fmt.Sprintf("VisionMode(%d)", int(m))
	}
}

// Label returns the display name of the mode.
func (m VisionMode) Label() string {
	s := m.String()
	if m < VisionNormal || m > VisionGrayscale {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseVisionMode parses a mode name, case-insensitively.
// "greyscale" is accepted as an alias for grayscale.
func ParseVisionMode(s string) (VisionMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "greyscale" {
		return VisionGrayscale, nil
	}
	for _, m := range visionModes {
		if m.String() == name {
			return m, nil
		}
	}
	return VisionNormal, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownVisionMode, s, visionModeNames())
}

// ParseVisionModes parses a list of mode names. "all" expands to every mode.
func ParseVisionModes(names []string) ([]VisionMode, error) {
	modes := make([]VisionMode, 0, len(names))
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			return AllVisionModes(), nil
		}
		m, err := ParseVisionMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

func visionModeNames() string {
	names := make([]string, len(visionModes))
	for i, m := range visionModes {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

// cvdMatrix is a row-major linear RGB transform.
type cvdMatrix [3][3]float64

// Severity 1.0 simulation matrices from Machado, Oliveira and Fernandes (2009).
var (
	protanopiaMatrix = cvdMatrix{
		{0.152286, 1.052583, -0.204868},
		{0.114503, 0.786281, 0.099216},
		{-0.003882, -0.048116, 1.051998},
	}

	deuteranopiaMatrix = cvdMatrix{
		{0.367322, 0.860646, -0.227968},
		{0.280085, 0.672501, 0.047413},
		{-0.011820, 0.042940, 0.968881},
	}

	tritanopiaMatrix = cvdMatrix{
		{1.255528, -0.076749, -0.178779},
		{-0.078411, 0.930809, 0.147602},
		{0.004733, 0.691367, 0.303900},
	}
)

// Simulate returns c as it appears under mode. Alpha is preserved.
// VisionNormal returns c unchanged; unknown modes do too.
func Simulate(c RGBA, mode VisionMode) RGBA {
	switch mode {
	case VisionNormal:
		return c
	case VisionProtanopia:
		return protanopiaMatrix.apply(c)
	case VisionDeuteranopia:
		return deuteranopiaMatrix.apply(c)
	case VisionTritanopia:
		return tritanopiaMatrix.apply(c)
	case VisionGrayscale:
		gray := 0.299*c.r + 0.587*c.g + 0.114*c.b
		return NewRGBA(gray, gray, gray, c.a)
	default:
		return c
	}
}

func (m *cvdMatrix) apply(c RGBA) RGBA {
	return NewRGBA(m.row(0, c), m.row(1, c), m.row(2, c), c.a)
}

// row evaluates one output channel left to right. The explicit conversions
// stop the compiler from fusing the multiply-adds.
func (m *cvdMatrix) row(i int, c RGBA) float64 {
	return float64(m[i][0]*c.r) + float64(m[i][1]*c.g) + float64(m[i][2]*c.b)
}
