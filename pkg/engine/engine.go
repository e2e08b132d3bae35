// Package engine provides the public API of the huebridge colour
// accessibility engine.
//
// Every function is pure and safe for concurrent use on distinct values.
package engine

import (
	"github.com/jmylchreest/huebridge/internal/colour"
	"github.com/jmylchreest/huebridge/internal/export"
	"github.com/jmylchreest/huebridge/internal/palette"
)

type (
	// Candidate is a generated palette of five role colours.
	Candidate = palette.Candidate

	// Template identifies a palette style.
	Template = palette.Template

	// Evaluation holds the contrast and distinguishability checks for one
	// vision mode.
	Evaluation = palette.Evaluation

	// CheckItem is one measurement against a threshold.
	CheckItem = palette.CheckItem

	// VisionMode selects how colours are perceived.
	VisionMode = colour.VisionMode

	// Colour is a normalised RGBA colour.
	Colour = colour.RGBA
)

// Vision modes.
const (
	VisionNormal       = colour.VisionNormal
	VisionProtanopia   = colour.VisionProtanopia
	VisionDeuteranopia = colour.VisionDeuteranopia
	VisionTritanopia   = colour.VisionTritanopia
	VisionGrayscale    = colour.VisionGrayscale
)

// Sentinel errors for errors.Is checks.
var (
	ErrInvalidHex        = colour.ErrInvalidHex
	ErrUnknownVisionMode = colour.ErrUnknownVisionMode
	ErrUnknownFormat     = export.ErrUnknownFormat
)

// ParseHex parses a #RGB or #RRGGBB colour.
func ParseHex(hex string) (Colour, error) {
	return colour.ParseHex(hex)
}

// GeneratePalettes derives one candidate per template from a base colour
// given as #RGB or #RRGGBB.
func GeneratePalettes(baseHex string) ([]Candidate, error) {
	base, err := colour.ParseHex(baseHex)
	if err != nil {
		return nil, err
	}
	return palette.Generate(base), nil
}

// Evaluate checks c under mode.
func Evaluate(c Candidate, mode VisionMode) Evaluation {
	return palette.Evaluate(c, mode)
}

// InclusivePass reports whether c passes every check under every vision mode.
func InclusivePass(c Candidate) bool {
	return palette.InclusivePass(c)
}

// SimulateVision returns the hex colour as seen under mode.
func SimulateVision(hex string, mode VisionMode) (string, error) {
	c, err := colour.ParseHex(hex)
	if err != nil {
		return "", err
	}
	return colour.Simulate(c, mode).Hex(), nil
}

// AutoFix returns c after one darken-text then lighten-background pass.
// The result may still fail; callers keep the original for undo.
func AutoFix(c Candidate) Candidate {
	return palette.AutoFixAll(c)
}

// ExportText serialises c as "hex", "css" or "rgb" text, or as a "json" or
// "yaml" document.
func ExportText(c Candidate, format string) (string, error) {
	return export.Text(c, format)
}
