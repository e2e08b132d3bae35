package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jmylchreest/huebridge/internal/colour"
	"github.com/jmylchreest/huebridge/internal/palette"
)

// BaseColour resolves the base colour: Base if set, else Preset, else the
// default preset.
func (s Settings) BaseColour() (colour.RGBA, error) {
	if s.Base != "" {
		c, err := colour.ParseHex(s.Base)
		if err != nil {
			return colour.RGBA{}, fmt.Errorf("base: %w", err)
		}
		return c, nil
	}
	if s.Preset != "" {
		p, err := palette.PresetByName(s.Preset)
		if err != nil {
			return colour.RGBA{}, fmt.Errorf("preset: %w", err)
		}
		return p.Colour, nil
	}
	return palette.DefaultBase(), nil
}

// TemplateValue parses the configured template.
func (s Settings) TemplateValue() (palette.Template, error) {
	t, err := palette.ParseTemplate(s.Template)
	if err != nil {
		return 0, fmt.Errorf("template: %w", err)
	}
	return t, nil
}

// VisionModes parses the configured modes.
func (s Settings) VisionModes() ([]colour.VisionMode, error) {
	modes, err := colour.ParseVisionModes(s.Modes)
	if err != nil {
		return nil, fmt.Errorf("modes: %w", err)
	}
	return modes, nil
}

// Validate reports every invalid setting. formats lists the accepted export
// format names.
func (s Settings) Validate(formats []string) error {
	var errs []error
	if _, err := s.BaseColour(); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.TemplateValue(); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.VisionModes(); err != nil {
		errs = append(errs, err)
	}
	if len(formats) > 0 && !slices.Contains(formats, strings.ToLower(s.Format)) {
		errs = append(errs, fmt.Errorf("format: unknown format %q (valid: %s)", s.Format, strings.Join(formats, ", ")))
	}
	return errors.Join(errs...)
}
