package config

import "strings"

// ResolveString returns the last non-nil value, or def.
func ResolveString(def string, values ...*string) string {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

// ResolveBool returns the last non-nil value, or def.
func ResolveBool(def bool, values ...*bool) bool {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

// ResolveStrings returns a copy of the last non-nil list, or of def.
// A set but empty list clears the value.
func ResolveStrings(def []string, values ...*[]string) []string {
	result := cloneStrings(def)
	for _, v := range values {
		if v != nil {
			result = cloneStrings(*v)
		}
	}
	return result
}

// Merge applies layers over base in order, so later layers win.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	out.Modes = cloneStrings(base.Modes)
	for _, layer := range layers {
		out.Base = strings.TrimSpace(ResolveString(out.Base, layer.Base))
		out.Preset = strings.TrimSpace(ResolveString(out.Preset, layer.Preset))
		out.Template = strings.TrimSpace(ResolveString(out.Template, layer.Template))
		out.Format = strings.TrimSpace(ResolveString(out.Format, layer.Format))
		out.Modes = ResolveStrings(out.Modes, layer.Modes)
		out.Preview = ResolveBool(out.Preview, layer.Preview)
		out.NoColour = ResolveBool(out.NoColour, layer.NoColour)
		out.TemplateDir = strings.TrimSpace(ResolveString(out.TemplateDir, layer.TemplateDir))

		// A base colour set in this layer overrides a preset from a lower one.
		if layer.Base != nil && layer.Preset == nil {
			out.Preset = ""
		}
		if layer.Preset != nil && layer.Base == nil {
			out.Base = ""
		}
	}
	if out.Format == "" {
		out.Format = "hex"
	}
	if len(out.Modes) == 0 {
		out.Modes = []string{"all"}
	}
	return out
}
