// Package palette generates, evaluates and repairs accessible poster palettes.
package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTemplate is returned when a template name is not recognised.
var ErrUnknownTemplate = errors.New("unknown palette template")

// Template names a palette generation recipe.
type Template int

// Templates in generation order. The first is the default selection.
const (
	TemplateAiryPoster Template = iota
	TemplateNightPoster
	TemplateNeutralStudio
	TemplateBoldPoster
	TemplateSocialCard
)

type templateInfo struct {
	name     string
	slug     string
	guidance []string
}

var templateTable = [...]templateInfo{
	TemplateAiryPoster: {
		name: "Airy Poster",
		slug: "airy-poster",
		guidance: []string{
			"Use for event posters and classroom announcements.",
			"Keep headlines in Accent and body text in Text color.",
			"Reserve button color for one clear call to action.",
		},
	},
	TemplateNightPoster: {
		name: "Night Poster",
		slug: "night-poster",
		guidance: []string{
			"Use for evening events, movie clubs, and dark-mode interfaces.",
			"Keep high contrast for longer reading sections.",
			"Pair with bold iconography for best visibility.",
		},
	},
	TemplateNeutralStudio: {
		name: "Neutral Studio",
		slug: "neutral-studio",
		guidance: []string{
			"Use for handouts, educational apps, and portfolio cards.",
			"Neutral backgrounds reduce visual fatigue during reading.",
			"Accent and button tones should guide attention sparingly.",
		},
	},
	TemplateBoldPoster: {
		name: "Bold Poster",
		slug: "bold-poster",
		guidance: []string{
			"Use for high-energy events, concerts, and sports posters.",
			"The vivid background grabs attention, so keep text brief.",
			"White button stands out against the saturated base.",
		},
	},
	TemplateSocialCard: {
		name: "Social Card",
		slug: "social-card",
		guidance: []string{
			"Use for Instagram stories, LinkedIn posts, and social banners.",
			"Warm neutrals feel approachable and modern on feeds.",
			"Keep the accent for one key visual element.",
		},
	},
}

// Templates returns every template in generation order.
func Templates() []Template {
	out := make([]Template, len(templateTable))
	for i := range templateTable {
		out[i] = Template(i)
	}
	return out
}

func (t Template) valid() bool {
	return t >= 0 && int(t) < len(templateTable)
}

// String returns the display name, e.g. "Airy Poster".
func (t Template) String() string {
	if !t.valid() {
		return fmt.Sprintf("Template(%d)", int(t))
	}
	return templateTable[t].name
}

// Slug returns the command-line name, e.g. "airy-poster".
func (t Template) Slug() string {
	if !t.valid() {
		return ""
	}
	return templateTable[t].slug
}

// Guidance returns the usage notes for the template.
func (t Template) Guidance() []string {
	if !t.valid() {
		return nil
	}
	return append([]string(nil), templateTable[t].guidance...)
}

// ParseTemplate accepts a slug or display name, case-insensitively.
func ParseTemplate(s string) (Template, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, info := range templateTable {
		if name == info.slug || name == strings.ToLower(info.name) {
			return Template(i), nil
		}
	}

	slugs := make([]string, len(templateTable))
	for i, info := range templateTable {
		slugs[i] = info.slug
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownTemplate, s, strings.Join(slugs, ", "))
}
