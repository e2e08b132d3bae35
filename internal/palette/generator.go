package palette

import "github.com/jmylchreest/huebridge/internal/colour"

// recipe derives the background, accent and button background from a base
// colour. Text roles are chosen afterwards for contrast.
type recipe func(base colour.RGBA) (background, accent, buttonBackground colour.RGBA)

var (
	neutralBase = colour.NewRGB(0.95, 0.96, 0.97)
	warmNeutral = colour.NewRGB(0.98, 0.96, 0.93)
)

var recipes = [...]recipe{
	TemplateAiryPoster: func(base colour.RGBA) (colour.RGBA, colour.RGBA, colour.RGBA) {
		background := base.Mix(colour.White, 0.84).Adjust(0.06, -0.18)
		accent := base.Adjust(-0.08, 0.08)
		return background, accent, accent.Mix(colour.Black, 0.08)
	},
	TemplateNightPoster: func(base colour.RGBA) (colour.RGBA, colour.RGBA, colour.RGBA) {
		background := base.Mix(colour.Black, 0.74).Adjust(-0.03, -0.06)
		accent := base.Mix(colour.White, 0.32).Adjust(0.1, 0.1)
		return background, accent, accent.Mix(colour.Black, 0.22)
	},
	TemplateNeutralStudio: func(base colour.RGBA) (colour.RGBA, colour.RGBA, colour.RGBA) {
		background := neutralBase.Mix(base, 0.06).Adjust(0.01, -0.2)
		accent := base.Adjust(-0.03, 0.04)
		return background, accent, accent.Mix(colour.Black, 0.15)
	},
	TemplateBoldPoster: func(base colour.RGBA) (colour.RGBA, colour.RGBA, colour.RGBA) {
		// Saturated background keeps the base hue prominent; the button is a
		// near-white tint.
		background := base.Adjust(0.05, 0.15).Mix(colour.White, 0.10)
		accent := base.Mix(colour.White, 0.70).Adjust(0.15, -0.10)
		return background, accent, colour.White.Mix(base, 0.12)
	},
	TemplateSocialCard: func(base colour.RGBA) (colour.RGBA, colour.RGBA, colour.RGBA) {
		background := warmNeutral.Mix(base, 0.08).Adjust(0.02, -0.08)
		accent := base.Adjust(-0.05, 0.12)
		return background, accent, accent.Mix(colour.Black, 0.05)
	},
}

// Generate derives one candidate per template from base, in Templates order.
// The result depends only on base.
func Generate(base colour.RGBA) []Candidate {
	candidates := make([]Candidate, 0, len(recipes))
	for _, t := range Templates() {
		candidates = append(candidates, GenerateTemplate(base, t))
	}
	return candidates
}

// GenerateTemplate derives the candidate for a single template.
// An unknown template yields the zero Candidate.
func GenerateTemplate(base colour.RGBA, t Template) Candidate {
	if !t.valid() {
		return Candidate{}
	}

	background, accent, buttonBackground := recipes[t](base)
	return Candidate{
		Template:         t,
		Background:       background,
		Text:             colour.BestTextColor(background),
		Accent:           accent,
		ButtonBackground: buttonBackground,
		ButtonText:       colour.BestTextColor(buttonBackground),
	}
}
