package palette

import "github.com/jmylchreest/huebridge/internal/colour"

// Candidate is a generated palette. Its identity is its Template.
// Candidates are values; fixes return modified copies.
type Candidate struct {
	Template         Template
	Background       colour.RGBA
	Text             colour.RGBA
	Accent           colour.RGBA
	ButtonBackground colour.RGBA
	ButtonText       colour.RGBA
}

// Guidance returns the template's usage notes.
func (c Candidate) Guidance() []string {
	return c.Template.Guidance()
}

// Token is a named role colour.
type Token struct {
	Name   string
	Slug   string
	Colour colour.RGBA
}

// Tokens returns the five role colours in display order.
func (c Candidate) Tokens() []Token {
	return []Token{
		{Name: "Background", Slug: "background", Colour: c.Background},
		{Name: "Text", Slug: "text", Colour: c.Text},
		{Name: "Accent", Slug: "accent", Colour: c.Accent},
		{Name: "Button Background", Slug: "button-background", Colour: c.ButtonBackground},
		{Name: "Button Text", Slug: "button-text", Colour: c.ButtonText},
	}
}

// Simulate returns the candidate with every role seen under mode.
func (c Candidate) Simulate(mode colour.VisionMode) Candidate {
	return Candidate{
		Template:         c.Template,
		Background:       colour.Simulate(c.Background, mode),
		Text:             colour.Simulate(c.Text, mode),
		Accent:           colour.Simulate(c.Accent, mode),
		ButtonBackground: colour.Simulate(c.ButtonBackground, mode),
		ButtonText:       colour.Simulate(c.ButtonText, mode),
	}
}
