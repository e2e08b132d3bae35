package palette

import (
	"fmt"

	"github.com/jmylchreest/huebridge/internal/colour"
)

// Thresholds for the accessibility checks.
const (
	TitleContrastThreshold  = colour.MinLargeContrast
	BodyContrastThreshold   = colour.MinTextContrast
	ButtonContrastThreshold = colour.MinTextContrast

	// MinDeltaE is the smallest CIE76 difference treated as distinguishable.
	MinDeltaE = 10.0
)

// CheckKind says what a CheckItem measures.
type CheckKind int

const (
	// KindContrastRatio measures WCAG contrast.
	KindContrastRatio CheckKind = iota
	// KindDistinguishability measures CIE76 Delta-E.
	KindDistinguishability
)

// String returns the kind name.
func (k CheckKind) String() string {
	switch k {
	case KindContrastRatio:
		return "contrast"
	case KindDistinguishability:
		return "distinguishability"
	default:
		return fmt.Sprintf("CheckKind(%d)", int(k))
	}
}

// CheckItem is the result of one measurement against a threshold.
type CheckItem struct {
	Title     string
	Measured  float64
	Threshold float64
	Kind      CheckKind
}

// Pass reports whether the measurement meets the threshold.
func (c CheckItem) Pass() bool {
	return c.Measured >= c.Threshold
}

// RatioLabel formats the measurement, e.g. "4.6:1" or "ΔE 12.3".
func (c CheckItem) RatioLabel() string {
	if c.Kind == KindDistinguishability {
		return fmt.Sprintf("ΔE %.1f", c.Measured)
	}
	return fmt.Sprintf("%.1f:1", c.Measured)
}

// ThresholdLabel formats the threshold, e.g. "Target 4.5:1" or "Min ΔE 10".
func (c CheckItem) ThresholdLabel() string {
	if c.Kind == KindDistinguishability {
		return fmt.Sprintf("Min ΔE %.0f", c.Threshold)
	}
	return fmt.Sprintf("Target %.1f:1", c.Threshold)
}

// Explanation is a plain-language summary of the result.
func (c CheckItem) Explanation() string {
	switch {
	case c.Kind == KindDistinguishability && c.Pass():
		return "Colors are clearly different from each other."
	case c.Kind == KindDistinguishability:
		return "Colors look too similar and may confuse viewers."
	case c.Pass():
		return "Text is easy to read on this background."
	default:
		return "Text may be hard to read and needs more contrast."
	}
}

// AllPass reports whether every item passes. An empty list passes.
func AllPass(items []CheckItem) bool {
	for _, item := range items {
		if !item.Pass() {
			return false
		}
	}
	return true
}

// Checks measures title, body and button contrast under mode, in that order.
func Checks(c Candidate, mode colour.VisionMode) []CheckItem {
	s := c.Simulate(mode)
	return []CheckItem{
		{
			Title:     "Title contrast",
			Measured:  colour.ContrastRatio(s.Accent, s.Background),
			Threshold: TitleContrastThreshold,
			Kind:      KindContrastRatio,
		},
		{
			Title:     "Body contrast",
			Measured:  colour.ContrastRatio(s.Text, s.Background),
			Threshold: BodyContrastThreshold,
			Kind:      KindContrastRatio,
		},
		{
			Title:     "Button contrast",
			Measured:  colour.ContrastRatio(s.ButtonText, s.ButtonBackground),
			Threshold: ButtonContrastThreshold,
			Kind:      KindContrastRatio,
		},
	}
}

// Distinguishability measures how far the accent and button background sit
// from the background under mode.
func Distinguishability(c Candidate, mode colour.VisionMode) []CheckItem {
	s := c.Simulate(mode)
	return []CheckItem{
		{
			Title:     "Title vs background",
			Measured:  colour.DeltaE(s.Accent, s.Background),
			Threshold: MinDeltaE,
			Kind:      KindDistinguishability,
		},
		{
			Title:     "Button vs background",
			Measured:  colour.DeltaE(s.ButtonBackground, s.Background),
			Threshold: MinDeltaE,
			Kind:      KindDistinguishability,
		},
	}
}

// Evaluation holds every check for one vision mode.
type Evaluation struct {
	Mode               colour.VisionMode
	Contrast           []CheckItem
	Distinguishability []CheckItem
}

// Pass reports whether every check in the evaluation passes.
func (e Evaluation) Pass() bool {
	return AllPass(e.Contrast) && AllPass(e.Distinguishability)
}

// Evaluate runs contrast and distinguishability checks under mode.
func Evaluate(c Candidate, mode colour.VisionMode) Evaluation {
	return Evaluation{
		Mode:               mode,
		Contrast:           Checks(c, mode),
		Distinguishability: Distinguishability(c, mode),
	}
}

// InclusivePass reports whether c passes every check under every vision mode.
func InclusivePass(c Candidate) bool {
	return len(FailingModes(c)) == 0
}

// FailingModes lists the vision modes under which c fails at least one check.
func FailingModes(c Candidate) []colour.VisionMode {
	var failing []colour.VisionMode
	for _, mode := range colour.AllVisionModes() {
		if !Evaluate(c, mode).Pass() {
			failing = append(failing, mode)
		}
	}
	return failing
}
