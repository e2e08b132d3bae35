package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/huebridge/internal/colour"
)

// bisectIterations gives roughly 1e-6 precision on the mix amount.
const bisectIterations = 20

// ErrUnknownFix is returned when a fix name is not recognised.
var ErrUnknownFix = errors.New("unknown fix")

// MinMixToReachRatio finds the smallest amount of target to mix into color so
// that it reaches targetRatio contrast against against. needed is false when
// color already meets the ratio. If even a full mix falls short the amount
// is 1; callers must re-check the result.
func MinMixToReachRatio(color, target, against colour.RGBA, targetRatio float64) (amount float64, needed bool) {
	return minMixUnder(colour.VisionNormal, color, target, against, targetRatio)
}

// minMixUnder is MinMixToReachRatio with contrast judged under mode.
func minMixUnder(mode colour.VisionMode, color, target, against colour.RGBA, targetRatio float64) (float64, bool) {
	seenAgainst := colour.Simulate(against, mode)
	reaches := func(c colour.RGBA) bool {
		return colour.ContrastRatio(colour.Simulate(c, mode), seenAgainst) >= targetRatio
	}

	if reaches(color) {
		return 0, false
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		if reaches(color.Mix(target, mid)) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, true
}

// worstCaseMix returns the largest mix amount any vision mode needs. Modes
// where helps reports that mixing cannot raise contrast are skipped.
func worstCaseMix(color, target, against colour.RGBA, targetRatio float64, helps func(color, against colour.RGBA) bool) float64 {
	worst := 0.0
	for _, mode := range colour.AllVisionModes() {
		if !helps(colour.Simulate(color, mode), colour.Simulate(against, mode)) {
			continue
		}
		if amount, needed := minMixUnder(mode, color, target, against, targetRatio); needed && amount > worst {
			worst = amount
		}
	}
	return worst
}

func notLighter(c, against colour.RGBA) bool {
	return colour.RelativeLuminance(c) <= colour.RelativeLuminance(against)
}

func notDarker(c, against colour.RGBA) bool {
	return colour.RelativeLuminance(c) >= colour.RelativeLuminance(against)
}

// darkenAgainst mixes fg towards black by the worst-case amount over all
// vision modes. A role lighter than its background is left alone since
// darkening it would lower its contrast.
func darkenAgainst(fg, bg colour.RGBA, targetRatio float64) colour.RGBA {
	if !notLighter(fg, bg) {
		return fg
	}
	amount := worstCaseMix(fg, colour.Black, bg, targetRatio, notLighter)
	if amount == 0 {
		return fg
	}
	return fg.Mix(colour.Black, amount)
}

// DarkenText darkens text, accent and button text just enough to meet their
// contrast targets under every vision mode at once.
func DarkenText(c Candidate) Candidate {
	out := c
	out.Text = darkenAgainst(c.Text, c.Background, BodyContrastThreshold)
	out.Accent = darkenAgainst(c.Accent, c.Background, TitleContrastThreshold)
	out.ButtonText = darkenAgainst(c.ButtonText, c.ButtonBackground, ButtonContrastThreshold)
	return out
}

// LightenBackground mixes the background towards white by the largest amount
// needed for text and accent contrast across every vision mode. It does
// nothing when the background is darker than the text or accent.
func LightenBackground(c Candidate) Candidate {
	if !notDarker(c.Background, c.Text) || !notDarker(c.Background, c.Accent) {
		return c
	}

	amount := max(
		worstCaseMix(c.Background, colour.White, c.Text, BodyContrastThreshold, notDarker),
		worstCaseMix(c.Background, colour.White, c.Accent, TitleContrastThreshold, notDarker),
	)
	if amount == 0 {
		return c
	}

	out := c
	out.Background = c.Background.Mix(colour.White, amount)
	return out
}

// AutoFixAll applies DarkenText then LightenBackground once. It does not
// iterate to convergence; callers re-check InclusivePass.
func AutoFixAll(c Candidate) Candidate {
	return LightenBackground(DarkenText(c))
}

// Fix names a palette repair.
type Fix int

const (
	// FixDarkenText applies DarkenText.
	FixDarkenText Fix = iota
	// FixLightenBackground applies LightenBackground.
	FixLightenBackground
	// FixAll applies AutoFixAll.
	FixAll
)

var fixNames = [...]string{
	FixDarkenText:        "darken-text",
	FixLightenBackground: "lighten-background",
	FixAll:               "all",
}

// String returns the command-line name of the fix.
func (f Fix) String() string {
	if f < 0 || int(f) >= len(fixNames) {
		return fmt.Sprintf("Fix(%d)", int(f))
	}
	return fixNames[f]
}

// Apply runs the fix on c.
func (f Fix) Apply(c Candidate) Candidate {
	switch f {
	case FixDarkenText:
		return DarkenText(c)
	case FixLightenBackground:
		return LightenBackground(c)
	case FixAll:
		return AutoFixAll(c)
	default:
		return c
	}
}

// ParseFix parses a fix name such as "darken-text".
func ParseFix(s string) (Fix, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range fixNames {
		if n == name {
			return Fix(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownFix, s, strings.Join(fixNames[:], ", "))
}
