package colour

import (
	"math"
)

// WCAG AA thresholds.
const (
	// MinTextContrast is the minimum ratio for normal body text.
	MinTextContrast = 4.5

	// MinLargeContrast is the minimum ratio for large text and graphics.
	MinLargeContrast = 3.0
)

// darkTextLuminance is the background luminance above which dark text is
// preferred.
const darkTextLuminance = 0.18

// Linearize converts an sRGB channel to linear light.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
func RelativeLuminance(c RGBA) float64 {
	r := Linearize(c.r)
	g := Linearize(c.g)
	b := Linearize(c.b)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The result is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGBA) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// BestTextColor returns a text colour for background meeting MinTextContrast.
func BestTextColor(background RGBA) RGBA {
	return BestTextColorFor(background, MinTextContrast)
}

// BestTextColorFor picks the softest text colour that still meets targetRatio
// against background. Soft greys are tried before pure black or white; when
// nothing qualifies the most extreme colour on the chosen side is returned.
func BestTextColorFor(background RGBA, targetRatio float64) RGBA {
	needDark := RelativeLuminance(background) > darkTextLuminance

	candidates := [2]RGBA{SystemLightGray, White}
	if needDark {
		candidates = [2]RGBA{SystemDarkGray, Black}
	}

	for _, candidate := range candidates {
		if ContrastRatio(candidate, background) >= targetRatio {
			return candidate
		}
	}

	if needDark {
		return Black
	}
	return White
}
