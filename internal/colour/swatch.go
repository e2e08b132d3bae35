package colour

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

const defaultSwatchWidth = 8

// NewSwatchOutput returns a termenv output for w. When enabled is false the
// output uses the ASCII profile and swatches render as plain spaces.
func NewSwatchOutput(w io.Writer, enabled bool) *termenv.Output {
	if !enabled {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))
}

// Swatch returns a solid block of width cells painted in c.
func Swatch(out *termenv.Output, c RGBA, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	return out.String(strings.Repeat(" ", width)).
		Background(out.Color(c.Hex())).
		String()
}

// SwatchWithText paints text centred on c, using the best text colour for
// legibility.
func SwatchWithText(out *termenv.Output, c RGBA, text string, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}

	display := text
	if len(display) > width {
		display = display[:width]
	} else if len(display) < width {
		pad := (width - len(display)) / 2
		display = strings.Repeat(" ", pad) + display + strings.Repeat(" ", width-len(display)-pad)
	}

	return out.String(display).
		Background(out.Color(c.Hex())).
		Foreground(out.Color(BestTextColor(c).Hex())).
		String()
}

// FormatWithLabel formats a colour with its swatch, a label and its hex code.
func FormatWithLabel(out *termenv.Output, c RGBA, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Swatch(out, c, width), label, c.Hex())
}
