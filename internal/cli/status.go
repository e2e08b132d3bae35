package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jmylchreest/huebridge/internal/colour"
	"github.com/jmylchreest/huebridge/internal/palette"
)

// statusLabel summarises the inclusive verdict for a table cell.
func statusLabel(c palette.Candidate) string {
	failing := palette.FailingModes(c)
	if len(failing) == 0 {
		return "✓ ready"
	}
	return "✗ " + joinModes(failing)
}

// statusSentence is statusLabel in words.
func statusSentence(c palette.Candidate) string {
	failing := palette.FailingModes(c)
	if len(failing) == 0 {
		return "ready for every vision mode"
	}
	return "needs fixes (failing: " + joinModes(failing) + ")"
}

func joinModes(modes []colour.VisionMode) string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

func passLabel(item palette.CheckItem) string {
	if item.Pass() {
		return "pass"
	}
	return "FAIL"
}

// writePreview prints a sample of each candidate: the title in the accent
// colour and body text on the background, then the button.
func writePreview(w io.Writer, enabled bool, candidates []palette.Candidate) {
	out := colour.NewSwatchOutput(w, enabled)
	for _, c := range candidates {
		fmt.Fprintf(w, "%-16s %s%s  %s\n",
			c.Template.String(),
			sample(out, " Title ", c.Accent, c.Background),
			sample(out, " Body text ", c.Text, c.Background),
			sample(out, " Button ", c.ButtonText, c.ButtonBackground))
	}
}

func sample(out *termenv.Output, text string, fg, bg colour.RGBA) string {
	return out.String(text).
		Foreground(out.Color(fg.Hex())).
		Background(out.Color(bg.Hex())).
		String()
}
