package colour

import (
	"bytes"
	"strings"
	"testing"
)

func TestSwatchPlainWhenDisabled(t *testing.T) {
	out := NewSwatchOutput(&bytes.Buffer{}, false)

	got := Swatch(out, NewRGB(1, 0, 0), 4)
	if got != "    " {
		t.Errorf("Swatch() = %q, want four plain spaces", got)
	}

	if got := Swatch(out, Black, 0); len(got) != defaultSwatchWidth {
		t.Errorf("Swatch() width = %d, want %d", len(got), defaultSwatchWidth)
	}
}

func TestSwatchColouredWhenEnabled(t *testing.T) {
	out := NewSwatchOutput(&bytes.Buffer{}, true)

	got := Swatch(out, NewRGB(1, 0, 0), 2)
	if !strings.Contains(got, "48;2;255;0;0") {
		t.Errorf("Swatch() = %q, want truecolour red background", got)
	}
}

func TestSwatchWithText(t *testing.T) {
	out := NewSwatchOutput(&bytes.Buffer{}, false)

	if got := SwatchWithText(out, White, "ok", 6); got != "  ok  " {
		t.Errorf("SwatchWithText() = %q, want centred text", got)
	}
	if got := SwatchWithText(out, White, "truncated", 5); got != "trunc" {
		t.Errorf("SwatchWithText() = %q, want truncated text", got)
	}
}

func TestFormatWithLabel(t *testing.T) {
	out := NewSwatchOutput(&bytes.Buffer{}, false)

	got := FormatWithLabel(out, NewRGB(0, 0, 1), "Accent", 2)
	if !strings.Contains(got, "Accent") || !strings.HasSuffix(got, "#0000FF") {
		t.Errorf("FormatWithLabel() = %q", got)
	}
}
