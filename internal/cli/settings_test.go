package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/huebridge/internal/config"
)

func settingsWithNoColour(noColour bool) config.Settings {
	s := config.DefaultSettings()
	s.NoColour = noColour
	return s
}

func TestModesValue(t *testing.T) {
	var m modesValue

	if err := m.Set("protanopia, deuteranopia"); err != nil {
		t.Fatal(err)
	}
	if err := m.Set("GRAYSCALE"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"protanopia", "deuteranopia", "GRAYSCALE"}, m.names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if m.String() != "protanopia,deuteranopia,GRAYSCALE" {
		t.Errorf("String() = %q", m.String())
	}
	if m.Type() != "modes" {
		t.Errorf("Type() = %q", m.Type())
	}

	if err := m.Set("all"); err != nil {
		t.Errorf("Set(all) error = %v", err)
	}
	if err := m.Set("sepia"); err == nil {
		t.Error("Set(sepia) should fail")
	}
}
