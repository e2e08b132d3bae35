package engine_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jmylchreest/huebridge/pkg/engine"
)

func TestGeneratePalettes(t *testing.T) {
	candidates, err := engine.GeneratePalettes("#3D75DB")
	if err != nil {
		t.Fatalf("GeneratePalettes() error = %v", err)
	}
	if len(candidates) != 5 {
		t.Fatalf("GeneratePalettes() returned %d candidates, want 5", len(candidates))
	}

	// Short form expands to the same colour.
	short, err := engine.GeneratePalettes("#fff")
	if err != nil {
		t.Fatal(err)
	}
	long, _ := engine.GeneratePalettes("#FFFFFF")
	if diff := cmp.Diff(long, short, cmp.Comparer(func(a, b engine.Colour) bool { return a == b })); diff != "" {
		t.Errorf("#fff and #FFFFFF differ (-long +short):\n%s", diff)
	}

	if _, err := engine.GeneratePalettes("not a colour"); !errors.Is(err, engine.ErrInvalidHex) {
		t.Errorf("GeneratePalettes(invalid) error = %v, want ErrInvalidHex", err)
	}
}

func mustHex(t *testing.T, hex string) engine.Colour {
	t.Helper()
	c, err := engine.ParseHex(hex)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestEvaluate(t *testing.T) {
	candidates, _ := engine.GeneratePalettes("#3D75DB")
	eval := engine.Evaluate(candidates[0], engine.VisionNormal)
	if len(eval.Contrast) != 3 || len(eval.Distinguishability) != 2 {
		t.Fatalf("Evaluate() returned %d contrast and %d distinguishability items, want 3 and 2",
			len(eval.Contrast), len(eval.Distinguishability))
	}

	c := engine.Candidate{
		Background:       mustHex(t, "#FFFFFF"),
		Text:             mustHex(t, "#000000"),
		Accent:           mustHex(t, "#FFFFFF"),
		ButtonBackground: mustHex(t, "#000000"),
		ButtonText:       mustHex(t, "#FFFFFF"),
	}
	got := engine.Evaluate(c, engine.VisionGrayscale)

	want := []engine.CheckItem{
		{Title: "Title contrast", Measured: 1, Threshold: 3},
		{Title: "Body contrast", Measured: 21, Threshold: 4.5},
		{Title: "Button contrast", Measured: 21, Threshold: 4.5},
	}
	if diff := cmp.Diff(want, got.Contrast, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("contrast mismatch (-want +got):\n%s", diff)
	}
	if got.Pass() || engine.InclusivePass(c) {
		t.Error("an invisible accent should fail")
	}
}

func TestSimulateVision(t *testing.T) {
	tests := []struct {
		hex  string
		mode engine.VisionMode
		want string
	}{
		{"#FF0000", engine.VisionNormal, "#FF0000"},
		{"#FF0000", engine.VisionGrayscale, "#4C4C4C"},
		{"#000000", engine.VisionProtanopia, "#000000"},
		{"#000000", engine.VisionTritanopia, "#000000"},
		{"808080", engine.VisionGrayscale, "#808080"},
	}
	for _, tt := range tests {
		t.Run(tt.hex+"/"+tt.mode.String(), func(t *testing.T) {
			got, err := engine.SimulateVision(tt.hex, tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("SimulateVision(%q, %s) = %q, want %q", tt.hex, tt.mode, got, tt.want)
			}
		})
	}

	if _, err := engine.SimulateVision("#12", engine.VisionNormal); !errors.Is(err, engine.ErrInvalidHex) {
		t.Errorf("SimulateVision(#12) error = %v, want ErrInvalidHex", err)
	}
}

func TestAutoFixIsPure(t *testing.T) {
	candidates, _ := engine.GeneratePalettes("#E86647")
	night := candidates[1]
	before := night

	fixed := engine.AutoFix(night)
	if night != before {
		t.Error("AutoFix() modified its argument")
	}
	if engine.InclusivePass(night) {
		t.Fatal("Poster Night Poster should fail before fixing")
	}
	if !engine.InclusivePass(fixed) {
		t.Error("Poster Night Poster should pass after AutoFix")
	}
}

func TestExportText(t *testing.T) {
	candidates, _ := engine.GeneratePalettes("#3D75DB")

	hex, err := engine.ExportText(candidates[0], "hex")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(hex, "HueBridge Style Card\nBackground: #") {
		t.Errorf("ExportText(hex) = %q", hex)
	}
	if strings.HasSuffix(hex, "\n") {
		t.Error("ExportText() should not end with a newline")
	}

	if _, err := engine.ExportText(candidates[0], "pdf"); !errors.Is(err, engine.ErrUnknownFormat) {
		t.Errorf("ExportText(pdf) error = %v, want ErrUnknownFormat", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	bases := []string{"#3D75DB", "#B04DB5", "#E86647", "#294785", "#3D945E"}

	var wg sync.WaitGroup
	results := make([]string, len(bases)*4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			candidates, err := engine.GeneratePalettes(bases[i%len(bases)])
			if err != nil {
				t.Error(err)
				return
			}
			out, err := engine.ExportText(engine.AutoFix(candidates[i%5]), "css")
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = out
		}(i)
	}
	wg.Wait()

	for i := len(bases); i < len(results); i++ {
		if results[i] != results[i%len(bases)] {
			t.Errorf("result %d differs from result %d", i, i%len(bases))
		}
	}
}
