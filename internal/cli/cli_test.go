package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huebridge/internal/colour"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the command tree with an isolated environment and no
// terminal attached.
func runCLI(t *testing.T, env map[string]string, args ...string) cliResult {
	t.Helper()
	return runCLIWithOptions(t, env, func(*rootOptions) {}, args...)
}

func runCLIWithOptions(t *testing.T, env map[string]string, modify func(*rootOptions), args ...string) cliResult {
	t.Helper()
	opts := &rootOptions{
		getenv:     func(key string) string { return env[key] },
		dotEnvPath: filepath.Join(t.TempDir(), ".env"),
		isTerminal: func(int) bool { return false },
		logger:     hclog.NewNullLogger(),
	}
	modify(opts)

	cmd := newRootCmd(opts)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestGenerateCommand(t *testing.T) {
	res := runCLI(t, nil, "generate")
	if res.err != nil {
		t.Fatalf("generate error = %v", res.err)
	}

	assertContains(t, res.stdout,
		"Base colour: #3D75DB",
		"Template",
		"Inclusive",
		"Airy Poster",
		"Social Card",
		"#2860C7",
		"✓ ready",
	)

	for _, line := range strings.Split(res.stdout, "\n") {
		if strings.HasPrefix(line, "Bold Poster") && !strings.Contains(line, "✗") {
			t.Errorf("Bold Poster should be marked as failing: %q", line)
		}
	}
}

func TestGenerateCommandPreviewWithoutTerminal(t *testing.T) {
	res := runCLI(t, nil, "generate", "--preset", "night", "--preview")
	if res.err != nil {
		t.Fatalf("generate error = %v", res.err)
	}
	assertContains(t, res.stdout, "Base colour: #294785", " Title ", " Body text ", " Button ")
	if strings.Contains(res.stdout, "\x1b[") {
		t.Error("preview should not emit ANSI sequences when stdout is not a terminal")
	}
}

func TestGenerateCommandBaseAndPresetConflict(t *testing.T) {
	res := runCLI(t, nil, "generate", "--base", "#112233", "--preset", "club")
	if res.err == nil {
		t.Fatal("expected an error for --base with --preset")
	}
}

func TestGenerateCommandInvalidBase(t *testing.T) {
	res := runCLI(t, nil, "generate", "--base", "blue")
	if !errors.Is(res.err, colour.ErrInvalidHex) {
		t.Errorf("generate --base blue error = %v, want ErrInvalidHex", res.err)
	}
}

func TestEvaluateCommand(t *testing.T) {
	res := runCLI(t, nil, "evaluate", "--template", "night-poster")
	if res.err != nil {
		t.Fatalf("evaluate error = %v", res.err)
	}
	assertContains(t, res.stdout,
		"Night Poster (base #3D75DB)",
		"Use for evening events",
		"Normal",
		"Protanopia",
		"Grayscale",
		"Title contrast",
		"Body contrast",
		"Button contrast",
		"Title vs background",
		"Button vs background",
		"Target 4.5:1",
		"Min ΔE 10",
		"Inclusive: ready for every vision mode",
	)
	if strings.Contains(res.stdout, "FAIL") {
		t.Errorf("Campus Night Poster should pass every check:\n%s", res.stdout)
	}
}

func TestEvaluateCommandModes(t *testing.T) {
	res := runCLI(t, nil, "evaluate", "-t", "bold-poster", "--mode", "grayscale")
	if res.err != nil {
		t.Fatalf("evaluate error = %v", res.err)
	}
	assertContains(t, res.stdout, "Grayscale", "FAIL", "Inclusive: needs fixes", "grayscale")
	if strings.Contains(res.stdout, "\nNormal\n") {
		t.Error("only the requested mode should be shown")
	}
}

func TestEvaluateCommandUnknownMode(t *testing.T) {
	res := runCLI(t, nil, "evaluate", "--mode", "sepia")
	if res.err == nil || !strings.Contains(res.err.Error(), "unknown vision mode") {
		t.Errorf("evaluate --mode sepia error = %v, want unknown vision mode", res.err)
	}
}

func TestSimulateCommand(t *testing.T) {
	res := runCLI(t, nil, "simulate", "#FF0000", "--mode", "normal", "--mode", "grayscale")
	if res.err != nil {
		t.Fatalf("simulate error = %v", res.err)
	}
	want := "" +
		"Mode       Hex      RGB\n" +
		"---------  -------  ---------------\n" +
		"Normal     #FF0000  rgb(255, 0, 0)\n" +
		"Grayscale  #4C4C4C  rgb(76, 76, 76)\n"
	if diff := cmp.Diff(want, res.stdout); diff != "" {
		t.Errorf("simulate output mismatch (-want +got):\n%s", diff)
	}
}

func TestSimulateCommandErrors(t *testing.T) {
	if res := runCLI(t, nil, "simulate"); res.err == nil {
		t.Error("simulate without a colour should fail")
	}
	if res := runCLI(t, nil, "simulate", "#XYZ"); !errors.Is(res.err, colour.ErrInvalidHex) {
		t.Errorf("simulate #XYZ error = %v, want ErrInvalidHex", res.err)
	}
}

func TestFixCommand(t *testing.T) {
	res := runCLI(t, nil, "fix", "--preset", "poster", "--template", "night-poster")
	if res.err != nil {
		t.Fatalf("fix error = %v", res.err)
	}
	assertContains(t, res.stdout,
		"Night Poster (base #E86647), fix all",
		"Before: needs fixes (failing: protanopia",
		"After:  ready for every vision mode",
		"Applied 1 time(s)",
	)

	for _, line := range strings.Split(res.stdout, "\n") {
		if strings.HasPrefix(line, "Button Text") && !strings.HasSuffix(line, "changed") {
			t.Errorf("button text should be changed: %q", line)
		}
		if strings.HasPrefix(line, "Background") && strings.HasSuffix(line, "changed") {
			t.Errorf("background should be unchanged: %q", line)
		}
	}
}

func TestFixCommandAlreadyReady(t *testing.T) {
	res := runCLI(t, nil, "fix", "-t", "airy-poster", "--repeat", "5")
	if res.err != nil {
		t.Fatalf("fix error = %v", res.err)
	}
	assertContains(t, res.stdout, "Applied 0 time(s)", "After:  ready")
	if strings.Contains(res.stdout, "changed") {
		t.Errorf("a ready palette should not change:\n%s", res.stdout)
	}
}

func TestFixCommandUnfixable(t *testing.T) {
	res := runCLI(t, nil, "fix", "-t", "bold-poster", "--repeat", "3")
	if res.err != nil {
		t.Fatalf("fix error = %v", res.err)
	}
	assertContains(t, res.stdout, "Some checks still fail")
}

func TestFixCommandFlagErrors(t *testing.T) {
	if res := runCLI(t, nil, "fix", "--fix", "brighten"); res.err == nil {
		t.Error("unknown fix should fail")
	}
	if res := runCLI(t, nil, "fix", "--repeat", "0"); res.err == nil {
		t.Error("--repeat 0 should fail")
	}
}

func TestExportCommand(t *testing.T) {
	res := runCLI(t, nil, "export")
	if res.err != nil {
		t.Fatalf("export error = %v", res.err)
	}
	want := "HueBridge Style Card\n" +
		"Background: #FFFFFF\n" +
		"Text: #1C1C1E\n" +
		"Accent: #2860C7\n" +
		"Button Background: #2458B7\n" +
		"Button Text: #F5F5F7\n"
	if diff := cmp.Diff(want, res.stdout); diff != "" {
		t.Errorf("export output mismatch (-want +got):\n%s", diff)
	}
}

func TestExportCommandToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.css")
	res := runCLI(t, nil, "export", "--format", "css", "-o", path)
	if res.err != nil {
		t.Fatalf("export error = %v", res.err)
	}
	if res.stdout != "" {
		t.Errorf("stdout should be empty when writing to a file, got %q", res.stdout)
	}
	assertContains(t, res.stderr, "Wrote css export of Airy Poster to "+path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, string(data), "/* HueBridge: Airy Poster */", "--background: #FFFFFF;")
}

func TestExportCommandWithFix(t *testing.T) {
	res := runCLI(t, nil, "export", "--preset", "poster", "-t", "night-poster", "--fix", "-f", "json")
	if res.err != nil {
		t.Fatalf("export error = %v", res.err)
	}
	assertContains(t, res.stdout, `"template": "Night Poster"`, `"ready": true`)
}

func TestSettingsPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "huebridge.yaml")
	if err := os.WriteFile(configPath, []byte("format: css\ntemplate: social-card\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("config file", func(t *testing.T) {
		res := runCLI(t, nil, "export", "--config", configPath)
		if res.err != nil {
			t.Fatal(res.err)
		}
		assertContains(t, res.stdout, "/* HueBridge: Social Card */")
	})

	t.Run("config from environment", func(t *testing.T) {
		res := runCLI(t, map[string]string{"HUEBRIDGE_CONFIG": configPath}, "export")
		if res.err != nil {
			t.Fatal(res.err)
		}
		assertContains(t, res.stdout, "/* HueBridge: Social Card */")
	})

	t.Run("environment over file", func(t *testing.T) {
		res := runCLI(t, map[string]string{"HUEBRIDGE_FORMAT": "rgb"}, "export", "--config", configPath)
		if res.err != nil {
			t.Fatal(res.err)
		}
		assertContains(t, res.stdout, "HueBridge Style Card", "rgb(")
	})

	t.Run("flag over environment", func(t *testing.T) {
		res := runCLI(t, map[string]string{"HUEBRIDGE_FORMAT": "rgb"}, "export", "--config", configPath, "--format", "hex")
		if res.err != nil {
			t.Fatal(res.err)
		}
		assertContains(t, res.stdout, "Background: #")
	})

	t.Run("invalid environment", func(t *testing.T) {
		res := runCLI(t, map[string]string{"HUEBRIDGE_FORMAT": "svg"}, "export")
		if res.err == nil || !strings.Contains(res.err.Error(), `unknown format "svg"`) {
			t.Errorf("error = %v, want unknown format", res.err)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		res := runCLI(t, nil, "export", "--config", filepath.Join(dir, "missing.toml"))
		if res.err == nil {
			t.Error("missing config file should fail")
		}
	})
}

func TestDotEnv(t *testing.T) {
	dotEnv := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(dotEnv, []byte("HUEBRIDGE_TEMPLATE=night-poster\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := runCLIWithOptions(t, nil, func(o *rootOptions) { o.dotEnvPath = dotEnv }, "evaluate", "--mode", "normal")
	if res.err != nil {
		t.Fatal(res.err)
	}
	assertContains(t, res.stdout, "Night Poster (base #3D75DB)")
}

func TestColourEnabled(t *testing.T) {
	res := runCLIWithOptions(t, nil, func(o *rootOptions) {
		o.isTerminal = func(int) bool { return true }
	}, "presets", "--preview")
	if res.err != nil {
		t.Fatal(res.err)
	}
	// A bytes.Buffer is never a terminal, even when the check says yes.
	if strings.Contains(res.stdout, "\x1b[") {
		t.Error("non-file writers should not receive ANSI sequences")
	}

	opts := &rootOptions{isTerminal: func(int) bool { return true }}
	if opts.colourEnabled(settingsWithNoColour(true), os.Stdout) {
		t.Error("colourEnabled() should honour no-colour")
	}
	if !opts.colourEnabled(settingsWithNoColour(false), os.Stdout) {
		t.Error("colourEnabled() should be true for a terminal file")
	}
}

func TestPresetsCommand(t *testing.T) {
	res := runCLI(t, nil, "presets")
	if res.err != nil {
		t.Fatal(res.err)
	}
	assertContains(t, res.stdout, "campus", "#3D75DB", "rgb(61, 117, 219)", "nature")
}

func TestVerboseLogging(t *testing.T) {
	res := runCLI(t, nil, "-v", "fix", "--preset", "poster", "-t", "night-poster")
	if res.err != nil {
		t.Fatal(res.err)
	}
	assertContains(t, res.stderr, "[DEBUG] huebridge: resolved settings", "applied fix", "fix=all")

	quiet := runCLI(t, nil, "fix", "--preset", "poster", "-t", "night-poster")
	if quiet.stderr != "" {
		t.Errorf("stderr should be empty without --verbose, got %q", quiet.stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	assertContains(t, out.String(), "huebridge version")

	cmd = NewRootCmd()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "-o", "yaml"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	assertContains(t, out.String(), "vision: machado-2009")
}
