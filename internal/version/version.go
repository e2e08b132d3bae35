// Package version holds build metadata for huebridge, set at link time with
// -ldflags "-X github.com/jmylchreest/huebridge/internal/version.<Name>=...".
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Build metadata. Version, Commit and Date are overwritten by the release
// build; a plain `go build` leaves the defaults.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Colour science models compiled into this build. They change the numbers
// the engine produces, so they are reported alongside the build metadata.
const (
	ContrastModel = "wcag-2.x"
	DeltaEModel   = "cie76-d65"
	VisionModel   = "machado-2009"
)

// Info is the full build and engine description.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
	Models    Models `json:"models" yaml:"models"`
}

// Models names the colour science behind contrast, difference and
// vision simulation.
type Models struct {
	Contrast string `json:"contrast" yaml:"contrast"`
	DeltaE   string `json:"delta_e" yaml:"delta_e"`
	Vision   string `json:"vision" yaml:"vision"`
}

// GetInfo returns the current build information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Models: Models{
			Contrast: ContrastModel,
			DeltaE:   DeltaEModel,
			Vision:   VisionModel,
		},
	}
}

// released reports whether the build carries release metadata.
func (i Info) released() bool {
	return i.Commit != "unknown" && i.Date != "unknown"
}

// String returns the one-line form used by --version.
func (i Info) String() string {
	if i.released() {
		return fmt.Sprintf("huebridge version %s (commit: %s, built: %s, %s, %s)",
			i.Version, i.Commit[:min(8, len(i.Commit))], i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("huebridge version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
}

// Encode renders the info as "text", "json" or "yaml".
func (i Info) Encode(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return []byte(i.String() + "\n"), nil
	case "json":
		data, err := json.MarshalIndent(i, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return yaml.Marshal(i)
	default:
		return nil, fmt.Errorf("unknown version format %q (valid: text, json, yaml)", format)
	}
}

// String returns the one-line version of the running binary.
func String() string {
	return GetInfo().String()
}

// Short returns the bare version number.
func Short() string {
	return Version
}
