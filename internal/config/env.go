package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvConfig      = "HUEBRIDGE_CONFIG"
	EnvBase        = "HUEBRIDGE_BASE"
	EnvPreset      = "HUEBRIDGE_PRESET"
	EnvTemplate    = "HUEBRIDGE_TEMPLATE"
	EnvFormat      = "HUEBRIDGE_FORMAT"
	EnvModes       = "HUEBRIDGE_MODES"
	EnvPreview     = "HUEBRIDGE_PREVIEW"
	EnvNoColour    = "HUEBRIDGE_NO_COLOUR"
	EnvTemplateDir = "HUEBRIDGE_TEMPLATE_DIR"
)

// Getenv looks up one variable; an empty result means unset.
type Getenv func(string) string

// FromEnv builds a layer from HUEBRIDGE_* variables.
func FromEnv(getenv Getenv) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		*target = &raw
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid boolean %q", key, raw))
			return
		}
		*target = &b
	}

	setString(&cfg.Base, EnvBase)
	setString(&cfg.Preset, EnvPreset)
	setString(&cfg.Template, EnvTemplate)
	setString(&cfg.Format, EnvFormat)
	setString(&cfg.TemplateDir, EnvTemplateDir)
	setBool(&cfg.Preview, EnvPreview)
	setBool(&cfg.NoColour, EnvNoColour)

	if raw := strings.TrimSpace(getenv(EnvModes)); raw != "" {
		modes := SplitList(raw)
		cfg.Modes = &modes
	}

	return cfg, errors.Join(errs...)
}

// SplitList splits a comma-separated list, dropping empty entries.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// WithDotEnv returns a lookup that consults the process environment first and
// falls back to the variables in a .env file. A missing file is not an error.
func WithDotEnv(path string, getenv Getenv) (Getenv, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getenv, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return vars[key]
	}, nil
}

// Path returns the config file to load: the flag value if given, otherwise
// $HUEBRIDGE_CONFIG.
func Path(flagValue string, getenv Getenv) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	if getenv == nil {
		return ""
	}
	return strings.TrimSpace(getenv(EnvConfig))
}
