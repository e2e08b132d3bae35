// Package config resolves huebridge settings from defaults, config files,
// the environment and command-line flags.
package config

// Config is one configuration layer. Nil fields are unset and leave the
// value from lower layers in place.
type Config struct {
	Base        *string   `yaml:"base" toml:"base" json:"base"`
	Preset      *string   `yaml:"preset" toml:"preset" json:"preset"`
	Template    *string   `yaml:"template" toml:"template" json:"template"`
	Format      *string   `yaml:"format" toml:"format" json:"format"`
	Modes       *[]string `yaml:"modes" toml:"modes" json:"modes"`
	Preview     *bool     `yaml:"preview" toml:"preview" json:"preview"`
	NoColour    *bool     `yaml:"no_colour" toml:"no_colour" json:"no_colour"`
	TemplateDir *string   `yaml:"template_dir" toml:"template_dir" json:"template_dir"`
}

// Settings is the fully resolved configuration.
type Settings struct {
	// Base is a hex colour. It wins over Preset when both are set.
	Base        string
	Preset      string
	Template    string
	Format      string
	Modes       []string
	Preview     bool
	NoColour    bool
	TemplateDir string
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Template: "airy-poster",
		Format:   "hex",
		Modes:    []string{"all"},
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
