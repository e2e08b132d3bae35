package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/huebridge/internal/colour"
	"github.com/jmylchreest/huebridge/internal/config"
	"github.com/jmylchreest/huebridge/internal/export"
)

// modesValue is a pflag.Value collecting vision mode names. It accepts
// repeated flags and comma-separated lists and rejects unknown names early.
type modesValue struct {
	names []string
	set   bool
}

var _ pflag.Value = (*modesValue)(nil)

func (m *modesValue) String() string {
	return strings.Join(m.names, ",")
}

func (m *modesValue) Set(raw string) error {
	if !m.set {
		m.names = nil
		m.set = true
	}
	for _, name := range config.SplitList(raw) {
		if !strings.EqualFold(name, "all") {
			if _, err := colour.ParseVisionMode(name); err != nil {
				return err
			}
		}
		m.names = append(m.names, name)
	}
	return nil
}

func (m *modesValue) Type() string {
	return "modes"
}

// Flag names shared between commands and the config flag layer.
const (
	flagBase        = "base"
	flagPreset      = "preset"
	flagTemplate    = "template"
	flagFormat      = "format"
	flagMode        = "mode"
	flagPreview     = "preview"
	flagTemplateDir = "template-dir"
)

func addBaseFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagBase, "", "base colour as #RGB or #RRGGBB")
	cmd.Flags().String(flagPreset, "", "base colour preset (see 'huebridge presets')")
	cmd.MarkFlagsMutuallyExclusive(flagBase, flagPreset)
}

func addTemplateFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(flagTemplate, "t", "", "palette template (airy-poster, night-poster, neutral-studio, bold-poster, social-card)")
}

func addModeFlag(cmd *cobra.Command) {
	cmd.Flags().VarP(&modesValue{}, flagMode, "m", "vision modes, comma-separated or 'all' (normal, protanopia, deuteranopia, tritanopia, grayscale)")
}

func addPreviewFlag(cmd *cobra.Command) {
	cmd.Flags().Bool(flagPreview, false, "show colour swatches")
}

// flagLayer turns the flags the user actually set into a config layer.
func flagLayer(cmd *cobra.Command, opts *rootOptions) config.Config {
	var cfg config.Config
	flags := cmd.Flags()

	str := func(name string) *string {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			return nil
		}
		v := f.Value.String()
		return &v
	}

	cfg.Base = str(flagBase)
	cfg.Preset = str(flagPreset)
	cfg.Template = str(flagTemplate)
	cfg.Format = str(flagFormat)
	cfg.TemplateDir = str(flagTemplateDir)

	if f := flags.Lookup(flagMode); f != nil && f.Changed {
		if mv, ok := f.Value.(*modesValue); ok {
			modes := append([]string(nil), mv.names...)
			cfg.Modes = &modes
		}
	}
	if f := flags.Lookup(flagPreview); f != nil && f.Changed {
		v, _ := flags.GetBool(flagPreview)
		cfg.Preview = &v
	}
	if f := cmd.Flags().Lookup("no-colour"); f != nil && f.Changed {
		v := opts.noColour
		cfg.NoColour = &v
	}
	return cfg
}

// settings resolves defaults, config file, environment and flags, in that
// order of precedence.
func (o *rootOptions) settings(cmd *cobra.Command) (config.Settings, error) {
	getenv, err := config.WithDotEnv(o.dotEnvPath, o.getenv)
	if err != nil {
		return config.Settings{}, err
	}

	path := config.Path(o.configPath, getenv)
	fileCfg, err := config.Load(path)
	if err != nil {
		return config.Settings{}, fmt.Errorf("config: %w", err)
	}

	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return config.Settings{}, fmt.Errorf("environment: %w", err)
	}

	s := config.Merge(config.DefaultSettings(), fileCfg, envCfg, flagLayer(cmd, o))
	if getenv("NO_COLOR") != "" {
		s.NoColour = true
	}

	o.logger.Debug("resolved settings",
		"config", path,
		"base", s.Base,
		"preset", s.Preset,
		"template", s.Template,
		"format", s.Format,
		"modes", strings.Join(s.Modes, ","))

	if err := s.Validate(export.Formats()); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

// colourEnabled reports whether swatches should carry ANSI colour on w.
func (o *rootOptions) colourEnabled(s config.Settings, w io.Writer) bool {
	if s.NoColour {
		return false
	}
	f, ok := w.(*os.File)
	return ok && o.isTerminal(int(f.Fd()))
}

func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
