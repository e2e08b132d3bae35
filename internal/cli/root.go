// Package cli provides the command-line interface for huebridge.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huebridge/internal/config"
	"github.com/jmylchreest/huebridge/internal/version"
)

// rootOptions holds global flags and shared state for every command.
type rootOptions struct {
	verbose    bool
	configPath string
	noColour   bool

	getenv     config.Getenv
	dotEnvPath string
	isTerminal func(fd int) bool
	logger     hclog.Logger
}

// NewRootCmd builds the huebridge command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{
		getenv:     os.Getenv,
		dotEnvPath: ".env",
		isTerminal: isTerminal,
		logger:     hclog.NewNullLogger(),
	})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "huebridge",
		Short: "Accessible colour palettes from a single base colour",
		Long: `HueBridge derives five palette templates from one base colour, checks
them for WCAG contrast and colour distinguishability under normal vision,
protanopia, deuteranopia, tritanopia and grayscale, and repairs failing
palettes with the smallest colour change that meets every target.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(opts.verbose, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (yaml, toml or json; default $"+config.EnvConfig+")")
	cmd.PersistentFlags().BoolVar(&opts.noColour, "no-colour", false, "disable colour swatches")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newEvaluateCmd(opts),
		newSimulateCmd(opts),
		newFixCmd(opts),
		newExportCmd(opts),
		newPresetsCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print build metadata and the colour science models used for contrast, colour difference and vision simulation.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := version.GetInfo().Encode(output)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json, yaml)")
	return cmd
}
