package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huebridge/internal/colour"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate HEX",
		Short: "Show how a colour appears under each vision mode",
		Long: `Simulate how a colour is perceived under colour-vision deficiencies.

Examples:
  huebridge simulate "#3D75DB"
  huebridge simulate e8664a --mode protanopia,deuteranopia --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, opts, args[0])
		},
	}
	addModeFlag(cmd)
	addPreviewFlag(cmd)
	return cmd
}

func runSimulate(cmd *cobra.Command, opts *rootOptions, hex string) error {
	c, err := colour.ParseHex(hex)
	if err != nil {
		return err
	}
	s, err := opts.settings(cmd)
	if err != nil {
		return err
	}
	modes, err := s.VisionModes()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	table := NewTable("Mode", "Hex", "RGB")
	simulated := make([]colour.RGBA, len(modes))
	for i, mode := range modes {
		simulated[i] = colour.Simulate(c, mode)
		table.AddRow(mode.Label(), simulated[i].Hex(), simulated[i].ToRGB().String())
	}
	if _, err := table.WriteTo(out); err != nil {
		return err
	}

	if s.Preview {
		sw := colour.NewSwatchOutput(out, opts.colourEnabled(s, out))
		fmt.Fprintln(out)
		for i, mode := range modes {
			fmt.Fprintln(out, colour.FormatWithLabel(sw, simulated[i], mode.Label(), 0))
		}
	}
	return nil
}
