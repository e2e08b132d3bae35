package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huebridge/internal/colour"
	"github.com/jmylchreest/huebridge/internal/palette"
)

func newPresetsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in base colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := NewTable("Name", "Hex", "RGB")
			presets := palette.Presets()
			for _, p := range presets {
				table.AddRow(strings.ToLower(p.Name), p.Colour.Hex(), p.Colour.ToRGB().String())
			}
			if _, err := table.WriteTo(out); err != nil {
				return err
			}

			if s.Preview {
				sw := colour.NewSwatchOutput(out, opts.colourEnabled(s, out))
				fmt.Fprintln(out)
				for _, p := range presets {
					fmt.Fprintln(out, colour.FormatWithLabel(sw, p.Colour, p.Name, 0))
				}
			}
			return nil
		},
	}
	addPreviewFlag(cmd)
	return cmd
}
