package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huebridge/internal/palette"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate palette candidates from a base colour",
		Long: `Generate the five palette templates from a base colour and show whether
each passes every accessibility check under every vision mode.

Examples:
  # Default base colour
  huebridge generate

  # Custom base colour with a preview
  huebridge generate --base "#E8664A" --preview

  # A built-in preset
  huebridge generate --preset night`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
	addBaseFlags(cmd)
	addPreviewFlag(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	s, err := opts.settings(cmd)
	if err != nil {
		return err
	}
	base, err := s.BaseColour()
	if err != nil {
		return err
	}

	session := palette.NewSession(palette.WithBase(base), palette.WithLogger(opts.logger))
	candidates := session.Candidates()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Base colour: %s\n\n", base.Hex())

	table := NewTable("Template", "Background", "Text", "Accent", "Button", "Button Text", "Inclusive")
	for _, c := range candidates {
		table.AddRow(
			c.Template.String(),
			c.Background.Hex(),
			c.Text.Hex(),
			c.Accent.Hex(),
			c.ButtonBackground.Hex(),
			c.ButtonText.Hex(),
			statusLabel(c),
		)
	}
	if _, err := table.WriteTo(out); err != nil {
		return err
	}

	if s.Preview {
		fmt.Fprintln(out)
		writePreview(out, opts.colourEnabled(s, out), candidates)
	}
	return nil
}
