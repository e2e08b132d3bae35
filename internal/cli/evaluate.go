package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huebridge/internal/palette"
)

const notesWidth = 44

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Check a palette for contrast and distinguishability",
		Long: `Evaluate one palette template against the contrast and distinguishability
checks under the selected vision modes.

The inclusive verdict at the end always covers every vision mode.

Examples:
  huebridge evaluate --template night-poster
  huebridge evaluate --preset poster -t bold-poster --mode protanopia,grayscale`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, opts)
		},
	}
	addBaseFlags(cmd)
	addTemplateFlag(cmd)
	addModeFlag(cmd)
	return cmd
}

func runEvaluate(cmd *cobra.Command, opts *rootOptions) error {
	s, err := opts.settings(cmd)
	if err != nil {
		return err
	}
	base, err := s.BaseColour()
	if err != nil {
		return err
	}
	tmpl, err := s.TemplateValue()
	if err != nil {
		return err
	}
	modes, err := s.VisionModes()
	if err != nil {
		return err
	}

	c := palette.GenerateTemplate(base, tmpl)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (base %s)\n", c.Template, base.Hex())
	for _, line := range c.Guidance() {
		fmt.Fprintf(out, "  - %s\n", line)
	}

	for _, mode := range modes {
		eval := palette.Evaluate(c, mode)
		fmt.Fprintf(out, "\n%s\n", mode.Label())
		if err := writeChecks(out, eval); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\nInclusive: %s\n", statusSentence(c))
	return nil
}

func writeChecks(w io.Writer, eval palette.Evaluation) error {
	table := NewTable("Check", "Measured", "Target", "Result", "Notes")
	table.SetColumnAlign(1, AlignRight)
	table.SetColumnMaxWidth(4, notesWidth)

	items := append(append([]palette.CheckItem(nil), eval.Contrast...), eval.Distinguishability...)
	for _, item := range items {
		table.AddRow(item.Title, item.RatioLabel(), item.ThresholdLabel(), passLabel(item), item.Explanation())
	}
	_, err := table.WriteTo(w)
	return err
}
