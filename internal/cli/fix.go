package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huebridge/internal/palette"
)

func newFixCmd(opts *rootOptions) *cobra.Command {
	var (
		fixName string
		repeat  int
	)

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Repair a palette so it passes every vision mode",
		Long: `Apply an automatic fix to a palette template and show the colours before
and after.

Fixes:
  darken-text         darken text, accent and button text against their backgrounds
  lighten-background  lighten the background against text and accent
  all                 darken-text followed by lighten-background

Each application is one pass. Use --repeat to apply the fix again while the
palette still fails and the fix still changes something.

Examples:
  huebridge fix --preset poster --template night-poster
  huebridge fix -t social-card --fix darken-text --repeat 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fix, err := palette.ParseFix(fixName)
			if err != nil {
				return err
			}
			if repeat < 1 {
				return errors.New("--repeat must be at least 1")
			}
			return runFix(cmd, opts, fix, repeat)
		},
	}
	addBaseFlags(cmd)
	addTemplateFlag(cmd)
	cmd.Flags().StringVar(&fixName, "fix", palette.FixAll.String(), "fix to apply (darken-text, lighten-background, all)")
	cmd.Flags().IntVar(&repeat, "repeat", 1, "maximum number of times to apply the fix")
	return cmd
}

func runFix(cmd *cobra.Command, opts *rootOptions, fix palette.Fix, repeat int) error {
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

	session := palette.NewSession(palette.WithBase(base), palette.WithLogger(opts.logger))
	if err := session.Select(tmpl); err != nil {
		return err
	}
	before, _ := session.Selected()

	applied := 0
	for applied < repeat && !session.Ready() {
		prev, _ := session.Selected()
		next, err := session.Apply(fix)
		if err != nil {
			return err
		}
		if next == prev {
			// Nothing left to change; drop the no-op snapshot.
			session.Undo()
			break
		}
		applied++
	}
	after, _ := session.Selected()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (base %s), fix %s\n\n", after.Template, base.Hex(), fix)

	table := NewTable("Role", "Before", "After", "")
	beforeTokens := before.Tokens()
	for i, tok := range after.Tokens() {
		mark := ""
		if tok.Colour != beforeTokens[i].Colour {
			mark = "changed"
		}
		table.AddRow(tok.Name, beforeTokens[i].Colour.Hex(), tok.Colour.Hex(), mark)
	}
	if _, err := table.WriteTo(out); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nBefore: %s\n", statusSentence(before))
	fmt.Fprintf(out, "After:  %s\n", statusSentence(after))
	fmt.Fprintf(out, "Applied %d time(s)\n", applied)
	if !session.Ready() {
		fmt.Fprintln(out, "Some checks still fail. Try another fix or a different base colour.")
	}
	return nil
}
