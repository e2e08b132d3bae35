package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huebridge/internal/export"
	"github.com/jmylchreest/huebridge/internal/palette"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		outputPath string
		applyFix   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a palette as text",
		Long: `Export the five role colours of a palette template.

Formats:
  hex   style card with #RRGGBB values
  css   CSS custom properties on :root
  rgb   style card with rgb(r, g, b) values
  json  structured document
  yaml  structured document

Text formats can be overridden by placing <format>.tmpl in --template-dir.

Examples:
  huebridge export --template social-card --format css
  huebridge export --preset club --fix --format json -o palette.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, outputPath, applyFix)
		},
	}
	addBaseFlags(cmd)
	addTemplateFlag(cmd)
	cmd.Flags().StringP(flagFormat, "f", "", "export format (hex, css, rgb, json, yaml)")
	cmd.Flags().String(flagTemplateDir, "", "directory with custom <format>.tmpl templates")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&applyFix, "fix", false, "apply the all fix before exporting")
	return cmd
}

func runExport(cmd *cobra.Command, opts *rootOptions, outputPath string, applyFix bool) error {
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

	c := palette.GenerateTemplate(base, tmpl)
	if applyFix {
		c = palette.AutoFixAll(c)
	}

	registry := export.NewDefaultRegistry(
		export.WithTemplateDir(s.TemplateDir),
		export.WithLogger(opts.logger),
	)
	content, err := registry.Format(c, s.Format)
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s export of %s to %s\n", s.Format, c.Template, outputPath)
	return nil
}
