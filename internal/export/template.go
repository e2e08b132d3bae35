package export

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huebridge/internal/colour"
	"github.com/jmylchreest/huebridge/internal/palette"
)

//go:embed templates/*.tmpl
var templates embed.FS

// templateLoader reads format templates, checking a custom directory first
// and falling back to the embedded defaults.
type templateLoader struct {
	customDir string
	logger    hclog.Logger
}

func newTemplateLoader(customDir string, logger hclog.Logger) *templateLoader {
	return &templateLoader{customDir: customDir, logger: logger}
}

// Load returns the template text for a format and whether it came from the
// custom directory.
func (l *templateLoader) Load(name string) (content []byte, fromCustom bool, err error) {
	filename := name + ".tmpl"

	if l.customDir != "" {
		customPath := filepath.Join(l.customDir, filename)
		if content, err := os.ReadFile(customPath); err == nil {
			l.logger.Debug("using custom template", "path", customPath)
			return content, true, nil
		}
	}

	content, err = templates.ReadFile("templates/" + filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s template: %w", name, err)
	}
	l.logger.Debug("using embedded template", "name", filename)
	return content, false, nil
}

// templateData is what the text templates see.
type templateData struct {
	Template string
	Slug     string
	Tokens   []palette.Token
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"hex": func(c colour.RGBA) string { return c.Hex() },
		"rgb": func(c colour.RGBA) string { return c.ToRGB().String() },
	}
}

// templateFormatter renders a candidate through a text/template.
type templateFormatter struct {
	name        string
	description string
	loader      *templateLoader
}

func (f *templateFormatter) Name() string {
	return f.name
}

func (f *templateFormatter) Description() string {
	return f.description
}

func (f *templateFormatter) Format(c palette.Candidate) ([]byte, error) {
	content, _, err := f.loader.Load(f.name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(f.name).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", f.name, err)
	}

	data := templateData{
		Template: c.Template.String(),
		Slug:     c.Template.Slug(),
		Tokens:   c.Tokens(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", f.name, err)
	}

	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
