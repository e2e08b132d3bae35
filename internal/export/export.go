// Package export serialises palette candidates for use outside the engine.
package export

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huebridge/internal/palette"
)

// ErrUnknownFormat is returned when no formatter is registered for a name.
var ErrUnknownFormat = errors.New("unknown export format")

// Formatter turns a candidate into bytes.
type Formatter interface {
	// Name returns the format name (e.g., "hex", "css").
	Name() string

	// Description returns a human-readable description of the format.
	Description() string

	// Format serialises c. Output always ends with a newline.
	Format(c palette.Candidate) ([]byte, error)
}

// Registry holds the available formatters by name.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter, replacing any with the same name.
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Name()] = f
}

// Get retrieves a formatter by name, case-insensitively.
func (r *Registry) Get(name string) (Formatter, bool) {
	f, ok := r.formatters[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// List returns the registered format names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Format serialises c with the named formatter.
func (r *Registry) Format(c palette.Candidate, name string) ([]byte, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownFormat, name, strings.Join(r.List(), ", "))
	}
	out, err := f.Format(c)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", f.Name(), err)
	}
	return out, nil
}

// Option configures the default formatters.
type Option func(*options)

type options struct {
	templateDir string
	logger      hclog.Logger
}

// WithTemplateDir makes the text formatters prefer <dir>/<name>.tmpl over
// their built-in templates.
func WithTemplateDir(dir string) Option {
	return func(o *options) {
		o.templateDir = dir
	}
}

// WithLogger sets the logger used to report template selection.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewDefaultRegistry returns a registry with every built-in format:
// hex, css, rgb, json and yaml.
func NewDefaultRegistry(opts ...Option) *Registry {
	o := options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	loader := newTemplateLoader(o.templateDir, o.logger)
	r := NewRegistry()
	r.Register(&templateFormatter{name: "hex", description: "Style card with #RRGGBB values", loader: loader})
	r.Register(&templateFormatter{name: "css", description: "CSS custom properties on :root", loader: loader})
	r.Register(&templateFormatter{name: "rgb", description: "Style card with rgb(r, g, b) values", loader: loader})
	r.Register(jsonFormatter{})
	r.Register(yamlFormatter{})
	return r
}

var defaultRegistry = NewDefaultRegistry()

// Text serialises c with one of the built-in formats. The trailing newline
// is dropped so the result can be embedded or copied as-is.
func Text(c palette.Candidate, format string) (string, error) {
	out, err := defaultRegistry.Format(c, format)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// Formats returns the names of the built-in formats.
func Formats() []string {
	return defaultRegistry.List()
}
