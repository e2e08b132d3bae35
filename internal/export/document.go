package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/huebridge/internal/colour"
	"github.com/jmylchreest/huebridge/internal/palette"
)

// Document is the structured form used by the json and yaml formats.
type Document struct {
	Template string          `json:"template" yaml:"template"`
	Slug     string          `json:"slug" yaml:"slug"`
	Ready    bool            `json:"ready" yaml:"ready"`
	Guidance []string        `json:"guidance" yaml:"guidance"`
	Tokens   []TokenDocument `json:"tokens" yaml:"tokens"`
}

// TokenDocument is one role colour in a Document.
type TokenDocument struct {
	Name string     `json:"name" yaml:"name"`
	Slug string     `json:"slug" yaml:"slug"`
	Hex  string     `json:"hex" yaml:"hex"`
	RGB  colour.RGB `json:"rgb" yaml:"rgb"`
}

// NewDocument builds the structured form of c.
func NewDocument(c palette.Candidate) Document {
	tokens := c.Tokens()
	doc := Document{
		Template: c.Template.String(),
		Slug:     c.Template.Slug(),
		Ready:    palette.InclusivePass(c),
		Guidance: c.Guidance(),
		Tokens:   make([]TokenDocument, len(tokens)),
	}
	for i, tok := range tokens {
		doc.Tokens[i] = TokenDocument{
			Name: tok.Name,
			Slug: tok.Slug,
			Hex:  tok.Colour.Hex(),
			RGB:  tok.Colour.ToRGB(),
		}
	}
	return doc
}

type jsonFormatter struct{}

func (jsonFormatter) Name() string        { return "json" }
func (jsonFormatter) Description() string { return "JSON document with hex and rgb values" }

func (jsonFormatter) Format(c palette.Candidate) ([]byte, error) {
	out, err := json.MarshalIndent(NewDocument(c), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json: %w", err)
	}
	return append(out, '\n'), nil
}

type yamlFormatter struct{}

func (yamlFormatter) Name() string        { return "yaml" }
func (yamlFormatter) Description() string { return "YAML document with hex and rgb values" }

func (yamlFormatter) Format(c palette.Candidate) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(c)); err != nil {
		return nil, fmt.Errorf("failed to marshal yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal yaml: %w", err)
	}
	return buf.Bytes(), nil
}
