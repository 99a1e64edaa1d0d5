package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/uwu-tools/dirnav/internal/encoding"
	"github.com/uwu-tools/dirnav/internal/encoding/json"
	"github.com/uwu-tools/dirnav/internal/encoding/toml"
	"github.com/uwu-tools/dirnav/internal/encoding/yaml"
	"github.com/uwu-tools/dirnav/internal/navigator"
	"github.com/uwu-tools/dirnav/internal/options"
)

// Renderer writes a listing of the directory at path.
type Renderer func(w io.Writer, path string, entries []navigator.Entry) error

// ForFormat returns the Renderer for one of the options.Format* names.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case options.FormatPlain:
		return func(w io.Writer, _ string, entries []navigator.Entry) error {
			return Plain(w, entries)
		}, nil
	case options.FormatTable:
		return func(w io.Writer, _ string, entries []navigator.Entry) error {
			return Table(w, entries)
		}, nil
	case options.FormatJSON:
		return encodedWith(&json.Codec{Indent: "  "}), nil
	case options.FormatYAML:
		return encodedWith(yaml.Codec{}), nil
	case options.FormatTOML:
		return encodedWith(toml.Codec{}), nil
	default:
		return nil, errUnknownFormat(format)
	}
}

func encodedWith(enc encoding.Encoder) Renderer {
	return func(w io.Writer, path string, entries []navigator.Entry) error {
		return Encoded(w, path, entries, enc)
	}
}

// Plain writes one entry per line, suffixing directories with a slash.
func Plain(w io.Writer, entries []navigator.Entry) error {
	for _, e := range entries {
		name := e.Name
		if e.IsDir() {
			name += "/"
		}
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("writing entry %s: %w", e.Name, err)
		}
	}

	return nil
}

// Table writes a two-column Name/Type table.
func Table(w io.Writer, entries []navigator.Entry) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Name", "Type")
	for _, e := range entries {
		t.Row(e.Name, e.Kind.String())
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return nil
}

type record struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Type string `json:"type" yaml:"type" toml:"type"`
}

type listing struct {
	Path    string   `json:"path" yaml:"path" toml:"path"`
	Entries []record `json:"entries" yaml:"entries" toml:"entries"`
}

// Encoded writes the listing as a document produced by enc.
func Encoded(w io.Writer, path string, entries []navigator.Entry, enc encoding.Encoder) error {
	doc := listing{
		Path:    path,
		Entries: make([]record, 0, len(entries)),
	}
	for _, e := range entries {
		doc.Entries = append(doc.Entries, record{Name: e.Name, Type: e.Kind.String()})
	}

	b, err := enc.Encode(doc)
	if err != nil {
		return fmt.Errorf("encoding listing of %s: %w", path, err)
	}
	if !bytes.HasSuffix(b, []byte("\n")) {
		b = append(b, '\n')
	}

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	return nil
}

func errUnknownFormat(format string) error {
	return fmt.Errorf("unknown output format %q", format) //nolint:goerr113
}
