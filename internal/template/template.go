package template

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/mxyns/bindgen-bridge/internal/render"
)

// Template errors.
var (
	// ErrMissingRules is returned when generation is requested without
	// rename rules.
	ErrMissingRules = errors.New("template has no rename rules")
	// ErrDocumentNotRead is returned when generation is requested
	// before the template document was read or injected.
	ErrDocumentNotRead = errors.New("template document was not read before use")
)

// Document is a decoded TOML document.
type Document = map[string]any

// Template is an export config template plus the rename rules to merge
// into it.
type Template struct {
	path  string
	doc   Document
	rules []render.Rule
}

// New remembers the template path without loading it.
func New(path string) *Template {
	return &Template{path: path}
}

// ReadTOML reads the path given to New as a TOML document.
func (t *Template) ReadTOML() (*Template, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", t.path, err)
	}

	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", t.path, err)
	}

	t.doc = doc

	return t, nil
}

// UseDocument injects an in-memory document instead of loading one
// from disk. Pass a plain name instead of a path to New when using
// this.
func (t *Template) UseDocument(doc Document) *Template {
	t.doc = doc
	return t
}

// WithRules provides the rename rules to merge into the document.
func (t *Template) WithRules(rules []render.Rule) *Template {
	t.rules = rules
	return t
}

// GenerateTOML merges the rules into the document's [export.rename]
// table and serializes the result. An existing table is kept: only
// keys colliding with a generated rule are overwritten, every other
// key of the document is preserved untouched. The receiver's document
// is not modified.
func (t *Template) GenerateTOML() ([]byte, error) {
	if t.rules == nil {
		return nil, ErrMissingRules
	}

	if t.doc == nil {
		return nil, ErrDocumentNotRead
	}

	doc := copyDocument(t.doc)

	export, err := childTable(doc, "export")
	if err != nil {
		return nil, err
	}

	renames, err := childTable(export, "rename")
	if err != nil {
		return nil, err
	}

	for _, r := range t.rules {
		renames[r.InternalName] = r.ExternalName
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serializing export config: %w", err)
	}

	return out, nil
}

// ConfigHeader returns the banner identifying the output as generated
// from this template.
func (t *Template) ConfigHeader() string {
	return "# This configuration file has been automatically generated\n" +
		"# Do not modify it manually, your changes will be lost. " +
		"Instead, make changes to its associated template : " + t.path + "\n\n"
}

// Generate produces the final config file content: banner followed by
// the merged TOML document.
func (t *Template) Generate() ([]byte, error) {
	body, err := t.GenerateTOML()
	if err != nil {
		return nil, err
	}

	return append([]byte(t.ConfigHeader()), body...), nil
}

// childTable returns doc[key] as a table, creating it when absent.
func childTable(doc Document, key string) (Document, error) {
	child, ok := doc[key]
	if !ok {
		table := Document{}
		doc[key] = table

		return table, nil
	}

	table, ok := child.(Document)
	if !ok {
		return nil, fmt.Errorf("template key %q is not a table", key)
	}

	return table, nil
}

// copyDocument deep-copies the table structure of a document so
// generation never mutates the caller's template. Leaf values are
// shared; the merge only ever replaces them, never mutates them.
func copyDocument(doc Document) Document {
	out := make(Document, len(doc))

	for k, v := range doc {
		if table, ok := v.(Document); ok {
			out[k] = copyDocument(table)
			continue
		}

		out[k] = v
	}

	return out
}
