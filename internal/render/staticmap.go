package render

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// StaticMapConfig controls the generated lookup table source.
type StaticMapConfig struct {
	// PackageName is the package the table is generated into.
	PackageName string
	// VarName is the name of the generated map variable.
	VarName string
}

// DefaultStaticMapConfig returns the default static map configuration.
func DefaultStaticMapConfig() StaticMapConfig {
	return StaticMapConfig{
		PackageName: "bindings",
		VarName:     "ExportedNames",
	}
}

var staticMapTemplate = template.Must(template.New("staticmap").
	Parse(`// Code generated by bindgen-bridge. DO NOT EDIT.

package {{.PackageName}}

// {{.VarName}} maps the Go name of each imported composite type to
// the C name it is exported under.
var {{.VarName}} = map[string]string{
{{- range .Rules}}
	{{printf "%q" .InternalName}}: {{printf "%q" .ExternalName}},
{{- end}}
}
`))

// StaticMap generates a Go source file embedding the rules as a
// read-only map, gofmt-formatted. Rules keep their input order, so a
// sorted rule set yields a byte-identical file on every run.
func StaticMap(rules []Rule, config StaticMapConfig) ([]byte, error) {
	data := struct {
		PackageName string
		VarName     string
		Rules       []Rule
	}{
		PackageName: config.PackageName,
		VarName:     config.VarName,
		Rules:       rules,
	}

	var buf bytes.Buffer
	if err := staticMapTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing static map template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated static map: %w", err)
	}

	return formatted, nil
}
