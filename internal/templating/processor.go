// Where: internal/templating/processor.go
// What: Go-template pre-processing for parameterized templates.
// Why: Expand {{ .Var }} placeholders before syntax normalization.
package templating

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Process runs template content through text/template with the Sprig
// function map, substituting the provided variables. Content without
// template actions passes through unchanged.
func Process(content string, vars map[string]any) (string, error) {
	tmpl, err := template.New("cloudformation").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(content)
	if err != nil {
		return "", fmt.Errorf("parse template variables: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("expand template variables: %w", err)
	}
	return buf.String(), nil
}
