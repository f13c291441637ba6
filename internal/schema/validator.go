// Where: internal/schema/validator.go
// What: Structural validation of CloudFormation templates.
// Why: Catch shape problems locally before a template goes anywhere near a
//      deployment pipeline.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed template_schema.json
var templateSchema string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Validate checks template content against the embedded structural schema.
// The content must use long-form intrinsic syntax; short-form tags do not
// survive the YAML-to-JSON conversion. Callers holding short-form templates
// reformat to long form first.
func Validate(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	return sch.Validate(document)
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("template_schema.json", strings.NewReader(templateSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("template_schema.json")
	})
	return compiledSchema, schemaErr
}
