// Where: internal/cfnyaml/parse.go
// What: Template text parsing into node and generic trees.
// Why: Normalize tagged YAML into the long-form structure the rest of the
//      toolchain works with.
package cfnyaml

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseError reports template text that could not be parsed. The wrapped
// yaml error carries the offending line and column when the parser knows
// them.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse template: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes template text (YAML or JSON) into a generic long-form tree.
// Short-form tags such as !Ref become their Fn:: mapping equivalents.
func Parse(content string) (map[string]any, error) {
	node, err := parseNode(content)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := expandShortForms(node).Decode(&out); err != nil {
		return nil, &ParseError{Err: err}
	}
	return out, nil
}

func parseNode(content string) (*yaml.Node, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &ParseError{Err: errors.New("template content is empty")}
	}
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(content), &node); err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(node.Content) == 0 {
		return nil, &ParseError{Err: errors.New("empty yaml document")}
	}
	return node.Content[0], nil
}
