// Where: internal/cfnyaml/render.go
// What: Template serialization with consistent intrinsic syntax.
// Why: One renderer for both programmatic trees and reformatted text.
package cfnyaml

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Render serializes a template tree to YAML, rewriting every recognized
// intrinsic function call to short-form tags or long-form key/value pairs.
// The tree may be a *yaml.Node (key order preserved) or plain Go values
// (map[string]any, []any, scalars). The input is never mutated.
func Render(tree any, shortForm bool) (string, error) {
	node, err := toNode(tree)
	if err != nil {
		return "", err
	}
	node = expandShortForms(node)
	if shortForm {
		node = contractIntrinsics(node)
	}
	text, err := marshalNode(node)
	if err != nil {
		return "", err
	}
	return repair(text, shortForm), nil
}

// Reformat parses template text and re-renders it with consistent intrinsic
// syntax. YAML and JSON inputs are both accepted. Malformed input fails with
// a *ParseError.
func Reformat(content string, shortForm bool) (string, error) {
	node, err := parseNode(content)
	if err != nil {
		return "", err
	}
	return Render(node, shortForm)
}

func toNode(tree any) (*yaml.Node, error) {
	switch typed := tree.(type) {
	case nil:
		return nil, fmt.Errorf("template tree is nil")
	case *yaml.Node:
		return typed, nil
	case yaml.Node:
		return &typed, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(tree); err != nil {
		return nil, fmt.Errorf("encode template tree: %w", err)
	}
	return node, nil
}

func marshalNode(node *yaml.Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("encode template yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode template yaml: %w", err)
	}
	return buf.String(), nil
}
