// Where: internal/cfnyaml/transform.go
// What: Node-tree rewrites between short-form and long-form intrinsics.
// Why: Normalize every intrinsic call site without mutating caller input.
package cfnyaml

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// expandShortForms returns a copy of the tree with every short-form tag
// (!Ref, !GetAtt, ...) rewritten as its long-form single-key mapping.
// The input tree is never modified.
func expandShortForms(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if long, ok := tagToLong[n.Tag]; ok {
		return longFormNode(long, n)
	}
	out := cloneShallow(n)
	out.Content = expandChildren(n.Content)
	return out
}

func expandChildren(nodes []*yaml.Node) []*yaml.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*yaml.Node, len(nodes))
	for i, child := range nodes {
		out[i] = expandShortForms(child)
	}
	return out
}

func longFormNode(key string, tagged *yaml.Node) *yaml.Node {
	value := cloneShallow(tagged)
	value.Content = expandChildren(tagged.Content)
	switch tagged.Kind {
	case yaml.ScalarNode:
		value.Tag = "!!str"
		// !GetAtt Resource.Attribute expands to the two-element form.
		if key == "Fn::GetAtt" {
			if parts := strings.SplitN(tagged.Value, ".", 2); len(parts) == 2 {
				return singlePairMapping(key, stringSequence(parts))
			}
		}
	case yaml.SequenceNode:
		value.Tag = "!!seq"
	case yaml.MappingNode:
		value.Tag = "!!map"
	}
	return singlePairMapping(key, value)
}

// contractIntrinsics returns a copy of the tree with every single-key
// intrinsic mapping that has a short-form rule rewritten as a tagged node.
// Intrinsics without a rule, and malformed shapes, keep their key/value
// rendering.
func contractIntrinsics(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.MappingNode && len(n.Content) == 2 {
		key, value := n.Content[0], n.Content[1]
		if key.Kind == yaml.ScalarNode && IsIntrinsic(key.Value) {
			if short, ok := shortFormNode(key.Value, value); ok {
				return short
			}
		}
	}
	out := cloneShallow(n)
	out.Content = contractChildren(n.Content)
	return out
}

func contractChildren(nodes []*yaml.Node) []*yaml.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*yaml.Node, len(nodes))
	for i, child := range nodes {
		out[i] = contractIntrinsics(child)
	}
	return out
}

func shortFormNode(name string, value *yaml.Node) (*yaml.Node, bool) {
	tag := longToTag[name]
	switch name {
	case "Ref", "Fn::Sub", "Fn::ImportValue", "Fn::GetAZs":
		if value.Kind == yaml.ScalarNode {
			return taggedScalar(tag, value), true
		}
	case "Fn::GetAtt":
		if value.Kind == yaml.ScalarNode {
			return taggedScalar(tag, value), true
		}
		if value.Kind == yaml.SequenceNode && allScalars(value.Content) {
			return &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   tag,
				Value: joinScalars(value.Content, "."),
			}, true
		}
	case "Fn::Join":
		// Only the exact [delimiter, [values...]] shape contracts.
		if value.Kind == yaml.SequenceNode && len(value.Content) == 2 &&
			value.Content[1].Kind == yaml.SequenceNode {
			out := cloneShallow(value)
			out.Tag = tag
			out.Style = yaml.FlowStyle
			out.Content = contractChildren(value.Content)
			return out, true
		}
	}
	return nil, false
}

func taggedScalar(tag string, value *yaml.Node) *yaml.Node {
	out := cloneShallow(value)
	out.Tag = tag
	out.Content = nil
	return out
}

func cloneShallow(n *yaml.Node) *yaml.Node {
	out := *n
	return &out
}

func singlePairMapping(key string, value *yaml.Node) *yaml.Node {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			value,
		},
	}
}

func stringSequence(parts []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, part := range parts {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: part,
		})
	}
	return seq
}

func allScalars(nodes []*yaml.Node) bool {
	for _, node := range nodes {
		if node.Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}

func joinScalars(nodes []*yaml.Node, sep string) string {
	values := make([]string, len(nodes))
	for i, node := range nodes {
		values[i] = node.Value
	}
	return strings.Join(values, sep)
}
