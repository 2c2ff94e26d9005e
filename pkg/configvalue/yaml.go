package configvalue

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a YAML (or JSON, which YAML subsumes) document into a
// Value tree. Mapping key order is preserved, which is why this walks
// yaml.Node directly instead of unmarshalling into map[string]any.
func FromYAML(data []byte) (Value, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Value{}, fmt.Errorf("configvalue: document is empty")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, fmt.Errorf("configvalue: parse document: %w", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Value{}, fmt.Errorf("configvalue: document has no content")
		}
		node = node.Content[0]
	}
	return fromYAMLNode(node)
}

func fromYAMLNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias)
	case yaml.MappingNode:
		hash := NewHash()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("configvalue: line %d: mapping key must be a scalar", keyNode.Line)
			}
			entry, err := fromYAMLNode(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			hash.Set(keyNode.Value, entry)
		}
		return FromHash(hash), nil
	case yaml.SequenceNode:
		elems := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			elem, err := fromYAMLNode(child)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, elem)
		}
		return Array(elems...), nil
	case yaml.ScalarNode:
		return fromYAMLScalar(node)
	}
	return Value{}, fmt.Errorf("configvalue: line %d: unsupported node kind %d", node.Line, node.Kind)
}

func fromYAMLScalar(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return Value{}, fmt.Errorf("configvalue: line %d: invalid bool %q", node.Line, node.Value)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return Value{}, fmt.Errorf("configvalue: line %d: invalid number %q", node.Line, node.Value)
		}
		return Number(n), nil
	case "!!null":
		// The config format has no null; treat it as the empty string so
		// bare keys still round-trip as primitives.
		return String(""), nil
	default:
		return String(node.Value), nil
	}
}
