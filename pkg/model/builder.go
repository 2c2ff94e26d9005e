package model

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-widgetgen/pkg/attrvalue"
	"github.com/goliatone/go-widgetgen/pkg/configvalue"
)

// ParseWidgetUse turns a config value into a widget use, dispatching on
// shape:
//
//   - a hash is a widget instantiation: its first entry maps the widget name
//     to either an attribute hash (hash-style) or a direct children spec
//     (array/primitive-style);
//   - anything else is promoted into the implicit text label.
//
// The format expects a single entry at instantiation sites, so only the
// first pair of the hash is consulted.
func ParseWidgetUse(value configvalue.Value) (WidgetUse, error) {
	hash, ok := value.AsHash()
	if !ok {
		text, err := attrvalue.FromConfig(value)
		if err != nil {
			return WidgetUse{}, fmt.Errorf("model: promote primitive to text widget: %w", err)
		}
		return SimpleText(text), nil
	}

	name, inner, ok := hash.First()
	if !ok {
		return WidgetUse{}, ErrEmptyWidgetUse
	}

	if innerHash, ok := inner.AsHash(); ok {
		return fromHashStyle(name, innerHash)
	}

	children, err := parseChildren(inner)
	if err != nil {
		return WidgetUse{}, err
	}
	return NewWidgetUse(name, children), nil
}

// fromHashStyle builds a widget use from a hash-style instantiation, e.g.
// { layout: { orientation: "v", children: ["hi", "ho"] } }. The children
// entry is consumed first; every remaining entry becomes an attribute under
// its lower-cased key.
func fromHashStyle(name string, config *configvalue.Hash) (WidgetUse, error) {
	children := []WidgetUse{}
	if spec, ok := config.Get(childrenKey); ok {
		parsed, err := parseChildren(spec)
		if err != nil {
			return WidgetUse{}, err
		}
		children = parsed
	}

	attrs := make(map[string]attrvalue.Value)
	for _, key := range config.Keys() {
		if key == childrenKey {
			continue
		}
		raw, _ := config.Get(key)
		value, err := attrvalue.FromConfig(raw)
		if err != nil {
			// Deliberate compatibility behavior: an attribute whose value
			// does not coerce is dropped rather than failing the widget.
			// The same failure is fatal on the primitive-promotion paths.
			continue
		}
		attrs[strings.ToLower(key)] = value
	}

	return WidgetUse{Name: name, Children: children, Attrs: attrs}, nil
}

// parseChildren turns the value found in a children position into an
// ordered widget list. Arrays recurse per element left to right and fail
// fast on the first bad element; a primitive yields a single implicit text
// label; a hash is not a valid children spec.
func parseChildren(value configvalue.Value) ([]WidgetUse, error) {
	if _, ok := value.AsHash(); ok {
		return nil, &InvalidChildrenShapeError{Value: value}
	}

	if elems, ok := value.AsArray(); ok {
		children := make([]WidgetUse, 0, len(elems))
		for _, elem := range elems {
			child, err := ParseWidgetUse(elem)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return children, nil
	}

	text, err := attrvalue.FromConfig(value)
	if err != nil {
		return nil, fmt.Errorf("model: promote child primitive to text widget: %w", err)
	}
	return []WidgetUse{SimpleText(text)}, nil
}

// ParseDefinition builds a named widget definition from the config value
// found under its name. The hash must carry a structure entry; size_x and
// size_y are a best-effort pair, set only when both parse as integers and
// never a reason to fail the definition.
func ParseDefinition(name string, value configvalue.Value) (WidgetDefinition, error) {
	hash, ok := value.AsHash()
	if !ok {
		return WidgetDefinition{}, &NotAHashError{Context: fmt.Sprintf("widget definition %q", name), Value: value}
	}

	structure, ok := hash.Get(structureKey)
	if !ok {
		return WidgetDefinition{}, &MissingFieldError{Definition: name, Field: structureKey}
	}
	root, err := ParseWidgetUse(structure)
	if err != nil {
		return WidgetDefinition{}, fmt.Errorf("model: widget definition %q: %w", name, err)
	}

	return WidgetDefinition{
		Name:      name,
		Structure: root,
		Size:      sizeFrom(hash),
	}, nil
}

func sizeFrom(hash *configvalue.Hash) *Size {
	xValue, ok := hash.Get(sizeXKey)
	if !ok {
		return nil
	}
	yValue, ok := hash.Get(sizeYKey)
	if !ok {
		return nil
	}
	x, ok := xValue.AsInt()
	if !ok {
		return nil
	}
	y, ok := yValue.AsInt()
	if !ok {
		return nil
	}
	return &Size{Width: x, Height: y}
}
