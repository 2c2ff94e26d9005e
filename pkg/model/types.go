// Package model defines the typed widget tree and the transformer that
// builds it from a generic config value tree.
package model

import (
	"github.com/goliatone/go-widgetgen/pkg/attrvalue"
)

// Well-known keys and names of the widget config format.
const (
	// LeafWidgetName is the widget a bare primitive is promoted into.
	LeafWidgetName = "label"
	// TextAttr is the single attribute carried by a promoted primitive.
	TextAttr = "text"

	childrenKey  = "children"
	structureKey = "structure"
	sizeXKey     = "size_x"
	sizeYKey     = "size_y"
)

// WidgetUse is an instantiated node in the widget tree. Name refers either
// to a builtin widget kind or to a WidgetDefinition resolved by the
// registry. Children order matches the source document; Attrs keys are
// lower-cased and unique.
type WidgetUse struct {
	Name     string
	Children []WidgetUse
	Attrs    map[string]attrvalue.Value
}

// NewWidgetUse builds a widget use with the given children and no
// attributes.
func NewWidgetUse(name string, children []WidgetUse) WidgetUse {
	return WidgetUse{
		Name:     name,
		Children: children,
		Attrs:    map[string]attrvalue.Value{},
	}
}

// SimpleText is the implicit promotion of a primitive config value: a label
// widget with a single text attribute and no children. It is the only
// implicit conversion in the format.
func SimpleText(text attrvalue.Value) WidgetUse {
	return WidgetUse{
		Name:     LeafWidgetName,
		Children: []WidgetUse{},
		Attrs:    map[string]attrvalue.Value{TextAttr: text},
	}
}

// Attr returns the attribute stored under key. The error names both the key
// and the widget so diagnostics can point at the offending use site.
func (w WidgetUse) Attr(key string) (attrvalue.Value, error) {
	value, ok := w.Attrs[key]
	if !ok {
		return attrvalue.Value{}, &MissingAttributeError{Widget: w.Name, Key: key}
	}
	return value, nil
}

// Size is a fixed pixel size attached to a widget definition.
type Size struct {
	Width  int
	Height int
}

// WidgetDefinition is a named, reusable widget template wrapping the root of
// its instantiation tree. Size is present only when both size_x and size_y
// were supplied and parsed as integers.
type WidgetDefinition struct {
	Name      string
	Structure WidgetUse
	Size      *Size
}
