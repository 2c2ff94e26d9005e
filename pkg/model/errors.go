package model

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-widgetgen/pkg/configvalue"
)

// ErrEmptyWidgetUse reports an empty hash where a single-entry widget-use
// hash was required.
var ErrEmptyWidgetUse = errors.New("model: tried to parse empty hash as widget use")

// NotAHashError reports a non-hash value at a position that requires a hash,
// such as the body of a widget definition.
type NotAHashError struct {
	Context string
	Value   configvalue.Value
}

func (e *NotAHashError) Error() string {
	return fmt.Sprintf("model: %s must be a hash, got %s: %s", e.Context, e.Value.Kind(), e.Value)
}

// MissingFieldError reports a required key absent from a definition hash.
type MissingFieldError struct {
	Definition string
	Field      string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("model: %s must be set in widget definition %q", e.Field, e.Definition)
}

// InvalidChildrenShapeError reports a hash in a position that only admits a
// children list or a primitive.
type InvalidChildrenShapeError struct {
	Value configvalue.Value
}

func (e *InvalidChildrenShapeError) Error() string {
	return fmt.Sprintf("model: children of a widget must be a list of widgets or a primitive value, got hash: %s", e.Value)
}

// MissingAttributeError reports an attribute lookup miss, naming both the
// key and the widget it was looked up on.
type MissingAttributeError struct {
	Widget string
	Key    string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("model: attribute %q missing from widget use of %q", e.Key, e.Widget)
}
