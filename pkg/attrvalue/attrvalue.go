// Package attrvalue holds the typed attribute values carried by widget
// trees. A value is either a concrete primitive (string, number, bool) or a
// reference to a variable ($$name) resolved later against runtime state.
package attrvalue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-widgetgen/pkg/configvalue"
)

// varRefPrefix marks a string primitive as a variable reference.
const varRefPrefix = "$$"

// Kind discriminates attribute value variants.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindVarRef Kind = "var-ref"
)

// Value is an immutable typed attribute value.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	ref  string
}

// String builds a concrete string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number builds a concrete numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Bool builds a concrete boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// VarRef builds a reference to the named variable.
func VarRef(name string) Value {
	return Value{kind: KindVarRef, ref: name}
}

// CoercionError reports a config value that cannot become an attribute
// value. Only primitive shapes coerce; hashes and arrays do not.
type CoercionError struct {
	Value configvalue.Value
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("attrvalue: cannot coerce %s into an attribute value: %s", e.Value.Kind(), e.Value)
}

// FromConfig coerces a primitive config value into an attribute value.
// Strings prefixed with $$ become variable references. Hash and array
// shapes fail with a *CoercionError.
func FromConfig(value configvalue.Value) (Value, error) {
	switch value.Kind() {
	case configvalue.KindString:
		s, _ := value.AsString()
		if name, ok := strings.CutPrefix(s, varRefPrefix); ok {
			return VarRef(name), nil
		}
		return String(s), nil
	case configvalue.KindNumber:
		n, _ := value.AsNumber()
		return Number(n), nil
	case configvalue.KindBool:
		b, _ := value.AsBool()
		return Bool(b), nil
	}
	return Value{}, &CoercionError{Value: value}
}

// Kind reports the variant. The zero Value reports KindString.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindString
	}
	return v.kind
}

// IsVarRef reports whether the value is an unresolved variable reference.
func (v Value) IsVarRef() bool {
	return v.Kind() == KindVarRef
}

// Var returns the referenced variable name for KindVarRef values.
func (v Value) Var() (string, bool) {
	return v.ref, v.Kind() == KindVarRef
}

// AsString renders the concrete payload as a string. Variable references
// fail; resolve them first.
func (v Value) AsString() (string, error) {
	switch v.Kind() {
	case KindString:
		return v.str, nil
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64), nil
	case KindBool:
		return strconv.FormatBool(v.b), nil
	}
	return "", fmt.Errorf("attrvalue: unresolved variable reference $$%s", v.ref)
}

// AsNumber returns the payload as a float64, parsing string payloads.
func (v Value) AsNumber() (float64, error) {
	switch v.Kind() {
	case KindNumber:
		return v.num, nil
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, fmt.Errorf("attrvalue: %q is not a number", v.str)
		}
		return n, nil
	case KindBool:
		return 0, fmt.Errorf("attrvalue: cannot read bool as number")
	}
	return 0, fmt.Errorf("attrvalue: unresolved variable reference $$%s", v.ref)
}

// AsBool returns the payload as a bool, parsing string payloads.
func (v Value) AsBool() (bool, error) {
	switch v.Kind() {
	case KindBool:
		return v.b, nil
	case KindString:
		b, err := strconv.ParseBool(strings.TrimSpace(v.str))
		if err != nil {
			return false, fmt.Errorf("attrvalue: %q is not a bool", v.str)
		}
		return b, nil
	case KindNumber:
		return false, fmt.Errorf("attrvalue: cannot read number as bool")
	}
	return false, fmt.Errorf("attrvalue: unresolved variable reference $$%s", v.ref)
}

// Resolve replaces a variable reference with the value produced by lookup.
// Concrete values pass through unchanged. A lookup that yields another
// reference is rejected rather than chased, so reference cycles cannot loop.
func (v Value) Resolve(lookup func(name string) (Value, bool)) (Value, error) {
	if !v.IsVarRef() {
		return v, nil
	}
	if lookup == nil {
		return Value{}, fmt.Errorf("attrvalue: no variable lookup for $$%s", v.ref)
	}
	resolved, ok := lookup(v.ref)
	if !ok {
		return Value{}, fmt.Errorf("attrvalue: unknown variable $$%s", v.ref)
	}
	if resolved.IsVarRef() {
		return Value{}, fmt.Errorf("attrvalue: variable $$%s resolves to another reference", v.ref)
	}
	return resolved, nil
}

// Equal reports structural equality; go-cmp picks this up for diffing.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindVarRef:
		return v.ref == other.ref
	}
	return false
}

// String renders a debug representation for diagnostics and test output.
func (v Value) String() string {
	switch v.Kind() {
	case KindString:
		return strconv.Quote(v.str)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return varRefPrefix + v.ref
}
