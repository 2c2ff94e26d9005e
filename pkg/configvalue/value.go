package configvalue

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the shapes a config value can take. The transformer
// dispatches on it exhaustively; there is no fallthrough shape.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindArray  Kind = "array"
	KindHash   Kind = "hash"
)

// Value is a node in the generic configuration tree produced by the config
// front-end: a primitive (string, number, bool), an ordered array, or an
// ordered hash. Values are immutable once constructed.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	arr  []Value
	hash *Hash
}

// String builds a string primitive.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number builds a numeric primitive.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Bool builds a boolean primitive.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Array builds an array value from the supplied elements, preserving order.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), elems...)}
}

// HashOf builds a hash value from the supplied pairs, preserving insertion
// order. Duplicate keys follow last-write-wins semantics.
func HashOf(pairs ...Pair) Value {
	hash := NewHash()
	for _, pair := range pairs {
		hash.Set(pair.Key, pair.Value)
	}
	return Value{kind: KindHash, hash: hash}
}

// FromHash wraps an existing hash as a value.
func FromHash(hash *Hash) Value {
	if hash == nil {
		hash = NewHash()
	}
	return Value{kind: KindHash, hash: hash}
}

// Kind reports the shape of the value. The zero Value reports KindString.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindString
	}
	return v.kind
}

// IsPrimitive reports whether the value is a string, number, or bool.
func (v Value) IsPrimitive() bool {
	switch v.Kind() {
	case KindString, KindNumber, KindBool:
		return true
	}
	return false
}

// AsString returns the string payload; ok is false for non-string values.
func (v Value) AsString() (string, bool) {
	return v.str, v.Kind() == KindString
}

// AsNumber returns the numeric payload; ok is false for non-number values.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.Kind() == KindNumber
}

// AsBool returns the boolean payload; ok is false for non-bool values.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.Kind() == KindBool
}

// AsArray returns the element sequence; ok is false for non-array values.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind() != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsHash returns the ordered hash; ok is false for non-hash values.
func (v Value) AsHash() (*Hash, bool) {
	if v.Kind() != KindHash {
		return nil, false
	}
	return v.hash, true
}

// AsInt returns the value as an integer. Numbers must be integral; strings
// are parsed. Any other shape, or a fractional number, reports ok=false.
func (v Value) AsInt() (int, bool) {
	switch v.Kind() {
	case KindNumber:
		n := int(v.num)
		if float64(n) != v.num {
			return 0, false
		}
		return n, true
	case KindString:
		n, err := strconv.Atoi(strings.TrimSpace(v.str))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Equal reports deep structural equality. Hashes compare by entry set and
// key order, matching the order-sensitive semantics of the source document.
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
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindHash:
		return v.hash.Equal(other.hash)
	}
	return false
}

// String renders a compact debug representation used in error diagnostics.
func (v Value) String() string {
	switch v.Kind() {
	case KindString:
		return strconv.Quote(v.str)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, elem := range v.arr {
			parts[i] = elem.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindHash:
		if v.hash == nil {
			return "{}"
		}
		parts := make([]string, 0, v.hash.Len())
		for _, key := range v.hash.Keys() {
			entry, _ := v.hash.Get(key)
			parts = append(parts, fmt.Sprintf("%s: %s", key, entry.String()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}

// Pair is a key/value entry used when constructing hashes literally.
type Pair struct {
	Key   string
	Value Value
}

// KV is shorthand for building a Pair.
func KV(key string, value Value) Pair {
	return Pair{Key: key, Value: value}
}

// Hash is an ordered string-keyed mapping. Iteration follows first-insertion
// order; setting an existing key overwrites its value in place
// (last-write-wins) without moving it.
type Hash struct {
	keys    []string
	entries map[string]Value
}

// NewHash creates an empty hash.
func NewHash() *Hash {
	return &Hash{entries: make(map[string]Value)}
}

// Set stores a key/value entry.
func (h *Hash) Set(key string, value Value) {
	if _, exists := h.entries[key]; !exists {
		h.keys = append(h.keys, key)
	}
	h.entries[key] = value
}

// Get returns the value stored under key.
func (h *Hash) Get(key string) (Value, bool) {
	if h == nil {
		return Value{}, false
	}
	value, ok := h.entries[key]
	return value, ok
}

// First returns the earliest-inserted entry. The widget-use format expects a
// single-entry hash at instantiation sites, so "first" is the dispatch pair.
func (h *Hash) First() (string, Value, bool) {
	if h == nil || len(h.keys) == 0 {
		return "", Value{}, false
	}
	key := h.keys[0]
	return key, h.entries[key], true
}

// Keys returns the keys in insertion order. The slice is a copy.
func (h *Hash) Keys() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.keys...)
}

// Len reports the number of entries.
func (h *Hash) Len() int {
	if h == nil {
		return 0
	}
	return len(h.keys)
}

// Equal reports entry-wise equality including key order.
func (h *Hash) Equal(other *Hash) bool {
	if h.Len() != other.Len() {
		return false
	}
	if h == nil || other == nil {
		return true
	}
	for i, key := range h.keys {
		if other.keys[i] != key {
			return false
		}
		if !h.entries[key].Equal(other.entries[key]) {
			return false
		}
	}
	return true
}
