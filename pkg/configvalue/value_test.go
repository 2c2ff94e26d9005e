package configvalue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHashOrder(t *testing.T) {
	hash := NewHash()
	hash.Set("b", String("1"))
	hash.Set("a", String("2"))
	hash.Set("c", String("3"))

	want := []string{"b", "a", "c"}
	if diff := cmp.Diff(want, hash.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}

	key, value, ok := hash.First()
	if !ok || key != "b" {
		t.Fatalf("First: want (b, ..), got (%q, ok=%v)", key, ok)
	}
	if s, _ := value.AsString(); s != "1" {
		t.Fatalf("First value: want %q, got %s", "1", value)
	}
}

func TestHashLastWriteWins(t *testing.T) {
	hash := NewHash()
	hash.Set("a", String("old"))
	hash.Set("b", String("keep"))
	hash.Set("a", String("new"))

	if hash.Len() != 2 {
		t.Fatalf("want 2 entries, got %d", hash.Len())
	}
	got, _ := hash.Get("a")
	if s, _ := got.AsString(); s != "new" {
		t.Fatalf("overwrite: want %q, got %s", "new", got)
	}
	// Overwriting must not move the key.
	if diff := cmp.Diff([]string{"a", "b"}, hash.Keys()); diff != "" {
		t.Fatalf("key order after overwrite (-want +got):\n%s", diff)
	}
}

func TestAsInt(t *testing.T) {
	cases := []struct {
		name  string
		input Value
		want  int
		ok    bool
	}{
		{name: "integral number", input: Number(42), want: 42, ok: true},
		{name: "fractional number", input: Number(42.5), ok: false},
		{name: "numeric string", input: String(" 42 "), want: 42, ok: true},
		{name: "word string", input: String("wide"), ok: false},
		{name: "bool", input: Bool(true), ok: false},
		{name: "array", input: Array(Number(1)), ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.input.AsInt()
			if ok != tc.ok || got != tc.want {
				t.Fatalf("AsInt(%s): want (%d, %v), got (%d, %v)", tc.input, tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	left := HashOf(
		KV("a", Array(String("x"), Number(1))),
		KV("b", Bool(true)),
	)
	right := HashOf(
		KV("a", Array(String("x"), Number(1))),
		KV("b", Bool(true)),
	)
	if !left.Equal(right) {
		t.Fatalf("identical trees compare unequal: %s vs %s", left, right)
	}

	reordered := HashOf(
		KV("b", Bool(true)),
		KV("a", Array(String("x"), Number(1))),
	)
	if left.Equal(reordered) {
		t.Fatalf("key order must matter: %s vs %s", left, reordered)
	}

	if String("1").Equal(Number(1)) {
		t.Fatal("string and number must not compare equal")
	}
}

func TestZeroValueIsEmptyString(t *testing.T) {
	var zero Value
	if zero.Kind() != KindString {
		t.Fatalf("zero value kind: want %s, got %s", KindString, zero.Kind())
	}
	if s, ok := zero.AsString(); !ok || s != "" {
		t.Fatalf("zero value payload: want empty string, got %q (ok=%v)", s, ok)
	}
}
