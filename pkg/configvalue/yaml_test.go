package configvalue

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromYAML(t *testing.T) {
	input := `
widget_name:
  value: test
  count: 3
  enabled: true
  children:
    - hi
    - child: {}
`

	got, err := FromYAML([]byte(input))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}

	want := HashOf(KV("widget_name", HashOf(
		KV("value", String("test")),
		KV("count", Number(3)),
		KV("enabled", Bool(true)),
		KV("children", Array(
			String("hi"),
			HashOf(KV("child", HashOf())),
		)),
	)))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestFromYAML_KeyOrderPreserved(t *testing.T) {
	input := "zeta: 1\nalpha: 2\nmiddle: 3\n"

	got, err := FromYAML([]byte(input))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	hash, ok := got.AsHash()
	if !ok {
		t.Fatalf("want hash, got %s", got)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "middle"}, hash.Keys()); diff != "" {
		t.Fatalf("document key order lost (-want +got):\n%s", diff)
	}
}

func TestFromYAML_JSONDocument(t *testing.T) {
	input := `{"w": {"children": ["hi"]}}`

	got, err := FromYAML([]byte(input))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	want := HashOf(KV("w", HashOf(
		KV("children", Array(String("hi"))),
	)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestFromYAML_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "empty document", input: "   \n"},
		{name: "invalid yaml", input: "a: [unclosed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromYAML([]byte(tc.input)); err == nil {
				t.Fatal("want error, got nil")
			}
		})
	}
}

func TestFromYAML_NullBecomesEmptyString(t *testing.T) {
	got, err := FromYAML([]byte("key:\n"))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	hash, _ := got.AsHash()
	value, ok := hash.Get("key")
	if !ok {
		t.Fatal("key missing")
	}
	if s, ok := value.AsString(); !ok || s != "" {
		t.Fatalf("null scalar: want empty string, got %s", value)
	}
}

func TestFromYAML_Anchors(t *testing.T) {
	input := strings.TrimSpace(`
base: &base
  color: red
derived: *base
`)
	got, err := FromYAML([]byte(input))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	hash, _ := got.AsHash()
	base, _ := hash.Get("base")
	derived, ok := hash.Get("derived")
	if !ok {
		t.Fatal("derived missing")
	}
	if !derived.Equal(base) {
		t.Fatalf("alias did not expand: base=%s derived=%s", base, derived)
	}
}
