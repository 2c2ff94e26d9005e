package widgets

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-widgetgen/pkg/attrvalue"
	"github.com/goliatone/go-widgetgen/pkg/model"
)

func definitionOf(name string, structure model.WidgetUse) model.WidgetDefinition {
	return model.WidgetDefinition{Name: name, Structure: structure}
}

func TestRegister(t *testing.T) {
	reg := NewRegistry()
	def := definitionOf("statusbar", model.NewWidgetUse(WidgetLayout, nil))

	if err := reg.Register(def); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(def); err == nil {
		t.Fatal("duplicate registration must fail")
	}
	if err := reg.Register(definitionOf(WidgetLabel, model.WidgetUse{})); err == nil {
		t.Fatal("shadowing a builtin must fail")
	}
	if err := reg.Register(model.WidgetDefinition{}); err == nil {
		t.Fatal("empty name must fail")
	}
}

func TestResolve(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(definitionOf("statusbar", model.NewWidgetUse(WidgetLayout, nil)))

	if !reg.Resolve(WidgetSlider) {
		t.Fatal("builtin must resolve")
	}
	if !reg.Resolve("statusbar") {
		t.Fatal("registered definition must resolve")
	}
	if reg.Resolve("nope") {
		t.Fatal("unknown name must not resolve")
	}
	if !reg.IsBuiltin(WidgetLabel) || reg.IsBuiltin("statusbar") {
		t.Fatal("IsBuiltin must distinguish builtins from definitions")
	}
}

func TestValidate(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(definitionOf("statusbar", model.NewWidgetUse(WidgetLayout, []model.WidgetUse{
		model.SimpleText(attrvalue.String("hi")),
	})))

	tree := model.NewWidgetUse(WidgetLayout, []model.WidgetUse{
		model.NewWidgetUse("statusbar", nil),
		model.NewWidgetUse(WidgetButton, nil),
	})
	if err := reg.Validate(tree); err != nil {
		t.Fatalf("validate: %v", err)
	}

	bad := model.NewWidgetUse(WidgetLayout, []model.WidgetUse{
		model.NewWidgetUse("missing", nil),
	})
	err := reg.Validate(bad)
	var unknown *UnknownWidgetError
	if !errors.As(err, &unknown) || unknown.Name != "missing" {
		t.Fatalf("want UnknownWidgetError for %q, got %v", "missing", err)
	}
	// The diagnostic names what the registry does know.
	if !strings.Contains(err.Error(), "statusbar") {
		t.Fatalf("diagnostic must list known names, got %v", err)
	}
}

func TestNames(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(definitionOf("statusbar", model.NewWidgetUse(WidgetLayout, nil)))

	names := reg.Names()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names must be sorted, got %v", names)
	}
	want := []string{WidgetButton, WidgetImage, WidgetLabel, WidgetLayout, WidgetSlider, "statusbar", WidgetText}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_Cycle(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(definitionOf("a", model.NewWidgetUse("b", nil)))
	reg.MustRegister(definitionOf("b", model.NewWidgetUse("a", nil)))

	err := reg.Validate(model.NewWidgetUse("a", nil))
	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("want CycleError, got %v", err)
	}
}

func TestValidate_SelfReference(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(definitionOf("loop", model.NewWidgetUse("loop", nil)))

	err := reg.Validate(model.NewWidgetUse("loop", nil))
	var cycle *CycleError
	if !errors.As(err, &cycle) || cycle.Name != "loop" {
		t.Fatalf("want CycleError for %q, got %v", "loop", err)
	}
}

// TestValidate_DiamondIsFine ensures two sibling references to the same
// definition are not mistaken for a cycle.
func TestValidate_DiamondIsFine(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(definitionOf("leaf", model.NewWidgetUse(WidgetLabel, nil)))
	reg.MustRegister(definitionOf("pane", model.NewWidgetUse("leaf", nil)))

	tree := model.NewWidgetUse(WidgetLayout, []model.WidgetUse{
		model.NewWidgetUse("pane", nil),
		model.NewWidgetUse("pane", nil),
		model.NewWidgetUse("leaf", nil),
	})
	if err := reg.Validate(tree); err != nil {
		t.Fatalf("validate diamond: %v", err)
	}
}
