package htmlpreview

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-widgetgen/pkg/attrvalue"
	"github.com/goliatone/go-widgetgen/pkg/model"
	"github.com/goliatone/go-widgetgen/pkg/render"
)

func sampleTree() model.WidgetUse {
	return model.WidgetUse{
		Name: "layout",
		Attrs: map[string]attrvalue.Value{
			"orientation": attrvalue.String("h"),
		},
		Children: []model.WidgetUse{
			model.SimpleText(attrvalue.String("hello <b>world</b> <script>alert(1)</script>")),
			{
				Name: "slider",
				Attrs: map[string]attrvalue.Value{
					"value": attrvalue.VarRef("volume"),
				},
				Children: []model.WidgetUse{},
			},
		},
	}
}

func TestRender(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("construct renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleTree(), render.Options{Title: "bar preview"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<title>bar preview</title>",
		`class="widget widget-layout"`,
		`class="widget widget-label"`,
		`class="widget widget-slider"`,
		"hello <b>world</b>",
		"orientation",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "script") {
		t.Fatalf("markup was not sanitized:\n%s", html)
	}
	// Unresolved references keep their source form.
	if !strings.Contains(html, "$$volume") {
		t.Fatalf("unresolved var ref missing from output:\n%s", html)
	}
}

func TestRender_ResolvesVars(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("construct renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleTree(), render.Options{
		Vars: map[string]attrvalue.Value{"volume": attrvalue.Number(80)},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "80") || strings.Contains(html, "$$volume") {
		t.Fatalf("var ref was not resolved:\n%s", html)
	}
}

func TestRender_ThemeContext(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("construct renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleTree(), render.Options{
		Theme: &theme.RendererConfig{
			Theme:   "nord",
			Variant: "dark",
			CSSVars: map[string]string{"preview-border": "#888"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`data-theme="nord"`,
		`data-theme-variant="dark"`,
		"--preview-border: #888;",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRendererMetadata(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("construct renderer: %v", err)
	}
	if renderer.Name() != "htmlpreview" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := cssVarsStyle(map[string]string{
		"--accent": "red",
		"spacing":  "4px",
	})
	want := "--accent: red; --spacing: 4px;"
	if got != want {
		t.Fatalf("cssVarsStyle: want %q, got %q", want, got)
	}
	if cssVarsStyle(nil) != "" {
		t.Fatal("nil vars must produce empty style")
	}
}
