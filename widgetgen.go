// Package widgetgen transforms generic widget-config documents into typed
// widget trees: reusable widget definitions, window declarations, and the
// instantiation trees a renderer consumes.
package widgetgen

import (
	"context"

	"github.com/goliatone/go-widgetgen/pkg/attrvalue"
	"github.com/goliatone/go-widgetgen/pkg/config"
	"github.com/goliatone/go-widgetgen/pkg/configvalue"
	"github.com/goliatone/go-widgetgen/pkg/model"
	"github.com/goliatone/go-widgetgen/pkg/render"
	"github.com/goliatone/go-widgetgen/pkg/renderers/htmlpreview"
	"github.com/goliatone/go-widgetgen/pkg/widgets"
)

// ConfigValue is the generic parsed configuration tree.
type ConfigValue = configvalue.Value

// AttrValue is a typed attribute value coerced from a config primitive.
type AttrValue = attrvalue.Value

// WidgetUse is an instantiated node in the widget tree.
type WidgetUse = model.WidgetUse

// WidgetDefinition is a named, reusable widget template.
type WidgetDefinition = model.WidgetDefinition

// Config is a fully transformed widget-config document.
type Config = config.Config

// WindowDefinition declares a top-level window.
type WindowDefinition = config.WindowDefinition

// RenderOptions carries per-request rendering inputs.
type RenderOptions = render.Options

// LoadConfig parses and transforms a YAML widget-config document.
func LoadConfig(data []byte) (*Config, error) {
	return config.FromYAML(data)
}

// ParseWidgetUse turns a config value into a widget use.
func ParseWidgetUse(value ConfigValue) (WidgetUse, error) {
	return model.ParseWidgetUse(value)
}

// ParseDefinition builds a named widget definition from a config value.
func ParseDefinition(name string, value ConfigValue) (WidgetDefinition, error) {
	return model.ParseDefinition(name, value)
}

// NewRegistry constructs a widget registry seeded with the builtin kinds.
func NewRegistry() *widgets.Registry {
	return widgets.NewRegistry()
}

// NewRenderRegistry constructs a renderer registry seeded with the built-in
// renderers. Callers can register their own renderers alongside them.
func NewRenderRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	preview, err := htmlpreview.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(preview); err != nil {
		return nil, err
	}
	return registry, nil
}

// Render renders a widget tree with the named renderer, resolved from a
// registry seeded with the built-ins.
func Render(ctx context.Context, use WidgetUse, rendererName string, options RenderOptions) ([]byte, error) {
	registry, err := NewRenderRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, use, options)
}

// RenderPreview renders a widget tree into a standalone HTML preview using
// the built-in htmlpreview renderer.
func RenderPreview(ctx context.Context, use WidgetUse, options RenderOptions) ([]byte, error) {
	return Render(ctx, use, htmlpreview.RendererName, options)
}
