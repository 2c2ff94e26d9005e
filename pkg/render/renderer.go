// Package render defines the seam between widget trees and the renderers
// that turn them into bytes. Actual widget layout and event handling live
// outside this module; renderers here produce previews and serializations.
package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-widgetgen/pkg/attrvalue"
	"github.com/goliatone/go-widgetgen/pkg/model"
)

// Renderer converts a widget-use tree into a byte representation (HTML,
// text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, use model.WidgetUse, options Options) ([]byte, error)
}

// Options carries per-request rendering inputs.
type Options struct {
	// Title labels the output document.
	Title string
	// Theme supplies resolved go-theme tokens and CSS variables.
	Theme *theme.RendererConfig
	// Vars resolves $$name attribute references. Attributes referencing a
	// name absent from Vars render in their unresolved $$ form.
	Vars map[string]attrvalue.Value
}

// LookupVar adapts the Vars map to the attrvalue resolution contract.
func (o Options) LookupVar(name string) (attrvalue.Value, bool) {
	value, ok := o.Vars[name]
	return value, ok
}
