// Package htmlpreview renders a widget-use tree into a standalone HTML
// document for inspection. It previews structure and attributes; it is not
// a layout engine.
package htmlpreview

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-widgetgen/pkg/attrvalue"
	"github.com/goliatone/go-widgetgen/pkg/model"
	"github.com/goliatone/go-widgetgen/pkg/render"
	rendertemplate "github.com/goliatone/go-widgetgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-widgetgen/pkg/render/template/gotemplate"
)

// RendererName is the registry name of this renderer.
const RendererName = "htmlpreview"

const (
	pageTemplate = "templates/page"
	nodeTemplate = "templates/node"

	defaultTitle = "widget preview"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer is the HTML preview renderer.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer, defaulting to the embedded template bundle.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("htmlpreview: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return RendererName
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces a full HTML document previewing the tree.
func (r *Renderer) Render(_ context.Context, use model.WidgetUse, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("htmlpreview: template renderer is nil")
	}

	tree, err := r.renderNode(use, options)
	if err != nil {
		return nil, err
	}

	title := options.Title
	if title == "" {
		title = defaultTitle
	}

	page := map[string]any{
		"title": title,
		"tree":  tree,
	}
	if options.Theme != nil {
		page["theme_name"] = options.Theme.Theme
		page["theme_variant"] = options.Theme.Variant
		page["css_vars_style"] = cssVarsStyle(options.Theme.CSSVars)
	}

	out, err := r.templates.Render(pageTemplate, page)
	if err != nil {
		return nil, fmt.Errorf("htmlpreview: render page: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) renderNode(use model.WidgetUse, options render.Options) (string, error) {
	var children strings.Builder
	for _, child := range use.Children {
		rendered, err := r.renderNode(child, options)
		if err != nil {
			return "", err
		}
		children.WriteString(rendered)
	}

	keys := make([]string, 0, len(use.Attrs))
	for key := range use.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attrs := make([]map[string]string, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, map[string]string{
			"key":   key,
			"value": sanitizeMarkup(attrDisplay(use.Attrs[key], options)),
		})
	}

	node := map[string]any{
		"name":     use.Name,
		"attrs":    attrs,
		"children": children.String(),
	}
	out, err := r.templates.Render(nodeTemplate, node)
	if err != nil {
		return "", fmt.Errorf("htmlpreview: render widget %q: %w", use.Name, err)
	}
	return out, nil
}

// attrDisplay renders an attribute for the preview. Variable references
// resolve against the supplied vars when possible and otherwise keep their
// $$ source form, so partial previews still show something meaningful.
func attrDisplay(value attrvalue.Value, options render.Options) string {
	if value.IsVarRef() {
		resolved, err := value.Resolve(options.LookupVar)
		if err != nil {
			return value.String()
		}
		value = resolved
	}
	s, err := value.AsString()
	if err != nil {
		return value.String()
	}
	return s
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var style strings.Builder
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		fmt.Fprintf(&style, "%s: %s; ", name, vars[key])
	}
	return strings.TrimSpace(style.String())
}
