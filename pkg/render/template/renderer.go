// Package template declares the template-engine seam renderers rely on. It
// mirrors the github.com/goliatone/go-template engine contract so either
// that engine or the pongo2-backed adapter below it can satisfy it.
package template

import "io"

// TemplateRenderer renders named or inline templates against a data
// context. Implementations may stream to the optional writers in addition
// to returning the rendered string.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
