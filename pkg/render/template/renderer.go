// Package template defines the engine seam HTML renderers rely on, keeping
// the concrete templating library out of their public surface.
package template

import "io"

// TemplateRenderer is the contract renderers program against. Render accepts
// either a template name or inline template content; RenderTemplate and
// RenderString are the explicit variants.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}
