package render

import theme "github.com/goliatone/go-theme"

// DefaultDetailPathPrefix is the route prefix detail links are built from
// when the caller does not override it.
const DefaultDetailPathPrefix = "/v1/yield-tables/"

// RenderOptions carry per-request data renderers can use without touching
// the record itself. The page chrome fragments are owned by the surrounding
// composition system; renderers inject them as supplied (after sanitizing)
// instead of resolving includes themselves.
type RenderOptions struct {
	// Head is extra markup for the document head (meta tags, stylesheets).
	// Empty keeps the renderer's built-in default fragment.
	Head string
	// Header is the shared page header fragment rendered above the record.
	// Empty keeps the renderer's built-in default fragment.
	Header string
	// DetailPathPrefix overrides the route prefix used to build the record's
	// detail link. Empty means DefaultDetailPathPrefix.
	DetailPathPrefix string
	// Theme optionally carries resolved theme tokens and CSS variables that
	// HTML renderers emit alongside the document.
	Theme *theme.RendererConfig
}

// DetailPrefix resolves the effective detail path prefix.
func (o RenderOptions) DetailPrefix() string {
	if o.DetailPathPrefix != "" {
		return o.DetailPathPrefix
	}
	return DefaultDetailPathPrefix
}
