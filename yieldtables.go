// Package yieldtables re-exports the core types and wiring helpers so small
// callers can work with the module root instead of the individual packages.
package yieldtables

import (
	"context"
	"io/fs"

	"github.com/openyieldtables/go-yieldtables/pkg/dataset"
	"github.com/openyieldtables/go-yieldtables/pkg/model"
	"github.com/openyieldtables/go-yieldtables/pkg/render"
	"github.com/openyieldtables/go-yieldtables/pkg/renderers/htmlview"
	"github.com/openyieldtables/go-yieldtables/pkg/renderers/jsonview"
)

// YieldTableMeta is the metadata record of one yield table.
type YieldTableMeta = model.YieldTableMeta

// YieldTable combines metadata with the per-class growth data.
type YieldTable = model.YieldTable

// YieldClass groups the rows of one site quality class.
type YieldClass = model.YieldClass

// RenderOptions carry per-request render settings (page chrome, theme,
// detail link prefix).
type RenderOptions = render.RenderOptions

// NewStore loads the dataset. Without options the embedded CSV bundle is
// used.
func NewStore(options ...dataset.Option) (*dataset.Store, error) {
	return dataset.New(options...)
}

// NewRegistry returns a renderer registry with the stock HTML and JSON
// renderers registered.
func NewRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	html, err := htmlview.New()
	if err != nil {
		return nil, err
	}
	registry.MustRegister(html)
	registry.MustRegister(jsonview.New())
	return registry, nil
}

// RenderHTML renders one metadata record to the HTML view with the default
// templates. It is the simplest entry point for callers that just want the
// document.
func RenderHTML(ctx context.Context, meta YieldTableMeta, options RenderOptions) ([]byte, error) {
	renderer, err := htmlview.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, meta, options)
}

// EmbeddedTemplates exposes the built-in HTML view templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return htmlview.TemplatesFS()
}

// EmbeddedDataset exposes the bundled CSV dataset.
func EmbeddedDataset() fs.FS {
	return dataset.DataFS()
}
