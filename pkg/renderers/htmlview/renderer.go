// Package htmlview renders one yield table metadata record as a complete
// HTML document: scalar fields in a single-row table, country codes and
// available columns as ordered lists, and a generated detail link.
package htmlview

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/openyieldtables/go-yieldtables/pkg/model"
	"github.com/openyieldtables/go-yieldtables/pkg/render"
	rendertemplate "github.com/openyieldtables/go-yieldtables/pkg/render/template"
	"github.com/openyieldtables/go-yieldtables/pkg/render/template/pongo"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
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

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("htmlview: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render validates the record and executes the view template. The record is
// never mutated; two renders of the same input produce identical bytes.
func (r *Renderer) Render(_ context.Context, meta model.YieldTableMeta, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("htmlview: template renderer is nil")
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate("templates/yield_table.tmpl", viewContext(meta, options))
	if err != nil {
		return nil, fmt.Errorf("htmlview: render template: %w", err)
	}
	return []byte(result), nil
}

// viewContext pre-formats every displayed value so the template only echoes
// strings. Number formatting in Go keeps the output byte-stable across
// template engine versions.
func viewContext(meta model.YieldTableMeta, options render.RenderOptions) map[string]any {
	head := defaultFragment("head.tmpl")
	if options.Head != "" {
		head = render.SanitizeFragment(options.Head)
	}
	header := defaultFragment("header.tmpl")
	if options.Header != "" {
		header = render.SanitizeFragment(options.Header)
	}

	ctx := map[string]any{
		"meta": map[string]any{
			"id":                strconv.Itoa(meta.ID),
			"title":             meta.Title,
			"country_codes":     meta.CountryCodes,
			"type":              meta.Type,
			"source":            meta.Source,
			"link":              meta.Link,
			"yield_class_step":  formatStep(meta.YieldClassStep),
			"age_step":          strconv.Itoa(*meta.AgeStep),
			"tree_type":         map[string]any{"value": meta.TreeType.Value},
			"available_columns": meta.AvailableColumns,
		},
		"detail_url": options.DetailPrefix() + url.PathEscape(strconv.Itoa(meta.ID)),
		"head":       head,
		"header":     header,
	}

	if cfg := options.Theme; cfg != nil {
		ctx["theme_name"] = cfg.Theme
		ctx["theme_variant"] = cfg.Variant
		ctx["theme_css"] = cssVarsStyle(cfg.CSSVars)
	}
	return ctx
}

func formatStep(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// cssVarsStyle renders resolved theme variables as a :root block, keys
// sorted for stable output.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
