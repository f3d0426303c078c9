// Package server exposes the yield table dataset over HTTP. Single-record
// endpoints content-negotiate between the JSON wire format and the HTML view;
// list and data endpoints speak JSON.
package server

import (
	"fmt"
	"net/http"

	"github.com/openyieldtables/go-yieldtables/pkg/apispec"
	"github.com/openyieldtables/go-yieldtables/pkg/dataset"
	"github.com/openyieldtables/go-yieldtables/pkg/render"
	"github.com/openyieldtables/go-yieldtables/pkg/renderers/htmlview"
	"github.com/openyieldtables/go-yieldtables/pkg/renderers/jsonview"
)

// Server routes yield table requests to the dataset store and the registered
// renderers. It implements http.Handler; lifecycle (listen, shutdown) belongs
// to the binary.
type Server struct {
	store    *dataset.Store
	registry *render.Registry
	doc      *apispec.Document
	options  render.RenderOptions
	mux      *http.ServeMux
}

// Option customizes the server during construction.
type Option func(*Server)

// WithRegistry replaces the default renderer registry. The registry must
// resolve the "html" and "json" renderers.
func WithRegistry(registry *render.Registry) Option {
	return func(s *Server) {
		s.registry = registry
	}
}

// WithDocument sets the OpenAPI document served at /openapi.json.
func WithDocument(doc *apispec.Document) Option {
	return func(s *Server) {
		s.doc = doc
	}
}

// WithRenderOptions sets the render options applied to every request, page
// chrome fragments and theme included.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(s *Server) {
		s.options = options
	}
}

// New wires a server over the supplied store. Without WithRegistry it
// registers the stock HTML and JSON renderers.
func New(store *dataset.Store, options ...Option) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("server: dataset store is required")
	}

	s := &Server{store: store}
	for _, option := range options {
		option(s)
	}

	if s.registry == nil {
		registry := render.NewRegistry()
		html, err := htmlview.New()
		if err != nil {
			return nil, fmt.Errorf("server: html renderer: %w", err)
		}
		registry.MustRegister(html)
		registry.MustRegister(jsonview.New())
		s.registry = registry
	}
	for _, name := range []string{"html", "json"} {
		if _, err := s.registry.Get(name); err != nil {
			return nil, fmt.Errorf("server: renderer %q is not registered", name)
		}
	}

	s.mux = http.NewServeMux()
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /v1/yield-tables-meta", s.handleMetaList)
	s.mux.HandleFunc("GET /v1/yield-tables-meta/{id}", s.handleMeta)
	s.mux.HandleFunc("GET /v1/yield-tables/{id}", s.handleTable)
	s.mux.HandleFunc("GET /v1/yield-tables/{id}/interpolated/{value}", s.handleInterpolated)
	s.mux.HandleFunc("GET /openapi.json", s.handleOpenAPI)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
