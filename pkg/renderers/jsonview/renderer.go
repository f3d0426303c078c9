// Package jsonview renders a yield table metadata record as its JSON wire
// representation, for clients that do not want the HTML view.
package jsonview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openyieldtables/go-yieldtables/pkg/model"
	"github.com/openyieldtables/go-yieldtables/pkg/render"
)

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the JSON renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json; charset=utf-8"
}

// Render validates the record and encodes it. Validation keeps the error
// contract identical across renderers: incomplete records fail the same way
// regardless of the requested representation.
func (r *Renderer) Render(_ context.Context, meta model.YieldTableMeta, _ render.RenderOptions) ([]byte, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("jsonview: marshal record: %w", err)
	}
	return payload, nil
}
