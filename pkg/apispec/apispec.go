// Package apispec embeds the OpenAPI description of the HTTP surface and
// validates it with kin-openapi before the server advertises it.
package apispec

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed openapi.yaml
var rawSpec []byte

// Document is a validated OpenAPI description ready to serve.
type Document struct {
	raw  []byte
	json []byte
}

// Load parses and validates the embedded document. The server calls this at
// startup so a broken description fails the process instead of surfacing as
// a bad /openapi.json response later.
func Load(ctx context.Context) (*Document, error) {
	return LoadFrom(ctx, rawSpec)
}

// LoadFrom parses and validates an OpenAPI document supplied by the caller.
func LoadFrom(ctx context.Context, raw []byte) (*Document, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("apispec: document payload is empty")
	}

	spec, err := parse(ctx, raw)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("apispec: marshal document: %w", err)
	}

	return &Document{raw: raw, json: payload}, nil
}

// Raw returns the document exactly as embedded.
func (d *Document) Raw() []byte {
	out := make([]byte, len(d.raw))
	copy(out, d.raw)
	return out
}

// JSON returns the validated document serialized as JSON, the payload served
// at /openapi.json.
func (d *Document) JSON() []byte {
	out := make([]byte, len(d.json))
	copy(out, d.json)
	return out
}
