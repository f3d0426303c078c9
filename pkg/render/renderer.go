package render

import (
	"context"

	"github.com/openyieldtables/go-yieldtables/pkg/model"
)

// Renderer converts a YieldTableMeta record into a byte representation
// (HTML, JSON, etc.). Rendering is a pure single-pass transformation: the
// same record and options always produce the same output, and the record is
// never mutated.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, meta model.YieldTableMeta, options RenderOptions) ([]byte, error)
}
