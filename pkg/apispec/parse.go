package apispec

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

func parse(ctx context.Context, raw []byte) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("apispec: load document: %w", err)
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, fmt.Errorf("apispec: document does not contain any paths")
	}

	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("apispec: validate: %w", err)
	}

	return spec, nil
}
