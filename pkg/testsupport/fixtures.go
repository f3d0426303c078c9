// Package testsupport holds fixture and golden-file helpers shared by the
// package tests. Goldens regenerate when UPDATE_GOLDENS is set.
package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openyieldtables/go-yieldtables/pkg/model"
)

// MustLoadMeta loads a JSON fixture into a YieldTableMeta record.
func MustLoadMeta(t *testing.T, path string) model.YieldTableMeta {
	t.Helper()

	meta, err := LoadMeta(path)
	if err != nil {
		t.Fatalf("load meta fixture: %v", err)
	}
	return meta
}

// LoadMeta reads a JSON fixture into a YieldTableMeta, returning an error
// for callers managing setup outside of *testing.T.
func LoadMeta(path string) (model.YieldTableMeta, error) {
	if path == "" {
		return model.YieldTableMeta{}, errors.New("testsupport: meta fixture path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.YieldTableMeta{}, fmt.Errorf("testsupport: read meta fixture: %w", err)
	}
	var out model.YieldTableMeta
	if err := json.Unmarshal(data, &out); err != nil {
		return model.YieldTableMeta{}, fmt.Errorf("testsupport: unmarshal meta fixture: %w", err)
	}
	return out, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
