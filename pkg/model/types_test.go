package model_test

import (
	"errors"
	"testing"

	"github.com/openyieldtables/go-yieldtables/pkg/model"
)

func validMeta() model.YieldTableMeta {
	step := 1.0
	ageStep := 10
	return model.YieldTableMeta{
		ID:               1,
		Title:            "Fichte Hochgebirge",
		CountryCodes:     []string{"AT", "DE"},
		Type:             "dgz_100",
		Source:           "Marschall",
		YieldClassStep:   &step,
		AgeStep:          &ageStep,
		TreeType:         model.TreeType{Value: "spruce"},
		AvailableColumns: []string{"id", "yield_class", "age"},
	}
}

func TestValidate_CompleteRecord(t *testing.T) {
	if err := validMeta().Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidate_MissingScalars(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*model.YieldTableMeta)
	}{
		{"id", func(m *model.YieldTableMeta) { m.ID = 0 }},
		{"title", func(m *model.YieldTableMeta) { m.Title = "" }},
		{"type", func(m *model.YieldTableMeta) { m.Type = "" }},
		{"source", func(m *model.YieldTableMeta) { m.Source = "" }},
		{"yield_class_step", func(m *model.YieldTableMeta) { m.YieldClassStep = nil }},
		{"age_step", func(m *model.YieldTableMeta) { m.AgeStep = nil }},
		{"tree_type", func(m *model.YieldTableMeta) { m.TreeType = model.TreeType{} }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			meta := validMeta()
			tc.mutate(&meta)

			err := meta.Validate()
			if err == nil {
				t.Fatalf("expected error for missing %s", tc.field)
			}
			var missing *model.MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingFieldError, got %T", err)
			}
			if missing.Field != tc.field {
				t.Fatalf("field = %q, want %q", missing.Field, tc.field)
			}
		})
	}
}

func TestValidate_EmptyListsAllowed(t *testing.T) {
	meta := validMeta()
	meta.CountryCodes = nil
	meta.AvailableColumns = nil

	if err := meta.Validate(); err != nil {
		t.Fatalf("empty sequences should not fail validation: %v", err)
	}
}
