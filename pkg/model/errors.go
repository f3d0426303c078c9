package model

import "fmt"

// MissingFieldError reports a required scalar field that is absent from a
// YieldTableMeta record. The view layer has no default-value policy, so the
// error surfaces to the caller instead of rendering a partial document.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("model: required field %q is missing", e.Field)
}

// Validate checks the required scalar fields in declaration order and returns
// a *MissingFieldError naming the first absent one. List-valued fields are
// allowed to be empty or nil; they render as empty sequences.
func (m YieldTableMeta) Validate() error {
	if m.ID == 0 {
		return &MissingFieldError{Field: "id"}
	}
	if m.Title == "" {
		return &MissingFieldError{Field: "title"}
	}
	if m.Type == "" {
		return &MissingFieldError{Field: "type"}
	}
	if m.Source == "" {
		return &MissingFieldError{Field: "source"}
	}
	if m.YieldClassStep == nil {
		return &MissingFieldError{Field: "yield_class_step"}
	}
	if m.AgeStep == nil {
		return &MissingFieldError{Field: "age_step"}
	}
	if m.TreeType.Value == "" {
		return &MissingFieldError{Field: "tree_type"}
	}
	return nil
}
