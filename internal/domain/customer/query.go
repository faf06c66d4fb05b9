package customer

import (
	"fmt"

	"customer-engine/internal/pkg/apperrors"
)

// Field names accepted by filters, sort keys and projections. Queries are
// validated against this set at the boundary, never interpreted as arbitrary
// property access.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldDocumentNum  = "documentNum"
	FieldDateBirthday = "dateBirthday"
	FieldEmail        = "email"
)

var knownFields = map[string]struct{}{
	FieldID:           {},
	FieldName:         {},
	FieldDocumentNum:  {},
	FieldDateBirthday: {},
	FieldEmail:        {},
}

func IsKnownField(field string) bool {
	_, ok := knownFields[field]
	return ok
}

// Filter is a set of field-equality predicates. An empty filter matches all
// records.
type Filter map[string]any

func (f Filter) Validate() error {
	for field := range f {
		if !IsKnownField(field) {
			return fmt.Errorf("%w: unknown filter field %q", apperrors.ErrInvalidArgument, field)
		}
	}
	return nil
}

// SortKey orders results by one field. Keys are applied lexicographically:
// the first key dominates, ties fall through to the next.
type SortKey struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// SearchOptions carries the optional sort and projection specs for Search.
// An empty projection populates every field.
type SearchOptions struct {
	Sort       []SortKey `json:"sort,omitempty"`
	Projection []string  `json:"projection,omitempty"`
}

func (o SearchOptions) Validate() error {
	for _, key := range o.Sort {
		if !IsKnownField(key.Field) {
			return fmt.Errorf("%w: unknown sort field %q", apperrors.ErrInvalidArgument, key.Field)
		}
	}
	for _, field := range o.Projection {
		if !IsKnownField(field) {
			return fmt.Errorf("%w: unknown projection field %q", apperrors.ErrInvalidArgument, field)
		}
	}
	return nil
}
