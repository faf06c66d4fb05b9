package dto

import (
	"fmt"
	"strings"
	"time"

	"customer-engine/internal/domain/customer"
)

// CreateCustomerRequest carries the raw request payload. Fields stay untyped
// so the domain factory can report type mismatches the same way it does for
// any other invalid value.
type CreateCustomerRequest struct {
	Name         any `json:"name"`
	DocumentNum  any `json:"documentNum"`
	DateBirthday any `json:"dateBirthday"`
	Email        any `json:"email"`
}

func (r CreateCustomerRequest) ToParams() customer.Params {
	return customer.Params{
		Name:         r.Name,
		DocumentNum:  r.DocumentNum,
		DateBirthday: r.DateBirthday,
		Email:        r.Email,
	}
}

type UpdateCustomerRequest struct {
	Name         *string `json:"name,omitempty"`
	DocumentNum  *string `json:"documentNum,omitempty"`
	DateBirthday *string `json:"dateBirthday,omitempty"`
	Email        *string `json:"email,omitempty"`
}

func (r UpdateCustomerRequest) ToUpdate() (customer.Update, error) {
	update := customer.Update{
		Name:        r.Name,
		DocumentNum: r.DocumentNum,
		Email:       r.Email,
	}
	if r.DateBirthday != nil {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*r.DateBirthday))
		if err != nil {
			return customer.Update{}, fmt.Errorf("invalid dateBirthday: use YYYY-MM-DD")
		}
		update.DateBirthday = &parsed
	}
	return update, nil
}

type BulkUpdateRequest struct {
	Filter map[string]any        `json:"filter"`
	Update UpdateCustomerRequest `json:"update"`
}

type SortKeyRequest struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

type SearchCustomersRequest struct {
	Filter     map[string]any   `json:"filter"`
	Sort       []SortKeyRequest `json:"sort"`
	Projection []string         `json:"projection"`
}

func (r SearchCustomersRequest) ToOptions() customer.SearchOptions {
	sort := make([]customer.SortKey, len(r.Sort))
	for i, key := range r.Sort {
		sort[i] = customer.SortKey{Field: key.Field, Descending: key.Descending}
	}
	return customer.SearchOptions{Sort: sort, Projection: r.Projection}
}

type BulkDeleteRequest struct {
	Filter map[string]any `json:"filter"`
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
}
