package customer_test

import (
	"encoding/json"
	"testing"

	"customer-engine/internal/domain/customer"
	"customer-engine/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, customer.Filter{}.Validate())
	assert.NoError(t, customer.Filter{customer.FieldEmail: "a@b.c", customer.FieldName: "A"}.Validate())

	err := customer.Filter{"password": "nope"}.Validate()
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestSearchOptionsValidate(t *testing.T) {
	valid := customer.SearchOptions{
		Sort:       []customer.SortKey{{Field: customer.FieldName}, {Field: customer.FieldEmail, Descending: true}},
		Projection: []string{customer.FieldID, customer.FieldName},
	}
	assert.NoError(t, valid.Validate())

	badSort := customer.SearchOptions{Sort: []customer.SortKey{{Field: "nope"}}}
	assert.ErrorIs(t, badSort.Validate(), apperrors.ErrInvalidArgument)

	badProjection := customer.SearchOptions{Projection: []string{"nope"}}
	assert.ErrorIs(t, badProjection.Validate(), apperrors.ErrInvalidArgument)
}

func TestOperationResultSerialization(t *testing.T) {
	t.Run("Success carries data and null error", func(t *testing.T) {
		body, err := json.Marshal(customer.Succeed(int64(3)))
		assert.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":3,"error":null}`, string(body))
	})

	t.Run("Failure carries error and null data", func(t *testing.T) {
		body, err := json.Marshal(customer.Fail("Customer not found"))
		assert.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"data":null,"error":"Customer not found"}`, string(body))
	})
}
