package customer_test

import (
	"context"
	"errors"
	"testing"

	"customer-engine/internal/domain/customer"
	"customer-engine/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func setupGetTest() (*customer.MockRepository, *customer.GetCustomerUseCase) {
	mockRepo := new(customer.MockRepository)
	uc := customer.NewGetCustomerUseCase(mockRepo, discardLogger())
	return mockRepo, uc
}

func TestGetCustomerUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRepo, uc := setupGetTest()
		existing := storedCustomer()

		mockRepo.On("FindByID", ctx, existing.ID).Return(existing, nil).Once()

		result := uc.Execute(ctx, existing.ID)

		assert.True(t, result.Success)
		assert.Equal(t, existing, result.Data)
	})

	t.Run("Absent", func(t *testing.T) {
		mockRepo, uc := setupGetTest()

		mockRepo.On("FindByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

		result := uc.Execute(ctx, "missing")

		assert.False(t, result.Success)
		assert.Equal(t, "Customer not found", *result.Error)
	})

	t.Run("Storage failure wrapped with fetch prefix", func(t *testing.T) {
		mockRepo, uc := setupGetTest()

		mockRepo.On("FindByID", ctx, "any").Return(nil, errors.New("timeout")).Once()

		result := uc.Execute(ctx, "any")

		assert.False(t, result.Success)
		assert.Contains(t, *result.Error, "Error fetching customer: timeout")
	})
}

func TestGetCustomerUseCase_FindByField(t *testing.T) {
	ctx := context.Background()

	t.Run("Absent names field and value", func(t *testing.T) {
		mockRepo, uc := setupGetTest()

		mockRepo.On("FindByField", ctx, customer.FieldEmail, "nobody@example.com").
			Return(nil, apperrors.ErrNotFound).Once()

		result := uc.FindByField(ctx, customer.FieldEmail, "nobody@example.com")

		assert.False(t, result.Success)
		assert.Equal(t, "Customer not found with email: nobody@example.com", *result.Error)
	})

	t.Run("Storage failure wrapped", func(t *testing.T) {
		mockRepo, uc := setupGetTest()

		mockRepo.On("FindByField", ctx, customer.FieldEmail, "x").
			Return(nil, errors.New("timeout")).Once()

		result := uc.FindByField(ctx, customer.FieldEmail, "x")

		assert.False(t, result.Success)
		assert.Contains(t, *result.Error, "Error fetching customer by field: timeout")
	})
}

func TestGetCustomerUseCase_FindAll(t *testing.T) {
	ctx := context.Background()
	mockRepo, uc := setupGetTest()
	customers := []*customer.Customer{storedCustomer()}
	filter := customer.Filter{customer.FieldName: "Jane Roe"}

	mockRepo.On("FindAll", ctx, filter).Return(customers, nil).Once()

	result := uc.FindAll(ctx, filter)

	assert.True(t, result.Success)
	assert.Equal(t, customers, result.Data)
}

func TestGetCustomerUseCase_Count(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, uc := setupGetTest()

		mockRepo.On("Count", ctx, customer.Filter{}).Return(int64(7), nil).Once()

		result := uc.Count(ctx, customer.Filter{})

		assert.True(t, result.Success)
		assert.Equal(t, int64(7), result.Data)
	})

	t.Run("Storage failure wrapped with counting prefix", func(t *testing.T) {
		mockRepo, uc := setupGetTest()

		mockRepo.On("Count", ctx, customer.Filter{}).Return(int64(0), errors.New("timeout")).Once()

		result := uc.Count(ctx, customer.Filter{})

		assert.False(t, result.Success)
		assert.Contains(t, *result.Error, "Error counting customers: timeout")
	})
}

func TestGetCustomerUseCase_ExistsByID(t *testing.T) {
	ctx := context.Background()
	mockRepo, uc := setupGetTest()

	mockRepo.On("ExistsByID", ctx, "some-id").Return(true, nil).Once()

	result := uc.ExistsByID(ctx, "some-id")

	assert.True(t, result.Success)
	assert.Equal(t, true, result.Data)
}

func TestGetCustomerUseCase_Search(t *testing.T) {
	ctx := context.Background()
	mockRepo, uc := setupGetTest()
	customers := []*customer.Customer{storedCustomer()}
	opts := customer.SearchOptions{
		Sort:       []customer.SortKey{{Field: customer.FieldName}},
		Projection: []string{customer.FieldID, customer.FieldName},
	}

	mockRepo.On("Search", ctx, customer.Filter{}, opts).Return(customers, nil).Once()

	result := uc.Search(ctx, customer.Filter{}, opts)

	assert.True(t, result.Success)
	assert.Equal(t, customers, result.Data)
}
