package customer_test

import (
	"context"
	"testing"

	"customer-engine/internal/domain/customer"
	"customer-engine/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupDeleteTest() (*customer.MockRepository, *customer.DeleteCustomerUseCase) {
	mockRepo := new(customer.MockRepository)
	uc := customer.NewDeleteCustomerUseCase(mockRepo, nil, discardLogger())
	return mockRepo, uc
}

func TestDeleteCustomerUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Success returns the deleted record", func(t *testing.T) {
		mockRepo, uc := setupDeleteTest()
		existing := storedCustomer()

		mockRepo.On("FindByID", ctx, existing.ID).Return(existing, nil).Once()
		mockRepo.On("DeleteByID", ctx, existing.ID).Return(true, nil).Once()

		result := uc.Execute(ctx, existing.ID)

		assert.True(t, result.Success)
		assert.Equal(t, existing, result.Data)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown id never invokes the delete primitive", func(t *testing.T) {
		mockRepo, uc := setupDeleteTest()

		mockRepo.On("FindByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

		result := uc.Execute(ctx, "missing")

		assert.False(t, result.Success)
		assert.Equal(t, "Customer with id missing not found", *result.Error)
		mockRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("Record vanished between lookup and delete", func(t *testing.T) {
		mockRepo, uc := setupDeleteTest()
		existing := storedCustomer()

		mockRepo.On("FindByID", ctx, existing.ID).Return(existing, nil).Once()
		mockRepo.On("DeleteByID", ctx, existing.ID).Return(false, nil).Once()

		result := uc.Execute(ctx, existing.ID)

		assert.False(t, result.Success)
		assert.Equal(t, "Failed to delete customer with id existing-id", *result.Error)
	})
}

func TestDeleteCustomerUseCase_ExecuteByDocumentNum(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, uc := setupDeleteTest()
		existing := storedCustomer()

		mockRepo.On("FindByField", ctx, customer.FieldDocumentNum, existing.DocumentNum).
			Return(existing, nil).Once()
		mockRepo.On("DeleteByDocumentNum", ctx, existing.DocumentNum).Return(true, nil).Once()

		result := uc.ExecuteByDocumentNum(ctx, existing.DocumentNum)

		assert.True(t, result.Success)
		assert.Equal(t, existing, result.Data)
	})

	t.Run("Unknown document number uses its own label", func(t *testing.T) {
		mockRepo, uc := setupDeleteTest()

		mockRepo.On("FindByField", ctx, customer.FieldDocumentNum, "00000000000").
			Return(nil, apperrors.ErrNotFound).Once()

		result := uc.ExecuteByDocumentNum(ctx, "00000000000")

		assert.False(t, result.Success)
		assert.Equal(t, "Customer with document number 00000000000 not found", *result.Error)
		mockRepo.AssertNotCalled(t, "DeleteByDocumentNum", mock.Anything, mock.Anything)
	})
}

func TestDeleteCustomerUseCase_DeleteMany(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero matches succeeds with empty list", func(t *testing.T) {
		mockRepo, uc := setupDeleteTest()
		filter := customer.Filter{customer.FieldName: "nobody"}

		mockRepo.On("FindAll", ctx, filter).Return([]*customer.Customer{}, nil).Once()

		result := uc.DeleteMany(ctx, filter)

		assert.True(t, result.Success)
		assert.Empty(t, result.Data)
	})

	t.Run("Failed deletions are dropped from the result list", func(t *testing.T) {
		mockRepo, uc := setupDeleteTest()
		first := storedCustomer()
		second := &customer.Customer{ID: "second-id", Name: "Bob", DocumentNum: "22222222222", Email: "bob@example.com"}
		filter := customer.Filter{}

		mockRepo.On("FindAll", ctx, filter).Return([]*customer.Customer{first, second}, nil).Once()
		mockRepo.On("FindByID", ctx, first.ID).Return(first, nil).Once()
		mockRepo.On("DeleteByID", ctx, first.ID).Return(true, nil).Once()
		mockRepo.On("FindByID", ctx, second.ID).Return(second, nil).Once()
		mockRepo.On("DeleteByID", ctx, second.ID).Return(false, nil).Once()

		result := uc.DeleteMany(ctx, filter)

		assert.True(t, result.Success)
		deleted, ok := result.Data.([]*customer.Customer)
		assert.True(t, ok)
		assert.Len(t, deleted, 1)
		assert.Equal(t, first.ID, deleted[0].ID)
		mockRepo.AssertExpectations(t)
	})
}
