package customer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) Create(ctx context.Context, cust *Customer) (*Customer, error) {
	ret := _m.Called(ctx, cust)

	var r0 *Customer
	if rf, ok := ret.Get(0).(func(context.Context, *Customer) *Customer); ok {
		r0 = rf(ctx, cust)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Customer)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByID(ctx context.Context, id string) (*Customer, error) {
	ret := _m.Called(ctx, id)

	var r0 *Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) *Customer); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Customer)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindByField(ctx context.Context, field string, value any) (*Customer, error) {
	ret := _m.Called(ctx, field, value)

	var r0 *Customer
	if rf, ok := ret.Get(0).(func(context.Context, string, any) *Customer); ok {
		r0 = rf(ctx, field, value)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Customer)
		}
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) FindAll(ctx context.Context, filter Filter) ([]*Customer, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Customer)
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) UpdateByID(ctx context.Context, id string, update Update) (*Customer, error) {
	ret := _m.Called(ctx, id, update)

	var r0 *Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Customer)
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) UpdateMany(ctx context.Context, filter Filter, update Update) ([]OperationResult, error) {
	ret := _m.Called(ctx, filter, update)

	var r0 []OperationResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]OperationResult)
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockRepository) DeleteByDocumentNum(ctx context.Context, documentNum string) (bool, error) {
	ret := _m.Called(ctx, documentNum)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockRepository) Count(ctx context.Context, filter Filter) (int64, error) {
	ret := _m.Called(ctx, filter)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, Filter) int64); ok {
		r0 = rf(ctx, filter)
	} else {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

func (_m *MockRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockRepository) Search(ctx context.Context, filter Filter, opts SearchOptions) ([]*Customer, error) {
	ret := _m.Called(ctx, filter, opts)

	var r0 []*Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Customer)
	}

	return r0, ret.Error(1)
}

var _ Repository = (*MockRepository)(nil)
