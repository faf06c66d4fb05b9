package customer

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"customer-engine/internal/pkg/apperrors"
)

// GetCustomerUseCase is the read side: thin wrappers over the storage port
// that translate absent records and storage failures into operation results.
type GetCustomerUseCase struct {
	repo   Repository
	logger *slog.Logger
}

func NewGetCustomerUseCase(repo Repository, logger *slog.Logger) *GetCustomerUseCase {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewGetCustomerUseCase, using default stderr handler")
	}
	return &GetCustomerUseCase{
		repo:   repo,
		logger: logger.With(slog.String("component", "GetCustomerUseCase")),
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, id string) OperationResult {
	cust, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return Fail("Customer not found")
		}
		uc.logger.ErrorContext(ctx, "Failed to fetch customer", slog.Any("error", err))
		return Failf("Error fetching customer: %v", err)
	}
	if cust == nil {
		return Fail("Customer not found")
	}
	return Succeed(cust)
}

func (uc *GetCustomerUseCase) FindAll(ctx context.Context, filter Filter) OperationResult {
	customers, err := uc.repo.FindAll(ctx, filter)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to fetch customers", slog.Any("error", err))
		return Failf("Error fetching customers: %v", err)
	}
	return Succeed(customers)
}

func (uc *GetCustomerUseCase) FindByField(ctx context.Context, field string, value any) OperationResult {
	cust, err := uc.repo.FindByField(ctx, field, value)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return Failf("Customer not found with %s: %v", field, value)
		}
		uc.logger.ErrorContext(ctx, "Failed to fetch customer by field", slog.Any("error", err))
		return Failf("Error fetching customer by field: %v", err)
	}
	if cust == nil {
		return Failf("Customer not found with %s: %v", field, value)
	}
	return Succeed(cust)
}

func (uc *GetCustomerUseCase) Count(ctx context.Context, filter Filter) OperationResult {
	count, err := uc.repo.Count(ctx, filter)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to count customers", slog.Any("error", err))
		return Failf("Error counting customers: %v", err)
	}
	return Succeed(count)
}

func (uc *GetCustomerUseCase) ExistsByID(ctx context.Context, id string) OperationResult {
	exists, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to check customer existence", slog.Any("error", err))
		return Failf("Error checking customer existence: %v", err)
	}
	return Succeed(exists)
}

func (uc *GetCustomerUseCase) Search(ctx context.Context, filter Filter, opts SearchOptions) OperationResult {
	customers, err := uc.repo.Search(ctx, filter, opts)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to search customers", slog.Any("error", err))
		return Failf("Error searching customers: %v", err)
	}
	return Succeed(customers)
}
