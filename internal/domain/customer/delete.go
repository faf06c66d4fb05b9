package customer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"customer-engine/internal/event"
	"customer-engine/internal/pkg/apperrors"
)

const identifierKindID = "id"

const identifierKindDocumentNum = "document number"

// DeleteCustomerUseCase removes customers by id or document number. Both
// entry points share one lookup-then-delete decision tree, parameterized by
// the two storage primitives and an identifier-kind label used only in error
// text.
type DeleteCustomerUseCase struct {
	repo   Repository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewDeleteCustomerUseCase(repo Repository, pub event.EventPublisher, logger *slog.Logger) *DeleteCustomerUseCase {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewDeleteCustomerUseCase, using default stderr handler")
	}
	return &DeleteCustomerUseCase{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "DeleteCustomerUseCase")),
	}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, id string) OperationResult {
	return uc.deleteCustomer(ctx,
		func(ctx context.Context) (bool, error) { return uc.repo.DeleteByID(ctx, id) },
		func(ctx context.Context) (*Customer, error) { return uc.repo.FindByID(ctx, id) },
		identifierKindID,
		id,
	)
}

func (uc *DeleteCustomerUseCase) ExecuteByDocumentNum(ctx context.Context, documentNum string) OperationResult {
	return uc.deleteCustomer(ctx,
		func(ctx context.Context) (bool, error) { return uc.repo.DeleteByDocumentNum(ctx, documentNum) },
		func(ctx context.Context) (*Customer, error) {
			return uc.repo.FindByField(ctx, FieldDocumentNum, documentNum)
		},
		identifierKindDocumentNum,
		documentNum,
	)
}

// DeleteMany deletes every record matching the filter, dispatching the
// per-record deletions concurrently. The success payload carries only the
// records whose deletion succeeded, in completion order; individual failures
// are dropped rather than failing the batch.
func (uc *DeleteCustomerUseCase) DeleteMany(ctx context.Context, filter Filter) OperationResult {
	customers, err := uc.repo.FindAll(ctx, filter)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to fetch customers for bulk delete", slog.Any("error", err))
		return Failf("Unexpected error during customer deletion: %v", err)
	}

	results := make(chan OperationResult, len(customers))
	var wg sync.WaitGroup
	for _, cust := range customers {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			results <- uc.Execute(ctx, id)
		}(cust.ID)
	}
	wg.Wait()
	close(results)

	deleted := make([]*Customer, 0, len(customers))
	for result := range results {
		if !result.Success {
			continue
		}
		if cust, ok := result.Data.(*Customer); ok {
			deleted = append(deleted, cust)
		}
	}

	uc.logger.InfoContext(ctx, "Bulk delete finished",
		slog.Int("matched", len(customers)), slog.Int("deleted", len(deleted)))
	return Succeed(deleted)
}

type deletePrimitive func(ctx context.Context) (bool, error)

type lookupPrimitive func(ctx context.Context) (*Customer, error)

func (uc *DeleteCustomerUseCase) deleteCustomer(ctx context.Context, del deletePrimitive, find lookupPrimitive, kind, value string) OperationResult {
	logCtx := uc.logger.With(slog.String(kind, value))

	cust, err := find(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer not found, deletion skipped")
			return Failf("Customer with %s %s not found", kind, value)
		}
		logCtx.ErrorContext(ctx, "Failed to look up customer", slog.Any("error", err))
		return Failf("Unexpected error during customer deletion: %v", err)
	}
	if cust == nil {
		return Failf("Customer with %s %s not found", kind, value)
	}

	removed, err := del(ctx)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to delete customer", slog.Any("error", err))
		return Failf("Unexpected error during customer deletion: %v", err)
	}
	if !removed {
		// The record vanished between lookup and delete.
		logCtx.WarnContext(ctx, "Deletion reported no removed record")
		return Failf("Failed to delete customer with %s %s", kind, value)
	}

	uc.publishDeleted(ctx, cust)
	logCtx.InfoContext(ctx, "Customer deleted successfully")
	return Succeed(cust)
}

func (uc *DeleteCustomerUseCase) publishDeleted(ctx context.Context, cust *Customer) {
	if uc.pub == nil {
		return
	}
	evt := event.CustomerDeletedEvent{
		Timestamp: time.Now(),
		Payload:   NewCustomerEventPayload(cust),
	}
	if err := uc.pub.PublishCustomerDeleted(ctx, evt); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to publish customer deleted event", slog.Any("error", err))
	}
}
