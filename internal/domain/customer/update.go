package customer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"customer-engine/internal/event"
	"customer-engine/internal/pkg/apperrors"
)

// UpdateCustomerUseCase applies partial-field updates with conflict checks on
// email and document number. The email probe runs first; when both changed
// fields would conflict independently, the email conflict is the one
// reported.
type UpdateCustomerUseCase struct {
	repo   Repository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewUpdateCustomerUseCase(repo Repository, pub event.EventPublisher, logger *slog.Logger) *UpdateCustomerUseCase {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewUpdateCustomerUseCase, using default stderr handler")
	}
	return &UpdateCustomerUseCase{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "UpdateCustomerUseCase")),
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, id string, update Update) OperationResult {
	logCtx := uc.logger.With(slog.String("customerID", id))
	logCtx.InfoContext(ctx, "Attempting to update customer")

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer not found")
			return Failf("Customer with id %s not found", id)
		}
		logCtx.ErrorContext(ctx, "Failed to fetch customer", slog.Any("error", err))
		return Failf("Unexpected error during customer update: %v", err)
	}

	// Setting a field to its own current value is not a conflict, so the
	// probe only runs when the value actually changes.
	if update.Email != nil && *update.Email != existing.Email {
		holder, err := uc.repo.FindByField(ctx, FieldEmail, *update.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logCtx.ErrorContext(ctx, "Email uniqueness probe failed", slog.Any("error", err))
			return Failf("Unexpected error during customer update: %v", err)
		}
		if holder != nil {
			logCtx.WarnContext(ctx, "Email already in use", slog.String("email", *update.Email))
			return Failf("Email %s is already in use", *update.Email)
		}
	}

	if update.DocumentNum != nil && *update.DocumentNum != existing.DocumentNum {
		holder, err := uc.repo.FindByField(ctx, FieldDocumentNum, *update.DocumentNum)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logCtx.ErrorContext(ctx, "Document number uniqueness probe failed", slog.Any("error", err))
			return Failf("Unexpected error during customer update: %v", err)
		}
		if holder != nil {
			logCtx.WarnContext(ctx, "Document number already in use", slog.String("documentNum", *update.DocumentNum))
			return Failf("Document number %s is already in use", *update.DocumentNum)
		}
	}

	updated, err := uc.repo.UpdateByID(ctx, id, update)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer vanished between fetch and update")
			return Fail("Failed to update customer")
		}
		logCtx.ErrorContext(ctx, "Failed to apply update", slog.Any("error", err))
		return Failf("Unexpected error during customer update: %v", err)
	}
	if updated == nil {
		return Fail("Failed to update customer")
	}

	uc.publishUpdated(ctx, updated)
	logCtx.InfoContext(ctx, "Customer updated successfully")
	return Succeed(updated)
}

// UpdateMany fetches the matching set, then runs the single-record flow
// sequentially per record, one result per record, without short-circuiting on
// individual failures.
func (uc *UpdateCustomerUseCase) UpdateMany(ctx context.Context, filter Filter, update Update) []OperationResult {
	customers, err := uc.repo.FindAll(ctx, filter)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to fetch customers for bulk update", slog.Any("error", err))
		return []OperationResult{Failf("Unexpected error during customer update: %v", err)}
	}

	results := make([]OperationResult, 0, len(customers))
	for _, cust := range customers {
		results = append(results, uc.Execute(ctx, cust.ID, update))
	}
	return results
}

func (uc *UpdateCustomerUseCase) publishUpdated(ctx context.Context, cust *Customer) {
	if uc.pub == nil {
		return
	}
	evt := event.CustomerUpdatedEvent{
		Timestamp: time.Now(),
		Payload:   NewCustomerEventPayload(cust),
	}
	if err := uc.pub.PublishCustomerUpdated(ctx, evt); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to publish customer updated event", slog.Any("error", err))
	}
}
