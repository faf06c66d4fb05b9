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

// CreateCustomerUseCase enforces document-number and email uniqueness against
// the storage port before constructing and persisting a new customer. The
// checks are advisory check-then-act; under concurrent writers the backing
// store's unique constraints are the real guarantee.
type CreateCustomerUseCase struct {
	repo   Repository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCreateCustomerUseCase(repo Repository, pub event.EventPublisher, logger *slog.Logger) *CreateCustomerUseCase {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCreateCustomerUseCase, using default stderr handler")
	}
	return &CreateCustomerUseCase{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "CreateCustomerUseCase")),
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, params Params) OperationResult {
	uc.logger.InfoContext(ctx, "Attempting to create new customer")

	existing, err := uc.repo.FindByField(ctx, FieldDocumentNum, params.DocumentNum)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		uc.logger.ErrorContext(ctx, "Document number uniqueness probe failed", slog.Any("error", err))
		return Failf("Unexpected error during customer creation: %v", err)
	}
	if existing != nil {
		uc.logger.WarnContext(ctx, "Document number already registered", slog.Any("documentNum", params.DocumentNum))
		return Failf("Customer with document number %v already exists", params.DocumentNum)
	}

	existing, err = uc.repo.FindByField(ctx, FieldEmail, params.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		uc.logger.ErrorContext(ctx, "Email uniqueness probe failed", slog.Any("error", err))
		return Failf("Unexpected error during customer creation: %v", err)
	}
	if existing != nil {
		uc.logger.WarnContext(ctx, "Email already registered", slog.Any("email", params.Email))
		return Failf("Customer with email %v already exists", params.Email)
	}

	cust, err := New(params)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			uc.logger.WarnContext(ctx, "Customer validation failed", slog.String("reason", validationErr.Message))
			return Fail(validationErr.Message)
		}
		uc.logger.ErrorContext(ctx, "Customer construction failed", slog.Any("error", err))
		return Failf("Unexpected error during customer creation: %v", err)
	}

	created, err := uc.repo.Create(ctx, cust)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to persist customer", slog.Any("error", err))
		return Failf("Unexpected error during customer creation: %v", err)
	}

	// Defensive integrity check: the write nominally succeeded, but the
	// record must be retrievable before the operation is reported as such.
	verified, err := uc.repo.FindByID(ctx, created.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			uc.logger.ErrorContext(ctx, "Created customer not retrievable", slog.String("customerID", created.ID))
			return Fail("Customer creation failed: Unable to verify created customer")
		}
		uc.logger.ErrorContext(ctx, "Post-create verification failed", slog.Any("error", err))
		return Failf("Unexpected error during customer creation: %v", err)
	}
	if verified == nil {
		return Fail("Customer creation failed: Unable to verify created customer")
	}

	uc.publishCreated(ctx, created)
	uc.logger.InfoContext(ctx, "Customer created successfully", slog.String("customerID", created.ID))
	return Succeed(created)
}

// CreateMany processes inputs strictly in order, one at a time, so a later
// duplicate within the same batch is caught against records created earlier
// in that batch.
func (uc *CreateCustomerUseCase) CreateMany(ctx context.Context, batch []Params) []OperationResult {
	results := make([]OperationResult, 0, len(batch))
	for _, params := range batch {
		results = append(results, uc.Execute(ctx, params))
	}
	return results
}

func (uc *CreateCustomerUseCase) publishCreated(ctx context.Context, cust *Customer) {
	if uc.pub == nil {
		return
	}
	evt := event.CustomerCreatedEvent{
		Timestamp: time.Now(),
		Payload:   NewCustomerEventPayload(cust),
	}
	if err := uc.pub.PublishCustomerCreated(ctx, evt); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to publish customer created event", slog.Any("error", err))
	}
}

func NewCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID:   cust.ID,
		Name:         cust.Name,
		DocumentNum:  cust.DocumentNum,
		DateBirthday: cust.DateBirthday,
		Email:        cust.Email,
	}
}
