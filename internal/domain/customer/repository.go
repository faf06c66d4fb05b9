package customer

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("customer not found")

	ErrDuplicateDocumentNum = errors.New("document number already registered to another customer")

	ErrDuplicateEmail = errors.New("email already registered to another customer")
)

// Repository is the storage port every use case depends on. Adapters signal
// an absent record with apperrors.ErrNotFound and wrap every other failure in
// apperrors.ErrStorage; use cases translate both, nothing escapes them raw.
type Repository interface {
	Create(ctx context.Context, cust *Customer) (*Customer, error)

	FindByID(ctx context.Context, id string) (*Customer, error)

	// FindByField returns the first record whose field equals value. Used as
	// the uniqueness probe by the create/update flows.
	FindByField(ctx context.Context, field string, value any) (*Customer, error)

	FindAll(ctx context.Context, filter Filter) ([]*Customer, error)

	UpdateByID(ctx context.Context, id string, update Update) (*Customer, error)

	UpdateMany(ctx context.Context, filter Filter, update Update) ([]OperationResult, error)

	// DeleteByID reports true iff a record was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)

	DeleteByDocumentNum(ctx context.Context, documentNum string) (bool, error)

	Count(ctx context.Context, filter Filter) (int64, error)

	ExistsByID(ctx context.Context, id string) (bool, error)

	Search(ctx context.Context, filter Filter, opts SearchOptions) ([]*Customer, error)
}
