package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"customer-engine/internal/domain/customer"
	"customer-engine/internal/pkg/apperrors"
)

// CustomerRepository is a mutex-guarded, in-process implementation of the
// storage port. Like the Postgres adapter's unique indexes, it rejects
// duplicate document numbers and emails at write time, so the use cases'
// advisory checks are backed by a real constraint here too.
type CustomerRepository struct {
	mu    sync.RWMutex
	byID  map[string]*customer.Customer
	order []string
}

var _ customer.Repository = (*CustomerRepository)(nil)

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byID: make(map[string]*customer.Customer),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, cust *customer.Customer) (*customer.Customer, error) {
	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[cust.ID]; exists {
		return nil, fmt.Errorf("%w: id %s", apperrors.ErrConflict, cust.ID)
	}
	for _, existing := range r.byID {
		if existing.DocumentNum == cust.DocumentNum {
			return nil, fmt.Errorf("%w: document number %s", apperrors.ErrConflict, cust.DocumentNum)
		}
		if existing.Email == cust.Email {
			return nil, fmt.Errorf("%w: email %s", apperrors.ErrConflict, cust.Email)
		}
	}

	stored := *cust
	r.byID[cust.ID] = &stored
	r.order = append(r.order, cust.ID)

	created := stored
	return &created, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cust, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	found := *cust
	return &found, nil
}

func (r *CustomerRepository) FindByField(ctx context.Context, field string, value any) (*customer.Customer, error) {
	if !customer.IsKnownField(field) {
		return nil, fmt.Errorf("%w: unknown field %q", apperrors.ErrInvalidArgument, field)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		cust, ok := r.byID[id]
		if !ok {
			continue
		}
		if valueEquals(fieldValue(cust, field), value) {
			found := *cust
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CustomerRepository) FindAll(ctx context.Context, filter customer.Filter) ([]*customer.Customer, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(filter), nil
}

func (r *CustomerRepository) UpdateByID(ctx context.Context, id string, update customer.Update) (*customer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	next := existing.Apply(update)
	for otherID, other := range r.byID {
		if otherID == id {
			continue
		}
		if other.DocumentNum == next.DocumentNum {
			return nil, fmt.Errorf("%w: document number %s", apperrors.ErrConflict, next.DocumentNum)
		}
		if other.Email == next.Email {
			return nil, fmt.Errorf("%w: email %s", apperrors.ErrConflict, next.Email)
		}
	}

	r.byID[id] = next
	updated := *next
	return &updated, nil
}

func (r *CustomerRepository) UpdateMany(ctx context.Context, filter customer.Filter, update customer.Update) ([]customer.OperationResult, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := r.collect(filter)
	r.mu.RUnlock()

	results := make([]customer.OperationResult, 0, len(matched))
	for _, cust := range matched {
		updated, err := r.UpdateByID(ctx, cust.ID, update)
		if err != nil {
			results = append(results, customer.Failf("Failed to update customer with id %s", cust.ID))
			continue
		}
		results = append(results, customer.Succeed(updated))
	}
	return results, nil
}

func (r *CustomerRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	r.remove(id)
	return true, nil
}

func (r *CustomerRepository) DeleteByDocumentNum(ctx context.Context, documentNum string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if cust, ok := r.byID[id]; ok && cust.DocumentNum == documentNum {
			r.remove(id)
			return true, nil
		}
	}
	return false, nil
}

func (r *CustomerRepository) Count(ctx context.Context, filter customer.Filter) (int64, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.collect(filter))), nil
}

func (r *CustomerRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

func (r *CustomerRepository) Search(ctx context.Context, filter customer.Filter, opts customer.SearchOptions) ([]*customer.Customer, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := r.collect(filter)
	r.mu.RUnlock()

	if len(opts.Sort) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			return lessBySortKeys(matched[i], matched[j], opts.Sort)
		})
	}

	if len(opts.Projection) > 0 {
		for i, cust := range matched {
			matched[i] = project(cust, opts.Projection)
		}
	}

	return matched, nil
}

// collect returns copies of all records matching the filter, in insertion
// order. Callers must hold at least a read lock.
func (r *CustomerRepository) collect(filter customer.Filter) []*customer.Customer {
	matched := make([]*customer.Customer, 0)
	for _, id := range r.order {
		cust, ok := r.byID[id]
		if !ok {
			continue
		}
		if matchesFilter(cust, filter) {
			found := *cust
			matched = append(matched, &found)
		}
	}
	return matched
}

func (r *CustomerRepository) remove(id string) {
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func matchesFilter(cust *customer.Customer, filter customer.Filter) bool {
	for field, wanted := range filter {
		if !valueEquals(fieldValue(cust, field), wanted) {
			return false
		}
	}
	return true
}

func fieldValue(cust *customer.Customer, field string) any {
	switch field {
	case customer.FieldID:
		return cust.ID
	case customer.FieldName:
		return cust.Name
	case customer.FieldDocumentNum:
		return cust.DocumentNum
	case customer.FieldDateBirthday:
		return cust.DateBirthday
	case customer.FieldEmail:
		return cust.Email
	}
	return nil
}

func valueEquals(field, wanted any) bool {
	if fieldTime, ok := field.(time.Time); ok {
		switch w := wanted.(type) {
		case time.Time:
			return fieldTime.Equal(w)
		case string:
			parsed, err := time.Parse("2006-01-02", w)
			return err == nil && fieldTime.Equal(parsed)
		}
		return false
	}
	return field == wanted
}

// lessBySortKeys orders lexicographically across the sort keys: the first key
// dominates, ties fall through to the next.
func lessBySortKeys(a, b *customer.Customer, keys []customer.SortKey) bool {
	for _, key := range keys {
		cmp := compareField(a, b, key.Field)
		if cmp == 0 {
			continue
		}
		if key.Descending {
			return cmp > 0
		}
		return cmp < 0
	}
	return false
}

func compareField(a, b *customer.Customer, field string) int {
	if field == customer.FieldDateBirthday {
		switch {
		case a.DateBirthday.Before(b.DateBirthday):
			return -1
		case a.DateBirthday.After(b.DateBirthday):
			return 1
		}
		return 0
	}
	av, _ := fieldValue(a, field).(string)
	bv, _ := fieldValue(b, field).(string)
	return strings.Compare(av, bv)
}

func project(cust *customer.Customer, fields []string) *customer.Customer {
	var projected customer.Customer
	for _, field := range fields {
		switch field {
		case customer.FieldID:
			projected.ID = cust.ID
		case customer.FieldName:
			projected.Name = cust.Name
		case customer.FieldDocumentNum:
			projected.DocumentNum = cust.DocumentNum
		case customer.FieldDateBirthday:
			projected.DateBirthday = cust.DateBirthday
		case customer.FieldEmail:
			projected.Email = cust.Email
		}
	}
	return &projected
}
