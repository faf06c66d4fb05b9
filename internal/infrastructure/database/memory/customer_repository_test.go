package memory_test

import (
	"context"
	"testing"
	"time"

	"customer-engine/internal/domain/customer"
	"customer-engine/internal/infrastructure/database/memory"
	"customer-engine/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo *memory.CustomerRepository, id, name, doc, email, birthday string) *customer.Customer {
	t.Helper()
	date, err := time.Parse("2006-01-02", birthday)
	require.NoError(t, err)
	created, err := repo.Create(context.Background(), &customer.Customer{
		ID:           id,
		Name:         name,
		DocumentNum:  doc,
		DateBirthday: date,
		Email:        email,
	})
	require.NoError(t, err)
	return created
}

func TestCustomerRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()
	created := seed(t, repo, "c1", "Alice", "11111111111", "alice@example.com", "1990-01-01")

	found, err := repo.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	byEmail, err := repo.FindByField(ctx, customer.FieldEmail, "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.FindByField(ctx, "password", "x")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCustomerRepository_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()
	seed(t, repo, "c1", "Alice", "11111111111", "alice@example.com", "1990-01-01")

	_, err := repo.Create(ctx, &customer.Customer{
		ID: "c2", Name: "Bob", DocumentNum: "11111111111", Email: "bob@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = repo.Create(ctx, &customer.Customer{
		ID: "c3", Name: "Eve", DocumentNum: "33333333333", Email: "alice@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCustomerRepository_UpdateByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()
	created := seed(t, repo, "c1", "Alice", "11111111111", "alice@example.com", "1990-01-01")
	seed(t, repo, "c2", "Bob", "22222222222", "bob@example.com", "1985-03-03")

	name := "Alice Cooper"
	updated, err := repo.UpdateByID(ctx, created.ID, customer.Update{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, created.Email, updated.Email)

	_, err = repo.UpdateByID(ctx, "missing", customer.Update{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	takenEmail := "bob@example.com"
	_, err = repo.UpdateByID(ctx, created.ID, customer.Update{Email: &takenEmail})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCustomerRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()
	seed(t, repo, "c1", "Alice", "11111111111", "alice@example.com", "1990-01-01")

	removed, err := repo.DeleteByID(ctx, "c1")
	assert.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteByID(ctx, "c1")
	assert.NoError(t, err)
	assert.False(t, removed)

	seed(t, repo, "c2", "Bob", "22222222222", "bob@example.com", "1985-03-03")
	removed, err = repo.DeleteByDocumentNum(ctx, "22222222222")
	assert.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteByDocumentNum(ctx, "22222222222")
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestCustomerRepository_CountAndExists(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()
	seed(t, repo, "c1", "Alice", "11111111111", "alice@example.com", "1990-01-01")
	seed(t, repo, "c2", "Alice", "22222222222", "bob@example.com", "1985-03-03")

	count, err := repo.Count(ctx, customer.Filter{})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.Count(ctx, customer.Filter{customer.FieldName: "Alice"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.Count(ctx, customer.Filter{customer.FieldEmail: "bob@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	exists, err := repo.ExistsByID(ctx, "c1")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, "ghost")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestCustomerRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()
	seed(t, repo, "c1", "Bob", "11111111111", "bob@example.com", "1990-01-01")
	seed(t, repo, "c2", "Alice", "22222222222", "alice@example.com", "1985-03-03")
	seed(t, repo, "c3", "Alice", "33333333333", "ana@example.com", "1992-07-07")

	t.Run("Multi-key sort, first key dominates", func(t *testing.T) {
		results, err := repo.Search(ctx, customer.Filter{}, customer.SearchOptions{
			Sort: []customer.SortKey{
				{Field: customer.FieldName},
				{Field: customer.FieldEmail, Descending: true},
			},
		})
		assert.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "c3", results[0].ID)
		assert.Equal(t, "c2", results[1].ID)
		assert.Equal(t, "c1", results[2].ID)
	})

	t.Run("Projection populates only selected fields", func(t *testing.T) {
		results, err := repo.Search(ctx, customer.Filter{customer.FieldName: "Bob"}, customer.SearchOptions{
			Projection: []string{customer.FieldID, customer.FieldEmail},
		})
		assert.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "c1", results[0].ID)
		assert.Equal(t, "bob@example.com", results[0].Email)
		assert.Empty(t, results[0].Name)
		assert.Empty(t, results[0].DocumentNum)
		assert.True(t, results[0].DateBirthday.IsZero())
	})

	t.Run("Unknown sort field rejected", func(t *testing.T) {
		_, err := repo.Search(ctx, customer.Filter{}, customer.SearchOptions{
			Sort: []customer.SortKey{{Field: "ssn"}},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}

func TestCustomerRepository_UpdateMany(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()
	seed(t, repo, "c1", "Alice", "11111111111", "alice@example.com", "1990-01-01")
	seed(t, repo, "c2", "Alice", "22222222222", "bob@example.com", "1985-03-03")

	name := "Renamed"
	results, err := repo.UpdateMany(ctx, customer.Filter{customer.FieldName: "Alice"}, customer.Update{Name: &name})
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	for _, result := range results {
		assert.True(t, result.Success)
	}

	count, err := repo.Count(ctx, customer.Filter{customer.FieldName: "Renamed"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
