package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"customer-engine/internal/domain/customer"
	"customer-engine/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
)

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

var _ DBPool = (pgxmock.PgxPoolIface)(nil)

// columnFor maps entity field names to customers table columns. Filters,
// sort keys and projections are resolved through this map only, so no query
// input ever reaches the SQL text unwhitelisted.
var columnFor = map[string]string{
	customer.FieldID:           "id",
	customer.FieldName:         "name",
	customer.FieldDocumentNum:  "document_num",
	customer.FieldDateBirthday: "date_birthday",
	customer.FieldEmail:        "email",
}

// orderedFields fixes the column order used by every SELECT and scan.
var orderedFields = []string{
	customer.FieldID,
	customer.FieldName,
	customer.FieldDocumentNum,
	customer.FieldDateBirthday,
	customer.FieldEmail,
}

const allColumns = "id, name, document_num, date_birthday, email"

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.Repository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, cust *customer.Customer) (*customer.Customer, error) {
	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("customerID", cust.ID))

	query := `
        INSERT INTO customers (id, name, document_num, date_birthday, email)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		cust.ID,
		cust.Name,
		cust.DocumentNum,
		cust.DateBirthday,
		cust.Email,
	)
	if err != nil {
		translatedErr := translateStorageError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrConflict) {
			r.logger.WarnContext(ctx, "Failed to insert customer due to unique constraint violation", slog.String("customerID", cust.ID))
			return nil, translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrStorage, err)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.String("customerID", cust.ID))
	created := *cust
	return &created, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	query := `SELECT ` + allColumns + ` FROM customers WHERE id = $1`

	cust, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateStorageError(err, r.logger)
	}
	return cust, nil
}

func (r *CustomerRepository) FindByField(ctx context.Context, field string, value any) (*customer.Customer, error) {
	column, ok := columnFor[field]
	if !ok {
		return nil, fmt.Errorf("%w: unknown field %q", apperrors.ErrInvalidArgument, field)
	}

	query := `SELECT ` + allColumns + ` FROM customers WHERE ` + column + ` = $1 LIMIT 1`

	cust, err := r.scanOne(r.db.QueryRow(ctx, query, value))
	if err != nil {
		return nil, translateStorageError(err, r.logger)
	}
	return cust, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context, filter customer.Filter) ([]*customer.Customer, error) {
	where, args, err := buildWhere(filter)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + allColumns + ` FROM customers` + where + ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *CustomerRepository) UpdateByID(ctx context.Context, id string, update customer.Update) (*customer.Customer, error) {
	if update.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	set := make([]string, 0, 4)
	args := make([]any, 0, 5)
	addSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.Name != nil {
		addSet("name", *update.Name)
	}
	if update.DocumentNum != nil {
		addSet("document_num", *update.DocumentNum)
	}
	if update.DateBirthday != nil {
		addSet("date_birthday", *update.DateBirthday)
	}
	if update.Email != nil {
		addSet("email", *update.Email)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE customers SET %s WHERE id = $%d RETURNING `+allColumns,
		strings.Join(set, ", "), len(args))

	cust, err := r.scanOne(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		translatedErr := translateStorageError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrNotFound) {
			r.logger.WarnContext(ctx, "Update matched no customer", slog.String("customerID", id))
		}
		return nil, translatedErr
	}

	r.logger.InfoContext(ctx, "Customer updated successfully", slog.String("customerID", id))
	return cust, nil
}

func (r *CustomerRepository) UpdateMany(ctx context.Context, filter customer.Filter, update customer.Update) ([]customer.OperationResult, error) {
	matched, err := r.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

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
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete customer", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrStorage, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CustomerRepository) DeleteByDocumentNum(ctx context.Context, documentNum string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE document_num = $1`, documentNum)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete customer by document number", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to delete customer by document number: %w", apperrors.ErrStorage, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CustomerRepository) Count(ctx context.Context, filter customer.Filter) (int64, error) {
	where, args, err := buildWhere(filter)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+where, args...).Scan(&count); err != nil {
		r.logger.ErrorContext(ctx, "Failed to count customers", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to count customers: %w", apperrors.ErrStorage, err)
	}
	return count, nil
}

func (r *CustomerRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to check customer existence", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check customer existence: %w", apperrors.ErrStorage, err)
	}
	return exists, nil
}

func (r *CustomerRepository) Search(ctx context.Context, filter customer.Filter, opts customer.SearchOptions) ([]*customer.Customer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	where, args, err := buildWhere(filter)
	if err != nil {
		return nil, err
	}

	fields := orderedFields
	if len(opts.Projection) > 0 {
		fields = projectedFields(opts.Projection)
	}
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = columnFor[field]
	}

	query := `SELECT ` + strings.Join(columns, ", ") + ` FROM customers` + where + buildOrderBy(opts.Sort)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to search customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to search customers: %w", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var cust customer.Customer
		if err := rows.Scan(scanTargets(&cust, fields)...); err != nil {
			return nil, fmt.Errorf("%w: failed scanning customer row: %w", apperrors.ErrStorage, err)
		}
		customers = append(customers, &cust)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed iterating customer rows: %w", apperrors.ErrStorage, err)
	}
	return customers, nil
}

func (r *CustomerRepository) scanOne(row pgx.Row) (*customer.Customer, error) {
	var cust customer.Customer
	if err := row.Scan(scanTargets(&cust, orderedFields)...); err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) scanAll(rows pgx.Rows) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var cust customer.Customer
		if err := rows.Scan(scanTargets(&cust, orderedFields)...); err != nil {
			r.logger.Error("Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed scanning customer row: %w", apperrors.ErrStorage, err)
		}
		customers = append(customers, &cust)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed iterating customer rows: %w", apperrors.ErrStorage, err)
	}
	return customers, nil
}

func scanTargets(cust *customer.Customer, fields []string) []any {
	targets := make([]any, len(fields))
	for i, field := range fields {
		switch field {
		case customer.FieldID:
			targets[i] = &cust.ID
		case customer.FieldName:
			targets[i] = &cust.Name
		case customer.FieldDocumentNum:
			targets[i] = &cust.DocumentNum
		case customer.FieldDateBirthday:
			targets[i] = &cust.DateBirthday
		case customer.FieldEmail:
			targets[i] = &cust.Email
		}
	}
	return targets
}

// projectedFields preserves the canonical column order regardless of the
// order fields were requested in.
func projectedFields(projection []string) []string {
	requested := make(map[string]struct{}, len(projection))
	for _, field := range projection {
		requested[field] = struct{}{}
	}
	fields := make([]string, 0, len(requested))
	for _, field := range orderedFields {
		if _, ok := requested[field]; ok {
			fields = append(fields, field)
		}
	}
	return fields
}

func buildWhere(filter customer.Filter) (string, []any, error) {
	if err := filter.Validate(); err != nil {
		return "", nil, err
	}
	if len(filter) == 0 {
		return "", nil, nil
	}

	// Iterate the canonical field order so the generated SQL is stable.
	clauses := make([]string, 0, len(filter))
	args := make([]any, 0, len(filter))
	for _, field := range orderedFields {
		value, ok := filter[field]
		if !ok {
			continue
		}
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", columnFor[field], len(args)))
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func buildOrderBy(keys []customer.SortKey) string {
	if len(keys) == 0 {
		return " ORDER BY id"
	}
	parts := make([]string, len(keys))
	for i, key := range keys {
		direction := " ASC"
		if key.Descending {
			direction = " DESC"
		}
		parts[i] = columnFor[key.Field] + direction
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func translateStorageError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrStorage, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf("%w: %w", apperrors.ErrStorage, err)
}
