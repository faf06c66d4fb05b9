package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"customer-engine/internal/domain/customer"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditCustomersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "customer_audit_records_total",
		Help: "Number of customer records seen by the last integrity audit.",
	})

	auditDuplicateValues = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "customer_audit_duplicate_values",
		Help: "Number of field values shared by more than one customer record.",
	}, []string{"field"})

	auditRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "customer_audit_runs_total",
		Help: "Total integrity audit runs by outcome.",
	}, []string{"outcome"})
)

// IntegrityAuditJob sweeps the customer store and reports document numbers
// and emails held by more than one record. Uniqueness is enforced at write
// time, so any hit here means the store was modified out of band.
type IntegrityAuditJob struct {
	repo   customer.Repository
	logger *slog.Logger
}

func NewIntegrityAuditJob(repo customer.Repository, logger *slog.Logger) *IntegrityAuditJob {
	if repo == nil || logger == nil {
		panic("IntegrityAuditJob dependencies cannot be nil")
	}
	return &IntegrityAuditJob{
		repo:   repo,
		logger: logger.With("job", "IntegrityAudit"),
	}
}

func (j *IntegrityAuditJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting customer integrity audit job.")

	customers, err := j.repo.FindAll(ctx, nil)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to fetch customers, aborting job.", slog.Any("error", err))
		auditRunsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("cannot run job, failed to fetch customers: %w", err)
	}
	j.logger.InfoContext(ctx, "Fetched customer records.", slog.Int("count", len(customers)))
	auditCustomersTotal.Set(float64(len(customers)))

	duplicateDocs := duplicates(customers, func(c *customer.Customer) string { return c.DocumentNum })
	duplicateEmails := duplicates(customers, func(c *customer.Customer) string { return c.Email })

	auditDuplicateValues.WithLabelValues("documentNum").Set(float64(len(duplicateDocs)))
	auditDuplicateValues.WithLabelValues("email").Set(float64(len(duplicateEmails)))

	for value, ids := range duplicateDocs {
		j.logger.WarnContext(ctx, "Duplicate document number detected.",
			slog.String("documentNum", value),
			slog.Any("customerIDs", ids),
		)
	}
	for value, ids := range duplicateEmails {
		j.logger.WarnContext(ctx, "Duplicate email detected.",
			slog.String("email", value),
			slog.Any("customerIDs", ids),
		)
	}

	duration := time.Since(startTime)
	summaryLog := j.logger.With(
		slog.Duration("duration", duration),
		slog.Int("records_checked", len(customers)),
		slog.Int("duplicate_document_numbers", len(duplicateDocs)),
		slog.Int("duplicate_emails", len(duplicateEmails)),
	)

	if len(duplicateDocs) > 0 || len(duplicateEmails) > 0 {
		auditRunsTotal.WithLabelValues("violations").Inc()
		summaryLog.WarnContext(ctx, "Customer integrity audit finished with violations.")
		return fmt.Errorf("integrity audit found %d duplicate document numbers and %d duplicate emails",
			len(duplicateDocs), len(duplicateEmails))
	}

	auditRunsTotal.WithLabelValues("clean").Inc()
	summaryLog.InfoContext(ctx, "Customer integrity audit finished successfully.")
	return nil
}

// duplicates returns each key held by more than one record, mapped to the IDs
// of the records holding it.
func duplicates(customers []*customer.Customer, key func(*customer.Customer) string) map[string][]string {
	byKey := make(map[string][]string)
	for _, cust := range customers {
		k := key(cust)
		byKey[k] = append(byKey[k], cust.ID)
	}
	result := make(map[string][]string)
	for k, ids := range byKey {
		if len(ids) > 1 {
			result[k] = ids
		}
	}
	return result
}
