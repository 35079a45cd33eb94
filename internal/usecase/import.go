package usecase

import (
	"context"
	"log/slog"
	"strings"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/domain/repository"
	"github.com/okunev/orderdesk/internal/pkg/pool"
)

// ImportRecord is a single customer row from a bulk upload.
type ImportRecord struct {
	Name  string
	Phone string
}

// ImportSummary reports a partial-success batch outcome.
type ImportSummary struct {
	Created     []model.Customer
	FailedCount int
}

// ImportUseCase ingests customer batches with bounded concurrency, so a
// large upload cannot flood the store with unbounded parallel writes.
type ImportUseCase struct {
	customers   repository.CustomerRepository
	concurrency int
	logger      *slog.Logger
}

// NewImportUseCase constructs ImportUseCase.
func NewImportUseCase(customers repository.CustomerRepository, concurrency int, logger *slog.Logger) *ImportUseCase {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &ImportUseCase{customers: customers, concurrency: concurrency, logger: logger}
}

// Import creates the given customer records, at most the configured number
// in flight at once. Per-record failures are counted and logged; they never
// abort the rest of the batch.
func (u *ImportUseCase) Import(ctx context.Context, records []ImportRecord) *ImportSummary {
	res := pool.Run(ctx, records, u.concurrency, func(ctx context.Context, rec ImportRecord) (model.Customer, error) {
		name := strings.TrimSpace(rec.Name)
		phone := strings.TrimSpace(rec.Phone)
		if name == "" || phone == "" {
			u.logger.Warn("skipping incomplete customer record", slog.String("name", rec.Name))
			return model.Customer{}, domainErrors.ErrIncompleteRecord
		}
		created, err := u.customers.Create(ctx, name, phone)
		if err != nil {
			u.logger.Warn("customer import failed", slog.String("phone", phone), slog.String("error", err.Error()))
			return model.Customer{}, err
		}
		return *created, nil
	})

	return &ImportSummary{Created: res.Succeeded, FailedCount: res.FailedCount}
}

// CreateCustomer registers a single customer record.
func (u *ImportUseCase) CreateCustomer(ctx context.Context, name, phone string) (*model.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return nil, domainErrors.ErrIncompleteRecord
	}
	return u.customers.Create(ctx, name, phone)
}

// GetCustomer fetches a customer with its current reward balance.
func (u *ImportUseCase) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}
