package repository

import (
	"context"

	"github.com/okunev/orderdesk/internal/domain/model"
)

// CustomerRepository manages customer records and reward balances.
type CustomerRepository interface {
	Create(ctx context.Context, name, phone string) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
}
