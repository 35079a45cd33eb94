package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/domain/repository"
)

// CreateOrderInput carries order intake fields.
type CreateOrderInput struct {
	Number         string
	CustomerID     int64
	TotalAmount    float64
	OrderDate      time.Time
	DeliveryWindow string
}

// OrderUseCase encapsulates order intake and queries.
type OrderUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, customers repository.CustomerRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, customers: customers}
}

// Create registers a new order for an existing customer. The order starts
// pending with an empty ledger and a single "Order placed" timeline entry
// dated at the order date.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	in.Number = strings.TrimSpace(in.Number)
	if in.Number == "" {
		return nil, domainErrors.ErrInvalidOrderNumber
	}
	if in.TotalAmount < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if in.OrderDate.IsZero() {
		in.OrderDate = time.Now()
	}

	if _, err := u.customers.GetByID(ctx, in.CustomerID); err != nil {
		return nil, err
	}

	return u.orders.Create(ctx, repository.NewOrder{
		Number:         in.Number,
		CustomerID:     in.CustomerID,
		TotalAmount:    in.TotalAmount,
		OrderDate:      in.OrderDate,
		DeliveryWindow: in.DeliveryWindow,
		Entry:          model.TimelineEntry{Date: in.OrderDate, Action: "Order placed"},
	})
}

// GetByID fetches a single order with its ledger and timeline.
func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns orders sorted by order date, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}
