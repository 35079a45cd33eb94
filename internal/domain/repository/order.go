package repository

import (
	"context"
	"time"

	"github.com/okunev/orderdesk/internal/domain/model"
)

// NewOrder carries the fields needed to register an order. Entry is the
// initial timeline event recorded together with the order row.
type NewOrder struct {
	Number         string
	CustomerID     int64
	TotalAmount    float64
	OrderDate      time.Time
	DeliveryWindow string
	Entry          model.TimelineEntry
}

// PaymentUpdate describes the write-back of a payment reconciliation.
// ExpectedVersion guards the read-modify-write: the update is rejected
// with ErrConflict when the order changed since it was read.
type PaymentUpdate struct {
	OrderID         int64
	ExpectedVersion int64
	TotalPaid       float64
	PaymentStatus   model.PaymentStatus
	Entry           model.PartialPayment
	CustomerID      int64
	RewardPoint     float64
}

// StatusUpdate describes an order status mutation with its timeline entry.
type StatusUpdate struct {
	OrderID         int64
	ExpectedVersion int64
	Status          model.OrderStatus
	Entry           model.TimelineEntry
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order NewOrder) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ApplyPayment(ctx context.Context, upd PaymentUpdate) (*model.Order, error)
	UpdateStatus(ctx context.Context, upd StatusUpdate) (*model.Order, error)
}
