package usecase

import (
	"context"
	"time"

	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/domain/repository"
)

// PaymentUseCase orchestrates payment reconciliation against an order.
type PaymentUseCase struct {
	orders repository.OrderRepository
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(orders repository.OrderRepository) *PaymentUseCase {
	return &PaymentUseCase{orders: orders}
}

// Collect settles the outstanding balance on the order, optionally redeeming
// the customer's reward balance as a discount. The read-modify-write is
// guarded by the order version: a concurrent collection against the same
// order surfaces as ErrConflict and the caller must refetch and retry.
func (u *PaymentUseCase) Collect(ctx context.Context, orderID int64, redeem bool, now time.Time) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	rec, err := Reconcile(order, redeem, now)
	if err != nil {
		return nil, err
	}

	return u.orders.ApplyPayment(ctx, repository.PaymentUpdate{
		OrderID:         order.ID,
		ExpectedVersion: order.Version,
		TotalPaid:       rec.TotalPaid,
		PaymentStatus:   rec.PaymentStatus,
		Entry:           rec.Entry,
		CustomerID:      order.CustomerID,
		RewardPoint:     rec.RewardPoint,
	})
}
