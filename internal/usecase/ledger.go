package usecase

import (
	"math"
	"time"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
)

// ComputeBalanceDue returns the amount still owed on the order. When redeem
// is set, the customer's entire reward balance is applied as a discount
// before the already-collected total is subtracted. Both steps clamp at
// zero, so an oversized reward balance never yields a negative due amount.
// Pure: safe to call for display and for the actual charge alike.
func ComputeBalanceDue(order *model.Order, redeem bool) float64 {
	var discount float64
	if redeem {
		discount = order.Customer.RewardPoint
	}
	afterDiscount := math.Max(order.TotalAmount-discount, 0)
	return math.Max(afterDiscount-order.Payment.TotalPaid, 0)
}

// Reconciliation is the computed outcome of a payment collection, ready to
// be written back to the store.
type Reconciliation struct {
	Collected     float64
	TotalPaid     float64
	Entry         model.PartialPayment
	Accrual       float64
	RewardPoint   float64
	PaymentStatus model.PaymentStatus
}

// Reconcile computes the ledger mutation for collecting the outstanding
// balance on an order. The collected increment equals the balance due with
// the redemption already netted out; the discount is applied exactly once
// inside ComputeBalanceDue and must not be subtracted again. Redemption
// spends the whole reward balance; timely payment earns a fresh accrual on
// top of whatever balance remains.
func Reconcile(order *model.Order, redeem bool, now time.Time) (*Reconciliation, error) {
	collected := ComputeBalanceDue(order, redeem)
	if collected < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if collected == 0 {
		return nil, domainErrors.ErrNothingToCollect
	}

	remaining := order.Customer.RewardPoint
	if redeem {
		remaining = 0
	}

	accrual := ComputeAccrual(order, now)

	return &Reconciliation{
		Collected:     collected,
		TotalPaid:     order.Payment.TotalPaid + collected,
		Entry:         model.PartialPayment{Date: now, AmountPaid: collected},
		Accrual:       accrual,
		RewardPoint:   remaining + accrual,
		PaymentStatus: model.PaymentStatusPaid,
	}, nil
}
