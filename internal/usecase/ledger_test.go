package usecase

import (
	"errors"
	"testing"
	"time"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
)

func makeOrder(total, paid, reward float64, orderDate time.Time) *model.Order {
	return &model.Order{
		ID:          1,
		Number:      "ORD-100",
		CustomerID:  7,
		TotalAmount: total,
		Status:      model.OrderStatusPending,
		Customer:    model.CustomerSnapshot{Name: "Ann", Phone: "+100200300", RewardPoint: reward},
		Payment:     model.Payment{TotalAmount: total, TotalPaid: paid},
		OrderDate:   orderDate,
		Version:     1,
	}
}

func TestComputeBalanceDue(t *testing.T) {
	tests := []struct {
		name   string
		total  float64
		paid   float64
		reward float64
		redeem bool
		want   float64
	}{
		{name: "no payments no redeem", total: 1000, paid: 0, reward: 50, redeem: false, want: 1000},
		{name: "partial payment", total: 1000, paid: 200, reward: 0, redeem: false, want: 800},
		{name: "redeem nets discount", total: 1000, paid: 200, reward: 100, redeem: true, want: 700},
		{name: "reward ignored without redeem", total: 1000, paid: 200, reward: 100, redeem: false, want: 800},
		{name: "reward exceeds total", total: 300, paid: 0, reward: 500, redeem: true, want: 0},
		{name: "paid exceeds discounted total", total: 300, paid: 400, reward: 50, redeem: true, want: 0},
		{name: "fully paid", total: 500, paid: 500, reward: 0, redeem: false, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := makeOrder(tt.total, tt.paid, tt.reward, time.Now())
			if got := ComputeBalanceDue(order, tt.redeem); got != tt.want {
				t.Errorf("ComputeBalanceDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReconcileRedemption(t *testing.T) {
	now := time.Now()
	order := makeOrder(1000, 200, 100, now.AddDate(0, 0, -2))

	rec, err := Reconcile(order, true, now)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if rec.Collected != 700 {
		t.Errorf("Collected = %v, want 700", rec.Collected)
	}
	if rec.TotalPaid != 900 {
		t.Errorf("TotalPaid = %v, want 900", rec.TotalPaid)
	}
	if rec.Entry.AmountPaid != 700 {
		t.Errorf("Entry.AmountPaid = %v, want 700", rec.Entry.AmountPaid)
	}
	if rec.Accrual != 100 {
		t.Errorf("Accrual = %v, want 100", rec.Accrual)
	}
	// Redemption zeroes the balance before the fresh accrual lands.
	if rec.RewardPoint != 100 {
		t.Errorf("RewardPoint = %v, want 100", rec.RewardPoint)
	}
	if rec.PaymentStatus != model.PaymentStatusPaid {
		t.Errorf("PaymentStatus = %v, want %v", rec.PaymentStatus, model.PaymentStatusPaid)
	}
}

func TestReconcileWithoutRedeemKeepsRewardBalance(t *testing.T) {
	now := time.Now()
	order := makeOrder(1000, 0, 40, now.AddDate(0, 0, -1))

	rec, err := Reconcile(order, false, now)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if rec.Collected != 1000 {
		t.Errorf("Collected = %v, want 1000", rec.Collected)
	}
	if rec.RewardPoint != 140 {
		t.Errorf("RewardPoint = %v, want 140 (40 kept + 100 accrued)", rec.RewardPoint)
	}
}

func TestReconcileLateSettlementSkipsAccrual(t *testing.T) {
	now := time.Now()
	order := makeOrder(1000, 0, 40, now.AddDate(0, 0, -30))

	rec, err := Reconcile(order, true, now)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if rec.Accrual != 0 {
		t.Errorf("Accrual = %v, want 0", rec.Accrual)
	}
	if rec.RewardPoint != 0 {
		t.Errorf("RewardPoint = %v, want 0 after redemption without accrual", rec.RewardPoint)
	}
}

func TestReconcileNothingToCollect(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		order  *model.Order
		redeem bool
	}{
		{name: "fully paid", order: makeOrder(500, 500, 0, now), redeem: false},
		{name: "reward covers remainder", order: makeOrder(500, 300, 200, now), redeem: true},
		{name: "zero amount order", order: makeOrder(0, 0, 0, now), redeem: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Reconcile(tt.order, tt.redeem, now); !errors.Is(err, domainErrors.ErrNothingToCollect) {
				t.Errorf("Reconcile() error = %v, want ErrNothingToCollect", err)
			}
		})
	}
}

func TestReconcileSequenceSettlesExactly(t *testing.T) {
	now := time.Now()
	order := makeOrder(1000, 0, 0, now)
	order.Customer.RewardPoint = 0

	rec, err := Reconcile(order, false, now)
	if err != nil {
		t.Fatalf("first Reconcile() error = %v", err)
	}

	order.Payment.TotalPaid = rec.TotalPaid
	order.Customer.RewardPoint = rec.RewardPoint

	if order.Payment.TotalPaid != order.TotalAmount {
		t.Fatalf("TotalPaid = %v, want %v", order.Payment.TotalPaid, order.TotalAmount)
	}

	if _, err := Reconcile(order, false, now); !errors.Is(err, domainErrors.ErrNothingToCollect) {
		t.Errorf("second Reconcile() error = %v, want ErrNothingToCollect", err)
	}
}
