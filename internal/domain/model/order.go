package model

import "time"

// OrderStatus describes order fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// IsValid reports whether the value is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may change to target.
// Every transition between valid states is currently allowed; the check
// exists so a stricter policy can be enforced in one place later.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return s.IsValid() && target.IsValid()
}

// DisplayName returns the human-readable status used in timeline entries.
func (s OrderStatus) DisplayName() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// PaymentStatus describes collection state of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PartialPayment is a single collection event against an order.
type PartialPayment struct {
	Date       time.Time
	AmountPaid float64
}

// Payment is the embedded payment ledger of an order. The sum of
// PartialPayments amounts always equals TotalPaid.
type Payment struct {
	TotalAmount     float64
	TotalPaid       float64
	PartialPayments []PartialPayment
}

// TimelineEntry records a single order history event. The timeline is
// append-only; insertion order is chronological order.
type TimelineEntry struct {
	Date   time.Time
	Action string
}

// CustomerSnapshot is the denormalized customer view carried on an order.
// RewardPoint reflects the customer's current redeemable balance at read time.
type CustomerSnapshot struct {
	Name        string
	Phone       string
	RewardPoint float64
}

// Order is a customer purchase record with its payment ledger and history.
// TotalAmount is fixed at creation and never mutated afterwards.
type Order struct {
	ID             int64
	Number         string
	CustomerID     int64
	Customer       CustomerSnapshot
	TotalAmount    float64
	Status         OrderStatus
	PaymentStatus  PaymentStatus
	Payment        Payment
	Timeline       []TimelineEntry
	OrderDate      time.Time
	DeliveryWindow string
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
