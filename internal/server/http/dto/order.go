package dto

import "time"

// CreateOrderRequest describes order intake payload.
type CreateOrderRequest struct {
	Number         string    `json:"number"`
	CustomerID     int64     `json:"customer_id"`
	TotalAmount    float64   `json:"total_amount"`
	OrderDate      time.Time `json:"order_date"`
	DeliveryWindow string    `json:"delivery_window"`
}

// PartialPaymentEntry is a single collection event in the order ledger.
type PartialPaymentEntry struct {
	Date       time.Time `json:"date"`
	AmountPaid float64   `json:"amount_paid"`
}

// TimelineEntry is a single order history event.
type TimelineEntry struct {
	Date   time.Time `json:"date"`
	Action string    `json:"action"`
}

// OrderResponse is the full order view with ledger and timeline.
type OrderResponse struct {
	ID              int64                 `json:"id"`
	Number          string                `json:"number"`
	CustomerID      int64                 `json:"customer_id"`
	CustomerName    string                `json:"customer_name"`
	CustomerPhone   string                `json:"customer_phone"`
	RewardPoint     float64               `json:"reward_point"`
	TotalAmount     float64               `json:"total_amount"`
	Status          string                `json:"status"`
	PaymentStatus   string                `json:"payment_status"`
	TotalPaid       float64               `json:"total_paid"`
	BalanceDue      float64               `json:"balance_due"`
	PartialPayments []PartialPaymentEntry `json:"partial_payments,omitempty"`
	Timeline        []TimelineEntry       `json:"timeline,omitempty"`
	OrderDate       time.Time             `json:"order_date"`
	DeliveryWindow  string                `json:"delivery_window,omitempty"`
}
