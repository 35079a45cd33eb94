package dto

// CollectPaymentRequest describes a payment reconciliation call. Redeem
// applies the customer's whole reward balance as a discount.
type CollectPaymentRequest struct {
	Redeem bool `json:"redeem"`
}
