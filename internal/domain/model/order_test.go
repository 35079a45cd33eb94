package model

import "testing"

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		if !s.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", s)
		}
	}
	for _, s := range []OrderStatus{"", "pending", "UNKNOWN"} {
		if s.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", s)
		}
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	if !OrderStatusDelivered.CanTransitionTo(OrderStatusPending) {
		t.Error("transitions between valid states must be allowed")
	}
	if OrderStatusPending.CanTransitionTo("UNKNOWN") {
		t.Error("transition to an unknown status must be rejected")
	}
	if OrderStatus("UNKNOWN").CanTransitionTo(OrderStatusPending) {
		t.Error("transition from an unknown status must be rejected")
	}
}

func TestOrderStatusDisplayName(t *testing.T) {
	tests := map[OrderStatus]string{
		OrderStatusPending:   "Pending",
		OrderStatusShipped:   "Shipped",
		OrderStatusCancelled: "Cancelled",
	}
	for status, want := range tests {
		if got := status.DisplayName(); got != want {
			t.Errorf("%s.DisplayName() = %q, want %q", status, got, want)
		}
	}
}
