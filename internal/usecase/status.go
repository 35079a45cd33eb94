package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/domain/repository"
)

// statusRoutes maps an order status to the notification route announced to
// the customer when the order enters that status. Cancellation deliberately
// has no route: cancellations are communicated by a human, not a template.
var statusRoutes = map[model.OrderStatus]model.NotificationRoute{
	model.OrderStatusPending:    model.RouteOrderReceived,
	model.OrderStatusProcessing: model.RouteOrderProcessing,
	model.OrderStatusShipped:    model.RouteOrderOutForDelivery,
	model.OrderStatusDelivered:  model.RouteOrderDelivered,
}

// StatusUseCase handles order status transitions and the assembly of
// outbound notification intents.
type StatusUseCase struct {
	orders repository.OrderRepository
}

// NewStatusUseCase constructs StatusUseCase.
func NewStatusUseCase(orders repository.OrderRepository) *StatusUseCase {
	return &StatusUseCase{orders: orders}
}

// Change sets the order status and appends the matching timeline entry.
// For a real transition it also assembles a NotificationIntent for the new
// status; nothing is sent until the caller explicitly confirms the intent.
// When the intent payload cannot be completed the updated order is returned
// together with ErrMissingNotificationField: the status mutation always
// survives, notification problems never roll it back.
func (u *StatusUseCase) Change(ctx context.Context, orderID int64, newStatus model.OrderStatus, now time.Time) (*model.Order, *model.NotificationIntent, error) {
	if !newStatus.IsValid() {
		return nil, nil, domainErrors.ErrInvalidStatus
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	if newStatus == order.Status {
		updated, err := u.orders.UpdateStatus(ctx, repository.StatusUpdate{
			OrderID:         order.ID,
			ExpectedVersion: order.Version,
			Status:          order.Status,
			Entry:           model.TimelineEntry{Date: now, Action: "Details updated"},
		})
		return updated, nil, err
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, nil, domainErrors.ErrInvalidStatus
	}

	updated, err := u.orders.UpdateStatus(ctx, repository.StatusUpdate{
		OrderID:         order.ID,
		ExpectedVersion: order.Version,
		Status:          newStatus,
		Entry:           model.TimelineEntry{Date: now, Action: newStatus.DisplayName()},
	})
	if err != nil {
		return nil, nil, err
	}

	intent, err := BuildNotificationIntent(updated)
	if err != nil {
		return updated, nil, err
	}
	return updated, intent, nil
}

// BuildNotificationIntent assembles the outbound notification for the
// order's current status. It returns nil when the status has no route
// registered, and ErrMissingNotificationField when a required payload field
// is empty, so a malformed request never reaches the gateway.
func BuildNotificationIntent(order *model.Order) (*model.NotificationIntent, error) {
	route, ok := statusRoutes[order.Status]
	if !ok {
		return nil, nil
	}

	payload := map[string]string{
		"phone": order.Customer.Phone,
		"name":  order.Customer.Name,
	}

	switch route {
	case model.RouteOrderReceived, model.RouteOrderProcessing:
		payload["order_number"] = order.Number
		payload["order_date"] = order.OrderDate.Format("2006-01-02")
	case model.RouteOrderOutForDelivery:
		payload["delivery_window"] = order.DeliveryWindow
	case model.RouteOrderDelivered:
		payload["order_number"] = order.Number
		payload["total_amount"] = fmt.Sprintf("%.2f", order.TotalAmount)
	}

	for field, value := range payload {
		if value == "" {
			return nil, fmt.Errorf("%w: %s", domainErrors.ErrMissingNotificationField, field)
		}
	}

	return &model.NotificationIntent{OrderID: order.ID, Route: route, Payload: payload}, nil
}
