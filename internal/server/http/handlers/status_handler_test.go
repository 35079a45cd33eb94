package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/server/http/dto"
)

type statusFacadeStub struct {
	changeFn  func(context.Context, int64, model.OrderStatus) (*model.Order, *model.NotificationIntent, error)
	confirmFn func(context.Context, *model.NotificationIntent) (*model.SendResult, error)
}

func (s statusFacadeStub) ChangeStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, *model.NotificationIntent, error) {
	return s.changeFn(ctx, orderID, status)
}

func (s statusFacadeStub) ConfirmNotification(ctx context.Context, intent *model.NotificationIntent) (*model.SendResult, error) {
	return s.confirmFn(ctx, intent)
}

func statusRouter(facade StatusFacade) *gin.Engine {
	router := gin.New()
	handler := NewStatusHandler(facade)
	router.POST("/api/orders/:id/status", handler.Change)
	router.POST("/api/notifications/confirm", handler.ConfirmNotification)
	return router
}

func TestStatusHandlerChangeWithIntent(t *testing.T) {
	facade := statusFacadeStub{
		changeFn: func(_ context.Context, orderID int64, status model.OrderStatus) (*model.Order, *model.NotificationIntent, error) {
			order := &model.Order{ID: orderID, Number: "ORD-1", Status: status, TotalAmount: 1000}
			intent := &model.NotificationIntent{
				OrderID: orderID,
				Route:   model.RouteOrderOutForDelivery,
				Payload: map[string]string{"phone": "+100", "name": "Ann", "delivery_window": "10:00-14:00"},
			}
			return order, intent, nil
		},
	}

	rec := performRequest(statusRouter(facade), http.MethodPost, "/api/orders/1/status", `{"status":"SHIPPED"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp dto.StatusChangeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Order.Status != string(model.OrderStatusShipped) {
		t.Errorf("order status = %q, want %q", resp.Order.Status, model.OrderStatusShipped)
	}
	if resp.Intent == nil {
		t.Fatal("intent missing from response")
	}
	if resp.Intent.Route != string(model.RouteOrderOutForDelivery) {
		t.Errorf("intent route = %q, want %q", resp.Intent.Route, model.RouteOrderOutForDelivery)
	}
	if resp.NotificationError != "" {
		t.Errorf("notification_error = %q, want empty", resp.NotificationError)
	}
}

func TestStatusHandlerChangeMissingField(t *testing.T) {
	facade := statusFacadeStub{
		changeFn: func(_ context.Context, orderID int64, status model.OrderStatus) (*model.Order, *model.NotificationIntent, error) {
			order := &model.Order{ID: orderID, Status: status}
			return order, nil, fmt.Errorf("%w: delivery_window", domainErrors.ErrMissingNotificationField)
		},
	}

	rec := performRequest(statusRouter(facade), http.MethodPost, "/api/orders/1/status", `{"status":"SHIPPED"}`)

	// The mutation persisted, so the request still succeeds.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp dto.StatusChangeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Intent != nil {
		t.Errorf("intent = %+v, want nil", resp.Intent)
	}
	if resp.NotificationError == "" {
		t.Error("notification_error missing")
	}
}

func TestStatusHandlerChangeErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown order", err: domainErrors.ErrNotFound, want: http.StatusNotFound},
		{name: "invalid status", err: domainErrors.ErrInvalidStatus, want: http.StatusUnprocessableEntity},
		{name: "concurrent update", err: domainErrors.ErrConflict, want: http.StatusConflict},
		{name: "storage failure", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := statusFacadeStub{
				changeFn: func(context.Context, int64, model.OrderStatus) (*model.Order, *model.NotificationIntent, error) {
					return nil, nil, tt.err
				},
			}

			rec := performRequest(statusRouter(facade), http.MethodPost, "/api/orders/1/status", `{"status":"SHIPPED"}`)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestStatusHandlerConfirmNotification(t *testing.T) {
	var gotRoute model.NotificationRoute
	facade := statusFacadeStub{
		confirmFn: func(_ context.Context, intent *model.NotificationIntent) (*model.SendResult, error) {
			gotRoute = intent.Route
			return &model.SendResult{Success: true, Message: "queued"}, nil
		},
	}

	body := `{"order_id":1,"route":"order-delivered","payload":{"phone":"+100","name":"Ann","order_number":"ORD-1","total_amount":"1000.00"}}`
	rec := performRequest(statusRouter(facade), http.MethodPost, "/api/notifications/confirm", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotRoute != model.RouteOrderDelivered {
		t.Errorf("route = %q, want %q", gotRoute, model.RouteOrderDelivered)
	}

	var resp dto.SendResultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message != "queued" {
		t.Errorf("response = %+v, want success with gateway message", resp)
	}
}

func TestStatusHandlerConfirmNotificationValidation(t *testing.T) {
	facade := statusFacadeStub{
		confirmFn: func(context.Context, *model.NotificationIntent) (*model.SendResult, error) {
			t.Fatal("facade must not be called")
			return nil, nil
		},
	}
	router := statusRouter(facade)

	for _, tt := range []struct {
		name string
		body string
		want int
	}{
		{name: "malformed body", body: `{`, want: http.StatusBadRequest},
		{name: "missing route", body: `{"order_id":1,"payload":{"phone":"+100"}}`, want: http.StatusUnprocessableEntity},
		{name: "empty payload", body: `{"order_id":1,"route":"order-delivered"}`, want: http.StatusUnprocessableEntity},
	} {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(router, http.MethodPost, "/api/notifications/confirm", tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestStatusHandlerConfirmNotificationGatewayDown(t *testing.T) {
	facade := statusFacadeStub{
		confirmFn: func(context.Context, *model.NotificationIntent) (*model.SendResult, error) {
			return nil, errors.New("connection refused")
		},
	}

	body := `{"order_id":1,"route":"order-delivered","payload":{"phone":"+100"}}`
	rec := performRequest(statusRouter(facade), http.MethodPost, "/api/notifications/confirm", body)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}
