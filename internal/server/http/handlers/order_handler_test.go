package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/server/http/dto"
	"github.com/okunev/orderdesk/internal/usecase"
)

type orderFacadeStub struct {
	createFn func(context.Context, usecase.CreateOrderInput) (*model.Order, error)
	listFn   func(context.Context) ([]model.Order, error)
	getFn    func(context.Context, int64) (*model.Order, error)
}

func (s orderFacadeStub) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
	return s.createFn(ctx, in)
}

func (s orderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	return s.listFn(ctx)
}

func (s orderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	return s.getFn(ctx, id)
}

func orderRouter(facade OrderFacade) *gin.Engine {
	router := gin.New()
	handler := NewOrderHandler(facade)
	router.POST("/api/orders", handler.Create)
	router.GET("/api/orders", handler.List)
	router.GET("/api/orders/:id", handler.Get)
	return router
}

func TestOrderHandlerCreate(t *testing.T) {
	facade := orderFacadeStub{
		createFn: func(_ context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
			return &model.Order{
				ID:          1,
				Number:      in.Number,
				CustomerID:  in.CustomerID,
				TotalAmount: in.TotalAmount,
				Status:      model.OrderStatusPending,
				Payment:     model.Payment{TotalAmount: in.TotalAmount},
			}, nil
		},
	}

	body := `{"number":"ORD-1","customer_id":7,"total_amount":1500}`
	rec := performRequest(orderRouter(facade), http.MethodPost, "/api/orders", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var resp dto.OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Number != "ORD-1" {
		t.Errorf("number = %q, want %q", resp.Number, "ORD-1")
	}
	if resp.BalanceDue != 1500 {
		t.Errorf("balance_due = %v, want 1500", resp.BalanceDue)
	}
}

func TestOrderHandlerCreateErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad number", err: domainErrors.ErrInvalidOrderNumber, want: http.StatusUnprocessableEntity},
		{name: "bad amount", err: domainErrors.ErrInvalidAmount, want: http.StatusUnprocessableEntity},
		{name: "duplicate number", err: domainErrors.ErrAlreadyExists, want: http.StatusConflict},
		{name: "unknown customer", err: domainErrors.ErrNotFound, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := orderFacadeStub{
				createFn: func(context.Context, usecase.CreateOrderInput) (*model.Order, error) {
					return nil, tt.err
				},
			}

			rec := performRequest(orderRouter(facade), http.MethodPost, "/api/orders", `{"number":"ORD-1","customer_id":7,"total_amount":10}`)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestOrderHandlerListEmpty(t *testing.T) {
	facade := orderFacadeStub{
		listFn: func(context.Context) ([]model.Order, error) { return nil, nil },
	}

	rec := performRequest(orderRouter(facade), http.MethodGet, "/api/orders", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestOrderHandlerList(t *testing.T) {
	facade := orderFacadeStub{
		listFn: func(context.Context) ([]model.Order, error) {
			return []model.Order{
				{ID: 2, Number: "ORD-2", TotalAmount: 500},
				{ID: 1, Number: "ORD-1", TotalAmount: 1000},
			}, nil
		},
	}

	rec := performRequest(orderRouter(facade), http.MethodGet, "/api/orders", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp []dto.OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("orders = %d, want 2", len(resp))
	}
	if resp[0].Number != "ORD-2" {
		t.Errorf("first order = %q, want list order preserved", resp[0].Number)
	}
}

func TestOrderHandlerGetNotFound(t *testing.T) {
	facade := orderFacadeStub{
		getFn: func(context.Context, int64) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		},
	}

	rec := performRequest(orderRouter(facade), http.MethodGet, "/api/orders/42", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
