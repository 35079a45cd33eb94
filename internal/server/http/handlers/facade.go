package handlers

import (
	"context"

	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// OrderFacade encapsulates order intake and queries exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
}

// PaymentFacade provides payment reconciliation.
type PaymentFacade interface {
	CollectPayment(ctx context.Context, orderID int64, redeem bool) (*model.Order, error)
}

// StatusFacade provides status transitions and notification confirmation.
type StatusFacade interface {
	ChangeStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, *model.NotificationIntent, error)
	ConfirmNotification(ctx context.Context, intent *model.NotificationIntent) (*model.SendResult, error)
}

// CustomerFacade provides customer records and bulk import.
type CustomerFacade interface {
	ImportCustomers(ctx context.Context, records []usecase.ImportRecord) *usecase.ImportSummary
	CreateCustomer(ctx context.Context, name, phone string) (*model.Customer, error)
	Customer(ctx context.Context, id int64) (*model.Customer, error)
}

// OrderDeskFacade aggregates the full set of operations used across handlers.
type OrderDeskFacade interface {
	AuthFacade
	OrderFacade
	PaymentFacade
	StatusFacade
	CustomerFacade
}
