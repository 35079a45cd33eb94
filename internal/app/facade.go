package app

import (
	"context"
	"time"

	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/usecase"
)

// NotificationSender delivers confirmed notification intents.
type NotificationSender interface {
	Send(ctx context.Context, intent *model.NotificationIntent) (*model.SendResult, error)
}

// OrderDeskFacade aggregates the application operations exposed to the
// HTTP layer.
type OrderDeskFacade struct {
	auth      *usecase.AuthUseCase
	orders    *usecase.OrderUseCase
	payments  *usecase.PaymentUseCase
	statuses  *usecase.StatusUseCase
	customers *usecase.ImportUseCase
	sender    NotificationSender
}

// NewOrderDeskFacade constructs the facade.
func NewOrderDeskFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	payments *usecase.PaymentUseCase,
	statuses *usecase.StatusUseCase,
	customers *usecase.ImportUseCase,
	sender NotificationSender,
) *OrderDeskFacade {
	return &OrderDeskFacade{
		auth:      auth,
		orders:    orders,
		payments:  payments,
		statuses:  statuses,
		customers: customers,
		sender:    sender,
	}
}

func (f *OrderDeskFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *OrderDeskFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *OrderDeskFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *OrderDeskFacade) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, in)
}

func (f *OrderDeskFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *OrderDeskFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.GetByID(ctx, id)
}

func (f *OrderDeskFacade) CollectPayment(ctx context.Context, orderID int64, redeem bool) (*model.Order, error) {
	return f.payments.Collect(ctx, orderID, redeem, time.Now())
}

func (f *OrderDeskFacade) ChangeStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, *model.NotificationIntent, error) {
	return f.statuses.Change(ctx, orderID, status, time.Now())
}

func (f *OrderDeskFacade) ConfirmNotification(ctx context.Context, intent *model.NotificationIntent) (*model.SendResult, error) {
	return f.sender.Send(ctx, intent)
}

func (f *OrderDeskFacade) ImportCustomers(ctx context.Context, records []usecase.ImportRecord) *usecase.ImportSummary {
	return f.customers.Import(ctx, records)
}

func (f *OrderDeskFacade) CreateCustomer(ctx context.Context, name, phone string) (*model.Customer, error) {
	return f.customers.CreateCustomer(ctx, name, phone)
}

func (f *OrderDeskFacade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.customers.GetCustomer(ctx, id)
}
