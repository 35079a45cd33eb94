package test

import (
	"context"
	"sync"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/domain/repository"
)

// OperatorRepositoryStub stores operators in-memory for tests.
type OperatorRepositoryStub struct {
	Operators map[string]*model.Operator
	ByID      map[int64]*model.Operator
	Next      int64
	Err       error
}

// NewOperatorRepositoryStub constructs stub repository with initialized maps.
func NewOperatorRepositoryStub() *OperatorRepositoryStub {
	return &OperatorRepositoryStub{
		Operators: make(map[string]*model.Operator),
		ByID:      make(map[int64]*model.Operator),
		Next:      1,
	}
}

// Create registers operator unless already exists or stub has explicit error.
func (s *OperatorRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.Operator, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Operators[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	op := &model.Operator{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Operators[login] = op
	s.ByID[op.ID] = op
	return op, nil
}

// GetByLogin fetches operator by login or returns not found.
func (s *OperatorRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Operator, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if op, ok := s.Operators[login]; ok {
		return op, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches operator by identifier or returns not found.
func (s *OperatorRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Operator, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if op, ok := s.ByID[id]; ok {
		return op, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize behaviour per call.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, repository.NewOrder) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListFn         func(context.Context) ([]model.Order, error)
	ApplyPaymentFn func(context.Context, repository.PaymentUpdate) (*model.Order, error)
	UpdateStatusFn func(context.Context, repository.StatusUpdate) (*model.Order, error)
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) ApplyPayment(ctx context.Context, upd repository.PaymentUpdate) (*model.Order, error) {
	if s.ApplyPaymentFn != nil {
		return s.ApplyPaymentFn(ctx, upd)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, upd repository.StatusUpdate) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, upd)
	}
	return nil, domainErrors.ErrNotFound
}

// CustomerRepositoryStub stores customers in-memory; CreateFn, when set,
// overrides the default create behaviour. Safe for concurrent use so the
// import pool can hammer it.
type CustomerRepositoryStub struct {
	mu       sync.Mutex
	ByPhone  map[string]*model.Customer
	ByID     map[int64]*model.Customer
	Next     int64
	CreateFn func(context.Context, string, string) (*model.Customer, error)
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{
		ByPhone: make(map[string]*model.Customer),
		ByID:    make(map[int64]*model.Customer),
		Next:    1,
	}
}

func (s *CustomerRepositoryStub) Create(ctx context.Context, name, phone string) (*model.Customer, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, phone)
	}
	return s.Put(name, phone)
}

// Put inserts a customer bypassing CreateFn, enforcing phone uniqueness.
func (s *CustomerRepositoryStub) Put(name, phone string) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ByPhone[phone]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	c := &model.Customer{ID: s.Next, Name: name, Phone: phone}
	s.Next++
	s.ByPhone[phone] = c
	s.ByID[c.ID] = c
	return c, nil
}

func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.ByID[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}
