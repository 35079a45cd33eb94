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

type customerFacadeStub struct {
	importFn func(context.Context, []usecase.ImportRecord) *usecase.ImportSummary
	createFn func(context.Context, string, string) (*model.Customer, error)
	getFn    func(context.Context, int64) (*model.Customer, error)
}

func (s customerFacadeStub) ImportCustomers(ctx context.Context, records []usecase.ImportRecord) *usecase.ImportSummary {
	return s.importFn(ctx, records)
}

func (s customerFacadeStub) CreateCustomer(ctx context.Context, name, phone string) (*model.Customer, error) {
	return s.createFn(ctx, name, phone)
}

func (s customerFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return s.getFn(ctx, id)
}

func customerRouter(facade CustomerFacade) *gin.Engine {
	router := gin.New()
	handler := NewCustomerHandler(facade)
	router.POST("/api/customers", handler.Create)
	router.GET("/api/customers/:id", handler.Get)
	router.POST("/api/customers/import", handler.Import)
	return router
}

func TestCustomerHandlerImport(t *testing.T) {
	var gotRecords []usecase.ImportRecord
	facade := customerFacadeStub{
		importFn: func(_ context.Context, records []usecase.ImportRecord) *usecase.ImportSummary {
			gotRecords = records
			return &usecase.ImportSummary{
				Created:     []model.Customer{{ID: 1}, {ID: 2}},
				FailedCount: 1,
			}
		},
	}

	body := `[{"name":"Ann","phone":"+1"},{"name":"Bob","phone":"+2"},{"name":"","phone":"+3"}]`
	rec := performRequest(customerRouter(facade), http.MethodPost, "/api/customers/import", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if len(gotRecords) != 3 {
		t.Errorf("records passed = %d, want 3", len(gotRecords))
	}

	var resp dto.ImportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Created != 2 || resp.FailedCount != 1 {
		t.Errorf("response = %+v, want 2 created, 1 failed", resp)
	}
}

func TestCustomerHandlerImportEmptyBatch(t *testing.T) {
	facade := customerFacadeStub{
		importFn: func(context.Context, []usecase.ImportRecord) *usecase.ImportSummary {
			t.Fatal("facade must not be called")
			return nil
		},
	}

	rec := performRequest(customerRouter(facade), http.MethodPost, "/api/customers/import", `[]`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestCustomerHandlerCreate(t *testing.T) {
	facade := customerFacadeStub{
		createFn: func(_ context.Context, name, phone string) (*model.Customer, error) {
			return &model.Customer{ID: 5, Name: name, Phone: phone}, nil
		},
	}

	rec := performRequest(customerRouter(facade), http.MethodPost, "/api/customers", `{"name":"Ann","phone":"+100"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var resp dto.CustomerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 5 || resp.Name != "Ann" {
		t.Errorf("response = %+v", resp)
	}
}

func TestCustomerHandlerCreateErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "incomplete record", err: domainErrors.ErrIncompleteRecord, want: http.StatusUnprocessableEntity},
		{name: "duplicate phone", err: domainErrors.ErrAlreadyExists, want: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := customerFacadeStub{
				createFn: func(context.Context, string, string) (*model.Customer, error) {
					return nil, tt.err
				},
			}

			rec := performRequest(customerRouter(facade), http.MethodPost, "/api/customers", `{"name":"Ann","phone":"+100"}`)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestCustomerHandlerGetNotFound(t *testing.T) {
	facade := customerFacadeStub{
		getFn: func(context.Context, int64) (*model.Customer, error) {
			return nil, domainErrors.ErrNotFound
		},
	}

	rec := performRequest(customerRouter(facade), http.MethodGet, "/api/customers/42", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
