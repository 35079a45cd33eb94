package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/server/http/dto"
	"github.com/okunev/orderdesk/internal/usecase"
)

// CustomerHandler manages customer records and bulk import.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	customer, err := h.facade.CreateCustomer(c.Request.Context(), req.Name, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrIncompleteRecord):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// Get handles GET /api/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	customer, err := h.facade.Customer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Import handles POST /api/customers/import. The batch is best-effort:
// individual failures are counted and the rest of the records proceed.
func (h *CustomerHandler) Import(c *gin.Context) {
	var req []dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if len(req) == 0 {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	records := make([]usecase.ImportRecord, 0, len(req))
	for _, r := range req {
		records = append(records, usecase.ImportRecord{Name: r.Name, Phone: r.Phone})
	}

	summary := h.facade.ImportCustomers(c.Request.Context(), records)
	c.JSON(http.StatusOK, dto.ImportResponse{Created: len(summary.Created), FailedCount: summary.FailedCount})
}
