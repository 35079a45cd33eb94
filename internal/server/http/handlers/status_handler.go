package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/server/http/dto"
)

// StatusHandler manages status transitions and notification confirmation.
type StatusHandler struct {
	facade StatusFacade
}

// NewStatusHandler constructs StatusHandler.
func NewStatusHandler(facade StatusFacade) *StatusHandler {
	return &StatusHandler{facade: facade}
}

// Change handles POST /api/orders/:id/status. The status mutation always
// wins: an incomplete notification payload is reported alongside the
// updated order, never as a failed request.
func (h *StatusHandler) Change(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, intent, err := h.facade.ChangeStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil && !errors.Is(err, domainErrors.ErrMissingNotificationField) {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrConflict):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	resp := dto.StatusChangeResponse{
		Order:  toOrderResponse(order),
		Intent: toIntentResponse(intent),
	}
	if err != nil {
		resp.NotificationError = err.Error()
	}

	c.JSON(http.StatusOK, resp)
}

// ConfirmNotification handles POST /api/notifications/confirm. Only a
// confirmed intent reaches the gateway; a rejected dialog simply never
// calls this endpoint.
func (h *StatusHandler) ConfirmNotification(c *gin.Context) {
	var req dto.NotificationIntent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.Route == "" || len(req.Payload) == 0 {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	result, err := h.facade.ConfirmNotification(c.Request.Context(), &model.NotificationIntent{
		OrderID: req.OrderID,
		Route:   model.NotificationRoute(req.Route),
		Payload: req.Payload,
	})
	if err != nil {
		c.Status(http.StatusBadGateway)
		return
	}

	c.JSON(http.StatusOK, dto.SendResultResponse{Success: result.Success, Message: result.Message})
}
