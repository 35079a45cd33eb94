package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/server/http/dto"
	"github.com/okunev/orderdesk/internal/server/http/middleware"
	"github.com/okunev/orderdesk/internal/usecase"
)

// CurrentOperatorID extracts the authenticated operator identifier from context.
func CurrentOperatorID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.OperatorIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:             order.ID,
		Number:         order.Number,
		CustomerID:     order.CustomerID,
		CustomerName:   order.Customer.Name,
		CustomerPhone:  order.Customer.Phone,
		RewardPoint:    order.Customer.RewardPoint,
		TotalAmount:    order.TotalAmount,
		Status:         string(order.Status),
		PaymentStatus:  string(order.PaymentStatus),
		TotalPaid:      order.Payment.TotalPaid,
		BalanceDue:     usecase.ComputeBalanceDue(order, false),
		OrderDate:      order.OrderDate,
		DeliveryWindow: order.DeliveryWindow,
	}
	for _, p := range order.Payment.PartialPayments {
		resp.PartialPayments = append(resp.PartialPayments, dto.PartialPaymentEntry{Date: p.Date, AmountPaid: p.AmountPaid})
	}
	for _, e := range order.Timeline {
		resp.Timeline = append(resp.Timeline, dto.TimelineEntry{Date: e.Date, Action: e.Action})
	}
	return resp
}

func toIntentResponse(intent *model.NotificationIntent) *dto.NotificationIntent {
	if intent == nil {
		return nil
	}
	return &dto.NotificationIntent{
		OrderID: intent.OrderID,
		Route:   string(intent.Route),
		Payload: intent.Payload,
	}
}

func toCustomerResponse(c *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, RewardPoint: c.RewardPoint}
}
