package test

import (
	"context"

	"github.com/okunev/orderdesk/internal/domain/model"
)

// SenderStub fakes the notification gateway.
type SenderStub struct {
	SendFn func(context.Context, *model.NotificationIntent) (*model.SendResult, error)
	Sent   []*model.NotificationIntent
}

func (s *SenderStub) Send(ctx context.Context, intent *model.NotificationIntent) (*model.SendResult, error) {
	s.Sent = append(s.Sent, intent)
	if s.SendFn != nil {
		return s.SendFn(ctx, intent)
	}
	return &model.SendResult{Success: true, Message: "sent"}, nil
}
