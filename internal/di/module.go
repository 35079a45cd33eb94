package di

import (
	"go.uber.org/fx"

	"github.com/okunev/orderdesk/internal/adapter/notify"
	"github.com/okunev/orderdesk/internal/app"
	"github.com/okunev/orderdesk/internal/config"
	"github.com/okunev/orderdesk/internal/logger"
	"github.com/okunev/orderdesk/internal/pkg/auth"
	"github.com/okunev/orderdesk/internal/server/http/router"
	"github.com/okunev/orderdesk/internal/storage/postgres"
	"github.com/okunev/orderdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(sender notify.Sender) app.NotificationSender { return sender }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
