package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/okunev/orderdesk/internal/config"
)

// Module exposes the notification gateway client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Sender, error) {
	return NewHTTPClient(p.Config.NotifyServiceAddress, p.Logger)
}
