package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/okunev/orderdesk/internal/config"
	"github.com/okunev/orderdesk/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewOrderUseCase,
	NewPaymentUseCase,
	NewStatusUseCase,
	newImportUseCase,
)

type importParams struct {
	fx.In

	Customers repository.CustomerRepository
	Config    *config.Config
	Logger    *slog.Logger
}

func newImportUseCase(p importParams) *ImportUseCase {
	return NewImportUseCase(p.Customers, p.Config.ImportConcurrency, p.Logger)
}
