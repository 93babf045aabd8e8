//go:build wireinject
// +build wireinject

package accounts

import (
	"context"

	"github.com/google/wire"
	"github.com/topfreegames/payout/internal/config"
	"github.com/topfreegames/payout/internal/core/ports"
	"github.com/topfreegames/payout/internal/service"
)

func initializeAccountService(ctx context.Context, c config.Config) (ports.AccountService, error) {
	wire.Build(
		// ports + adapters
		service.NewPaymentAccountRepositoryPg,
		service.NewPaymentAccountCache,

		// services
		service.NewAccountsConfig,
		service.NewAccountService,
	)

	return nil, nil
}
