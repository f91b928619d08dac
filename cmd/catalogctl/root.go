package main

import (
	"context"
	"log/slog"
	"time"

	"bartile/config"
	"bartile/internal/domain/repository"
	"bartile/internal/infra/auth"
	"bartile/internal/infra/auth/google"
	logs "bartile/internal/infra/log"
	"bartile/internal/infra/persistence/postgres"
	"bartile/internal/usecase"
	"bartile/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const commandTimeout = 2 * time.Minute

// deps are the components a command may use, populated by fx.
type deps struct {
	fx.In

	DB        *gorm.DB
	TxManager repository.TransactionManager
	AuthUC    usecase.AuthUsecase
	Logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Maintain the tile configurator database",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newCreateAdminCmd(),
	)

	return cmd
}

// withDeps starts the database and auth stack, runs fn, then shuts everything down.
func withDeps(cmd *cobra.Command, fn func(ctx context.Context, d deps) error) error {
	var d deps
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			impl.NewAuthService,
		),
		fx.Populate(&d),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			d.Logger.Warn("Shutdown failed", slog.Any("error", err))
		}
	}()

	return fn(ctx, d)
}
