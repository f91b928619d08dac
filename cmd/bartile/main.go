package main

import (
	"context"
	"log/slog"
	"os"

	"bartile/config"
	"bartile/internal/delivery"
	"bartile/internal/delivery/api"
	"bartile/internal/delivery/api/middleware"
	"bartile/internal/delivery/api/router/handler"
	"bartile/internal/domain/service"
	"bartile/internal/infra/auth"
	"bartile/internal/infra/auth/google"
	logs "bartile/internal/infra/log"
	"bartile/internal/infra/notification"
	"bartile/internal/infra/persistence/postgres"
	"bartile/internal/infra/pubsub"
	"bartile/internal/infra/qrcode"
	"bartile/internal/infra/storage"
	"bartile/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProfileRepository,
			postgres.NewColorRepository,
			postgres.NewTextureRepository,
			postgres.NewHousePreviewRepository,
			postgres.NewQuoteRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			notification.NewNotificationService,
			storage.NewFileStorage,
			newQRCodeService,
		),
	)
}

// newQRCodeService builds the share-link QR encoder from configuration.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileCatalog,
			impl.NewColorCatalog,
			impl.NewTextureCatalog,
			impl.NewHouseCatalog,
			impl.NewQuoteService,
			impl.NewConfiguratorService,
			impl.NewAuthService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewConfiguratorHandler,
			handler.NewAuthHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
