package impl

import (
	"context"
	"log/slog"

	"bartile/internal/domain/entity"
	"bartile/internal/domain/repository"
	"bartile/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	profileRepo repository.ProfileRepository
	colorRepo   repository.ColorRepository
	textureRepo repository.TextureRepository
	houseRepo   repository.HousePreviewRepository
	quoteRepo   repository.QuoteRepository
	logger      *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	ColorRepo   repository.ColorRepository
	TextureRepo repository.TextureRepository
	HouseRepo   repository.HousePreviewRepository
	QuoteRepo   repository.QuoteRepository
	Logger      *slog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		profileRepo: params.ProfileRepo,
		colorRepo:   params.ColorRepo,
		textureRepo: params.TextureRepo,
		houseRepo:   params.HouseRepo,
		quoteRepo:   params.QuoteRepo,
		logger:      params.Logger,
	}
}

// Stats loads every count concurrently; the first failure cancels the rest.
func (srv *dashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	count := func(name string, dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return errors.Wrapf(err, "failed to count %s", name)
			}
			*dst = n

			return nil
		})
	}

	count("profiles", &stats.Profiles, srv.profileRepo.Count)
	count("colors", &stats.Colors, srv.colorRepo.Count)
	count("textures", &stats.Textures, srv.textureRepo.Count)
	count("houses", &stats.Houses, srv.houseRepo.Count)
	count("quotes", &stats.Quotes, func(ctx context.Context) (int64, error) {
		return srv.quoteRepo.Count(ctx, "")
	})
	count("pending quotes", &stats.PendingQuotes, func(ctx context.Context) (int64, error) {
		return srv.quoteRepo.Count(ctx, entity.QuoteStatusPending)
	})

	if err := g.Wait(); err != nil {
		srv.logger.Error("Failed to load dashboard stats", slog.Any("error", err))

		return nil, err
	}

	return stats, nil
}
