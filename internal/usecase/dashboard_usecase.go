package usecase

import (
	"context"

	"bartile/internal/domain/entity"
)

// DashboardUsecase gathers the admin landing page figures.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}
