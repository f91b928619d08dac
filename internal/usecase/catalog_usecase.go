// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bartile/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase manages one kind of catalog item for both the public
// configurator and the admin console.
type CatalogUsecase[T entity.CatalogEntity] interface {
	// ListActive returns the items shown to customers, in display order.
	ListActive(ctx context.Context) ([]*T, error)
	// ListAll returns every item, including inactive ones.
	ListAll(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	// GetActiveByKey resolves a business key to a selectable item.
	GetActiveByKey(ctx context.Context, key string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id uuid.UUID, item *T) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileCatalog manages tile profiles.
type ProfileCatalog = CatalogUsecase[entity.Profile]

// ColorCatalog manages tile colors.
type ColorCatalog = CatalogUsecase[entity.Color]

// TextureCatalog manages tile textures.
type TextureCatalog = CatalogUsecase[entity.Texture]

// HouseCatalog manages house preview images.
type HouseCatalog = CatalogUsecase[entity.HousePreview]
