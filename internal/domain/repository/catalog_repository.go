// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bartile/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrCatalogItemNotFound is returned when a profile, color, texture or house preview does not exist.
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	// ErrDuplicateCatalogKey is returned when a business key (profile_id, color_id, ...) is already taken.
	ErrDuplicateCatalogKey = errors.New("catalog key already exists")
)

// CatalogRepository defines the persistence operations shared by every catalog entity.
type CatalogRepository[T entity.CatalogEntity] interface {
	// List returns items ordered by sort order. When activeOnly is set, inactive items are skipped.
	List(ctx context.Context, activeOnly bool) ([]*T, error)

	// FindByID retrieves an item by its surrogate ID.
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)

	// FindByKey retrieves an item by its business key.
	FindByKey(ctx context.Context, key string) (*T, error)

	// Create persists a new item and fills in its ID and timestamps.
	Create(ctx context.Context, item *T) error

	// Update overwrites the editable fields of an existing item.
	Update(ctx context.Context, item *T) error

	// Delete removes an item.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of stored items.
	Count(ctx context.Context) (int64, error)
}

// ProfileRepository persists tile profiles.
type ProfileRepository = CatalogRepository[entity.Profile]

// ColorRepository persists tile colors.
type ColorRepository = CatalogRepository[entity.Color]

// TextureRepository persists tile textures.
type TextureRepository = CatalogRepository[entity.Texture]

// HousePreviewRepository persists house preview backdrops.
type HousePreviewRepository = CatalogRepository[entity.HousePreview]
