// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogMapping binds a catalog entity to its GORM model.
type catalogMapping[T entity.CatalogEntity, M any] struct {
	name       string // used in error messages
	keyColumn  string
	toDomain   func(*M) *T
	fromDomain func(*T) *M
	idOf       func(*T) uuid.UUID
}

// catalogRepository implements repository.CatalogRepository for one entity/model pair.
type catalogRepository[T entity.CatalogEntity, M any] struct {
	db      *gorm.DB
	mapping catalogMapping[T, M]
}

func newCatalogRepository[T entity.CatalogEntity, M any](db *gorm.DB, mapping catalogMapping[T, M]) repository.CatalogRepository[T] {
	return &catalogRepository[T, M]{
		db:      db,
		mapping: mapping,
	}
}

// List returns items ordered by sort order, then creation time.
func (repo *catalogRepository[T, M]) List(ctx context.Context, activeOnly bool) ([]*T, error) {
	var models []*M

	tx := repo.db.WithContext(ctx).Model(new(M))
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}
	if err := tx.Order("sort_order ASC").Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", repo.mapping.name)
	}

	items := make([]*T, 0, len(models))
	for _, m := range models {
		items = append(items, repo.mapping.toDomain(m))
	}

	return items, nil
}

// FindByID retrieves an item by its surrogate ID.
func (repo *catalogRepository[T, M]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return repo.first(ctx, "id = ?", id)
}

// FindByKey retrieves an item by its business key.
func (repo *catalogRepository[T, M]) FindByKey(ctx context.Context, key string) (*T, error) {
	return repo.first(ctx, repo.mapping.keyColumn+" = ?", key)
}

func (repo *catalogRepository[T, M]) first(ctx context.Context, query string, arg any) (*T, error) {
	m := new(M)

	if err := repo.db.WithContext(ctx).Where(query, arg).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogItemNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s", repo.mapping.name)
	}

	return repo.mapping.toDomain(m), nil
}

// Create persists a new item and copies generated values back into it.
func (repo *catalogRepository[T, M]) Create(ctx context.Context, item *T) error {
	m := repo.mapping.fromDomain(item)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCatalogKey
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required " + repo.mapping.name + " information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+repo.mapping.name)
	}

	*item = *repo.mapping.toDomain(m)

	return nil
}

// Update overwrites every editable column, including zero values such as is_active=false.
func (repo *catalogRepository[T, M]) Update(ctx context.Context, item *T) error {
	m := repo.mapping.fromDomain(item)

	result := repo.db.WithContext(ctx).
		Model(m).
		Where("id = ?", repo.mapping.idOf(item)).
		Select("*").
		Omit("id", "created_at").
		Updates(m)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCatalogKey
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update "+repo.mapping.name)
	}

	if result.RowsAffected == 0 {
		return repository.ErrCatalogItemNotFound
	}

	return nil
}

// Delete removes an item.
func (repo *catalogRepository[T, M]) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(M))

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete %s", repo.mapping.name)
	}

	if result.RowsAffected == 0 {
		return repository.ErrCatalogItemNotFound
	}

	return nil
}

// Count returns the number of stored items.
func (repo *catalogRepository[T, M]) Count(ctx context.Context) (int64, error) {
	var n int64

	if err := repo.db.WithContext(ctx).Model(new(M)).Count(&n).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to count %s", repo.mapping.name)
	}

	return n, nil
}
