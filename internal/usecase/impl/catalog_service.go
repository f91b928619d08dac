// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bartile/internal/delivery/context"
	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/repository"
	"bartile/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogRules describes what differs between catalog item kinds.
type catalogRules[T entity.CatalogEntity] struct {
	name     string
	notFound *domainerrors.BaseError
	// normalize trims input, derives missing keys and checks required fields.
	normalize func(*T) error
	key       func(*T) string
	isActive  func(*T) bool
	// identify copies the identity of a stored item onto an incoming update.
	identify func(item *T, id uuid.UUID, createdAt time.Time)
	stored   func(*T) (uuid.UUID, time.Time)
}

// catalogService implements usecase.CatalogUsecase for one catalog item kind.
type catalogService[T entity.CatalogEntity] struct {
	repo   repository.CatalogRepository[T]
	rules  catalogRules[T]
	logger *slog.Logger
}

func newCatalogService[T entity.CatalogEntity](repo repository.CatalogRepository[T], rules catalogRules[T], logger *slog.Logger) usecase.CatalogUsecase[T] {
	return &catalogService[T]{
		repo:   repo,
		rules:  rules,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService[T]) ListActive(ctx context.Context) ([]*T, error) {
	items, err := srv.repo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list active %s items", srv.rules.name)
	}

	return items, nil
}

func (srv *catalogService[T]) ListAll(ctx context.Context) ([]*T, error) {
	items, err := srv.repo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s items", srv.rules.name)
	}

	return items, nil
}

func (srv *catalogService[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	item, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapError(err)
	}

	return item, nil
}

// GetActiveByKey rejects unknown and inactive keys alike; customers cannot select either.
func (srv *catalogService[T]) GetActiveByKey(ctx context.Context, key string) (*T, error) {
	item, err := srv.repo.FindByKey(ctx, key)
	if errors.Is(err, repository.ErrCatalogItemNotFound) {
		return nil, domainerrors.ErrSelectionUnavailable.WithDetails(srv.rules.name + " " + key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s %s", srv.rules.name, key)
	}
	if !srv.rules.isActive(item) {
		return nil, domainerrors.ErrSelectionUnavailable.WithDetails(srv.rules.name + " " + key)
	}

	return item, nil
}

func (srv *catalogService[T]) Create(ctx context.Context, item *T) (*T, error) {
	srv.rules.identify(item, uuid.Nil, time.Time{})
	if err := srv.rules.normalize(item); err != nil {
		return nil, err
	}

	if err := srv.repo.Create(ctx, item); err != nil {
		return nil, srv.mapError(err)
	}

	srv.log(ctx).Info("Catalog item created",
		slog.String("kind", srv.rules.name),
		slog.String("key", srv.rules.key(item)))

	return item, nil
}

func (srv *catalogService[T]) Update(ctx context.Context, id uuid.UUID, item *T) (*T, error) {
	existing, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapError(err)
	}

	_, createdAt := srv.rules.stored(existing)
	srv.rules.identify(item, id, createdAt)

	if err := srv.rules.normalize(item); err != nil {
		return nil, err
	}

	if err := srv.repo.Update(ctx, item); err != nil {
		return nil, srv.mapError(err)
	}

	srv.log(ctx).Info("Catalog item updated",
		slog.String("kind", srv.rules.name),
		slog.String("key", srv.rules.key(item)))

	return srv.Get(ctx, id)
}

func (srv *catalogService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		return srv.mapError(err)
	}

	srv.log(ctx).Info("Catalog item deleted",
		slog.String("kind", srv.rules.name),
		slog.String("id", id.String()))

	return nil
}

func (srv *catalogService[T]) mapError(err error) error {
	switch {
	case errors.Is(err, repository.ErrCatalogItemNotFound):
		return srv.rules.notFound
	case errors.Is(err, repository.ErrDuplicateCatalogKey):
		return domainerrors.ErrCatalogKeyConflict
	default:
		return err
	}
}
