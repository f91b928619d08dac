package repository

import (
	"context"

	"bartile/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrQuoteNotFound is returned when a quote request does not exist.
var ErrQuoteNotFound = errors.New("quote request not found")

// QuoteFilter narrows a quote listing. A zero Status lists every status.
type QuoteFilter struct {
	Status entity.QuoteStatus
	Limit  int
	Offset int
}

// QuoteRepository defines the persistence operations for quote requests.
type QuoteRepository interface {
	// Create persists a new quote request.
	Create(ctx context.Context, quote *entity.QuoteRequest) error

	// FindByID retrieves a quote request by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.QuoteRequest, error)

	// List returns quote requests newest first.
	List(ctx context.Context, filter QuoteFilter) ([]*entity.QuoteRequest, error)

	// UpdateStatus changes the review status of a quote request.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.QuoteStatus) error

	// Count returns the number of quote requests, optionally restricted to one status.
	Count(ctx context.Context, status entity.QuoteStatus) (int64, error)
}
