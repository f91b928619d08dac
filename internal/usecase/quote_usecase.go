package usecase

import (
	"context"

	"bartile/internal/domain/entity"

	"github.com/google/uuid"
)

// QuoteStatusAll lists quotes of every status.
const QuoteStatusAll = "all"

// ListQuotesInput filters the admin quote list.
type ListQuotesInput struct {
	Status string
	Limit  int
	Offset int
}

// CreateQuoteInput is a complete quote request ready to be stored.
type CreateQuoteInput struct {
	Contact       entity.ContactDetails
	Configuration entity.Configuration
	FileURL       string
}

// QuoteUsecase stores quote requests and serves them to the sales team.
type QuoteUsecase interface {
	// Create validates and stores a quote request, then announces it.
	Create(ctx context.Context, input CreateQuoteInput) (*entity.QuoteRequest, error)
	List(ctx context.Context, input ListQuotesInput) ([]*entity.QuoteRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.QuoteRequest, error)
}
