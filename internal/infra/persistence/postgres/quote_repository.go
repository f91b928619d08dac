package postgres

import (
	"context"

	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/repository"
	"bartile/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// quoteRepository implements the repository.QuoteRepository interface.
type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository is the constructor for quoteRepository.
func NewQuoteRepository(db *gorm.DB) repository.QuoteRepository {
	return &quoteRepository{
		db: db,
	}
}

// Create persists a new quote request.
func (repo *quoteRepository) Create(ctx context.Context, quote *entity.QuoteRequest) error {
	quoteM := fromQuoteDomain(quote)

	if err := repo.db.WithContext(ctx).Create(quoteM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required quote information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuoteStatus
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create quote request")
	}

	quote.ID = quoteM.ID
	quote.CreatedAt = quoteM.CreatedAt
	quote.UpdatedAt = quoteM.UpdatedAt

	return nil
}

// FindByID retrieves a quote request by its ID.
func (repo *quoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.QuoteRequest, error) {
	var quoteM model.QuoteRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&quoteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote request by ID")
	}

	return toQuoteDomain(&quoteM), nil
}

// List returns quote requests newest first.
func (repo *quoteRepository) List(ctx context.Context, filter repository.QuoteFilter) ([]*entity.QuoteRequest, error) {
	var quoteModels []*model.QuoteRequestModel

	tx := repo.db.WithContext(ctx).Model(&model.QuoteRequestModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}

	if err := tx.Order("created_at DESC").Find(&quoteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list quote requests")
	}

	quotes := make([]*entity.QuoteRequest, 0, len(quoteModels))
	for _, quoteM := range quoteModels {
		quotes = append(quotes, toQuoteDomain(quoteM))
	}

	return quotes, nil
}

// UpdateStatus changes the review status of a quote request.
func (repo *quoteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.QuoteStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuoteRequestModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update quote status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

// Count returns the number of quote requests, optionally restricted to one status.
func (repo *quoteRepository) Count(ctx context.Context, status entity.QuoteStatus) (int64, error) {
	var n int64

	tx := repo.db.WithContext(ctx).Model(&model.QuoteRequestModel{})
	if status != "" {
		tx = tx.Where("status = ?", string(status))
	}
	if err := tx.Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count quote requests")
	}

	return n, nil
}

// --- Mapper Functions ---

// toQuoteDomain converts a GORM QuoteRequestModel to a domain QuoteRequest entity.
func toQuoteDomain(data *model.QuoteRequestModel) *entity.QuoteRequest {
	if data == nil {
		return nil
	}

	return &entity.QuoteRequest{
		ID: data.ID,
		Contact: entity.ContactDetails{
			Name:     data.Name,
			Email:    data.Email,
			Phone:    data.Phone,
			Address:  data.Address,
			Comments: data.Comments,
		},
		Configuration: data.Configuration.Data(),
		FileURL:       data.FileURL,
		Status:        entity.QuoteStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromQuoteDomain converts a domain QuoteRequest entity to a GORM QuoteRequestModel.
func fromQuoteDomain(data *entity.QuoteRequest) *model.QuoteRequestModel {
	if data == nil {
		return nil
	}

	return &model.QuoteRequestModel{
		ID:            data.ID,
		Name:          data.Contact.Name,
		Email:         data.Contact.Email,
		Phone:         data.Contact.Phone,
		Address:       data.Contact.Address,
		Comments:      data.Contact.Comments,
		Configuration: datatypes.NewJSONType(data.Configuration),
		FileURL:       data.FileURL,
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
