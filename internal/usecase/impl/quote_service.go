package impl

import (
	"context"
	"log/slog"
	"strings"

	"bartile/config"
	deliverycontext "bartile/internal/delivery/context"
	"bartile/internal/domain/configurator"
	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/repository"
	"bartile/internal/domain/service"
	"bartile/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultQuoteListLimit = 50
	maxQuoteListLimit     = 200
)

// quoteService implements the QuoteUsecase interface.
type quoteService struct {
	quoteRepo  repository.QuoteRepository
	publisher  service.EventPublisher
	notifier   service.NotificationService
	validate   *validator.Validate
	adminTopic string
	logger     *slog.Logger
}

// QuoteServiceParams holds dependencies for QuoteService, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	QuoteRepo repository.QuoteRepository
	Publisher service.EventPublisher
	Notifier  service.NotificationService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewQuoteService creates a new quote service.
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	adminTopic := ""
	if params.Config != nil && params.Config.Firebase != nil {
		adminTopic = params.Config.Firebase.AdminTopic
	}

	return &quoteService{
		quoteRepo:  params.QuoteRepo,
		publisher:  params.Publisher,
		notifier:   params.Notifier,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		adminTopic: adminTopic,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *quoteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a pending quote request. Publishing and notifying are best effort.
func (srv *quoteService) Create(ctx context.Context, input usecase.CreateQuoteInput) (*entity.QuoteRequest, error) {
	contact := trimContact(input.Contact)
	if err := srv.validateContact(contact); err != nil {
		return nil, err
	}
	if !configurator.IsComplete(&input.Configuration) {
		return nil, domainerrors.ErrQuoteIncomplete
	}

	quote := &entity.QuoteRequest{
		Contact:       contact,
		Configuration: input.Configuration.Clone(),
		FileURL:       input.FileURL,
		Status:        entity.QuoteStatusPending,
	}

	if err := srv.quoteRepo.Create(ctx, quote); err != nil {
		srv.log(ctx).Error("Failed to store quote request", slog.String("email", contact.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create quote request")
	}

	srv.log(ctx).Info("Quote request stored",
		slog.String("quoteID", quote.ID.String()),
		slog.Bool("hasFile", quote.FileURL != ""))

	srv.announce(ctx, quote)

	return quote, nil
}

// announce publishes the submitted event and pings the admin topic. Failures are only logged.
func (srv *quoteService) announce(ctx context.Context, quote *entity.QuoteRequest) {
	event := &service.QuoteEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.QuoteSubmittedTopic,
		Quote:     entity.NewQuoteSubmittedEvent(quote),
	}
	if err := srv.publisher.PublishQuoteEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish quote event",
			slog.String("quoteID", quote.ID.String()),
			slog.Any("error", err))
	}

	if srv.adminTopic == "" {
		return
	}

	body := quote.Contact.Name
	if event.Quote.ProfileName != "" {
		body += " · " + event.Quote.ProfileName
	}
	data := map[string]string{
		"quote_id": quote.ID.String(),
		"type":     service.QuoteSubmittedTopic,
	}
	if err := srv.notifier.SendTopicNotification(ctx, srv.adminTopic, "New quote request", body, data); err != nil {
		srv.log(ctx).Warn("Failed to notify admins of quote",
			slog.String("quoteID", quote.ID.String()),
			slog.Any("error", err))
	}
}

func (srv *quoteService) validateContact(contact entity.ContactDetails) error {
	err := srv.validate.Struct(contact)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, strings.ToLower(fe.Field()))
	}

	return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
}

func trimContact(c entity.ContactDetails) entity.ContactDetails {
	return entity.ContactDetails{
		Name:     strings.TrimSpace(c.Name),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
		Address:  strings.TrimSpace(c.Address),
		Comments: strings.TrimSpace(c.Comments),
	}
}

// List returns quotes newest first. An empty status or "all" lists every status.
func (srv *quoteService) List(ctx context.Context, input usecase.ListQuotesInput) ([]*entity.QuoteRequest, error) {
	filter := repository.QuoteFilter{
		Limit:  input.Limit,
		Offset: max(input.Offset, 0),
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultQuoteListLimit
	}
	filter.Limit = min(filter.Limit, maxQuoteListLimit)

	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status != "" && status != usecase.QuoteStatusAll {
		filter.Status = entity.QuoteStatus(status)
		if !filter.Status.IsValid() {
			return nil, domainerrors.ErrInvalidQuoteStatus.WithDetails(input.Status)
		}
	}

	quotes, err := srv.quoteRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quote requests")
	}

	return quotes, nil
}

func (srv *quoteService) Get(ctx context.Context, id uuid.UUID) (*entity.QuoteRequest, error) {
	quote, err := srv.quoteRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrQuoteNotFound) {
		return nil, domainerrors.ErrQuoteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find quote request")
	}

	return quote, nil
}

func (srv *quoteService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.QuoteRequest, error) {
	next := entity.QuoteStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.IsValid() {
		return nil, domainerrors.ErrInvalidQuoteStatus.WithDetails(status)
	}

	err := srv.quoteRepo.UpdateStatus(ctx, id, next)
	if errors.Is(err, repository.ErrQuoteNotFound) {
		return nil, domainerrors.ErrQuoteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update quote status")
	}

	srv.log(ctx).Info("Quote status updated", slog.String("quoteID", id.String()), slog.String("status", next.String()))

	return srv.Get(ctx, id)
}
