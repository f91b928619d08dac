package impl

import (
	"context"
	"testing"
	"time"

	"bartile/config"
	deliverycontext "bartile/internal/delivery/context"
	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/repository"
	"bartile/internal/domain/service"
	mockRepo "bartile/internal/mocks/repository"
	mockSvc "bartile/internal/mocks/service"
	"bartile/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAdminTopic = "bartile-admins"

// quoteServiceFixtures holds all test dependencies for quote service tests.
type quoteServiceFixtures struct {
	service   usecase.QuoteUsecase
	quoteRepo *mockRepo.MockQuoteRepository
	publisher *mockSvc.MockEventPublisher
	notifier  *mockSvc.MockNotificationService
}

func createTestQuoteService(t *testing.T) quoteServiceFixtures {
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := mockSvc.NewMockNotificationService(t)

	svc := NewQuoteService(QuoteServiceParams{
		QuoteRepo: quoteRepo,
		Publisher: publisher,
		Notifier:  notifier,
		Config: &config.Config{
			Firebase: &config.FirebaseConfig{AdminTopic: testAdminTopic},
		},
		Logger: newDiscardLogger(),
	})

	return quoteServiceFixtures{
		service:   svc,
		quoteRepo: quoteRepo,
		publisher: publisher,
		notifier:  notifier,
	}
}

func expectQuoteStored(fx quoteServiceFixtures, ctx context.Context, id uuid.UUID) {
	fx.quoteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.QuoteRequest")).
		Run(func(ctx context.Context, quote *entity.QuoteRequest) {
			quote.ID = id
			quote.CreatedAt = time.Now()
		}).
		Return(nil)
}

func TestQuoteService_Create_Success(t *testing.T) {
	fx := createTestQuoteService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	quoteID := uuid.New()

	expectQuoteStored(fx, ctx, quoteID)
	fx.publisher.EXPECT().
		PublishQuoteEvent(ctx, mock.MatchedBy(func(event *service.QuoteEvent) bool {
			return event.Type == service.QuoteSubmittedTopic &&
				event.RequestID == "req-42" &&
				event.Quote.QuoteID == quoteID &&
				event.Quote.ProfileName == "Legendary Slate"
		})).
		Return(nil)
	fx.notifier.EXPECT().
		SendTopicNotification(ctx, testAdminTopic, "New quote request", mock.AnythingOfType("string"), map[string]string{
			"quote_id": quoteID.String(),
			"type":     service.QuoteSubmittedTopic,
		}).
		Return(nil)

	contact := newTestContact()
	contact.Name = "  Dana Roofer  "

	quote, err := fx.service.Create(ctx, usecase.CreateQuoteInput{
		Contact:       contact,
		Configuration: newCompleteConfiguration(),
		FileURL:       "http://files/quotes/plan.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, quoteID, quote.ID)
	assert.Equal(t, entity.QuoteStatusPending, quote.Status)
	assert.Equal(t, "Dana Roofer", quote.Contact.Name)
	assert.Equal(t, "http://files/quotes/plan.pdf", quote.FileURL)
}

func TestQuoteService_Create_AnnounceFailuresAreIgnored(t *testing.T) {
	fx := createTestQuoteService(t)
	ctx := context.Background()

	expectQuoteStored(fx, ctx, uuid.New())
	fx.publisher.EXPECT().
		PublishQuoteEvent(ctx, mock.Anything).
		Return(errors.New("broker unavailable"))
	fx.notifier.EXPECT().
		SendTopicNotification(ctx, testAdminTopic, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	quote, err := fx.service.Create(ctx, usecase.CreateQuoteInput{
		Contact:       newTestContact(),
		Configuration: newCompleteConfiguration(),
	})

	require.NoError(t, err)
	assert.NotNil(t, quote)
}

func TestQuoteService_Create_MissingContactFields(t *testing.T) {
	fx := createTestQuoteService(t)

	_, err := fx.service.Create(context.Background(), usecase.CreateQuoteInput{
		Contact:       entity.ContactDetails{Name: "Dana", Email: "   "},
		Configuration: newCompleteConfiguration(),
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var baseErr *domainerrors.BaseError
	require.ErrorAs(t, err, &baseErr)
	assert.Equal(t, "missing required fields: email, address", baseErr.Details())
}

func TestQuoteService_Create_IncompleteConfiguration(t *testing.T) {
	fx := createTestQuoteService(t)

	cfg := newCompleteConfiguration()
	cfg.Texture = nil

	_, err := fx.service.Create(context.Background(), usecase.CreateQuoteInput{
		Contact:       newTestContact(),
		Configuration: cfg,
	})

	require.ErrorIs(t, err, domainerrors.ErrQuoteIncomplete)
}

func TestQuoteService_Create_RepositoryError(t *testing.T) {
	fx := createTestQuoteService(t)
	ctx := context.Background()

	fx.quoteRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(errors.New("disk full"))

	_, err := fx.service.Create(ctx, usecase.CreateQuoteInput{
		Contact:       newTestContact(),
		Configuration: newCompleteConfiguration(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create quote request")
}

func TestQuoteService_List_Filters(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.ListQuotesInput
		want  repository.QuoteFilter
	}{
		{
			name:  "all sentinel",
			input: usecase.ListQuotesInput{Status: "all"},
			want:  repository.QuoteFilter{Limit: 50},
		},
		{
			name:  "empty status",
			input: usecase.ListQuotesInput{Limit: 10, Offset: 20},
			want:  repository.QuoteFilter{Limit: 10, Offset: 20},
		},
		{
			name:  "status is case-insensitive",
			input: usecase.ListQuotesInput{Status: "Pending"},
			want:  repository.QuoteFilter{Status: entity.QuoteStatusPending, Limit: 50},
		},
		{
			name:  "limit is capped",
			input: usecase.ListQuotesInput{Status: "quoted", Limit: 5000, Offset: -3},
			want:  repository.QuoteFilter{Status: entity.QuoteStatusQuoted, Limit: 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestQuoteService(t)
			fx.quoteRepo.EXPECT().List(ctx, tt.want).Return([]*entity.QuoteRequest{}, nil)

			quotes, err := fx.service.List(ctx, tt.input)

			require.NoError(t, err)
			assert.Empty(t, quotes)
		})
	}
}

func TestQuoteService_List_UnknownStatus(t *testing.T) {
	fx := createTestQuoteService(t)

	_, err := fx.service.List(context.Background(), usecase.ListQuotesInput{Status: "archived"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidQuoteStatus)
}

func TestQuoteService_Get_NotFound(t *testing.T) {
	fx := createTestQuoteService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.quoteRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrQuoteNotFound)

	_, err := fx.service.Get(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrQuoteNotFound)
}

func TestQuoteService_UpdateStatus(t *testing.T) {
	fx := createTestQuoteService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.quoteRepo.EXPECT().UpdateStatus(ctx, id, entity.QuoteStatusReviewed).Return(nil)
	fx.quoteRepo.EXPECT().FindByID(ctx, id).Return(&entity.QuoteRequest{ID: id, Status: entity.QuoteStatusReviewed}, nil)

	quote, err := fx.service.UpdateStatus(ctx, id, "reviewed")

	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusReviewed, quote.Status)
}

func TestQuoteService_UpdateStatus_Errors(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("invalid status", func(t *testing.T) {
		fx := createTestQuoteService(t)

		_, err := fx.service.UpdateStatus(ctx, id, "lost")

		require.ErrorIs(t, err, domainerrors.ErrInvalidQuoteStatus)
	})

	t.Run("unknown quote", func(t *testing.T) {
		fx := createTestQuoteService(t)
		fx.quoteRepo.EXPECT().UpdateStatus(ctx, id, entity.QuoteStatusCancelled).Return(repository.ErrQuoteNotFound)

		_, err := fx.service.UpdateStatus(ctx, id, "cancelled")

		require.ErrorIs(t, err, domainerrors.ErrQuoteNotFound)
	})
}
