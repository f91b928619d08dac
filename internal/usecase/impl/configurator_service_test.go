package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"bartile/internal/domain/configurator"
	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/service"
	mockSvc "bartile/internal/mocks/service"
	mockUC "bartile/internal/mocks/usecase"
	"bartile/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// configuratorFixtures holds all test dependencies for configurator service tests.
type configuratorFixtures struct {
	service  *configuratorService
	profiles *mockUC.MockCatalogUsecase[entity.Profile]
	colors   *mockUC.MockCatalogUsecase[entity.Color]
	textures *mockUC.MockCatalogUsecase[entity.Texture]
	houses   *mockUC.MockCatalogUsecase[entity.HousePreview]
	quotes   *mockUC.MockQuoteUsecase
	storage  *mockSvc.MockFileStorage
	qrcode   *mockSvc.MockQRCodeService
}

func createTestConfiguratorService(t *testing.T) configuratorFixtures {
	fx := configuratorFixtures{
		profiles: mockUC.NewMockCatalogUsecase[entity.Profile](t),
		colors:   mockUC.NewMockCatalogUsecase[entity.Color](t),
		textures: mockUC.NewMockCatalogUsecase[entity.Texture](t),
		houses:   mockUC.NewMockCatalogUsecase[entity.HousePreview](t),
		quotes:   mockUC.NewMockQuoteUsecase(t),
		storage:  mockSvc.NewMockFileStorage(t),
		qrcode:   mockSvc.NewMockQRCodeService(t),
	}
	fx.service = &configuratorService{
		store:    newSessionStore(time.Hour, 0, newDiscardLogger()),
		profiles: fx.profiles,
		colors:   fx.colors,
		textures: fx.textures,
		houses:   fx.houses,
		quotes:   fx.quotes,
		storage:  fx.storage,
		qrcode:   fx.qrcode,
		logger:   newDiscardLogger(),
	}

	return fx
}

// completeSession starts a session and selects a profile, color and texture.
func completeSession(t *testing.T, fx configuratorFixtures) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	fx.profiles.EXPECT().GetActiveByKey(ctx, "legendary-slate").Return(newTestProfile(), nil)
	fx.colors.EXPECT().GetActiveByKey(ctx, "33").Return(newTestColor(), nil)
	fx.textures.EXPECT().GetActiveByKey(ctx, "vintage").Return(newTestTexture(), nil)

	out, err := fx.service.StartSession(ctx, usecase.StartSessionInput{})
	require.NoError(t, err)

	for _, sel := range []usecase.SelectionInput{
		{Field: "profile", Value: "legendary-slate"},
		{Field: "color", Value: "33"},
		{Field: "texture", Value: "vintage"},
	} {
		_, err := fx.service.Select(ctx, out.ID, sel)
		require.NoError(t, err)
	}

	return out.ID
}

func TestConfiguratorService_StartSession(t *testing.T) {
	fx := createTestConfiguratorService(t)

	out, err := fx.service.StartSession(context.Background(), usecase.StartSessionInput{})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.ID)
	assert.Equal(t, int(configurator.StepProfile), out.View.Step)
	assert.False(t, out.View.CanProceed)
	assert.Equal(t, entity.DefaultConfiguration(), out.View.Configuration)
}

func TestConfiguratorService_SelectAndNavigate(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()

	start, err := fx.service.StartSession(ctx, usecase.StartSessionInput{})
	require.NoError(t, err)

	blocked, err := fx.service.Next(ctx, start.ID)
	require.NoError(t, err)
	assert.False(t, blocked.Moved)
	assert.Equal(t, int(configurator.StepProfile), blocked.View.Step)

	fx.profiles.EXPECT().GetActiveByKey(ctx, "legendary-slate").Return(newTestProfile(), nil)

	selected, err := fx.service.Select(ctx, start.ID, usecase.SelectionInput{Field: "profile", Value: " legendary-slate "})
	require.NoError(t, err)
	assert.True(t, selected.View.CanProceed)
	require.NotNil(t, selected.View.Configuration.Profile)
	assert.Equal(t, "Legendary Slate", selected.View.Configuration.Profile.Name)

	next, err := fx.service.Next(ctx, start.ID)
	require.NoError(t, err)
	assert.True(t, next.Moved)
	assert.Equal(t, int(configurator.StepColor), next.View.Step)

	prev, err := fx.service.Prev(ctx, start.ID)
	require.NoError(t, err)
	assert.True(t, prev.Moved)
	assert.Equal(t, int(configurator.StepProfile), prev.View.Step)
}

func TestConfiguratorService_SelectOptions(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()

	start, err := fx.service.StartSession(ctx, usecase.StartSessionInput{})
	require.NoError(t, err)

	out, err := fx.service.Select(ctx, start.ID, usecase.SelectionInput{Field: "edge", Value: "toscana"})
	require.NoError(t, err)
	assert.Equal(t, entity.EdgeToscana, out.View.Configuration.Edge)

	out, err = fx.service.Select(ctx, start.ID, usecase.SelectionInput{Field: "trim", Ridge: "bell-ridge"})
	require.NoError(t, err)
	assert.Equal(t, entity.Ridge("bell-ridge"), out.View.Configuration.Trim.Ridge)
	assert.Equal(t, entity.DefaultConfiguration().Trim.Gable, out.View.Configuration.Trim.Gable)
}

func TestConfiguratorService_SelectErrors(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()

	start, err := fx.service.StartSession(ctx, usecase.StartSessionInput{})
	require.NoError(t, err)

	fx.colors.EXPECT().
		GetActiveByKey(ctx, "999").
		Return(nil, domainerrors.ErrSelectionUnavailable.WithDetails("color 999"))

	tests := []struct {
		name    string
		input   usecase.SelectionInput
		wantErr error
	}{
		{name: "unknown field", input: usecase.SelectionInput{Field: "roof", Value: "flat"}, wantErr: domainerrors.ErrInvalidField},
		{name: "bad option", input: usecase.SelectionInput{Field: "weight", Value: "heavy"}, wantErr: domainerrors.ErrInvalidOption},
		{name: "bad trim", input: usecase.SelectionInput{Field: "trim", Hip: "round"}, wantErr: domainerrors.ErrInvalidOption},
		{name: "unavailable color", input: usecase.SelectionInput{Field: "color", Value: "999"}, wantErr: domainerrors.ErrSelectionUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Select(ctx, start.ID, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	current, err := fx.service.GetSession(ctx, start.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultConfiguration(), current.View.Configuration, "rejected selections leave the configuration untouched")
}

func TestConfiguratorService_UnknownSession(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := fx.service.GetSession(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	_, err = fx.service.Next(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	err = fx.service.EndSession(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestConfiguratorService_JumpTo(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()
	id := completeSession(t, fx)

	for range 3 {
		_, err := fx.service.Next(ctx, id)
		require.NoError(t, err)
	}

	out, err := fx.service.JumpTo(ctx, id, 4)
	require.NoError(t, err)
	assert.False(t, out.Moved, "forward jumps are rejected")
	assert.Equal(t, int(configurator.StepOptions), out.View.Step)

	out, err = fx.service.JumpTo(ctx, id, 1)
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.Equal(t, int(configurator.StepColor), out.View.Step)

	_, err = fx.service.JumpTo(ctx, id, 7)
	require.ErrorIs(t, err, domainerrors.ErrInvalidStep)
}

func TestConfiguratorService_Reset(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()
	id := completeSession(t, fx)

	_, err := fx.service.Next(ctx, id)
	require.NoError(t, err)

	out, err := fx.service.Reset(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, int(configurator.StepProfile), out.View.Step)
	assert.Equal(t, entity.DefaultConfiguration(), out.View.Configuration)
}

func TestConfiguratorService_Preview(t *testing.T) {
	ctx := context.Background()

	t.Run("with houses", func(t *testing.T) {
		fx := createTestConfiguratorService(t)
		id := completeSession(t, fx)
		houses := []*entity.HousePreview{{HouseID: "ranch", Name: "Ranch", ImageURL: "/ranch.jpg", IsActive: true}}
		fx.houses.EXPECT().ListActive(ctx).Return(houses, nil)

		out, err := fx.service.Preview(ctx, id)

		require.NoError(t, err)
		require.NotNil(t, out.Geometry)
		assert.Equal(t, configurator.ShapeBeveledSlab, out.Geometry.Kind)
		assert.Equal(t, houses, out.Houses)
	})

	t.Run("house lookup failure", func(t *testing.T) {
		fx := createTestConfiguratorService(t)
		start, err := fx.service.StartSession(ctx, usecase.StartSessionInput{})
		require.NoError(t, err)
		fx.houses.EXPECT().ListActive(ctx).Return(nil, errors.New("db down"))

		out, err := fx.service.Preview(ctx, start.ID)

		require.NoError(t, err)
		assert.Nil(t, out.Geometry)
		assert.Equal(t, configurator.DefaultOverlayColor, out.OverlayColor)
		assert.NotNil(t, out.Houses)
		assert.Empty(t, out.Houses)
	})
}

func TestConfiguratorService_ShareAndRestore(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()
	id := completeSession(t, fx)

	_, err := fx.service.Select(ctx, id, usecase.SelectionInput{Field: "layout", Value: "cottage"})
	require.NoError(t, err)

	fx.qrcode.EXPECT().GenerateShareQR(mock.AnythingOfType("string")).Return([]byte("png"), nil)
	fx.qrcode.EXPECT().
		ShareURL(mock.AnythingOfType("string")).
		RunAndReturn(func(token string) string { return "http://localhost:3000/configurator?share=" + token })

	shared, err := fx.service.Share(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), shared.PNG)
	assert.True(t, strings.HasSuffix(shared.URL, shared.Token))

	fx.qrcode.EXPECT().ParseShareURL(shared.URL).Return(shared.Token, nil)

	restored, err := fx.service.StartSession(ctx, usecase.StartSessionInput{ShareToken: shared.URL})

	require.NoError(t, err)
	assert.NotEqual(t, id, restored.ID)
	assert.Equal(t, int(configurator.StepSummary), restored.View.Step, "a complete shared configuration fast-forwards to the summary")
	assert.Equal(t, entity.LayoutCottage, restored.View.Configuration.Layout)
	assert.True(t, restored.View.Complete)
}

func TestConfiguratorService_RestoreSkipsRetiredItems(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()

	cfg := newCompleteConfiguration()
	token := configurator.EncodeShareToken(configurator.ShareStateOf(&cfg))

	fx.profiles.EXPECT().GetActiveByKey(ctx, "legendary-slate").Return(newTestProfile(), nil)
	fx.colors.EXPECT().GetActiveByKey(ctx, "33").Return(nil, domainerrors.ErrSelectionUnavailable)
	fx.textures.EXPECT().GetActiveByKey(ctx, "vintage").Return(newTestTexture(), nil)

	out, err := fx.service.StartSession(ctx, usecase.StartSessionInput{ShareToken: token})

	require.NoError(t, err)
	assert.Nil(t, out.View.Configuration.Color)
	assert.NotNil(t, out.View.Configuration.Texture)
	assert.Equal(t, int(configurator.StepColor), out.View.Step)
}

func TestConfiguratorService_StartSession_BadShareToken(t *testing.T) {
	fx := createTestConfiguratorService(t)

	_, err := fx.service.StartSession(context.Background(), usecase.StartSessionInput{ShareToken: "%%%"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestConfiguratorService_StartSession_BadShareLink(t *testing.T) {
	fx := createTestConfiguratorService(t)
	link := "https://example.com/configurator?foo=bar"
	fx.qrcode.EXPECT().ParseShareURL(link).Return("", errors.New("share link has no share parameter"))

	_, err := fx.service.StartSession(context.Background(), usecase.StartSessionInput{ShareToken: link})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "malformed share link", appErr.Details())
}

func TestConfiguratorService_SubmitQuote_Incomplete(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()

	start, err := fx.service.StartSession(ctx, usecase.StartSessionInput{})
	require.NoError(t, err)

	_, err = fx.service.SubmitQuote(ctx, start.ID, usecase.SubmitQuoteInput{Contact: newTestContact()})

	require.ErrorIs(t, err, domainerrors.ErrQuoteIncomplete)
}

func TestConfiguratorService_SubmitQuote_WithAttachment(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()
	id := completeSession(t, fx)

	attachment := &usecase.Attachment{Filename: "plan.pdf", ContentType: "application/pdf", Content: strings.NewReader("%PDF")}
	stored := &service.StoredFile{Key: "quotes/abc.pdf", URL: "http://files/quotes/abc.pdf", Size: 4}
	quoteID := uuid.New()

	fx.storage.EXPECT().Upload(ctx, "plan.pdf", "application/pdf", attachment.Content).Return(stored, nil)
	fx.quotes.EXPECT().
		Create(ctx, mock.MatchedBy(func(in usecase.CreateQuoteInput) bool {
			return in.FileURL == stored.URL && in.Configuration.Profile != nil && in.Contact.Email == "dana@example.com"
		})).
		Return(&entity.QuoteRequest{ID: quoteID, FileURL: stored.URL, Status: entity.QuoteStatusPending}, nil)

	quote, err := fx.service.SubmitQuote(ctx, id, usecase.SubmitQuoteInput{Contact: newTestContact(), Attachment: attachment})

	require.NoError(t, err)
	assert.Equal(t, quoteID, quote.ID)

	current, err := fx.service.GetSession(ctx, id)
	require.NoError(t, err)
	assert.True(t, current.View.Complete, "the session keeps its configuration after submitting")
}

func TestConfiguratorService_SubmitQuote_FailureRemovesAttachment(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()
	id := completeSession(t, fx)

	stored := &service.StoredFile{Key: "quotes/abc.png", URL: "http://files/quotes/abc.png"}
	fx.storage.EXPECT().Upload(ctx, "roof.png", "image/png", mock.Anything).Return(stored, nil)
	fx.storage.EXPECT().Delete(ctx, stored.Key).Return(nil)
	fx.quotes.EXPECT().Create(ctx, mock.Anything).Return(nil, domainerrors.ErrValidationFailed).Once()

	input := usecase.SubmitQuoteInput{
		Contact:    entity.ContactDetails{Name: "Dana"},
		Attachment: &usecase.Attachment{Filename: "roof.png", ContentType: "image/png", Content: strings.NewReader("png")},
	}
	_, err := fx.service.SubmitQuote(ctx, id, input)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// The in-flight flag is cleared, so a corrected submission goes through.
	fx.quotes.EXPECT().Create(ctx, mock.Anything).Return(&entity.QuoteRequest{ID: uuid.New()}, nil).Once()

	_, err = fx.service.SubmitQuote(ctx, id, usecase.SubmitQuoteInput{Contact: newTestContact()})
	require.NoError(t, err)
}

func TestConfiguratorService_SubmitQuote_UploadRejected(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()
	id := completeSession(t, fx)

	fx.storage.EXPECT().
		Upload(ctx, "virus.exe", "application/octet-stream", mock.Anything).
		Return(nil, domainerrors.ErrUploadRejected)

	_, err := fx.service.SubmitQuote(ctx, id, usecase.SubmitQuoteInput{
		Contact:    newTestContact(),
		Attachment: &usecase.Attachment{Filename: "virus.exe", ContentType: "application/octet-stream", Content: strings.NewReader("MZ")},
	})

	require.ErrorIs(t, err, domainerrors.ErrUploadRejected)
}

func TestConfiguratorService_SubmitQuote_OneInFlight(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()
	id := completeSession(t, fx)

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.quotes.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(context.Context, usecase.CreateQuoteInput) (*entity.QuoteRequest, error) {
			close(entered)
			<-release

			return &entity.QuoteRequest{ID: uuid.New()}, nil
		}).
		Once()

	done := make(chan error, 1)
	go func() {
		_, err := fx.service.SubmitQuote(ctx, id, usecase.SubmitQuoteInput{Contact: newTestContact()})
		done <- err
	}()
	<-entered

	_, err := fx.service.SubmitQuote(ctx, id, usecase.SubmitQuoteInput{Contact: newTestContact()})
	require.ErrorIs(t, err, domainerrors.ErrSubmissionInFlight)

	// The session stays usable while the submission is pending.
	_, err = fx.service.GetSession(ctx, id)
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-done)
}

func TestConfiguratorService_EndSession(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()

	start, err := fx.service.StartSession(ctx, usecase.StartSessionInput{})
	require.NoError(t, err)

	require.NoError(t, fx.service.EndSession(ctx, start.ID))

	_, err = fx.service.GetSession(ctx, start.ID)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestConfiguratorService_EndSession_KeepsPendingSubmission(t *testing.T) {
	fx := createTestConfiguratorService(t)
	ctx := context.Background()
	id := completeSession(t, fx)

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.quotes.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(context.Context, usecase.CreateQuoteInput) (*entity.QuoteRequest, error) {
			close(entered)
			<-release

			return &entity.QuoteRequest{ID: uuid.New()}, nil
		}).
		Once()

	done := make(chan error, 1)
	go func() {
		_, err := fx.service.SubmitQuote(ctx, id, usecase.SubmitQuoteInput{Contact: newTestContact()})
		done <- err
	}()
	<-entered

	require.ErrorIs(t, fx.service.EndSession(ctx, id), domainerrors.ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)

	require.NoError(t, fx.service.EndSession(ctx, id))
	_, err := fx.service.GetSession(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
