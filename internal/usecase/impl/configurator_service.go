package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"bartile/config"
	deliverycontext "bartile/internal/delivery/context"
	"bartile/internal/domain/configurator"
	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/service"
	"bartile/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// configuratorService implements the ConfiguratorUsecase interface.
// Catalog lookups and file uploads run outside the per-session lock.
type configuratorService struct {
	store    *sessionStore
	profiles usecase.ProfileCatalog
	colors   usecase.ColorCatalog
	textures usecase.TextureCatalog
	houses   usecase.HouseCatalog
	quotes   usecase.QuoteUsecase
	storage  service.FileStorage
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// ConfiguratorServiceParams holds dependencies for ConfiguratorService, injected by Fx.
type ConfiguratorServiceParams struct {
	fx.In

	Lc       fx.Lifecycle
	Profiles usecase.ProfileCatalog
	Colors   usecase.ColorCatalog
	Textures usecase.TextureCatalog
	Houses   usecase.HouseCatalog
	Quotes   usecase.QuoteUsecase
	Storage  service.FileStorage
	QRCode   service.QRCodeService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewConfiguratorService creates the configurator service and ties its idle-session sweeper to the app lifecycle.
func NewConfiguratorService(params ConfiguratorServiceParams) usecase.ConfiguratorUsecase {
	sessionCfg := params.Config.Session
	store := newSessionStore(sessionCfg.IdleTTL, sessionCfg.MaxSessions, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			store.start(sessionCfg.SweepInterval)

			return nil
		},
		OnStop: store.shutdown,
	})

	return &configuratorService{
		store:    store,
		profiles: params.Profiles,
		colors:   params.Colors,
		textures: params.Textures,
		houses:   params.Houses,
		quotes:   params.Quotes,
		storage:  params.Storage,
		qrcode:   params.QRCode,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *configuratorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartSession opens a session. A share token restores the shared configuration;
// items no longer offered are left unselected.
func (srv *configuratorService) StartSession(ctx context.Context, input usecase.StartSessionInput) (*usecase.SessionOutput, error) {
	var restored *entity.Configuration
	if token := strings.TrimSpace(input.ShareToken); token != "" {
		cfg, err := srv.restoreShared(ctx, token)
		if err != nil {
			return nil, err
		}
		restored = &cfg
	}

	var view configurator.View
	id := srv.store.create(func(s *configurator.Session) {
		if restored != nil {
			view = s.Restore(*restored)
		} else {
			view = s.View()
		}
	})

	srv.log(ctx).Debug("Configurator session started",
		slog.String("sessionID", id.String()),
		slog.Bool("shared", restored != nil))

	return &usecase.SessionOutput{ID: id, View: view}, nil
}

func (srv *configuratorService) restoreShared(ctx context.Context, token string) (entity.Configuration, error) {
	if strings.Contains(token, "://") {
		parsed, err := srv.qrcode.ParseShareURL(token)
		if err != nil {
			srv.log(ctx).Warn("Rejected share link", slog.Any("error", err))

			return entity.Configuration{}, domainerrors.ErrValidationFailed.WithDetails("malformed share link")
		}
		token = parsed
	}

	state, err := configurator.DecodeShareToken(token)
	if err != nil {
		return entity.Configuration{}, err
	}
	changes, err := state.OptionChanges()
	if err != nil {
		return entity.Configuration{}, err
	}

	machine := configurator.NewMachine()
	for _, ref := range []struct {
		field configurator.Field
		key   string
	}{
		{configurator.FieldProfile, state.Profile},
		{configurator.FieldColor, state.Color},
		{configurator.FieldTexture, state.Texture},
	} {
		if ref.key == "" {
			continue
		}
		change, err := srv.resolveReference(ctx, ref.field, ref.key)
		if err != nil {
			srv.log(ctx).Warn("Shared selection no longer available",
				slog.String("field", string(ref.field)),
				slog.String("key", ref.key),
				slog.Any("error", err))

			continue
		}
		machine.Update(change)
	}
	for _, change := range changes {
		machine.Update(change)
	}

	return machine.Configuration(), nil
}

func (srv *configuratorService) GetSession(ctx context.Context, id uuid.UUID) (*usecase.SessionOutput, error) {
	return srv.viewOf(id, func(s *configurator.Session) (configurator.View, bool) {
		return s.View(), false
	})
}

// Select applies one field change. Catalog keys are resolved before the session is locked.
func (srv *configuratorService) Select(ctx context.Context, id uuid.UUID, input usecase.SelectionInput) (*usecase.SessionOutput, error) {
	change, err := srv.parseSelection(ctx, input)
	if err != nil {
		return nil, err
	}

	return srv.viewOf(id, func(s *configurator.Session) (configurator.View, bool) {
		return s.Apply(change), false
	})
}

func (srv *configuratorService) parseSelection(ctx context.Context, input usecase.SelectionInput) (configurator.Change, error) {
	field, err := configurator.ParseField(strings.TrimSpace(input.Field))
	if err != nil {
		return nil, err
	}

	switch {
	case field.IsReference():
		return srv.resolveReference(ctx, field, strings.TrimSpace(input.Value))
	case field == configurator.FieldTrim:
		return configurator.ParseTrim(input.Gable, input.Hip, input.Ridge)
	default:
		return configurator.ParseOption(field, strings.TrimSpace(input.Value))
	}
}

// resolveReference looks up an active catalog item and snapshots it into a change.
func (srv *configuratorService) resolveReference(ctx context.Context, field configurator.Field, key string) (configurator.Change, error) {
	switch field {
	case configurator.FieldProfile:
		p, err := srv.profiles.GetActiveByKey(ctx, key)
		if err != nil {
			return nil, err
		}

		return configurator.SetProfile(p.Snapshot()), nil
	case configurator.FieldColor:
		c, err := srv.colors.GetActiveByKey(ctx, key)
		if err != nil {
			return nil, err
		}

		return configurator.SetColor(c.Snapshot()), nil
	default:
		t, err := srv.textures.GetActiveByKey(ctx, key)
		if err != nil {
			return nil, err
		}

		return configurator.SetTexture(t.Snapshot()), nil
	}
}

func (srv *configuratorService) Next(ctx context.Context, id uuid.UUID) (*usecase.SessionOutput, error) {
	return srv.viewOf(id, (*configurator.Session).Next)
}

func (srv *configuratorService) Prev(ctx context.Context, id uuid.UUID) (*usecase.SessionOutput, error) {
	return srv.viewOf(id, (*configurator.Session).Prev)
}

// JumpTo moves to step when it is the current or an earlier step. Forward jumps leave the step unchanged.
func (srv *configuratorService) JumpTo(ctx context.Context, id uuid.UUID, step int) (*usecase.SessionOutput, error) {
	target := configurator.Step(step)
	if !target.IsValid() {
		return nil, domainerrors.ErrInvalidStep.WithDetails(strconv.Itoa(step))
	}

	return srv.viewOf(id, func(s *configurator.Session) (configurator.View, bool) {
		return s.JumpTo(target)
	})
}

func (srv *configuratorService) Reset(ctx context.Context, id uuid.UUID) (*usecase.SessionOutput, error) {
	return srv.viewOf(id, func(s *configurator.Session) (configurator.View, bool) {
		return s.Reset(), true
	})
}

func (srv *configuratorService) viewOf(id uuid.UUID, fn func(*configurator.Session) (configurator.View, bool)) (*usecase.SessionOutput, error) {
	out := &usecase.SessionOutput{ID: id}
	err := srv.store.with(id, func(s *configurator.Session) error {
		out.View, out.Moved = fn(s)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Preview returns the preview parameters and the backdrop photos. A failing house lookup yields no backdrops.
func (srv *configuratorService) Preview(ctx context.Context, id uuid.UUID) (*usecase.PreviewOutput, error) {
	out := &usecase.PreviewOutput{}
	if err := srv.store.with(id, func(s *configurator.Session) error {
		out.Preview = s.Preview()

		return nil
	}); err != nil {
		return nil, err
	}

	houses, err := srv.houses.ListActive(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load house previews", slog.Any("error", err))
		houses = []*entity.HousePreview{}
	}
	out.Houses = houses

	return out, nil
}

// Share encodes the session's configuration into a link and a QR code.
func (srv *configuratorService) Share(ctx context.Context, id uuid.UUID) (*usecase.ShareOutput, error) {
	var state configurator.ShareState
	if err := srv.store.with(id, func(s *configurator.Session) error {
		cfg := s.Configuration()
		state = configurator.ShareStateOf(&cfg)

		return nil
	}); err != nil {
		return nil, err
	}

	token := configurator.EncodeShareToken(state)
	png, err := srv.qrcode.GenerateShareQR(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return &usecase.ShareOutput{
		Token: token,
		URL:   srv.qrcode.ShareURL(token),
		PNG:   png,
	}, nil
}

// SubmitQuote stores a quote for the session's configuration. Only one submission
// per session may be in flight; the session keeps its configuration whatever the outcome.
func (srv *configuratorService) SubmitQuote(ctx context.Context, id uuid.UUID, input usecase.SubmitQuoteInput) (*entity.QuoteRequest, error) {
	var snapshot entity.Configuration
	if err := srv.store.with(id, func(s *configurator.Session) error {
		var err error
		snapshot, err = s.BeginSubmit()

		return err
	}); err != nil {
		return nil, err
	}
	defer func() {
		if err := srv.store.with(id, func(s *configurator.Session) error {
			s.EndSubmit()

			return nil
		}); err != nil {
			srv.log(ctx).Error("Failed to clear submission flag", slog.String("sessionID", id.String()), slog.Any("error", err))
		}
	}()

	var stored *service.StoredFile
	if input.Attachment != nil {
		var err error
		stored, err = srv.storage.Upload(ctx, input.Attachment.Filename, input.Attachment.ContentType, input.Attachment.Content)
		if err != nil {
			srv.log(ctx).Warn("Quote attachment upload failed", slog.String("sessionID", id.String()), slog.Any("error", err))

			return nil, err
		}
	}

	createInput := usecase.CreateQuoteInput{
		Contact:       input.Contact,
		Configuration: snapshot,
	}
	if stored != nil {
		createInput.FileURL = stored.URL
	}

	quote, err := srv.quotes.Create(ctx, createInput)
	if err != nil {
		if stored != nil {
			if delErr := srv.storage.Delete(ctx, stored.Key); delErr != nil {
				srv.log(ctx).Warn("Failed to remove orphaned attachment", slog.String("key", stored.Key), slog.Any("error", delErr))
			}
		}

		return nil, err
	}

	srv.log(ctx).Info("Quote submitted from configurator",
		slog.String("sessionID", id.String()),
		slog.String("quoteID", quote.ID.String()))

	return quote, nil
}

func (srv *configuratorService) EndSession(ctx context.Context, id uuid.UUID) error {
	if err := srv.store.remove(id); err != nil {
		return err
	}
	srv.log(ctx).Debug("Configurator session ended", slog.String("sessionID", id.String()))

	return nil
}
