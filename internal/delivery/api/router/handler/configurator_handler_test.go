package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bartile/internal/domain/configurator"
	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	mockUC "bartile/internal/mocks/usecase"
	"bartile/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionBody struct {
	ID    uuid.UUID `json:"id"`
	Moved bool      `json:"moved"`
	View  struct {
		Step       int  `json:"step"`
		CanProceed bool `json:"can_proceed"`
	} `json:"view"`
}

func setupConfiguratorHandler(t *testing.T) (*echo.Echo, *mockUC.MockConfiguratorUsecase) {
	uc := mockUC.NewMockConfiguratorUsecase(t)
	h := NewConfiguratorHandler(ConfiguratorHandlerParams{
		ConfiguratorUC: uc,
		Logger:         newDiscardLogger(),
	})

	e := newTestEcho()
	e.POST("/sessions", h.StartSession)
	e.GET("/sessions/:id", h.GetSession)
	e.DELETE("/sessions/:id", h.EndSession)
	e.PATCH("/sessions/:id/selection", h.Select)
	e.POST("/sessions/:id/next", h.Next)
	e.POST("/sessions/:id/prev", h.Prev)
	e.POST("/sessions/:id/reset", h.Reset)
	e.POST("/sessions/:id/jump", h.JumpTo)
	e.GET("/sessions/:id/preview", h.Preview)
	e.GET("/sessions/:id/share", h.Share)
	e.GET("/sessions/:id/share.png", h.ShareQR)
	e.POST("/sessions/:id/quote", h.SubmitQuote)

	return e, uc
}

func sessionOutput(id uuid.UUID, step configurator.Step, moved bool) *usecase.SessionOutput {
	cfg := entity.DefaultConfiguration()

	return &usecase.SessionOutput{ID: id, View: configurator.ComposeView(&cfg, step), Moved: moved}
}

func TestConfiguratorHandler_StartSession(t *testing.T) {
	t.Run("fresh session", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		id := uuid.New()
		uc.EXPECT().StartSession(mock.Anything, usecase.StartSessionInput{}).
			Return(sessionOutput(id, configurator.StepProfile, false), nil)

		rec := serveJSON(e, http.MethodPost, "/sessions", "")

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeData[sessionBody](t, rec)
		assert.Equal(t, id, body.ID)
		assert.Equal(t, 0, body.View.Step)
	})

	t.Run("share token from query", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		uc.EXPECT().StartSession(mock.Anything, usecase.StartSessionInput{ShareToken: "tok"}).
			Return(sessionOutput(uuid.New(), configurator.StepColor, false), nil)

		rec := serveJSON(e, http.MethodPost, "/sessions?share=tok", "")

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("share token from body", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		uc.EXPECT().StartSession(mock.Anything, usecase.StartSessionInput{ShareToken: "tok"}).
			Return(sessionOutput(uuid.New(), configurator.StepColor, false), nil)

		rec := serveJSON(e, http.MethodPost, "/sessions", `{"share":"tok"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("malformed share token", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		uc.EXPECT().StartSession(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("malformed share token"))

		rec := serveJSON(e, http.MethodPost, "/sessions", `{"share":"%%%"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestConfiguratorHandler_InvalidSessionID(t *testing.T) {
	e, _ := setupConfiguratorHandler(t)

	requests := []struct{ method, path string }{
		{http.MethodGet, "/sessions/not-a-uuid"},
		{http.MethodDelete, "/sessions/not-a-uuid"},
		{http.MethodPost, "/sessions/not-a-uuid/next"},
		{http.MethodGet, "/sessions/not-a-uuid/preview"},
		{http.MethodGet, "/sessions/not-a-uuid/share.png"},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			rec := serveJSON(e, r.method, r.path, "")
			requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
		})
	}
}

func TestConfiguratorHandler_Select(t *testing.T) {
	t.Run("trim carries all slots", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		id := uuid.New()
		want := usecase.SelectionInput{Field: "trim", Gable: "metal-rakes", Hip: "hip-starter", Ridge: "oval-ridge"}
		uc.EXPECT().Select(mock.Anything, id, want).Return(sessionOutput(id, configurator.StepOptions, false), nil)

		rec := serveJSON(e, http.MethodPatch, "/sessions/"+id.String()+"/selection",
			`{"field":"trim","gable":"metal-rakes","hip":"hip-starter","ridge":"oval-ridge"}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("field required", func(t *testing.T) {
		e, _ := setupConfiguratorHandler(t)

		rec := serveJSON(e, http.MethodPatch, "/sessions/"+uuid.NewString()+"/selection", `{"value":"33"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("invalid option", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		uc.EXPECT().Select(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidOption.WithDetails("edge=jagged"))

		rec := serveJSON(e, http.MethodPatch, "/sessions/"+uuid.NewString()+"/selection", `{"field":"edge","value":"jagged"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_OPTION")
		assert.Equal(t, "edge=jagged", decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("unavailable catalog item", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		uc.EXPECT().Select(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrSelectionUnavailable.WithDetails("color 999"))

		rec := serveJSON(e, http.MethodPatch, "/sessions/"+uuid.NewString()+"/selection", `{"field":"color","value":"999"}`)

		requireErrorCode(t, rec, http.StatusUnprocessableEntity, "SELECTION_UNAVAILABLE")
	})
}

func TestConfiguratorHandler_Navigation(t *testing.T) {
	e, uc := setupConfiguratorHandler(t)
	id := uuid.New()

	uc.EXPECT().Next(mock.Anything, id).Return(sessionOutput(id, configurator.StepProfile, false), nil).Once()
	uc.EXPECT().Prev(mock.Anything, id).Return(sessionOutput(id, configurator.StepProfile, false), nil).Once()
	uc.EXPECT().Reset(mock.Anything, id).Return(sessionOutput(id, configurator.StepProfile, true), nil).Once()

	rec := serveJSON(e, http.MethodPost, "/sessions/"+id.String()+"/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[sessionBody](t, rec)
	assert.False(t, body.Moved)
	assert.False(t, body.View.CanProceed)

	rec = serveJSON(e, http.MethodPost, "/sessions/"+id.String()+"/prev", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serveJSON(e, http.MethodPost, "/sessions/"+id.String()+"/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[sessionBody](t, rec).Moved)
}

func TestConfiguratorHandler_JumpTo(t *testing.T) {
	t.Run("step required", func(t *testing.T) {
		e, _ := setupConfiguratorHandler(t)

		rec := serveJSON(e, http.MethodPost, "/sessions/"+uuid.NewString()+"/jump", `{}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("step zero is accepted", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		id := uuid.New()
		uc.EXPECT().JumpTo(mock.Anything, id, 0).Return(sessionOutput(id, configurator.StepProfile, true), nil)

		rec := serveJSON(e, http.MethodPost, "/sessions/"+id.String()+"/jump", `{"step":0}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("out of range", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		uc.EXPECT().JumpTo(mock.Anything, mock.Anything, 9).Return(nil, domainerrors.ErrInvalidStep.WithDetails("9"))

		rec := serveJSON(e, http.MethodPost, "/sessions/"+uuid.NewString()+"/jump", `{"step":9}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_STEP")
	})
}

func TestConfiguratorHandler_Share(t *testing.T) {
	e, uc := setupConfiguratorHandler(t)
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	uc.EXPECT().Share(mock.Anything, id).
		Return(&usecase.ShareOutput{Token: "tok", URL: "https://tiles.example.com/configure?share=tok", PNG: png}, nil).Twice()

	rec := serveJSON(e, http.MethodGet, "/sessions/"+id.String()+"/share", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ShareResponse{Token: "tok", URL: "https://tiles.example.com/configure?share=tok"}, decodeData[ShareResponse](t, rec))

	rec = serveJSON(e, http.MethodGet, "/sessions/"+id.String()+"/share.png", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestConfiguratorHandler_Preview(t *testing.T) {
	e, uc := setupConfiguratorHandler(t)
	id := uuid.New()
	cfg := entity.DefaultConfiguration()
	uc.EXPECT().Preview(mock.Anything, id).Return(&usecase.PreviewOutput{
		Preview: configurator.ComposePreview(&cfg),
		Houses:  []*entity.HousePreview{{HouseID: "ranch", Name: "Ranch"}},
	}, nil)

	rec := serveJSON(e, http.MethodGet, "/sessions/"+id.String()+"/preview", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[map[string]any](t, rec)
	assert.Len(t, body["houses"], 1)
}

func newQuoteForm(t *testing.T, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"name":    "Dana Roofer",
		"email":   "dana@example.com",
		"address": "12 Ridge Road",
	} {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		part, err := w.CreateFormFile("file", "roof-plan.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.7"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestConfiguratorHandler_SubmitQuote(t *testing.T) {
	t.Run("with attachment", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		id := uuid.New()
		quoteID := uuid.New()

		uc.EXPECT().SubmitQuote(mock.Anything, id, mock.Anything).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, in usecase.SubmitQuoteInput) (*entity.QuoteRequest, error) {
				assert.Equal(t, "Dana Roofer", in.Contact.Name)
				assert.Equal(t, "dana@example.com", in.Contact.Email)
				require.NotNil(t, in.Attachment)
				assert.Equal(t, "roof-plan.pdf", in.Attachment.Filename)
				content, err := io.ReadAll(in.Attachment.Content)
				require.NoError(t, err)
				assert.Equal(t, "%PDF-1.7", string(content))

				return &entity.QuoteRequest{ID: quoteID, Status: entity.QuoteStatusPending}, nil
			})

		body, contentType := newQuoteForm(t, true)
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+id.String()+"/quote", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, quoteID, decodeData[entity.QuoteRequest](t, rec).ID)
	})

	t.Run("without attachment", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		uc.EXPECT().SubmitQuote(mock.Anything, mock.Anything, mock.MatchedBy(func(in usecase.SubmitQuoteInput) bool {
			return in.Attachment == nil && in.Contact.Address == "12 Ridge Road"
		})).Return(&entity.QuoteRequest{ID: uuid.New()}, nil)

		body, contentType := newQuoteForm(t, false)
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+uuid.NewString()+"/quote", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("incomplete configuration", func(t *testing.T) {
		e, uc := setupConfiguratorHandler(t)
		uc.EXPECT().SubmitQuote(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrQuoteIncomplete)

		body, contentType := newQuoteForm(t, false)
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+uuid.NewString()+"/quote", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		requireErrorCode(t, rec, http.StatusUnprocessableEntity, "QUOTE_INCOMPLETE")
	})
}

func TestConfiguratorHandler_EndSession(t *testing.T) {
	e, uc := setupConfiguratorHandler(t)
	id := uuid.New()
	uc.EXPECT().EndSession(mock.Anything, id).Return(nil).Once()
	uc.EXPECT().EndSession(mock.Anything, id).Return(domainerrors.ErrSessionNotFound).Once()

	rec := serveJSON(e, http.MethodDelete, "/sessions/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serveJSON(e, http.MethodDelete, "/sessions/"+id.String(), "")
	requireErrorCode(t, rec, http.StatusNotFound, "SESSION_NOT_FOUND")
}
