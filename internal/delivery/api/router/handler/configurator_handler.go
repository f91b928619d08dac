package handler

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"

	"bartile/internal/delivery/api/response"
	"bartile/internal/domain/entity"
	"bartile/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const attachmentField = "file"

// ConfiguratorHandlerParams holds dependencies for ConfiguratorHandler, injected by Fx.
type ConfiguratorHandlerParams struct {
	fx.In

	ConfiguratorUC usecase.ConfiguratorUsecase
	Logger         *slog.Logger
}

// ConfiguratorHandler exposes the configurator session to the browser.
type ConfiguratorHandler struct {
	configuratorUC usecase.ConfiguratorUsecase
	logger         *slog.Logger
}

// NewConfiguratorHandler is the constructor for ConfiguratorHandler
func NewConfiguratorHandler(params ConfiguratorHandlerParams) *ConfiguratorHandler {
	return &ConfiguratorHandler{
		configuratorUC: params.ConfiguratorUC,
		logger:         params.Logger,
	}
}

// StartSessionRequest optionally restores a shared configuration.
// The token may also arrive as the share query parameter.
type StartSessionRequest struct {
	Share string `json:"share"`
}

// SelectionRequest changes one field of the configuration.
// Trim selections set any of gable, hip and ridge; blank slots keep their current value.
type SelectionRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
	Gable string `json:"gable"`
	Hip   string `json:"hip"`
	Ridge string `json:"ridge"`
}

// JumpRequest targets a step indicator entry.
type JumpRequest struct {
	Step *int `json:"step" validate:"required"`
}

// ShareResponse is the shareable link of a session.
type ShareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// StartSession opens a new configurator session.
func (h *ConfiguratorHandler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if req.Share == "" {
		req.Share = c.QueryParam("share")
	}

	out, err := h.configuratorUC.StartSession(c.Request().Context(), usecase.StartSessionInput{ShareToken: req.Share})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// GetSession returns the current view of a session.
func (h *ConfiguratorHandler) GetSession(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	out, err := h.configuratorUC.GetSession(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Select applies a selection to the session.
func (h *ConfiguratorHandler) Select(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req SelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.configuratorUC.Select(c.Request().Context(), id, usecase.SelectionInput{
		Field: req.Field,
		Value: req.Value,
		Gable: req.Gable,
		Hip:   req.Hip,
		Ridge: req.Ridge,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *ConfiguratorHandler) Next(c echo.Context) error {
	return h.navigate(c, h.configuratorUC.Next)
}

func (h *ConfiguratorHandler) Prev(c echo.Context) error {
	return h.navigate(c, h.configuratorUC.Prev)
}

func (h *ConfiguratorHandler) Reset(c echo.Context) error {
	return h.navigate(c, h.configuratorUC.Reset)
}

// JumpTo moves to a visited step.
func (h *ConfiguratorHandler) JumpTo(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req JumpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid step input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.configuratorUC.JumpTo(c.Request().Context(), id, *req.Step)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Preview returns the render parameters of the tile preview.
func (h *ConfiguratorHandler) Preview(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	out, err := h.configuratorUC.Preview(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Share returns a link that restores the current configuration.
func (h *ConfiguratorHandler) Share(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	out, err := h.configuratorUC.Share(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ShareResponse{Token: out.Token, URL: out.URL})
}

// ShareQR serves the share link as a QR code image.
func (h *ConfiguratorHandler) ShareQR(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	out, err := h.configuratorUC.Share(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, out.PNG)
}

// SubmitQuote sends the configuration to the sales team.
// The form is multipart so a roof plan can be attached.
func (h *ConfiguratorHandler) SubmitQuote(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	input := usecase.SubmitQuoteInput{
		Contact: entity.ContactDetails{
			Name:     c.FormValue("name"),
			Email:    c.FormValue("email"),
			Phone:    c.FormValue("phone"),
			Address:  c.FormValue("address"),
			Comments: c.FormValue("comments"),
		},
	}

	header, err := c.FormFile(attachmentField)
	switch {
	case err == nil:
		file, openErr := header.Open()
		if openErr != nil {
			return response.BindingError(c, "INVALID_FILE", "Attachment could not be read")
		}
		defer file.Close()

		input.Attachment = attachmentOf(header, file)
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote form")
	}

	quote, err := h.configuratorUC.SubmitQuote(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, quote)
}

// EndSession discards a session.
func (h *ConfiguratorHandler) EndSession(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	if err := h.configuratorUC.EndSession(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type navigateFunc func(ctx context.Context, id uuid.UUID) (*usecase.SessionOutput, error)

func (h *ConfiguratorHandler) navigate(c echo.Context, move navigateFunc) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	out, err := move(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func attachmentOf(header *multipart.FileHeader, file multipart.File) *usecase.Attachment {
	return &usecase.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Content:     file,
	}
}
