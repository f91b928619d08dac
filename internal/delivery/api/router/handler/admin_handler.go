package handler

import (
	"log/slog"
	"net/http"

	"bartile/internal/delivery/api/response"
	"bartile/internal/domain/entity"
	"bartile/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Profiles    usecase.ProfileCatalog
	Colors      usecase.ColorCatalog
	Textures    usecase.TextureCatalog
	Houses      usecase.HouseCatalog
	QuoteUC     usecase.QuoteUsecase
	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// AdminHandler serves the back office: catalog maintenance and the quote inbox.
type AdminHandler struct {
	Profiles *CatalogAdmin[entity.Profile]
	Colors   *CatalogAdmin[entity.Color]
	Textures *CatalogAdmin[entity.Texture]
	Houses   *CatalogAdmin[entity.HousePreview]

	quoteUC     usecase.QuoteUsecase
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		Profiles:    newCatalogAdmin(params.Profiles, "profile"),
		Colors:      newCatalogAdmin(params.Colors, "color"),
		Textures:    newCatalogAdmin(params.Textures, "texture"),
		Houses:      newCatalogAdmin(params.Houses, "house preview"),
		quoteUC:     params.QuoteUC,
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// ListQuotesRequest is the query of the quote inbox.
type ListQuotesRequest struct {
	Status string `query:"status"`
	Limit  int    `query:"limit" validate:"gte=0"`
	Offset int    `query:"offset" validate:"gte=0"`
}

// UpdateQuoteStatusRequest moves a quote through the sales workflow.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListQuotes returns quote requests, newest first.
func (h *AdminHandler) ListQuotes(c echo.Context) error {
	var req ListQuotesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quotes, err := h.quoteUC.List(c.Request().Context(), usecase.ListQuotesInput{
		Status: req.Status,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotes)
}

func (h *AdminHandler) GetQuote(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}

	quote, err := h.quoteUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

func (h *AdminHandler) UpdateQuoteStatus(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}

	var req UpdateQuoteStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quote, err := h.quoteUC.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// Stats returns the dashboard counters.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
