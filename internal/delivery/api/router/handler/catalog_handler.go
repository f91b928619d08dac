package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"bartile/internal/delivery/api/response"
	deliverycontext "bartile/internal/delivery/context"
	"bartile/internal/domain/configurator"
	"bartile/internal/domain/entity"
	"bartile/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	Profiles usecase.ProfileCatalog
	Colors   usecase.ColorCatalog
	Textures usecase.TextureCatalog
	Houses   usecase.HouseCatalog
	Logger   *slog.Logger
}

// CatalogHandler serves the public, active-only catalog lists.
// A failing lookup is logged and served as an empty list so the configurator stays usable.
type CatalogHandler struct {
	profiles usecase.ProfileCatalog
	colors   usecase.ColorCatalog
	textures usecase.TextureCatalog
	houses   usecase.HouseCatalog
	logger   *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		profiles: params.Profiles,
		colors:   params.Colors,
		textures: params.Textures,
		houses:   params.Houses,
		logger:   params.Logger,
	}
}

// CatalogQuery narrows the profile and color lists.
// A blank category selects every category.
type CatalogQuery struct {
	Category string `query:"category"`
	Query    string `query:"q"`
}

func (q *CatalogQuery) category() string {
	if strings.TrimSpace(q.Category) == "" {
		return configurator.CategoryAll
	}

	return q.Category
}

// ListProfiles returns active profiles, optionally filtered by category and name.
func (h *CatalogHandler) ListProfiles(c echo.Context) error {
	var q CatalogQuery
	if err := c.Bind(&q); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog query")
	}

	items, err := h.profiles.ListActive(c.Request().Context())
	if err != nil {
		h.logFailure(c, "profiles", err)
		items = []*entity.Profile{}
	}

	return response.Success(c, http.StatusOK, configurator.Filter(items, q.category(), q.Query))
}

// ListColors returns active colors, optionally filtered by category and name or code.
func (h *CatalogHandler) ListColors(c echo.Context) error {
	var q CatalogQuery
	if err := c.Bind(&q); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog query")
	}

	items, err := h.colors.ListActive(c.Request().Context())
	if err != nil {
		h.logFailure(c, "colors", err)
		items = []*entity.Color{}
	}

	return response.Success(c, http.StatusOK, configurator.Filter(items, q.category(), q.Query))
}

func (h *CatalogHandler) ListTextures(c echo.Context) error {
	items, err := h.textures.ListActive(c.Request().Context())
	if err != nil {
		h.logFailure(c, "textures", err)
		items = []*entity.Texture{}
	}

	return response.Success(c, http.StatusOK, items)
}

func (h *CatalogHandler) ListHouses(c echo.Context) error {
	items, err := h.houses.ListActive(c.Request().Context())
	if err != nil {
		h.logFailure(c, "houses", err)
		items = []*entity.HousePreview{}
	}

	return response.Success(c, http.StatusOK, items)
}

// Categories returns the category choices for the filter tabs.
func (h *CatalogHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"profiles": entity.ProfileCategories(),
		"colors":   entity.ColorCategories(),
	})
}

func (h *CatalogHandler) logFailure(c echo.Context, kind string, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Error("Failed to load catalog", slog.String("kind", kind), slog.Any("error", err))
}
