package impl

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/repository"
	"bartile/internal/usecase"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// NewProfileCatalog is the constructor for the tile profile catalog.
func NewProfileCatalog(repo repository.ProfileRepository, logger *slog.Logger) usecase.ProfileCatalog {
	return newCatalogService(repo, catalogRules[entity.Profile]{
		name:      "profile",
		notFound:  domainerrors.ErrProfileNotFound,
		normalize: normalizeProfile,
		key:       func(p *entity.Profile) string { return p.ProfileID },
		isActive:  func(p *entity.Profile) bool { return p.IsActive },
		identify: func(p *entity.Profile, id uuid.UUID, createdAt time.Time) {
			p.ID, p.CreatedAt = id, createdAt
		},
		stored: func(p *entity.Profile) (uuid.UUID, time.Time) { return p.ID, p.CreatedAt },
	}, logger)
}

// NewColorCatalog is the constructor for the tile color catalog.
func NewColorCatalog(repo repository.ColorRepository, logger *slog.Logger) usecase.ColorCatalog {
	return newCatalogService(repo, catalogRules[entity.Color]{
		name:      "color",
		notFound:  domainerrors.ErrColorNotFound,
		normalize: normalizeColor,
		key:       func(c *entity.Color) string { return c.ColorID },
		isActive:  func(c *entity.Color) bool { return c.IsActive },
		identify: func(c *entity.Color, id uuid.UUID, createdAt time.Time) {
			c.ID, c.CreatedAt = id, createdAt
		},
		stored: func(c *entity.Color) (uuid.UUID, time.Time) { return c.ID, c.CreatedAt },
	}, logger)
}

// NewTextureCatalog is the constructor for the tile texture catalog.
func NewTextureCatalog(repo repository.TextureRepository, logger *slog.Logger) usecase.TextureCatalog {
	return newCatalogService(repo, catalogRules[entity.Texture]{
		name:      "texture",
		notFound:  domainerrors.ErrTextureNotFound,
		normalize: normalizeTexture,
		key:       func(t *entity.Texture) string { return t.TextureID },
		isActive:  func(t *entity.Texture) bool { return t.IsActive },
		identify: func(t *entity.Texture, id uuid.UUID, createdAt time.Time) {
			t.ID, t.CreatedAt = id, createdAt
		},
		stored: func(t *entity.Texture) (uuid.UUID, time.Time) { return t.ID, t.CreatedAt },
	}, logger)
}

// NewHouseCatalog is the constructor for the house preview catalog.
func NewHouseCatalog(repo repository.HousePreviewRepository, logger *slog.Logger) usecase.HouseCatalog {
	return newCatalogService(repo, catalogRules[entity.HousePreview]{
		name:      "house",
		notFound:  domainerrors.ErrHouseNotFound,
		normalize: normalizeHouse,
		key:       func(h *entity.HousePreview) string { return h.HouseID },
		isActive:  func(h *entity.HousePreview) bool { return h.IsActive },
		identify: func(h *entity.HousePreview, id uuid.UUID, createdAt time.Time) {
			h.ID, h.CreatedAt = id, createdAt
		},
		stored: func(h *entity.HousePreview) (uuid.UUID, time.Time) { return h.ID, h.CreatedAt },
	}, logger)
}

func normalizeProfile(p *entity.Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = entity.ProfileCategory(strings.TrimSpace(string(p.Category)))
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.ProfileID = keyOrSlug(p.ProfileID, p.Name)
	p.Features = cleanFeatures(p.Features)

	return requireFields(map[string]string{
		"name":       p.Name,
		"profile_id": p.ProfileID,
		"category":   string(p.Category),
	})
}

func normalizeColor(c *entity.Color) error {
	c.Name = strings.TrimSpace(c.Name)
	c.ColorID = strings.TrimSpace(c.ColorID)
	c.Category = strings.TrimSpace(c.Category)
	c.Hex = strings.TrimSpace(c.Hex)
	if c.Hex != "" && !strings.HasPrefix(c.Hex, "#") {
		c.Hex = "#" + c.Hex
	}

	return requireFields(map[string]string{
		"name":     c.Name,
		"color_id": c.ColorID,
		"hex":      c.Hex,
		"category": c.Category,
	})
}

func normalizeTexture(t *entity.Texture) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Description = strings.TrimSpace(t.Description)
	t.ImageURL = strings.TrimSpace(t.ImageURL)
	t.Note = strings.TrimSpace(t.Note)
	t.TextureID = keyOrSlug(t.TextureID, t.Name)

	return requireFields(map[string]string{
		"name":       t.Name,
		"texture_id": t.TextureID,
	})
}

func normalizeHouse(h *entity.HousePreview) error {
	h.Name = strings.TrimSpace(h.Name)
	h.ImageURL = strings.TrimSpace(h.ImageURL)
	h.HouseID = keyOrSlug(h.HouseID, h.Name)

	return requireFields(map[string]string{
		"name":      h.Name,
		"house_id":  h.HouseID,
		"image_url": h.ImageURL,
	})
}

// keyOrSlug keeps an explicit key as given and derives one from name when blank.
func keyOrSlug(key, name string) string {
	if key = strings.TrimSpace(key); key != "" {
		return key
	}

	return slug.Make(name)
}

// cleanFeatures trims each feature and drops blank entries.
func cleanFeatures(features []string) []string {
	cleaned := make([]string, 0, len(features))
	for _, f := range features {
		if f = strings.TrimSpace(f); f != "" {
			cleaned = append(cleaned, f)
		}
	}

	return cleaned
}

// requireFields lists every missing field, sorted by name.
func requireFields(fields map[string]string) error {
	missing := make([]string, 0, len(fields))
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)

	return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
}
