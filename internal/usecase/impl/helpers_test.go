package impl

import (
	"io"
	"log/slog"

	"bartile/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProfile() *entity.Profile {
	return &entity.Profile{
		ID:        uuid.New(),
		ProfileID: "legendary-slate",
		Name:      "Legendary Slate",
		Category:  entity.ProfileCategorySlate,
		Features:  []string{"Class A fire rating"},
		IsActive:  true,
	}
}

func newTestColor() *entity.Color {
	return &entity.Color{
		ID:       uuid.New(),
		ColorID:  "33",
		Name:     "Charcoal",
		Hex:      "#3d3d3d",
		Category: "Dark",
		IsActive: true,
	}
}

func newTestTexture() *entity.Texture {
	return &entity.Texture{
		ID:        uuid.New(),
		TextureID: "vintage",
		Name:      "Vintage",
		IsActive:  true,
	}
}

func newTestContact() entity.ContactDetails {
	return entity.ContactDetails{
		Name:    "Dana Roofer",
		Email:   "dana@example.com",
		Address: "12 Ridge Road",
	}
}

func newCompleteConfiguration() entity.Configuration {
	cfg := entity.DefaultConfiguration()
	p, c, tx := newTestProfile().Snapshot(), newTestColor().Snapshot(), newTestTexture().Snapshot()
	cfg.Profile, cfg.Color, cfg.Texture = &p, &c, &tx

	return cfg
}
