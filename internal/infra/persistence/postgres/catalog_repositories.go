package postgres

import (
	"bartile/internal/domain/entity"
	"bartile/internal/domain/repository"
	"bartile/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewProfileRepository is the constructor for the tile profile repository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return newCatalogRepository(db, catalogMapping[entity.Profile, model.TileProfileModel]{
		name:       "tile profile",
		keyColumn:  "profile_id",
		toDomain:   toProfileDomain,
		fromDomain: fromProfileDomain,
		idOf:       func(p *entity.Profile) uuid.UUID { return p.ID },
	})
}

// NewColorRepository is the constructor for the tile color repository.
func NewColorRepository(db *gorm.DB) repository.ColorRepository {
	return newCatalogRepository(db, catalogMapping[entity.Color, model.TileColorModel]{
		name:       "tile color",
		keyColumn:  "color_id",
		toDomain:   toColorDomain,
		fromDomain: fromColorDomain,
		idOf:       func(c *entity.Color) uuid.UUID { return c.ID },
	})
}

// NewTextureRepository is the constructor for the tile texture repository.
func NewTextureRepository(db *gorm.DB) repository.TextureRepository {
	return newCatalogRepository(db, catalogMapping[entity.Texture, model.TileTextureModel]{
		name:       "tile texture",
		keyColumn:  "texture_id",
		toDomain:   toTextureDomain,
		fromDomain: fromTextureDomain,
		idOf:       func(t *entity.Texture) uuid.UUID { return t.ID },
	})
}

// NewHousePreviewRepository is the constructor for the house preview repository.
func NewHousePreviewRepository(db *gorm.DB) repository.HousePreviewRepository {
	return newCatalogRepository(db, catalogMapping[entity.HousePreview, model.HousePreviewModel]{
		name:       "house preview",
		keyColumn:  "house_id",
		toDomain:   toHouseDomain,
		fromDomain: fromHouseDomain,
		idOf:       func(h *entity.HousePreview) uuid.UUID { return h.ID },
	})
}

// --- Mapper Functions ---

func toProfileDomain(data *model.TileProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		ProfileID:   data.ProfileID,
		Name:        data.Name,
		Category:    entity.ProfileCategory(data.Category),
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Features:    []string(data.Features),
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.TileProfileModel {
	if data == nil {
		return nil
	}

	return &model.TileProfileModel{
		ID:          data.ID,
		ProfileID:   data.ProfileID,
		Name:        data.Name,
		Category:    string(data.Category),
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Features:    datatypes.NewJSONSlice(data.Features),
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toColorDomain(data *model.TileColorModel) *entity.Color {
	if data == nil {
		return nil
	}

	return &entity.Color{
		ID:        data.ID,
		ColorID:   data.ColorID,
		Name:      data.Name,
		Hex:       data.Hex,
		Category:  data.Category,
		IsActive:  data.IsActive,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromColorDomain(data *entity.Color) *model.TileColorModel {
	if data == nil {
		return nil
	}

	return &model.TileColorModel{
		ID:        data.ID,
		ColorID:   data.ColorID,
		Name:      data.Name,
		Hex:       data.Hex,
		Category:  data.Category,
		IsActive:  data.IsActive,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toTextureDomain(data *model.TileTextureModel) *entity.Texture {
	if data == nil {
		return nil
	}

	return &entity.Texture{
		ID:          data.ID,
		TextureID:   data.TextureID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		IsPremium:   data.IsPremium,
		Note:        data.Note,
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTextureDomain(data *entity.Texture) *model.TileTextureModel {
	if data == nil {
		return nil
	}

	return &model.TileTextureModel{
		ID:          data.ID,
		TextureID:   data.TextureID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		IsPremium:   data.IsPremium,
		Note:        data.Note,
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toHouseDomain(data *model.HousePreviewModel) *entity.HousePreview {
	if data == nil {
		return nil
	}

	return &entity.HousePreview{
		ID:        data.ID,
		HouseID:   data.HouseID,
		Name:      data.Name,
		ImageURL:  data.ImageURL,
		IsActive:  data.IsActive,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromHouseDomain(data *entity.HousePreview) *model.HousePreviewModel {
	if data == nil {
		return nil
	}

	return &model.HousePreviewModel{
		ID:        data.ID,
		HouseID:   data.HouseID,
		Name:      data.Name,
		ImageURL:  data.ImageURL,
		IsActive:  data.IsActive,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
