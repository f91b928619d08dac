package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TileProfileModel mirrors the 'tile_profiles' table.
// Features is stored as a JSON array so admins can edit the bullet list freely.
type TileProfileModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID   string                      `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name        string                      `gorm:"type:varchar(150);not null"`
	Category    string                      `gorm:"type:varchar(50);not null;index"`
	Description string                      `gorm:"type:text"`
	ImageURL    string                      `gorm:"type:varchar(500)"`
	Features    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	IsActive    bool                        `gorm:"not null;default:true"`
	SortOrder   int                         `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TileProfileModel) TableName() string {
	return "tile_profiles"
}

// TileColorModel mirrors the 'tile_colors' table.
type TileColorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ColorID   string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Hex       string    `gorm:"type:varchar(7);not null"`
	Category  string    `gorm:"type:varchar(30);not null;index"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TileColorModel) TableName() string {
	return "tile_colors"
}

// TileTextureModel mirrors the 'tile_textures' table.
type TileTextureModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TextureID   string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	IsPremium   bool      `gorm:"not null;default:false"`
	Note        string    `gorm:"type:varchar(255)"`
	IsActive    bool      `gorm:"not null;default:true"`
	SortOrder   int       `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TileTextureModel) TableName() string {
	return "tile_textures"
}

// HousePreviewModel mirrors the 'house_previews' table.
type HousePreviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HouseID   string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	ImageURL  string    `gorm:"type:varchar(500);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HousePreviewModel) TableName() string {
	return "house_previews"
}
