package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ProfileCategory groups tile profiles by shape family.
type ProfileCategory string

const (
	ProfileCategorySlate         ProfileCategory = "Slate"
	ProfileCategorySplitTimber   ProfileCategory = "Split Timber"
	ProfileCategoryMission       ProfileCategory = "Mission"
	ProfileCategoryMediterranean ProfileCategory = "Mediterranean"
	ProfileCategoryYorkshire     ProfileCategory = "Yorkshire"
)

// ProfileCategories lists the categories offered by the admin dashboard, in display order.
func ProfileCategories() []ProfileCategory {
	return []ProfileCategory{
		ProfileCategorySlate,
		ProfileCategorySplitTimber,
		ProfileCategoryMission,
		ProfileCategoryMediterranean,
		ProfileCategoryYorkshire,
	}
}

// ColorCategories lists the color families offered by the admin dashboard, in display order.
func ColorCategories() []string {
	return []string{"Dark", "Gray", "Brown", "Tan", "Red", "Green", "Blue"}
}

// Profile is a tile style managed in the catalog.
type Profile struct {
	ID          uuid.UUID       `json:"id"`
	ProfileID   string          `json:"profile_id"` // Stable business key, e.g. "legendary-slate".
	Name        string          `json:"name"`
	Category    ProfileCategory `json:"category"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Features    []string        `json:"features"`
	IsActive    bool            `json:"is_active"`
	SortOrder   int             `json:"sort_order"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Snapshot copies the fields a configuration keeps once the profile is selected.
func (p *Profile) Snapshot() ProfileSnapshot {
	return ProfileSnapshot{
		ID:          p.ProfileID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Features:    slices.Clone(p.Features),
	}
}

func (p *Profile) SearchName() string     { return p.Name }
func (p *Profile) SearchCategory() string { return string(p.Category) }
func (p *Profile) SearchCode() string     { return "" }

// Color is a tile color managed in the catalog.
type Color struct {
	ID        uuid.UUID `json:"id"`
	ColorID   string    `json:"color_id"` // Manufacturer color code, e.g. "33".
	Name      string    `json:"name"`
	Hex       string    `json:"hex"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot copies the fields a configuration keeps once the color is selected.
func (c *Color) Snapshot() ColorSnapshot {
	return ColorSnapshot{
		ID:       c.ColorID,
		Name:     c.Name,
		Hex:      c.Hex,
		Category: c.Category,
	}
}

func (c *Color) SearchName() string     { return c.Name }
func (c *Color) SearchCategory() string { return c.Category }
func (c *Color) SearchCode() string     { return c.ColorID }

// Texture is a surface finish managed in the catalog.
type Texture struct {
	ID          uuid.UUID `json:"id"`
	TextureID   string    `json:"texture_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	IsPremium   bool      `json:"is_premium"`
	Note        string    `json:"note,omitempty"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Snapshot copies the fields a configuration keeps once the texture is selected.
func (t *Texture) Snapshot() TextureSnapshot {
	return TextureSnapshot{
		ID:          t.TextureID,
		Name:        t.Name,
		Description: t.Description,
		ImageURL:    t.ImageURL,
		Premium:     t.IsPremium,
		Note:        t.Note,
	}
}

// HousePreview is a backdrop photo for the configurator preview panel.
type HousePreview struct {
	ID        uuid.UUID `json:"id"`
	HouseID   string    `json:"house_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CatalogEntity is the set of catalog types managed through the shared admin CRUD.
type CatalogEntity interface {
	Profile | Color | Texture | HousePreview
}
