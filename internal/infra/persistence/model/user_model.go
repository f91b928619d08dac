package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Role         string    `gorm:"type:varchar(20);not null;default:'customer'"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	GoogleSub    *string   `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AllModels lists every persisted model, in migration order.
func AllModels() []any {
	return []any{
		&UserModel{},
		&TileProfileModel{},
		&TileColorModel{},
		&TileTextureModel{},
		&HousePreviewModel{},
		&QuoteRequestModel{},
	}
}
