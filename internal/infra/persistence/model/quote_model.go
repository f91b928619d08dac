package model

import (
	"time"

	"bartile/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuoteRequestModel mirrors the 'quote_requests' table.
// The configuration is frozen into a jsonb column at submission time.
type QuoteRequestModel struct {
	ID            uuid.UUID                                `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string                                   `gorm:"type:varchar(150);not null"`
	Email         string                                   `gorm:"type:varchar(255);not null;index"`
	Phone         string                                   `gorm:"type:varchar(50)"`
	Address       string                                   `gorm:"type:varchar(500);not null"`
	Comments      string                                   `gorm:"type:text"`
	Configuration datatypes.JSONType[entity.Configuration] `gorm:"type:jsonb;not null"`
	FileURL       string                                   `gorm:"type:varchar(500)"`
	Status        string                                   `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time                                `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuoteRequestModel) TableName() string {
	return "quote_requests"
}
