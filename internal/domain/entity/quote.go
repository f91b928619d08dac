package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus is the review state of a quote request.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusReviewed  QuoteStatus = "reviewed"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusCompleted QuoteStatus = "completed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// String returns the string representation of the status.
func (s QuoteStatus) String() string {
	return string(s)
}

// IsValid checks if the QuoteStatus is a valid value.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusReviewed, QuoteStatusQuoted, QuoteStatusCompleted, QuoteStatusCancelled:
		return true
	default:
		return false
	}
}

// ContactDetails are the customer fields collected by the quote form.
type ContactDetails struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address" validate:"required"`
	Comments string `json:"comments,omitempty"`
}

// QuoteRequest is a submitted configuration awaiting a price from the sales team.
type QuoteRequest struct {
	ID            uuid.UUID      `json:"id"`
	Contact       ContactDetails `json:"contact"`
	Configuration Configuration  `json:"configuration"` // Frozen copy taken at submission time.
	FileURL       string         `json:"file_url,omitempty"`
	Status        QuoteStatus    `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// QuoteSubmittedEvent is published once a quote request has been stored.
type QuoteSubmittedEvent struct {
	QuoteID     uuid.UUID `json:"quote_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	ProfileName string    `json:"profile_name"`
	ColorName   string    `json:"color_name"`
	TextureName string    `json:"texture_name"`
	HasFile     bool      `json:"has_file"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewQuoteSubmittedEvent builds the event payload from a stored quote.
func NewQuoteSubmittedEvent(q *QuoteRequest) QuoteSubmittedEvent {
	event := QuoteSubmittedEvent{
		QuoteID:     q.ID,
		Name:        q.Contact.Name,
		Email:       q.Contact.Email,
		HasFile:     q.FileURL != "",
		SubmittedAt: q.CreatedAt,
	}
	if q.Configuration.Profile != nil {
		event.ProfileName = q.Configuration.Profile.Name
	}
	if q.Configuration.Color != nil {
		event.ColorName = q.Configuration.Color.Name
	}
	if q.Configuration.Texture != nil {
		event.TextureName = q.Configuration.Texture.Name
	}

	return event
}

// DashboardStats are the counts shown on the admin landing page.
type DashboardStats struct {
	Profiles      int64 `json:"profiles"`
	Colors        int64 `json:"colors"`
	Textures      int64 `json:"textures"`
	Houses        int64 `json:"houses"`
	Quotes        int64 `json:"quotes"`
	PendingQuotes int64 `json:"pending_quotes"`
}
