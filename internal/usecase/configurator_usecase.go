package usecase

import (
	"context"
	"io"

	"bartile/internal/domain/configurator"
	"bartile/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// StartSessionInput opens a configurator session, optionally from a share link token.
type StartSessionInput struct {
	ShareToken string
}

// SelectionInput changes one field of a session's configuration.
// Value carries a catalog key for profile, color and texture, or an option value;
// trim uses the three sub-choice values instead.
type SelectionInput struct {
	Field string
	Value string
	Gable string
	Hip   string
	Ridge string
}

// Attachment is an optional file sent with a quote request.
type Attachment struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// SubmitQuoteInput carries the contact form of the summary step.
type SubmitQuoteInput struct {
	Contact    entity.ContactDetails
	Attachment *Attachment
}

// --- Output DTOs ---

// SessionOutput is the state returned after every session operation.
type SessionOutput struct {
	ID    uuid.UUID         `json:"id"`
	View  configurator.View `json:"view"`
	Moved bool              `json:"moved"` // navigation only: whether the step changed
}

// PreviewOutput is the data the preview panel renders.
type PreviewOutput struct {
	configurator.Preview
	Houses []*entity.HousePreview `json:"houses"`
}

// ShareOutput is a share link and its QR rendering.
type ShareOutput struct {
	Token string
	URL   string
	PNG   []byte
}

// ConfiguratorUsecase drives configurator sessions. Every call is one atomic user event.
type ConfiguratorUsecase interface {
	StartSession(ctx context.Context, input StartSessionInput) (*SessionOutput, error)
	GetSession(ctx context.Context, id uuid.UUID) (*SessionOutput, error)
	Select(ctx context.Context, id uuid.UUID, input SelectionInput) (*SessionOutput, error)
	Next(ctx context.Context, id uuid.UUID) (*SessionOutput, error)
	Prev(ctx context.Context, id uuid.UUID) (*SessionOutput, error)
	JumpTo(ctx context.Context, id uuid.UUID, step int) (*SessionOutput, error)
	Reset(ctx context.Context, id uuid.UUID) (*SessionOutput, error)
	Preview(ctx context.Context, id uuid.UUID) (*PreviewOutput, error)
	Share(ctx context.Context, id uuid.UUID) (*ShareOutput, error)
	SubmitQuote(ctx context.Context, id uuid.UUID, input SubmitQuoteInput) (*entity.QuoteRequest, error)
	EndSession(ctx context.Context, id uuid.UUID) error
}
