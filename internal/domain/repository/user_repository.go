package repository

import (
	"context"
	"errors"

	"bartile/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned by every lookup that matches no account.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores admin and customer accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail expects an already normalized (trimmed, lower-cased) address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByGoogleSub finds the account linked to a Google subject.
	FindByGoogleSub(ctx context.Context, sub string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error

	// Update overwrites name, role, password hash and Google link.
	Update(ctx context.Context, user *entity.User) error
}
