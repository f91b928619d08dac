package usecase

import (
	"context"

	"bartile/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for an admin to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginInput carries a Google Sign-In ID token.
type GoogleLoginInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshTokenInput carries a refresh token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateAdminInput provisions an admin account.
type CreateAdminInput struct {
	Name     string
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         *entity.User `json:"user"`
}

// AuthUsecase defines the authentication operations of the admin console.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GoogleLogin(ctx context.Context, input GoogleLoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input RefreshTokenInput) (*LoginOutput, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	CreateAdmin(ctx context.Context, input CreateAdminInput) (*entity.User, error)
}
