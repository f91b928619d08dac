package google

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"bartile/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestService(validate validateFunc) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc := NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	svc := newTestService(func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Subject: "test_user_123",
			Claims: map[string]any{
				"email":          "test@example.com",
				"name":           "Test User",
				"picture":        "https://example.com/a.png",
				"email_verified": true,
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "test_user_123", user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejected(t *testing.T) {
	svc := newTestService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "token verification failed")
}

func TestAuthService_VerifyIDToken_UnverifiedEmail(t *testing.T) {
	svc := newTestService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Subject: "test_user_123",
			Claims:  map[string]any{"email": "test@example.com", "email_verified": "false"},
		}, nil
	})

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.EqualError(t, err, "email not verified")
}

func TestAuthService_VerifyIDToken_NoClientID(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
}
