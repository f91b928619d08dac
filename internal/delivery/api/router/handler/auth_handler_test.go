package handler

import (
	"net/http"
	"testing"

	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	mockUC "bartile/internal/mocks/usecase"
	"bartile/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthHandler(t *testing.T) (*echo.Echo, *mockUC.MockAuthUsecase) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/auth/login", h.Login)
	e.POST("/auth/google", h.GoogleLogin)
	e.POST("/auth/refresh", h.RefreshToken)

	return e, uc
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, uc := setupAuthHandler(t)
		uc.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "admin@example.com", Password: "secret"}).
			Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)

		rec := serveJSON(e, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"secret"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		out := decodeData[usecase.LoginOutput](t, rec)
		assert.Equal(t, "access", out.AccessToken)
		assert.EqualValues(t, 900, out.ExpiresIn)
	})

	t.Run("invalid email", func(t *testing.T) {
		e, _ := setupAuthHandler(t)

		rec := serveJSON(e, http.MethodPost, "/auth/login", `{"email":"nope","password":"secret"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := setupAuthHandler(t)

		rec := serveJSON(e, http.MethodPost, "/auth/login", `{"email":`)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("wrong password", func(t *testing.T) {
		e, uc := setupAuthHandler(t)
		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

		rec := serveJSON(e, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"wrong"}`)

		requireErrorCode(t, rec, http.StatusUnauthorized, domainerrors.ErrInvalidCredentials.ErrorCode())
	})
}

func TestAuthHandler_GoogleAndRefresh(t *testing.T) {
	e, uc := setupAuthHandler(t)
	uc.EXPECT().GoogleLogin(mock.Anything, usecase.GoogleLoginInput{IDToken: "id-token"}).
		Return(&usecase.LoginOutput{AccessToken: "a"}, nil)
	uc.EXPECT().RefreshToken(mock.Anything, usecase.RefreshTokenInput{RefreshToken: "stale"}).
		Return(nil, domainerrors.ErrTokenInvalid)

	rec := serveJSON(e, http.MethodPost, "/auth/google", `{"id_token":"id-token"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serveJSON(e, http.MethodPost, "/auth/google", `{}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	rec = serveJSON(e, http.MethodPost, "/auth/refresh", `{"refresh_token":"stale"}`)
	requireErrorCode(t, rec, http.StatusUnauthorized, domainerrors.ErrTokenInvalid.ErrorCode())
}

func TestAuthHandler_Me(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: uc, Logger: newDiscardLogger()})
	userID := uuid.New()

	e := newTestEcho()
	e.GET("/auth/me", h.Me)
	e.GET("/auth/me-as", h.Me, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("userID", userID)

			return next(c)
		}
	})

	uc.EXPECT().CurrentUser(mock.Anything, userID).Return(&entity.User{ID: userID, Email: "admin@example.com", Role: entity.RoleAdmin}, nil)

	rec := serveJSON(e, http.MethodGet, "/auth/me", "")
	requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")

	rec = serveJSON(e, http.MethodGet, "/auth/me-as", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, decodeData[entity.User](t, rec).ID)
}
