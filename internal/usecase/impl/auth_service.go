package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bartile/internal/delivery/context"
	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/repository"
	"bartile/internal/domain/service"
	"bartile/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks an email and password pair. Unknown emails and Google-only accounts
// fail exactly like a wrong password.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt is CPU-bound; never inside a transaction.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if srv.hasher.NeedsRehash(user.PasswordHash) {
		srv.rehashPassword(ctx, user, input.Password)
	}

	return srv.issueTokens(ctx, user)
}

// rehashPassword upgrades a stored hash to the current cost. Failures only cost
// another attempt on the next login.
func (srv *authService) rehashPassword(ctx context.Context, user *entity.User, password string) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash password", slog.String("user_id", user.ID.String()), slog.Any("error", err))

		return
	}

	updated := *user
	updated.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, &updated); err != nil {
		srv.log(ctx).Warn("Failed to store rehashed password", slog.String("user_id", user.ID.String()), slog.Any("error", err))

		return
	}
	user.PasswordHash = hash
}

// GoogleLogin signs in with a Google ID token. The Google account is matched by
// subject, then linked by email, and otherwise a customer account is created.
func (srv *authService) GoogleLogin(ctx context.Context, input usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails(err.Error())
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		found, err := userRepo.FindByGoogleSub(ctx, oauthUser.ID)
		if err == nil {
			user = found

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by google subject")
		}

		email := normalizeEmail(oauthUser.Email)
		found, err = userRepo.FindByEmail(ctx, email)
		switch {
		case err == nil:
			found.GoogleSub = oauthUser.ID
			if err := userRepo.Update(ctx, found); err != nil {
				return errors.Wrap(err, "failed to link google account")
			}
			user = found

			return nil
		case errors.Is(err, repository.ErrUserNotFound):
			user = &entity.User{
				Email:     email,
				Name:      oauthUser.Name,
				Role:      entity.RoleCustomer,
				GoogleSub: oauthUser.ID,
			}

			return errors.Wrap(userRepo.Create(ctx, user), "failed to create google user")
		default:
			return errors.Wrap(err, "failed to find user by email")
		}
	})
	if err != nil {
		srv.log(ctx).Error("Google login transaction failed", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute google login transaction")
	}

	return srv.issueTokens(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (srv *authService) RefreshToken(ctx context.Context, input usecase.RefreshTokenInput) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WithDetails(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	return srv.issueTokens(ctx, user)
}

func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// CreateAdmin provisions an admin account with a password.
func (srv *authService) CreateAdmin(ctx context.Context, input usecase.CreateAdminInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}
	if name == "" {
		name = email
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash admin password")
	}

	user := &entity.User{
		Email:        email,
		Name:         name,
		Role:         entity.RoleAdmin,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create admin")
	}

	srv.log(ctx).Info("Admin account created", slog.String("userID", user.ID.String()), slog.String("email", email))

	return user, nil
}

func (srv *authService) issueTokens(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	roles := entity.Roles{user.Role}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		User:         user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
