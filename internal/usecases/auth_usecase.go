package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"check-vero.backend/internal/domain/entities"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/domain/repositories"
	"check-vero.backend/pkg/crypto"
	"check-vero.backend/pkg/jwt"
	"check-vero.backend/pkg/metrics"
	redispkg "check-vero.backend/pkg/redis"
)

// AuthUsecase handles registration and authentication business logic
type AuthUsecase struct {
	userRepo      repositories.UserRepository
	jwtService    *jwt.JWTService
	sessionStore  *redispkg.SessionStore
	sessionExpiry time.Duration
}

// NewAuthUsecase creates a new auth usecase. sessionStore may be nil when
// session-backed login is disabled.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	sessionStore *redispkg.SessionStore,
	sessionExpiry time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		jwtService:    jwtService,
		sessionStore:  sessionStore,
		sessionExpiry: sessionExpiry,
	}
}

// Register creates a new user account. The username must be unique; a race
// between concurrent registrations with the same username is resolved by the
// store, which admits exactly one.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	if !input.Role.Valid() {
		return nil, domainerrors.BadRequest("unknown role")
	}
	if input.Role == entities.UserRoleBusiness && strings.TrimSpace(input.CompanyName) == "" {
		return nil, domainerrors.BadRequest("company name is required for business accounts")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
		CompanyName:  null.NewString(input.CompanyName, input.CompanyName != ""),
		IsActive:     true,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("username already taken")
		}
		return nil, err
	}

	metrics.UsersRegistered.WithLabelValues(string(user.Role)).Inc()
	return user, nil
}

// IssueTokens generates a fresh token pair for an already-authenticated user,
// so registration can log the new account in immediately.
func (u *AuthUsecase) IssueTokens(user *entities.User) (*jwt.TokenPair, error) {
	return u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
}

// Login authenticates a user and returns tokens. When the client asks for a
// session, the token pair is stored server-side and only the session ID goes
// back to the client.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	if input.UseSession && u.sessionStore != nil {
		sessionID, err := crypto.GenerateSessionID()
		if err != nil {
			return nil, err
		}
		err = u.sessionStore.CreateSession(ctx, sessionID, &redispkg.SessionData{
			UserID:       user.ID.String(),
			Role:         string(user.Role),
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}, u.sessionExpiry)
		if err != nil {
			return nil, err
		}
		return &entities.AuthResponse{
			SessionID: sessionID,
			TokenType: "bearer",
			User:      user,
		}, nil
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		TokenType:    "bearer",
		User:         user,
	}, nil
}

// RefreshToken generates a new token pair from a valid refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrUnauthorized
	}

	// Re-read the user so revoked or renamed accounts stop refreshing
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUnauthorized
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
