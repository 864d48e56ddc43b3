package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"check-vero.backend/internal/domain/entities"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/usecases"
	"check-vero.backend/pkg/crypto"
	"check-vero.backend/pkg/jwt"
	redispkg "check-vero.backend/pkg/redis"
)

func newAuthUsecaseForTest(userRepo *MockUserRepository, sessionStore *redispkg.SessionStore) *usecases.AuthUsecase {
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	return usecases.NewAuthUsecase(userRepo, jwtSvc, sessionStore, time.Hour)
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, nil)

	createdID := uuid.New()
	userRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Run(func(args mock.Arguments) {
		u := args.Get(1).(*entities.User)
		u.ID = createdID
	}).Once()

	user, err := uc.Register(context.Background(), &entities.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123!",
		Role:     entities.UserRoleCitizen,
	})
	assert.NoError(t, err)
	assert.Equal(t, createdID, user.ID)
	assert.Equal(t, entities.UserRoleCitizen, user.Role)
	assert.True(t, crypto.CheckPassword("Password123!", user.PasswordHash))
	assert.False(t, user.CompanyName.Valid)
	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_Register_InvalidRole(t *testing.T) {
	uc := newAuthUsecaseForTest(new(MockUserRepository), nil)

	_, err := uc.Register(context.Background(), &entities.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123!",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAuthUsecase_Register_BusinessRequiresCompanyName(t *testing.T) {
	uc := newAuthUsecaseForTest(new(MockUserRepository), nil)

	_, err := uc.Register(context.Background(), &entities.CreateUserInput{
		Username: "acme",
		Email:    "acme@example.com",
		Password: "Password123!",
		Role:     entities.UserRoleBusiness,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAuthUsecase_Register_UsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, nil)

	userRepo.On("Create", context.Background(), mock.AnythingOfType("*entities.User")).
		Return(domainerrors.ErrAlreadyExists).Once()

	_, err := uc.Register(context.Background(), &entities.CreateUserInput{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "Password123!",
		Role:     entities.UserRoleCitizen,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_Login_InvalidCredentialCases(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, nil)

	userRepo.On("GetByUsername", context.Background(), "missing").Return(nil, domainerrors.ErrNotFound).Once()
	_, err := uc.Login(context.Background(), &entities.LoginInput{
		Username: "missing",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	hashed, _ := crypto.HashPassword("correct-password")
	userRepo.On("GetByUsername", context.Background(), "alice").Return(&entities.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: hashed,
		Role:         entities.UserRoleCitizen,
	}, nil).Once()
	_, err = uc.Login(context.Background(), &entities.LoginInput{
		Username: "alice",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_SuccessNoSession(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, nil)

	hashed, _ := crypto.HashPassword("correct-password")
	user := &entities.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: hashed,
		Role:         entities.UserRoleCitizen,
		IsActive:     true,
	}
	userRepo.On("GetByUsername", context.Background(), "alice").Return(user, nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{
		Username: "alice",
		Password: "correct-password",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Empty(t, resp.SessionID)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, user, resp.User)
}

func TestAuthUsecase_Login_WithSession(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	defer srv.Close()

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	defer cli.Close()

	store, err := redispkg.NewSessionStore("0000000000000000000000000000000000000000000000000000000000000000")
	assert.NoError(t, err)

	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, store)

	hashed, _ := crypto.HashPassword("correct-password")
	user := &entities.User{
		ID:           uuid.New(),
		Username:     "acme",
		PasswordHash: hashed,
		Role:         entities.UserRoleBusiness,
		IsActive:     true,
	}
	userRepo.On("GetByUsername", context.Background(), "acme").Return(user, nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{
		Username:   "acme",
		Password:   "correct-password",
		UseSession: true,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Empty(t, resp.AccessToken)

	// Tokens live server-side under the session ID
	data, err := store.GetSession(context.Background(), resp.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), data.UserID)
	assert.Equal(t, "business", data.Role)
	assert.NotEmpty(t, data.AccessToken)
}

func TestAuthUsecase_RefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	uc := usecases.NewAuthUsecase(userRepo, jwtSvc, nil, time.Hour)

	user := &entities.User{
		ID:       uuid.New(),
		Username: "alice",
		Role:     entities.UserRoleCitizen,
		IsActive: true,
	}
	pair, err := jwtSvc.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	assert.NoError(t, err)

	userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()

	newPair, err := uc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, newPair.AccessToken)

	_, err = uc.RefreshToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_RefreshToken_InactiveUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	uc := usecases.NewAuthUsecase(userRepo, jwtSvc, nil, time.Hour)

	user := &entities.User{
		ID:       uuid.New(),
		Username: "blocked",
		Role:     entities.UserRoleCitizen,
		IsActive: false,
	}
	pair, err := jwtSvc.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	assert.NoError(t, err)

	userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()

	_, err = uc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_IssueTokens(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	uc := usecases.NewAuthUsecase(new(MockUserRepository), jwtSvc, nil, time.Hour)

	user := &entities.User{
		ID:       uuid.New(),
		Username: "alice",
		Role:     entities.UserRoleCitizen,
	}
	pair, err := uc.IssueTokens(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	claims, err := jwtSvc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "citizen", claims.Role)
}
