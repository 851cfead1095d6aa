package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academiahq/academia/internal/app/models"
	"github.com/academiahq/academia/internal/app/models/dto"
	"github.com/academiahq/academia/internal/pkg/apperrors"
	"github.com/academiahq/academia/internal/pkg/auth"
)

type fakeAuthUserRepo struct {
	byEmail map[string]*models.User
	byID    map[int64]*models.User
}

func (f *fakeAuthUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeAuthUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeTokenRepo) Save(_ context.Context, t *models.RefreshToken) error {
	t.ID = int64(len(f.tokens) + 1)
	f.tokens[t.Token] = t
	return nil
}

func (f *fakeTokenRepo) GetByToken(_ context.Context, token string) (*models.RefreshToken, error) {
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, apperrors.ErrTokenNotFound
}

func (f *fakeTokenRepo) Revoke(_ context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.Revoked = true
	return nil
}

func authTestFixture(t *testing.T) (AuthService, *fakeTokenRepo) {
	t.Helper()
	hashed, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	user := &models.User{
		ID:       1,
		Email:    "admin@academia.edu",
		Password: hashed,
		Name:     "Admin User",
		Role:     models.RoleAdmin,
	}
	userRepo := &fakeAuthUserRepo{
		byEmail: map[string]*models.User{user.Email: user},
		byID:    map[int64]*models.User{user.ID: user},
	}
	tokenRepo := newFakeTokenRepo()
	jwtSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	return NewAuthService(userRepo, tokenRepo, jwtSvc), tokenRepo
}

func TestAuthServiceLogin(t *testing.T) {
	svc, tokenRepo := authTestFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "Admin@Academia.edu",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Contains(t, tokenRepo.tokens, resp.RefreshToken)
}

func TestAuthServiceLoginBadCredentials(t *testing.T) {
	svc, _ := authTestFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@academia.edu",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown user maps to the same error as a wrong password.
	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ghost@academia.edu",
		Password: "admin123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthServiceRefreshRotation(t *testing.T) {
	svc, _ := authTestFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@academia.edu",
		Password: "admin123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// The first token was revoked on use and cannot be replayed.
	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestAuthServiceRefreshUnknownToken(t *testing.T) {
	svc, _ := authTestFixture(t)

	_, err := svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestAuthServiceRefreshExpiredToken(t *testing.T) {
	svc, tokenRepo := authTestFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@academia.edu",
		Password: "admin123",
	})
	require.NoError(t, err)

	tokenRepo.tokens[resp.RefreshToken].ExpiresAt = time.Now().Add(-time.Minute)

	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestAuthServiceMe(t *testing.T) {
	svc, _ := authTestFixture(t)

	profile, err := svc.Me(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin@academia.edu", profile.Email)
	assert.Equal(t, models.RoleAdmin, profile.Role)

	_, err = svc.Me(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
