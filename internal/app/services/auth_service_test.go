package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

func newTestAuthService(users *fakeUserStore) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub-test",
	})
	return NewAuthService(users, jwtService, zerolog.Nop())
}

func TestRegister(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ayşe Kaya",
		Email:    "ayse@campus.edu",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, "User registered successfully", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Ayşe Kaya", resp.User.Name)

	require.NotNil(t, users.lastCreated)
	require.NotNil(t, users.lastCreated.PasswordHash)
	assert.True(t, auth.CheckPassword(*users.lastCreated.PasswordHash, "s3cret"))
}

func TestRegisterDefaultAvatar(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Can Öztürk",
		Email:    "can@campus.edu",
		Password: "s3cret",
	})
	require.NoError(t, err)

	require.NotNil(t, users.lastCreated.Avatar)
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=can@campus.edu", *users.lastCreated.Avatar)
}

func TestRegisterKeepsProvidedAvatar(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)

	avatar := "https://example.com/me.png"
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Can Öztürk",
		Email:    "can@campus.edu",
		Password: "s3cret",
		Avatar:   &avatar,
	})
	require.NoError(t, err)

	require.NotNil(t, users.lastCreated.Avatar)
	assert.Equal(t, avatar, *users.lastCreated.Avatar)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: 1, Name: "Ayşe", Email: "ayse@campus.edu"})
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Someone Else",
		Email:    "ayse@campus.edu",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	users := newFakeUserStore(&models.User{ID: 1, Name: "Ayşe", Email: "ayse@campus.edu", PasswordHash: &hash})
	svc := newTestAuthService(users)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ayse@campus.edu", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal(t, "Login successful", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "1", resp.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	users := newFakeUserStore(&models.User{ID: 1, Name: "Ayşe", Email: "ayse@campus.edu", PasswordHash: &hash})
	svc := newTestAuthService(users)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "ayse@campus.edu", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@campus.edu", Password: "s3cret"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLoginSeededAccountWithoutHash(t *testing.T) {
	// Seeded accounts carry no password hash and authenticate by email alone.
	users := newFakeUserStore(&models.User{ID: 1, Name: "Sezer", Email: "sezer@campus.edu"})
	svc := newTestAuthService(users)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "sezer@campus.edu", Password: "anything"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestGetProfile(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	users := newFakeUserStore(&models.User{ID: 1, Name: "Ayşe", Email: "ayse@campus.edu", CreatedAt: created})
	svc := newTestAuthService(users)

	resp, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, "2025-03-01T10:30:00Z", resp.User.CreatedAt)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	users := newFakeUserStore(&models.User{ID: 1, Name: "Ayşe", Email: "ayse@campus.edu"})
	svc := newTestAuthService(users)

	name := "Ayşe Yılmaz"
	resp, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Profile updated successfully", resp.Message)
	assert.Equal(t, "Ayşe Yılmaz", resp.User.Name)

	// Absent fields must not reach the store.
	require.NotNil(t, users.lastFields)
	assert.Contains(t, users.lastFields, "name")
	assert.NotContains(t, users.lastFields, "avatar")
}
