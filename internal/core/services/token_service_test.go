package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vidverse/vidverse_backend/internal/apperrors"
	"github.com/vidverse/vidverse_backend/internal/core/domain"
	portssvc "github.com/vidverse/vidverse_backend/internal/core/ports/services"
	"github.com/vidverse/vidverse_backend/internal/core/services"
	"github.com/vidverse/vidverse_backend/internal/dto"
	"github.com/vidverse/vidverse_backend/internal/platform/config"
	"github.com/vidverse/vidverse_backend/internal/utils"
)

// --- Mock UserSvcFacade ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	args := m.Called(ctx, userID, refreshToken)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) VerifyPassword(user *domain.User, password string) bool {
	args := m.Called(user, password)
	return args.Bool(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func testTokenConfig() *config.Config {
	return &config.Config{
		JWTIssuer:          "vidverse-test",
		AccessTokenSecret:  "test-access-secret-that-is-long-enough",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenSecret: "test-refresh-secret-that-is-long-enough",
		RefreshTokenExpiry: 240 * time.Hour,
	}
}

func TestIssueTokens_SignsAndPersistsRefreshToken(t *testing.T) {
	cfg := testTokenConfig()
	mockUsers := new(MockUserService)
	svc := services.NewTokenService(cfg, mockUsers)

	user := &domain.User{UserID: "u1", Username: "ada"}
	mockUsers.On("GetUserByID", mock.Anything, "u1").Return(user, nil).Once()

	var persisted string
	mockUsers.On("UpdateRefreshToken", mock.Anything, "u1", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			persisted = args.String(2)
		}).
		Return(nil).Once()

	pair, err := svc.IssueTokens(context.Background(), "u1")

	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, pair.RefreshToken, persisted)

	accessClaims, err := utils.ParseAndValidateJWT(pair.AccessToken, cfg.AccessTokenSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", accessClaims.Subject)
	assert.Equal(t, "vidverse-test", accessClaims.Issuer)

	refreshClaims, err := utils.ParseAndValidateJWT(pair.RefreshToken, cfg.RefreshTokenSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", refreshClaims.Subject)

	// Access and refresh tokens are signed with different secrets.
	_, err = utils.ParseAndValidateJWT(pair.AccessToken, cfg.RefreshTokenSecret)
	assert.Error(t, err)

	mockUsers.AssertExpectations(t)
}

func TestIssueTokens_UserLookupFailureIsInternal(t *testing.T) {
	mockUsers := new(MockUserService)
	svc := services.NewTokenService(testTokenConfig(), mockUsers)

	mockUsers.On("GetUserByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	pair, err := svc.IssueTokens(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, pair)
	var apiErr *apperrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	mockUsers.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestIssueTokens_PersistFailureIsInternal(t *testing.T) {
	mockUsers := new(MockUserService)
	svc := services.NewTokenService(testTokenConfig(), mockUsers)

	user := &domain.User{UserID: "u1"}
	mockUsers.On("GetUserByID", mock.Anything, "u1").Return(user, nil).Once()
	mockUsers.On("UpdateRefreshToken", mock.Anything, "u1", mock.Anything).Return(errors.New("db down")).Once()

	pair, err := svc.IssueTokens(context.Background(), "u1")

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestValidateRefreshToken_AcceptsStoredToken(t *testing.T) {
	cfg := testTokenConfig()
	mockUsers := new(MockUserService)
	svc := services.NewTokenService(cfg, mockUsers)

	token, err := utils.GenerateJWT("u1", cfg.RefreshTokenSecret, time.Hour, cfg.JWTIssuer)
	require.NoError(t, err)

	user := &domain.User{UserID: "u1", RefreshToken: token}
	mockUsers.On("GetUserByID", mock.Anything, "u1").Return(user, nil).Once()

	got, err := svc.ValidateRefreshToken(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

func TestValidateRefreshToken_RejectsRotatedToken(t *testing.T) {
	cfg := testTokenConfig()
	mockUsers := new(MockUserService)
	svc := services.NewTokenService(cfg, mockUsers)

	oldToken, err := utils.GenerateJWT("u1", cfg.RefreshTokenSecret, time.Hour, cfg.JWTIssuer)
	require.NoError(t, err)
	newToken, err := utils.GenerateJWT("u1", cfg.RefreshTokenSecret, 2*time.Hour, cfg.JWTIssuer)
	require.NoError(t, err)

	// The store holds the newer token, the old one must no longer validate.
	user := &domain.User{UserID: "u1", RefreshToken: newToken}
	mockUsers.On("GetUserByID", mock.Anything, "u1").Return(user, nil).Once()

	got, err := svc.ValidateRefreshToken(context.Background(), oldToken)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestValidateRefreshToken_RejectsBadSignature(t *testing.T) {
	cfg := testTokenConfig()
	mockUsers := new(MockUserService)
	svc := services.NewTokenService(cfg, mockUsers)

	forged, err := utils.GenerateJWT("u1", "some-other-secret", time.Hour, cfg.JWTIssuer)
	require.NoError(t, err)

	got, err := svc.ValidateRefreshToken(context.Background(), forged)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockUsers.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}

func TestValidateRefreshToken_RejectsClearedToken(t *testing.T) {
	cfg := testTokenConfig()
	mockUsers := new(MockUserService)
	svc := services.NewTokenService(cfg, mockUsers)

	token, err := utils.GenerateJWT("u1", cfg.RefreshTokenSecret, time.Hour, cfg.JWTIssuer)
	require.NoError(t, err)

	// Logged-out user: no stored refresh token.
	user := &domain.User{UserID: "u1", RefreshToken: ""}
	mockUsers.On("GetUserByID", mock.Anything, "u1").Return(user, nil).Once()

	got, err := svc.ValidateRefreshToken(context.Background(), token)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
