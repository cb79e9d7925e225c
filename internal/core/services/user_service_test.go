package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vidverse/vidverse_backend/internal/apperrors"
	"github.com/vidverse/vidverse_backend/internal/core/domain"
	portsrepo "github.com/vidverse/vidverse_backend/internal/core/ports/repositories"
	"github.com/vidverse/vidverse_backend/internal/core/services"
	"github.com/vidverse/vidverse_backend/internal/dto"
	"github.com/vidverse/vidverse_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	args := m.Called(ctx, userID, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func TestCreateUser_NormalizesUsernameAndHashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)

	var saved domain.User
	mockRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).
		Return(nil).Once()

	created, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		FullName:  "Ada Lovelace",
		Email:     "ada@x.com",
		Username:  "Ada",
		Password:  "secret",
		AvatarURL: "https://cdn.example.com/media/avatar.png",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, "ada", saved.Username)
	assert.NotEqual(t, "secret", saved.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret", saved.PasswordHash))
	assert.NotEmpty(t, saved.UserID)
	assert.Equal(t, "https://cdn.example.com/media/avatar.png", saved.AvatarURL)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_DuplicatePropagates(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)

	mockRepo.On("SaveUser", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	created, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		FullName: "Ada Lovelace", Email: "ada@x.com", Username: "ada", Password: "secret",
	})

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestGetUserByUsernameOrEmail_NormalizesUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)

	expected := &domain.User{UserID: "u1", Username: "ada"}
	mockRepo.On("FindUserByUsernameOrEmail", mock.Anything, "ada", "ada@x.com").Return(expected, nil).Once()

	user, err := svc.GetUserByUsernameOrEmail(context.Background(), "Ada", "ada@x.com")

	require.NoError(t, err)
	assert.Equal(t, expected.UserID, user.UserID)
	mockRepo.AssertExpectations(t)
}

func TestVerifyPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)

	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	user := &domain.User{UserID: "u1", PasswordHash: hash}

	assert.True(t, svc.VerifyPassword(user, "secret"))
	assert.False(t, svc.VerifyPassword(user, "wrong"))
}
