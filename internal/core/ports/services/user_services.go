package services

import (
	"context"

	"github.com/vidverse/vidverse_backend/internal/core/domain"
	"github.com/vidverse/vidverse_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsernameOrEmail retrieves a user matching either credential.
	GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user with a hashed password and a
	// lowercased username.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateRefreshToken overwrites the stored refresh token for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error

	// ClearRefreshToken unsets the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for credential verification
type UserAuthSvc interface {
	// VerifyPassword reports whether the plaintext password matches the
	// user's stored hash.
	VerifyPassword(user *domain.User, password string) bool
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
