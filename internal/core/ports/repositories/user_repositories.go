package repositories

import (
	"context"

	"github.com/vidverse/vidverse_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user. Returns an error wrapping
	// apperrors.ErrDuplicate when username or email is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID. Returns an error wrapping
	// apperrors.ErrNotFound when no such user exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsernameOrEmail retrieves the user matching either the
	// username or the email. Blank arguments do not participate in the
	// match. Returns apperrors.ErrNotFound when neither matches.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)

	// UpdateRefreshToken sets the stored refresh token for a user. This is
	// a targeted single-column write; it does not touch any other field.
	UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error

	// ClearRefreshToken unsets the stored refresh token. Clearing an
	// already-absent token is a no-op, not an error.
	ClearRefreshToken(ctx context.Context, userID string) error
}
