package services

import (
	"context"

	"github.com/vidverse/vidverse_backend/internal/core/domain"
)

// TokenSvcFacade defines the interface for session token management.
type TokenSvcFacade interface {
	// IssueTokens signs an access and a refresh token for the user and
	// persists the refresh token on the user's record. Any failure is
	// reported as an internal error; callers must have validated the
	// user beforehand.
	IssueTokens(ctx context.Context, userID string) (*domain.TokenPair, error)

	// ValidateRefreshToken verifies a raw refresh token against its
	// signature and the token stored for the user it names, returning
	// that user when valid.
	ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}
