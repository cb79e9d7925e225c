package services

import (
	"context"

	"github.com/vidverse/vidverse_backend/internal/apperrors"
	"github.com/vidverse/vidverse_backend/internal/core/domain"
	portssvc "github.com/vidverse/vidverse_backend/internal/core/ports/services"
	"github.com/vidverse/vidverse_backend/internal/platform/config"
	"github.com/vidverse/vidverse_backend/internal/utils"
)

// tokenService issues and validates session tokens. It needs the
// configuration for secrets and expiries, and the user service to load
// users and persist the active refresh token.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

// IssueTokens signs a short-lived access token and a long-lived refresh
// token for the user, then persists the refresh token through a targeted
// single-column update. The caller has already authenticated the user,
// so every failure here maps to an internal error.
func (s *tokenService) IssueTokens(ctx context.Context, userID string) (*domain.TokenPair, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternal("Something went wrong while generating access and refresh tokens")
	}

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewInternal("Something went wrong while generating access and refresh tokens")
	}

	refreshToken, err := utils.GenerateJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewInternal("Something went wrong while generating access and refresh tokens")
	}

	// A new login overwrites the previous refresh token: one active
	// session per user.
	if err := s.userService.UpdateRefreshToken(ctx, user.UserID, refreshToken); err != nil {
		return nil, apperrors.NewInternal("Something went wrong while generating access and refresh tokens")
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ValidateRefreshToken checks the signature and claims of a raw refresh
// token, loads the user it names, and requires the stored token to match
// exactly. A rotated or cleared token no longer validates.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, apperrors.NewUnauthorized("Invalid refresh token")
	}

	user, err := s.userService.GetUserByID(ctx, claims.Subject)
	if err != nil {
		return nil, apperrors.NewUnauthorized("Invalid refresh token")
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apperrors.NewUnauthorized("Refresh token is expired or used")
	}

	return user, nil
}
