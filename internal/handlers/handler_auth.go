package handlers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/vidverse/vidverse_backend/internal/apperrors"
	portssvc "github.com/vidverse/vidverse_backend/internal/core/ports/services"
	"github.com/vidverse/vidverse_backend/internal/dto"
	"github.com/vidverse/vidverse_backend/internal/middleware"
	"github.com/vidverse/vidverse_backend/internal/platform/config"
)

// RefreshTokenCookieName is the cookie carrying the refresh token.
const RefreshTokenCookieName = "refreshToken"

// authHandler handles registration, login, logout and token refresh.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	media        portssvc.MediaUploader
	cfg          *config.Config
}

func newAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  services.User,
		tokenService: services.Token,
		media:        services.Media,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services, cfg)

	// Login attempts are rate limited per IP: 5 per minute.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/refresh-token", h.RefreshToken)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.AccessTokenSecret), h.Logout)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account from a multipart form with an avatar (required) and a cover image (optional).
// @Tags auth
// @Accept mpfd
// @Produce json
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} APIResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Failure 500 {object} APIErrorResponse
// @Router /auth/register [post]
func (h *authHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	// Absent and whitespace-only fields are both rejected.
	for _, field := range []string{req.FullName, req.Email, req.Username, req.Password} {
		if strings.TrimSpace(field) == "" {
			respondError(c, apperrors.NewValidation("All fields are required"))
			return
		}
	}

	existing, err := h.userService.GetUserByUsernameOrEmail(c.Request.Context(), req.Username, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		respondError(c, err)
		return
	}
	if existing != nil {
		respondError(c, apperrors.NewConflict("User with email or username already exists"))
		return
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		respondError(c, apperrors.NewValidation("Avatar file is required"))
		return
	}
	coverFile, _ := c.FormFile("coverImage")

	avatarPath, err := saveTempFile(c, avatarFile)
	if err != nil {
		logger.Error("Failed to stage avatar file", slog.String("error", err.Error()))
		respondError(c, apperrors.NewInternal("Something went wrong while registering the user"))
		return
	}
	coverPath := ""
	if coverFile != nil {
		if coverPath, err = saveTempFile(c, coverFile); err != nil {
			logger.Error("Failed to stage cover image file", slog.String("error", err.Error()))
			coverPath = "" // cover image is optional, degrade to none
		}
	}

	avatar := h.media.Upload(c.Request.Context(), avatarPath)
	coverImage := h.media.Upload(c.Request.Context(), coverPath)

	if avatar == nil {
		respondError(c, apperrors.NewValidation("Avatar upload failed"))
		return
	}

	coverImageURL := ""
	if coverImage != nil {
		coverImageURL = coverImage.URL
	}

	created, err := h.userService.CreateUser(c.Request.Context(), dto.CreateUserRequest{
		FullName:      req.FullName,
		Email:         req.Email,
		Username:      req.Username,
		Password:      req.Password,
		AvatarURL:     avatar.URL,
		CoverImageURL: coverImageURL,
	})
	if err != nil {
		// The store's unique constraints close the race between the
		// existence check above and this insert.
		if errors.Is(err, apperrors.ErrDuplicate) {
			respondError(c, apperrors.NewConflict("User with email or username already exists"))
			return
		}
		logger.Error("Failed to create user", slog.String("error", err.Error()))
		respondError(c, apperrors.NewInternal("Something went wrong while registering the user"))
		return
	}

	createdUser, err := h.userService.GetUserByID(c.Request.Context(), created.UserID)
	if err != nil {
		logger.Error("Failed to load created user", slog.String("error", err.Error()))
		respondError(c, apperrors.NewInternal("Something went wrong while registering the user"))
		return
	}

	logger.Info("User registered", slog.String("user_id", createdUser.UserID))
	c.JSON(http.StatusCreated, newAPIResponse(http.StatusOK, dto.ToUserResponse(createdUser), "User registered successfully"))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user by username or email and sets the session cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIErrorResponse
// @Failure 401 {object} APIErrorResponse
// @Failure 404 {object} APIErrorResponse
// @Router /auth/login [post]
func (h *authHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	// Either credential is enough to identify the account.
	if strings.TrimSpace(req.Username) == "" && strings.TrimSpace(req.Email) == "" {
		respondError(c, apperrors.NewValidation("Username or email is required"))
		return
	}

	user, err := h.userService.GetUserByUsernameOrEmail(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, apperrors.NewNotFound("User does not exist"))
			return
		}
		respondError(c, err)
		return
	}

	if !h.userService.VerifyPassword(user, req.Password) {
		respondError(c, apperrors.NewUnauthorized("Invalid password"))
		return
	}

	tokens, err := h.tokenService.IssueTokens(c.Request.Context(), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	loggedInUser, err := h.userService.GetUserByID(c.Request.Context(), user.UserID)
	if err != nil {
		respondError(c, apperrors.NewInternal("Something went wrong while logging in"))
		return
	}

	h.setAuthCookies(c, tokens.AccessToken, tokens.RefreshToken)

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, newAPIResponse(http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(loggedInUser),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "User logged in successfully"))
}

// Logout godoc
// @Summary User logout
// @Description Clears the stored refresh token and both session cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorized("Unauthorized request"))
		return
	}

	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to clear refresh token", slog.String("error", err.Error()))
		respondError(c, apperrors.NewInternal("Something went wrong while logging out"))
		return
	}

	h.clearAuthCookies(c)

	logger.Info("User logged out")
	c.JSON(http.StatusOK, newAPIResponse(http.StatusOK, gin.H{}, "User logged out"))
}

// RefreshToken godoc
// @Summary Refresh session tokens
// @Description Exchanges a valid refresh token (cookie or body) for a new token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest false "Refresh token"
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIErrorResponse
// @Router /auth/refresh-token [post]
func (h *authHandler) RefreshToken(c *gin.Context) {
	raw, _ := c.Cookie(RefreshTokenCookieName)
	if raw == "" {
		var req dto.RefreshTokenRequest
		_ = c.ShouldBindJSON(&req)
		raw = req.RefreshToken
	}
	if raw == "" {
		respondError(c, apperrors.NewUnauthorized("Unauthorized request"))
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), raw)
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := h.tokenService.IssueTokens(c.Request.Context(), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, tokens.AccessToken, tokens.RefreshToken)

	c.JSON(http.StatusOK, newAPIResponse(http.StatusOK, dto.TokenPairResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "Access token refreshed"))
}

// setAuthCookies sets both session cookies, httpOnly and secure.
func (h *authHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetCookie(middleware.AccessTokenCookieName, accessToken, int(h.cfg.AccessTokenExpiry.Seconds()), "/", "", true, true)
	c.SetCookie(RefreshTokenCookieName, refreshToken, int(h.cfg.RefreshTokenExpiry.Seconds()), "/", "", true, true)
}

func (h *authHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookieName, "", -1, "/", "", true, true)
	c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)
}

// saveTempFile stages an uploaded multipart file on local disk for the
// media adapter, which owns deleting it.
func saveTempFile(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dst := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}
