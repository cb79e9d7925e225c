package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTIssuer          string
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration

	// Media bucket settings. Endpoint is optional and only set for
	// S3-compatible stores like MinIO; PublicBaseURL overrides the URL
	// the bucket serves objects from (e.g. a CDN front).
	MediaBucket        string
	MediaRegion        string
	MediaEndpoint      string
	MediaAccessKey     string
	MediaSecretKey     string
	MediaPublicBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_ISSUER", "vidverse-backend")
	viper.SetDefault("ACCESS_TOKEN_SECRET", "insecure-dev-access-secret-change-me")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY", "15m")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "insecure-dev-refresh-secret-change-me")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY", "240h")
	viper.SetDefault("MEDIA_S3_BUCKET", "")
	viper.SetDefault("MEDIA_S3_REGION", "us-east-1")
	viper.SetDefault("MEDIA_S3_ENDPOINT", "")
	viper.SetDefault("MEDIA_S3_ACCESS_KEY", "")
	viper.SetDefault("MEDIA_S3_SECRET_KEY", "")
	viper.SetDefault("MEDIA_PUBLIC_BASE_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AccessTokenSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	if cfg.AccessTokenSecret == "insecure-dev-access-secret-change-me" {
		log.Println("Warning: ACCESS_TOKEN_SECRET not set. Using default insecure key.")
	}

	accessExpiryStr := viper.GetString("ACCESS_TOKEN_EXPIRY")
	accessExpiry, err := time.ParseDuration(accessExpiryStr)
	if err != nil {
		accessExpiry = 15 * time.Minute
		log.Printf("Warning: Invalid value for ACCESS_TOKEN_EXPIRY (%q). Defaulting to %s.\n", accessExpiryStr, accessExpiry)
	}
	cfg.AccessTokenExpiry = accessExpiry

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "insecure-dev-refresh-secret-change-me" {
		log.Println("Warning: REFRESH_TOKEN_SECRET not set. Using default insecure key.")
	}

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY")
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiry = 240 * time.Hour
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY (%q). Defaulting to %s.\n", refreshExpiryStr, refreshExpiry)
	}
	cfg.RefreshTokenExpiry = refreshExpiry

	cfg.MediaBucket = viper.GetString("MEDIA_S3_BUCKET")
	cfg.MediaRegion = viper.GetString("MEDIA_S3_REGION")
	cfg.MediaEndpoint = viper.GetString("MEDIA_S3_ENDPOINT")
	cfg.MediaAccessKey = viper.GetString("MEDIA_S3_ACCESS_KEY")
	cfg.MediaSecretKey = viper.GetString("MEDIA_S3_SECRET_KEY")
	cfg.MediaPublicBaseURL = viper.GetString("MEDIA_PUBLIC_BASE_URL")
	if cfg.MediaBucket == "" {
		log.Println("Warning: MEDIA_S3_BUCKET not set. Media uploads will fail.")
	}

	return cfg, nil
}
