package s3

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/vidverse/vidverse_backend/internal/core/domain"
	portssvc "github.com/vidverse/vidverse_backend/internal/core/ports/services"
	"github.com/vidverse/vidverse_backend/internal/platform/config"
)

// Uploader pushes local temp files to an S3-compatible media bucket.
type Uploader struct {
	client        *awss3.Client
	bucket        string
	region        string
	endpoint      string
	publicBaseURL string
	logger        *slog.Logger
}

var _ portssvc.MediaUploader = (*Uploader)(nil)

// NewUploader builds an S3 client from the media settings in cfg.
// Static credentials and an optional custom endpoint keep MinIO usable
// for local development.
func NewUploader(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.MediaRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.MediaAccessKey,
			cfg.MediaSecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load media bucket config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.MediaEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.MediaEndpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		client:        client,
		bucket:        cfg.MediaBucket,
		region:        cfg.MediaRegion,
		endpoint:      strings.TrimSuffix(cfg.MediaEndpoint, "/"),
		publicBaseURL: strings.TrimSuffix(cfg.MediaPublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload pushes the file at localPath to the bucket. A blank path is a
// no-op returning nil. Any failure after that point is downgraded to a
// nil result: callers treat nil as "no media", upload problems must not
// fail the surrounding request. The temp file is removed either way.
func (u *Uploader) Upload(ctx context.Context, localPath string) *domain.UploadResult {
	if localPath == "" {
		return nil
	}
	defer os.Remove(localPath)

	contentType := "application/octet-stream"
	if mtype, err := mimetype.DetectFile(localPath); err == nil {
		contentType = mtype.String()
	}

	f, err := os.Open(localPath)
	if err != nil {
		u.logger.Warn("media upload skipped, cannot open temp file",
			slog.String("path", localPath), slog.String("error", err.Error()))
		return nil
	}
	defer f.Close()

	key := objectKey(localPath)
	_, err = u.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		u.logger.Warn("media upload failed",
			slog.String("key", key), slog.String("error", err.Error()))
		return nil
	}

	return &domain.UploadResult{URL: u.publicURL(key), Key: key}
}

// objectKey derives a collision-free bucket key, keeping the original
// file extension so the served object keeps its type.
func objectKey(localPath string) string {
	d := time.Now()
	return fmt.Sprintf("media/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.NewString(), filepath.Ext(localPath))
}

func (u *Uploader) publicURL(key string) string {
	if u.publicBaseURL != "" {
		return u.publicBaseURL + "/" + key
	}
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
