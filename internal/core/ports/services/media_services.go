package services

import (
	"context"

	"github.com/vidverse/vidverse_backend/internal/core/domain"
)

// MediaUploader wraps the remote media bucket.
type MediaUploader interface {
	// Upload pushes the file at localPath to the bucket and returns its
	// descriptor. It returns nil both for a blank localPath and for a
	// failed upload; callers treat nil as "no media". The local temp
	// file is removed on every path that attempted the remote call.
	Upload(ctx context.Context, localPath string) *domain.UploadResult
}
