// Package imagestore keeps uploaded outfit images on local disk or in S3.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"stylelove/internal/config"
)

var ErrUnsupportedType = errors.New("unsupported image type")

// Store persists image bytes and resolves the URL clients load them from.
type Store interface {
	// Upload stores the image and returns its storage key
	Upload(ctx context.Context, filename string, data io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// New builds the backend selected by cfg.Type.
func New(ctx context.Context, cfg config.ImageConfig) (Store, error) {
	switch Type(cfg.Type) {
	case TypeLocal, "":
		return NewLocal(cfg.LocalPath, cfg.PublicURL)
	case TypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET is required for S3 image storage")
		}
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// ContentType maps an image filename to its MIME type.
func ContentType(filename string) (string, error) {
	ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", ErrUnsupportedType
	}
	return ct, nil
}

// newKey returns "ab/<uuid>.ext"; the prefix spreads files across directories.
func newKey(filename string) string {
	id := uuid.New().String()
	return fmt.Sprintf("%s/%s%s", id[:2], id, strings.ToLower(filepath.Ext(filename)))
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
