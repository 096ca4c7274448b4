// Package storage keeps user uploads (profile and body photos).
package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/fitcoach-io/fitcoach/internal/config"
	"github.com/google/uuid"
)

// ObjectStore persists a blob and returns the URL it can be fetched from.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// New picks the S3 backend when a bucket is configured and the inline
// fallback otherwise.
func New(ctx context.Context, cfg config.StorageConfig) (ObjectStore, error) {
	if cfg.Bucket == "" {
		return InlineStore{}, nil
	}
	return NewS3Store(ctx, cfg.Endpoint, cfg.Region, cfg.Bucket, cfg.AccessKeyID, cfg.SecretAccessKey, cfg.PublicBaseURL)
}

// PhotoKey lays out uploads as users/{id}/photos/{kind}-{uuid}{ext}.
func PhotoKey(userID, kind, filename string) string {
	return fmt.Sprintf("users/%s/photos/%s-%s%s", userID, kind, uuid.NewString(), strings.ToLower(path.Ext(filename)))
}

// InlineStore encodes the object into a data URL instead of storing it.
type InlineStore struct{}

func (InlineStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(body, size))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
