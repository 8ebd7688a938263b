package blobstore

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/xerrors"
)

// Service wraps uploads of binary assets (player photos) to the bucket.
type Service struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewService creates a file storage gateway for the given bucket.
func NewService(bucket *storage.BucketHandle, bucketName string) *Service {
	return &Service{
		bucket:     bucket,
		bucketName: bucketName,
	}
}

// Upload writes data under path and returns the durable public URL.
func (s *Service) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	w := s.bucket.Object(path).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", xerrors.Errorf("upload %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", xerrors.Errorf("upload %s: %w", path, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, path), nil
}

// ObjectPath maps a public URL back to the object path inside this bucket,
// reporting false for URLs served from anywhere else.
func (s *Service) ObjectPath(url string) (string, bool) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucketName)
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

// Delete removes the object. What happens on a missing object is the
// store's call, not ours.
func (s *Service) Delete(ctx context.Context, path string) error {
	if err := s.bucket.Object(path).Delete(ctx); err != nil {
		return xerrors.Errorf("delete %s: %w", path, err)
	}
	return nil
}
