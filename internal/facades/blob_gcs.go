package facades

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
)

// DefaultGCSBaseURL is the public endpoint objects are served from.
const DefaultGCSBaseURL = "https://storage.googleapis.com"

// GCSBlobStore uploads receipt images to a Google Cloud Storage bucket.
type GCSBlobStore struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

// NewGCSBlobStore creates a blob store over an existing storage client.
// An empty baseURL falls back to DefaultGCSBaseURL.
func NewGCSBlobStore(client *storage.Client, bucket, baseURL string) *GCSBlobStore {
	if baseURL == "" {
		baseURL = DefaultGCSBaseURL
	}
	return &GCSBlobStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload writes data to objectPath and returns the URL the object can be fetched from.
func (s *GCSBlobStore) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		cancel()
		_ = w.Close()
		logger.Log.Errorw("failed to write object", "bucket", s.bucket, "object", objectPath, "error", err)
		return "", fmt.Errorf("write object %s: %w", objectPath, err)
	}

	if err := w.Close(); err != nil {
		logger.Log.Errorw("failed to finalize upload", "bucket", s.bucket, "object", objectPath, "error", err)
		return "", fmt.Errorf("finalize upload %s: %w", objectPath, err)
	}

	logger.Log.Infow("object uploaded", "bucket", s.bucket, "object", objectPath, "size", len(data))
	return s.ObjectURL(objectPath), nil
}

// ObjectURL builds the public URL of objectPath, escaping each path segment.
func (s *GCSBlobStore) ObjectURL(objectPath string) string {
	segments := strings.Split(objectPath, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, url.PathEscape(s.bucket), strings.Join(segments, "/"))
}
