package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"majestic-art-be/internal/logger"

	"go.uber.org/zap"
)

type supabaseStorage struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

func NewSupabaseStorage(baseURL, serviceKey, bucket string) Uploader {
	if serviceKey == "" {
		logger.L().Warn("Storage service key is empty")
	}

	return &supabaseStorage{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ----------------- Upload -----------------

func (s *supabaseStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	log := logger.L().With(
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("bytes", len(data)),
	)

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, key)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(data))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return "", err
	}

	req.Header.Add("Authorization", "Bearer "+s.serviceKey)
	req.Header.Add("Content-Type", contentType)
	// overwrite on re-upload of the same key
	req.Header.Add("x-upsert", "true")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error("Storage request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return "", fmt.Errorf("failed to read storage response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Storage returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return "", fmt.Errorf("storage error: %s", string(bodyBytes))
	}

	publicURL := s.PublicURL(key)
	log.Info("Image uploaded", zap.String("url", publicURL))
	return publicURL, nil
}

// PublicURL is where an uploaded object can be fetched without auth,
// assuming a public bucket.
func (s *supabaseStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, key)
}
