package storage

import "context"

// Uploader stores artwork images and returns a publicly reachable URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}
