package blobstore

import "context"

// Uploader is the contract the reconciliation services depend on: store an
// object under bucket/key and hand back its public URL. Upload is attempted
// exactly once per save; retries belong to the caller's retry policy (none).
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
}
