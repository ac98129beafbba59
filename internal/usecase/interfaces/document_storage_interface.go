package interfaces

import "context"

// PresignedURL is a time-bounded upload or download location issued by the
// blob store. ExpiresIn is in seconds.
type PresignedURL struct {
	URL       string
	ExpiresIn int64
}

// IDocumentStorage abstracts the blob store (S3). The service never handles
// raw file bytes; clients upload and download through presigned URLs.

type IDocumentStorage interface {
	PresignUpload(ctx context.Context, key, contentType string, size int64) (PresignedURL, error)
	PresignDownload(ctx context.Context, key string) (PresignedURL, error)
	Delete(ctx context.Context, key string) error
}
