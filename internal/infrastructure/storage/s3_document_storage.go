package storage

import (
	"context"
	"errors"
	"os"
	"time"

	"eolia_backend/internal/infrastructure/database"
	"eolia_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingDocumentsBucket = errors.New("missing CLIENT_DOCUMENTS_BUCKET")

// presignTTL bounds how long an issued upload or download URL stays valid.
const presignTTL = 15 * time.Minute

// S3DocumentStorage issues presigned URLs against the client documents
// bucket. File bytes go straight between the browser and S3; the API only
// ever signs.
//
// Supported env vars (local-friendly):
//   - CLIENT_DOCUMENTS_BUCKET (required)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, forces path style)
type S3DocumentStorage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

var _ interfaces.IDocumentStorage = (*S3DocumentStorage)(nil)

func NewS3DocumentStorage(ctx context.Context) (*S3DocumentStorage, error) {
	bucket := os.Getenv("CLIENT_DOCUMENTS_BUCKET")
	if bucket == "" {
		return nil, ErrMissingDocumentsBucket
	}

	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3DocumentStorage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}, nil
}

func (s *S3DocumentStorage) PresignUpload(ctx context.Context, key, contentType string, size int64) (interfaces.PresignedURL, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return interfaces.PresignedURL{}, err
	}
	return interfaces.PresignedURL{URL: req.URL, ExpiresIn: int64(presignTTL.Seconds())}, nil
}

func (s *S3DocumentStorage) PresignDownload(ctx context.Context, key string) (interfaces.PresignedURL, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return interfaces.PresignedURL{}, err
	}
	return interfaces.PresignedURL{URL: req.URL, ExpiresIn: int64(presignTTL.Seconds())}, nil
}

func (s *S3DocumentStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
