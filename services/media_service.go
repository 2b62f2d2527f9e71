package services

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// BlobStore is the object-storage boundary: put bytes under a key, get back
// a public URL.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// MinioStore uploads to an S3-compatible bucket and builds virtual-hosted
// public URLs.
type MinioStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
}

func NewMinioStore(client *minio.Client, bucket, endpoint string) *MinioStore {
	return &MinioStore{client: client, bucket: bucket, endpoint: endpoint}
}

func (s *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"x-amz-acl": "public-read"},
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key), nil
}

// MediaService is a passthrough to the blob store with key generation.
type MediaService struct {
	store BlobStore
}

func NewMediaService(store BlobStore) *MediaService {
	return &MediaService{store: store}
}

// Upload stores the file under a collision-free key and returns its URL.
// Any store failure, including a missing store, is ErrUploadFailed.
func (s *MediaService) Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	if s.store == nil {
		return "", ErrUploadFailed
	}

	key := fmt.Sprintf("%s-%s", filename, uuid.NewString()[:8])
	url, err := s.store.Put(ctx, key, r, size, contentType)
	if err != nil {
		log.Printf("Upload of %s failed: %v", key, err)
		return "", ErrUploadFailed
	}
	return url, nil
}
