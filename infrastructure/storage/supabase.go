package storage

import (
	"bytes"
	"context"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/pkg/errors"
)

// SupabaseFileStore uploads objects to Supabase storage buckets and
// returns their public URLs.
type SupabaseFileStore struct {
	client *supabase.Client
	logger *zap.Logger
}

// NewSupabaseFileStore creates a bucket-backed file store.
func NewSupabaseFileStore(client *supabase.Client, logger *zap.Logger) ports.FileStore {
	return &SupabaseFileStore{client: client, logger: logger}
}

func (s *SupabaseFileStore) Upload(ctx context.Context, bucket, path string, data []byte, contentType string, upsert bool) (string, error) {
	_, err := s.client.Storage.UploadFile(bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		s.logger.Warn("storage upload failed",
			zap.String("bucket", bucket),
			zap.String("path", path),
			zap.Error(err),
		)
		return "", errors.NewExternalError("failed to upload file", err)
	}
	resp := s.client.Storage.GetPublicUrl(bucket, path)
	return resp.SignedURL, nil
}
