package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type uploadFunc func(bucket, storagePath string, data io.Reader, opts storage.FileOptions) error

type StorageClient struct {
	upload  uploadFunc
	bucket  string
	baseURL string
	now     func() time.Time
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	if supabaseURL == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	baseURL := strings.TrimRight(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		upload: func(bucket, storagePath string, data io.Reader, opts storage.FileOptions) error {
			_, err := client.UploadFile(bucket, storagePath, data, opts)
			return err
		},
		bucket:  bucket,
		baseURL: baseURL,
		now:     time.Now,
	}, nil
}

// ArchivePath is where the signed snapshot of a contract is stored:
// clients/{client_id}/contracts/{contract_id}/signed-{unix}.json
func ArchivePath(clientID, contractID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("clients/%s/contracts/%s/signed-%d.json", clientID.String(), contractID.String(), at.Unix())
}

// ArchiveContract uploads a JSON snapshot of a fully signed contract and
// returns its storage path.
func (s *StorageClient) ArchiveContract(ctx context.Context, clientID, contractID uuid.UUID, snapshot []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	storagePath := ArchivePath(clientID, contractID, s.now())

	contentType := "application/json"
	upsert := true
	err := s.upload(s.bucket, storagePath, bytes.NewReader(snapshot), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload contract archive: %w", err)
	}

	return storagePath, nil
}

func (s *StorageClient) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}
