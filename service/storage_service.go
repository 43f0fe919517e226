package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/krishnavamsip/pdf-assistant/config"
	"github.com/krishnavamsip/pdf-assistant/utils"
)

// StorageService stores uploaded PDFs in a Supabase Storage bucket over
// its REST API. Object names are made unique here so two users uploading
// "notes.pdf" never collide.
type StorageService struct {
	client *resty.Client
	base   string
	bucket string
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	url := strings.TrimSuffix(cfg.SupabaseURL, "/")
	if url == "" || cfg.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("storage configuration error: SUPABASE_URL and SUPABASE_SERVICE_KEY must be set")
	}
	if !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("storage configuration error: SUPABASE_URL must start with https://")
	}
	if cfg.SupabaseBucket == "" {
		return nil, fmt.Errorf("storage configuration error: SUPABASE_BUCKET_NAME must be set")
	}

	client := resty.New().
		SetBaseURL(url).
		SetAuthToken(cfg.SupabaseServiceKey)

	return &StorageService{
		client: client,
		base:   url,
		bucket: cfg.SupabaseBucket,
	}, nil
}

// Upload stores the file and returns its public URL and the storage key
// needed for later deletion.
func (s *StorageService) Upload(ctx context.Context, data []byte, fileName, userID string) (string, string, error) {
	key := utils.UniqueObjectName(userID, fileName)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/pdf").
		SetBody(data).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, key))
	if err != nil {
		return "", "", fmt.Errorf("storage upload: %w", err)
	}
	if resp.IsError() {
		return "", "", fmt.Errorf("storage upload failed: %s: %s", resp.Status(), resp.String())
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.base, s.bucket, key)
	return publicURL, key, nil
}

func (s *StorageService) Delete(ctx context.Context, key string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, key))
	if err != nil {
		return fmt.Errorf("storage delete: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("storage delete failed: %s", resp.Status())
	}
	return nil
}
