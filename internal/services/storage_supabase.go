package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/vershina/sportclub/internal/config"
	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/pkg/utils"
)

type SupabaseStorageService struct {
	baseURL    string
	bucket     string
	serviceKey string
	prefix     string
	httpClient *http.Client
}

func NewSupabaseStorageService(baseURL, bucket, serviceKey, prefix string) *SupabaseStorageService {
	return &SupabaseStorageService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		bucket:     bucket,
		serviceKey: serviceKey,
		prefix:     strings.Trim(prefix, "/"),
		httpClient: http.DefaultClient,
	}
}

func (s *SupabaseStorageService) Name() string { return string(config.StorageSupabase) }

func (s *SupabaseStorageService) Put(ctx context.Context, file io.Reader, filename string, category ImageCategory) (*models.StoredImage, error) {
	ext, ok := utils.ImageExtension(filename)
	if !ok {
		return nil, ErrInvalidImage
	}

	objectPath := path.Join(s.prefix, strings.Trim(category.CloudFolder, "/"), uuid.NewString()+"."+ext)
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, objectPath)

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}

	s.authorize(req)
	req.Header.Set("x-upsert", "false")
	req.Header.Set("Content-Type", http.DetectContentType(content))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("upload file: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return &models.StoredImage{
		URL:    fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath),
		Handle: objectPath,
	}, nil
}

func (s *SupabaseStorageService) Remove(ctx context.Context, image models.StoredImage) error {
	objectPath := image.Handle
	if objectPath == "" {
		return fmt.Errorf("supabase delete: missing object path for %q", image.URL)
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	s.authorize(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("delete file: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}

func (s *SupabaseStorageService) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)
}
