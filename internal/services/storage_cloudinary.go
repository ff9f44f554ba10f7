package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/vershina/sportclub/internal/config"
	"github.com/vershina/sportclub/internal/models"
)

type cloudinaryUploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

type CloudinaryStorage struct {
	uploader cloudinaryUploader
	prefix   string
}

func NewCloudinaryStorage(cloudinaryURL, prefix string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return newCloudinaryStorage(&cld.Upload, prefix), nil
}

func newCloudinaryStorage(u cloudinaryUploader, prefix string) *CloudinaryStorage {
	return &CloudinaryStorage{uploader: u, prefix: strings.Trim(prefix, "/")}
}

func (s *CloudinaryStorage) Name() string { return string(config.StorageCloudinary) }

func (s *CloudinaryStorage) Put(ctx context.Context, file io.Reader, _ string, category ImageCategory) (*models.StoredImage, error) {
	folder := path.Join(s.prefix, strings.Trim(category.CloudFolder, "/"))
	res, err := s.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return nil, fmt.Errorf("cloudinary upload: empty secure url")
	}
	return &models.StoredImage{URL: res.SecureURL, Handle: res.PublicID}, nil
}

func (s *CloudinaryStorage) Remove(ctx context.Context, image models.StoredImage) error {
	if image.Handle == "" {
		return fmt.Errorf("cloudinary destroy: missing public id for %q", image.URL)
	}
	res, err := s.uploader.Destroy(ctx, uploader.DestroyParams{
		PublicID:     image.Handle,
		ResourceType: "image",
		Invalidate:   api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", res.Error.Message)
	}
	return nil
}
