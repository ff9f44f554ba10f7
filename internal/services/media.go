package services

import (
	"context"
	"mime/multipart"

	"github.com/vershina/sportclub/internal/models"
)

type imageStore interface {
	Store(ctx context.Context, fileHeader *multipart.FileHeader, category ImageCategory) *models.StoredImage
	Delete(ctx context.Context, image models.StoredImage)
}

func imageColumns(image *models.StoredImage) (*string, *string) {
	if image == nil {
		return nil, nil
	}
	url := image.URL
	if image.Handle == "" {
		return &url, nil
	}
	handle := image.Handle
	return &url, &handle
}
