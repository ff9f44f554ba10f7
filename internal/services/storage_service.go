package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/vershina/sportclub/internal/config"
	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/pkg/utils"
	"go.uber.org/zap"
)

var (
	ErrUploadsDisabled = errors.New("uploads are disabled without a cloud storage backend")
	ErrInvalidImage    = errors.New("file is not an accepted image")
)

type ImageCategory struct {
	Name        string
	LocalDir    string
	CloudFolder string
}

var (
	CoachPhotos = ImageCategory{Name: "coach photo", LocalDir: "images/coaches", CloudFolder: "coaches"}
	NewsImages  = ImageCategory{Name: "news image", LocalDir: "images/news", CloudFolder: "news"}
)

// StorageBackend is implemented by cloudinary, supabase, local and disabled
// storage. Exactly one is active per process.
type StorageBackend interface {
	Name() string
	Put(ctx context.Context, file io.Reader, filename string, category ImageCategory) (*models.StoredImage, error)
	Remove(ctx context.Context, image models.StoredImage) error
}

// MediaStorage validates uploads and hides backend failures from callers:
// a failed store yields nil and a failed delete is only logged.
type MediaStorage struct {
	backend StorageBackend
	local   *LocalStorage
	logger  *zap.Logger
}

func NewMediaStorage(backend StorageBackend, local *LocalStorage, logger *zap.Logger) *MediaStorage {
	return &MediaStorage{backend: backend, local: local, logger: logger}
}

// NewMediaStorageFromConfig wires the backend chosen by the configuration.
func NewMediaStorageFromConfig(cfg *config.Config, logger *zap.Logger) (*MediaStorage, error) {
	local := NewLocalStorage(cfg.StaticDir)

	var backend StorageBackend
	switch cfg.Storage {
	case config.StorageCloudinary:
		cloud, err := NewCloudinaryStorage(cfg.CloudinaryURL, cfg.CloudFolderPrefix)
		if err != nil {
			return nil, fmt.Errorf("init cloudinary: %w", err)
		}
		backend = cloud
	case config.StorageSupabase:
		backend = NewSupabaseStorageService(cfg.SupabaseURL, cfg.SupabaseBucket, cfg.SupabaseServiceKey, cfg.CloudFolderPrefix)
	case config.StorageDisabled:
		backend = DisabledStorage{}
	default:
		backend = local
	}

	logger.Info("media storage selected", zap.String("backend", backend.Name()))
	return NewMediaStorage(backend, local, logger), nil
}

// Store persists an uploaded image and returns nil when there is nothing to
// store, the file is not an accepted image or the backend failed.
func (m *MediaStorage) Store(ctx context.Context, fileHeader *multipart.FileHeader, category ImageCategory) *models.StoredImage {
	if fileHeader == nil || fileHeader.Filename == "" || fileHeader.Size <= 0 {
		return nil
	}
	if _, ok := utils.ImageExtension(fileHeader.Filename); !ok {
		m.logger.Info("rejected upload",
			zap.String("category", category.Name),
			zap.String("filename", fileHeader.Filename),
			zap.Error(ErrInvalidImage))
		return nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		m.logger.Warn("open upload", zap.String("category", category.Name), zap.Error(err))
		return nil
	}
	defer file.Close()

	image, err := m.backend.Put(ctx, file, fileHeader.Filename, category)
	if err != nil {
		m.logger.Warn("store image",
			zap.String("backend", m.backend.Name()),
			zap.String("category", category.Name),
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
		return nil
	}
	return image
}

// Delete removes a previously stored image. Remote images go through the
// active backend and need a handle; relative references are local files.
func (m *MediaStorage) Delete(ctx context.Context, image models.StoredImage) {
	if image.URL == "" {
		return
	}

	var err error
	switch {
	case image.IsRemote() && image.Handle == "":
		return
	case image.IsRemote():
		err = m.backend.Remove(ctx, image)
	default:
		err = m.local.Remove(ctx, image)
	}
	if err != nil {
		m.logger.Warn("delete image",
			zap.String("backend", m.backend.Name()),
			zap.String("url", image.URL),
			zap.Error(err))
	}
}

type DisabledStorage struct{}

func (DisabledStorage) Name() string { return string(config.StorageDisabled) }

func (DisabledStorage) Put(context.Context, io.Reader, string, ImageCategory) (*models.StoredImage, error) {
	return nil, ErrUploadsDisabled
}

func (DisabledStorage) Remove(context.Context, models.StoredImage) error {
	return ErrUploadsDisabled
}
