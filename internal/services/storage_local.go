package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vershina/sportclub/internal/config"
	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/pkg/utils"
)

// LocalStorage keeps images under the static root. References are relative
// to that root, e.g. "images/news/poster.png".
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

func (s *LocalStorage) Name() string { return string(config.StorageLocal) }

func (s *LocalStorage) Put(_ context.Context, file io.Reader, filename string, category ImageCategory) (*models.StoredImage, error) {
	ext, ok := utils.ImageExtension(filename)
	if !ok {
		return nil, ErrInvalidImage
	}

	name := utils.SanitizeFilename(filename)
	if _, ok := utils.ImageExtension(name); !ok {
		name = uuid.NewString() + "." + ext
	}

	dir := filepath.Join(s.root, filepath.FromSlash(category.LocalDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	out, name, err := createUnique(dir, name)
	if err != nil {
		return nil, err
	}

	target := filepath.Join(dir, name)
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		_ = os.Remove(target)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(target)
		return nil, fmt.Errorf("close file: %w", err)
	}

	return &models.StoredImage{URL: path.Join(category.LocalDir, name)}, nil
}

const maxCreateAttempts = 8

// createUnique opens a new file in dir named after name, adding a numeric
// suffix when the name is taken. A name claimed by a concurrent upload between
// the probe and the open is retried, and after maxCreateAttempts the file gets
// a random name.
func createUnique(dir, name string) (*os.File, string, error) {
	taken := func(candidate string) bool {
		_, err := os.Stat(filepath.Join(dir, candidate))
		return err == nil
	}

	for attempt := 0; attempt <= maxCreateAttempts; attempt++ {
		candidate := utils.UniqueFilename(name, taken)
		if attempt == maxCreateAttempts {
			candidate = uuid.NewString() + filepath.Ext(name)
		}

		out, err := os.OpenFile(filepath.Join(dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return out, candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("create file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("create file: no free name for %q", name)
}

func (s *LocalStorage) Remove(_ context.Context, image models.StoredImage) error {
	target, err := s.resolve(image.URL)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// resolve maps a relative reference to a path inside root and refuses
// anything that would leave it.
func (s *LocalStorage) resolve(ref string) (string, error) {
	if ref == "" || (models.StoredImage{URL: ref}).IsRemote() {
		return "", fmt.Errorf("not a local reference: %q", ref)
	}
	cleaned := path.Clean("/" + strings.TrimPrefix(ref, "/"))
	if cleaned == "/" {
		return "", fmt.Errorf("not a local reference: %q", ref)
	}
	rel := strings.TrimPrefix(cleaned, "/")
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", fmt.Errorf("reference escapes static root: %q", ref)
	}
	return filepath.Join(s.root, filepath.FromSlash(rel)), nil
}
