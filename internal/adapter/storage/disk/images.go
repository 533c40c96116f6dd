// Package disk stores product image files in a local directory.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/MikeRez0/orderdesk/internal/core/port"
)

type ImageStorage struct {
	dir        string
	publicPath string
}

func NewImageStorage(cfg *config.Storage) (*ImageStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &ImageStorage{dir: cfg.UploadDir, publicPath: cfg.PublicPath}, nil
}

// Dir is the directory files are written to.
func (s *ImageStorage) Dir() string {
	return s.dir
}

// Save writes content under filename and returns the public path of the file.
func (s *ImageStorage) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target, err := s.target(filename)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}

	return path.Join(s.publicPath, filename), nil
}

// Remove deletes filename. A missing file is not an error.
func (s *ImageStorage) Remove(_ context.Context, filename string) error {
	target, err := s.target(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", filename, err)
	}
	return nil
}

func (s *ImageStorage) target(filename string) (string, error) {
	if filename == "" || filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid file name %q", filename)
	}
	return filepath.Join(s.dir, filename), nil
}

var _ port.ImageStorage = (*ImageStorage)(nil)
