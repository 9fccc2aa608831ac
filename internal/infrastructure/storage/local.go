// Package storage provides the image store backends: local filesystem
// for single-node deployments and S3 for object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/localmarket/backend/internal/application/media"
	infraconfig "github.com/localmarket/backend/internal/infrastructure/config"
)

// LocalImageStore stores images on the local filesystem and serves them
// under the configured public base path.
type LocalImageStore struct {
	dir        string
	publicBase string
}

// NewLocalImageStore creates a LocalImageStore, creating the target
// directory if needed
func NewLocalImageStore(cfg *infraconfig.StorageConfig) (*LocalImageStore, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.LocalDir == "" {
		return nil, errors.New("storage local directory is required")
	}

	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalImageStore{
		dir:        cfg.LocalDir,
		publicBase: strings.TrimSuffix(cfg.PublicBase, "/"),
	}, nil
}

// Save writes the image under the given file name, replacing any previous
// file at that name. The write goes through a temp file so a concurrent
// reader never sees a partial image.
func (s *LocalImageStore) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	if fileName == "" {
		return "", errors.New("file name is required")
	}
	if strings.Contains(fileName, "/") || strings.Contains(fileName, "..") {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}

	tmp, err := os.CreateTemp(s.dir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	target := filepath.Join(s.dir, fileName)
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return s.publicBase + "/" + fileName, nil
}

// Delete removes the stored file behind a public path. A path that no
// longer exists is not an error.
func (s *LocalImageStore) Delete(ctx context.Context, publicPath string) error {
	fileName := path.Base(publicPath)
	if fileName == "" || fileName == "." || fileName == "/" {
		return fmt.Errorf("invalid image path %q", publicPath)
	}

	if err := os.Remove(filepath.Join(s.dir, fileName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// Dir returns the directory images are stored in, for static file serving
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Ensure LocalImageStore implements media.ImageStore
var _ media.ImageStore = (*LocalImageStore)(nil)
