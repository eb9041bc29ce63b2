package infra

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/delcom/angkasa-api/config"
)

const celestialBodyDir = "celestial-bodies"

// UploadService stores uploaded image files on the local filesystem under
// the configured base directory.
type UploadService struct {
	BaseDir string
}

func InitUploadService(cfg *config.EnvConfig) *UploadService {
	if cfg.Upload.BaseDir == "" {
		return nil
	}
	return &UploadService{BaseDir: cfg.Upload.BaseDir}
}

// SaveCelestialBodyImage writes the stream to disk under a fresh random
// filename, keeping the extension of the original name. It returns the
// relative path to be stored on the record.
func (s *UploadService) SaveCelestialBodyImage(src io.Reader, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	fileName := uuid.New().String() + ext
	relPath := path.Join(s.BaseDir, celestialBodyDir, fileName)

	if err := os.MkdirAll(filepath.Dir(filepath.FromSlash(relPath)), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.FromSlash(relPath))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filepath.FromSlash(relPath))
		return "", err
	}

	return relPath, nil
}

// Delete removes the file at the given relative path. A missing file is not
// an error.
func (s *UploadService) Delete(relPath string) error {
	err := os.Remove(filepath.FromSlash(relPath))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether a regular file is present at the given relative path.
func (s *UploadService) Exists(relPath string) bool {
	info, err := os.Stat(filepath.FromSlash(relPath))
	return err == nil && info.Mode().IsRegular()
}
