package infra_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delcom/angkasa-api/infra"
)

func newTestUploadService(t *testing.T) *infra.UploadService {
	t.Helper()
	return &infra.UploadService{BaseDir: filepath.Join(t.TempDir(), "uploads")}
}

func TestSaveCelestialBodyImage(t *testing.T) {
	storage := newTestUploadService(t)
	content := []byte("fake image bytes")

	relPath, err := storage.SaveCelestialBodyImage(bytes.NewReader(content), "mars.jpg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, storage.BaseDir+"/celestial-bodies/"))
	assert.True(t, strings.HasSuffix(relPath, ".jpg"), "original extension is kept")

	fileName := filepath.Base(relPath)
	_, err = uuid.Parse(strings.TrimSuffix(fileName, ".jpg"))
	require.NoError(t, err, "generated name is a fresh uuid")

	got, err := os.ReadFile(filepath.FromSlash(relPath))
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSaveCelestialBodyImageWithoutExtension(t *testing.T) {
	storage := newTestUploadService(t)

	relPath, err := storage.SaveCelestialBodyImage(bytes.NewReader([]byte("x")), "gambar")
	require.NoError(t, err)

	_, err = uuid.Parse(filepath.Base(relPath))
	require.NoError(t, err, "no extension on the original name means none on disk")
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	storage := newTestUploadService(t)

	first, err := storage.SaveCelestialBodyImage(bytes.NewReader([]byte("a")), "x.png")
	require.NoError(t, err)
	second, err := storage.SaveCelestialBodyImage(bytes.NewReader([]byte("b")), "x.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, storage.Exists(first))
	assert.True(t, storage.Exists(second))
}

func TestDeleteIsIdempotent(t *testing.T) {
	storage := newTestUploadService(t)

	relPath, err := storage.SaveCelestialBodyImage(bytes.NewReader([]byte("x")), "venus.png")
	require.NoError(t, err)
	require.True(t, storage.Exists(relPath))

	require.NoError(t, storage.Delete(relPath))
	assert.False(t, storage.Exists(relPath))

	// A missing file is not an error.
	require.NoError(t, storage.Delete(relPath))
	require.NoError(t, storage.Delete(filepath.Join(storage.BaseDir, "celestial-bodies", "never-there.jpg")))
}
