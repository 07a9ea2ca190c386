package imagestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylelove/internal/config"
)

func TestContentType(t *testing.T) {
	ct, err := ContentType("look.JPG")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)

	_, err = ContentType("notes.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestLocalUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "/images/")
	require.NoError(t, err)

	key, err := store.Upload(context.Background(), "wrap dress.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, key[:2], key[3:5])

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "/images/"+key, store.URL(key))

	require.NoError(t, store.Delete(context.Background(), key))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Delete(context.Background(), key))
}

func TestLocalRejectsNonImage(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/images")
	require.NoError(t, err)
	_, err = store.Upload(context.Background(), "script.sh", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestNewSelectsBackend(t *testing.T) {
	store, err := New(context.Background(), config.ImageConfig{Type: "local", LocalPath: t.TempDir(), PublicURL: "/images"})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	_, err = New(context.Background(), config.ImageConfig{Type: "s3"})
	assert.Error(t, err)

	_, err = New(context.Background(), config.ImageConfig{Type: "ftp"})
	assert.Error(t, err)
}
