package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestLocalStorageRoundtrip(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()
	key := "payments/1/2/payment.pdf"
	content := "conteudo do comprovante"

	require.NoError(t, s.Save(ctx, key, strings.NewReader(content), int64(len(content)), "application/pdf"))

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := s.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()
	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	url, err := s.SignedURL(ctx, key, SignedURLExpiry)
	require.NoError(t, err)
	assert.Equal(t, "/files/"+key, url)

	require.NoError(t, s.Delete(ctx, key))
	exists, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageMissingKey(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "nope/missing.png")
	assert.Error(t, err)

	_, err = s.SignedURL(ctx, "nope/missing.png", SignedURLExpiry)
	assert.Error(t, err)

	// Deleting a missing key is not an error.
	assert.NoError(t, s.Delete(ctx, "nope/missing.png"))
}

func TestSaveOverwrites(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()
	key := "users/7/photo.png"

	require.NoError(t, s.Save(ctx, key, strings.NewReader("v1"), 2, "image/png"))
	require.NoError(t, s.Save(ctx, key, strings.NewReader("v2"), 2, "image/png"))

	reader, err := s.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()
	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))
}
