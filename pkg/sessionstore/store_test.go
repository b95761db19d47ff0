package sessionstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshBlob() Blob {
	return Blob{
		Cookies: []Cookie{{
			Name: "sid", Value: "abc", Domain: ".example.com", Path: "/",
			Expires: float64(time.Now().Add(24 * time.Hour).Unix()), SameSite: "Lax",
		}},
		Origins: []OriginState{{
			Origin:       "https://example.com",
			LocalStorage: []StorageEntry{{Name: "k", Value: "v"}},
		}},
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "sessions"))
	require.NoError(t, err)

	path, err := store.Save("crd_1", "example", freshBlob())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	blob, err := store.Load("example")
	require.NoError(t, err)
	require.NotNil(t, blob)
	assert.Equal(t, "sid", blob.Cookies[0].Name)
	assert.Equal(t, "https://example.com", blob.Origins[0].Origin)
}

func TestServiceNameSanitization(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "sessions"))
	require.NoError(t, err)

	path, err := store.Save("crd_1", "my service/№1", freshBlob())
	require.NoError(t, err)
	assert.Equal(t, "my_service__1.json", filepath.Base(path))
}

func TestHasValid(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "sessions"))
	require.NoError(t, err)

	// Fresh cookie → valid.
	_, err = store.Save("crd_1", "fresh", freshBlob())
	require.NoError(t, err)
	assert.True(t, store.HasValid("fresh"))

	// Session-scoped cookie (expires -1) → valid.
	blob := freshBlob()
	blob.Cookies[0].Expires = -1
	_, err = store.Save("crd_2", "scoped", blob)
	require.NoError(t, err)
	assert.True(t, store.HasValid("scoped"))

	// All cookies expired → invalid.
	blob = freshBlob()
	blob.Cookies[0].Expires = float64(time.Now().Add(-time.Hour).Unix())
	_, err = store.Save("crd_3", "expired", blob)
	require.NoError(t, err)
	assert.False(t, store.HasValid("expired"))

	// No cookies → invalid.
	_, err = store.Save("crd_4", "empty", Blob{})
	require.NoError(t, err)
	assert.False(t, store.HasValid("empty"))

	// Missing → invalid.
	assert.False(t, store.HasValid("missing"))
}

func TestHasValidOldMtime(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "sessions"))
	require.NoError(t, err)

	path, err := store.Save("crd_1", "stale", freshBlob())
	require.NoError(t, err)

	old := time.Now().Add(-31 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))
	assert.False(t, store.HasValid("stale"), "old mtime invalidates even with fresh cookies")
}

func TestCleanupExpired(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "sessions"))
	require.NoError(t, err)

	_, err = store.Save("crd_1", "keep", freshBlob())
	require.NoError(t, err)

	blob := freshBlob()
	blob.Cookies[0].Expires = float64(time.Now().Add(-time.Hour).Unix())
	_, err = store.Save("crd_2", "drop", blob)
	require.NoError(t, err)

	removed, err := store.CleanupExpired()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	infos, err := store.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "keep", infos[0].Service)
}

func TestClearIdempotent(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "sessions"))
	require.NoError(t, err)

	_, err = store.Save("crd_1", "svc", freshBlob())
	require.NoError(t, err)
	require.NoError(t, store.Clear("svc"))
	require.NoError(t, store.Clear("svc"))

	blob, err := store.Load("svc")
	require.NoError(t, err)
	assert.Nil(t, blob)
}
