package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresPath(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.Error(t, err)
}

func TestHealthOnOpenDatabase(t *testing.T) {
	client, err := NewClient(context.Background(),
		DefaultConfig(filepath.Join(t.TempDir(), "codecoder.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	status, err := Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.False(t, status.WriterBusy)
	assert.GreaterOrEqual(t, status.PingMS, int64(0))
}
