package notegraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/notegraph/graph/httpapi"
	"github.com/poiesic/notegraph/ingest"
	srcmock "github.com/poiesic/notegraph/source/mock"
)

func TestNewService(t *testing.T) {
	t.Run("create new service", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		svc, err := NewService(tmpDir, srcmock.NewConnector())
		require.NoError(t, err)
		require.NotNil(t, svc)
		defer svc.Close()

		// Verify components are initialized
		assert.NotNil(t, svc.States())
		assert.NotNil(t, svc.Source())
		assert.NotNil(t, svc.backend)
		assert.NotNil(t, svc.logger)
	})

	t.Run("error without source", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		svc, err := NewService(tmpDir, nil)
		assert.ErrorIs(t, err, ingest.ErrSourceRequired)
		assert.Nil(t, svc)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to open the state store at a file path instead of a directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		svc, err := NewService(tmpFile, srcmock.NewConnector())
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("error with empty graph URL", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		svc, err := NewService(tmpDir, srcmock.NewConnector(),
			WithGraphConfig(httpapi.Config{}))
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestService_Close(t *testing.T) {
	svc, err := NewService(t.TempDir(), srcmock.NewConnector())
	require.NoError(t, err)
	require.NotNil(t, svc)

	err = svc.Close()
	assert.NoError(t, err)
}

func TestService_NewSync(t *testing.T) {
	svc, err := NewService(t.TempDir(), srcmock.NewConnector())
	require.NoError(t, err)
	require.NotNil(t, svc)
	defer svc.Close()

	orch, err := svc.NewSync(nil)
	require.NoError(t, err)
	require.NotNil(t, orch)
	orch.Release()
}
