package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
	"travelcms/internal/config"
	"travelcms/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

// newTestMedia returns a media service over a temp directory store.
func newTestMedia(t *testing.T) (*MediaService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "http://cdn.test/uploads")
	require.NoError(t, err)
	cfg := &config.Config{Storage: config.StorageConfig{MaxUploadMB: 1}}
	return NewMediaService(store, cfg, zaptest.NewLogger(t)).(*MediaService), dir
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }
