package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "debug", debug: true, wantDebug: true},
		{name: "quiet", debug: false, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "typegen.log")

			logger, err := New(tt.debug, path)
			require.NoError(t, err)

			logger.Debug("tokens lexed", zap.Int("count", 12))
			logger.Warn("definition has no formatter")
			_ = logger.Sync()

			data, err := os.ReadFile(path)
			require.NoError(t, err)

			assert.Contains(t, string(data), "definition has no formatter")
			if tt.wantDebug {
				assert.Contains(t, string(data), "tokens lexed")
			} else {
				assert.NotContains(t, string(data), "tokens lexed")
			}
		})
	}
}

func TestNew_DefaultsToStderr(t *testing.T) {
	logger, err := New(false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_BadOutput(t *testing.T) {
	_, err := New(true, filepath.Join(t.TempDir(), "missing", "dir", "typegen.log"))
	assert.Error(t, err)
}
