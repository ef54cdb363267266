package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/freeflow/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freeflow.log")
	logger, err := New(config.LoggerConfig{Level: "info", Encoding: "json", File: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("project_created")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"project_created"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_RejectsBadSettings(t *testing.T) {
	_, err := New(config.LoggerConfig{Level: "loud", Encoding: "console"})
	assert.Error(t, err)

	_, err = New(config.LoggerConfig{Level: "info", Encoding: "xml"})
	assert.Error(t, err)
}
