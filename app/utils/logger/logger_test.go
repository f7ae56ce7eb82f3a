package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "warn", level: "warn"},
		{name: "warning alias", level: "warning"},
		{name: "error", level: "error"},
		{name: "mixed case", level: "INFO"},
		{name: "unknown level", level: "verbose", wantErr: true},
		{name: "empty level", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestNewWithWriter_TextOutput(t *testing.T) {
	t.Setenv("GO_ENV", "development")

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("session resolved", "session_key", "client-456")

	out := buf.String()
	assert.Contains(t, out, "session resolved")
	assert.Contains(t, out, "session_key=client-456")
	assert.Contains(t, out, "service=account-service")
}

func TestNewWithWriter_ProductionJSON(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("profile created", "tier", "free")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "profile created", entry["msg"])
	assert.Equal(t, "free", entry["tier"])
	assert.Equal(t, "account-service", entry["service"])
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Setenv("GO_ENV", "development")

	var buf bytes.Buffer
	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Debug("ignored")
	logger.Info("also ignored")
	logger.Warn("identity check timed out")

	out := buf.String()
	assert.NotContains(t, out, "ignored")
	assert.Contains(t, out, "identity check timed out")
}
