package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, "debug", FormatJSON)
	require.NoError(t, err)

	logger.With("component", "test").Debug(context.Background(), "signed", Redacted("private_key"), "len", 13)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "signed", line["msg"])
	assert.Equal(t, "test", line["component"])
	assert.Equal(t, Placeholder(), line["private_key"])
	assert.Equal(t, float64(13), line["len"])
}

func TestNewWriterFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, "warn", FormatText)
	require.NoError(t, err)

	logger.Info(context.Background(), "quiet")
	assert.Zero(t, buf.Len())

	logger.Warn(context.Background(), "loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewWriterErrors(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, "verbose", FormatText)
	assert.Error(t, err)

	_, err = NewWriter(&bytes.Buffer{}, "info", Format("xml"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "0102", Hex("k", []byte{1, 2}).Value.String())
	assert.Equal(t, "0001020304050607…", Hex("k", []byte{0, 1, 2, 3, 4, 5, 6, 7, 8}).Value.String())
}

func TestNop(t *testing.T) {
	Nop().Error(context.Background(), "dropped")
}
