package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, NetworkDevnet, cfg.Network)
	assert.Equal(t, uint8(3), cfg.EffectiveChainID())
	assert.False(t, cfg.Mainnet())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("network: mainnet\nlog_level: debug\nlog_format: json\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, NetworkMainnet, cfg.Network)
	assert.Equal(t, uint8(0), cfg.EffectiveChainID())
	assert.True(t, cfg.Mainnet())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParseChainIDOverride(t *testing.T) {
	cfg, err := Parse([]byte("network: testnet\nchain_id: 42\n"))
	require.NoError(t, err)
	assert.Equal(t, uint8(42), cfg.EffectiveChainID())
	assert.Equal(t, "info", cfg.LogLevel)

	require.NoError(t, cfg.SetNetwork(NetworkStagenet))
	assert.Equal(t, uint8(2), cfg.EffectiveChainID())
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown network", "network: moonnet\n"},
		{"bad level", "log_level: loud\n"},
		{"bad format", "log_format: xml\n"},
		{"unknown field", "netwrok: mainnet\n"},
		{"chain id overflow", "chain_id: 300\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
