// Package config loads the signer's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tos-network/tos-signer/internal/logging"
	"github.com/tos-network/tos-signer/pkg/tx"
)

// Network names.
const (
	NetworkMainnet  = "mainnet"
	NetworkTestnet  = "testnet"
	NetworkStagenet = "stagenet"
	NetworkDevnet   = "devnet"
)

var networkChainIDs = map[string]uint8{
	NetworkMainnet:  tx.ChainIDMainnet,
	NetworkTestnet:  tx.ChainIDTestnet,
	NetworkStagenet: tx.ChainIDStagenet,
	NetworkDevnet:   tx.ChainIDDevnet,
}

// Config is the signer configuration file.
type Config struct {
	Network   string `yaml:"network"`
	ChainID   *uint8 `yaml:"chain_id,omitempty"` // defaults to the network's chain id
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the devnet configuration with info-level text logs.
func Default() *Config {
	return &Config{
		Network:   NetworkDevnet,
		LogLevel:  "info",
		LogFormat: string(logging.FormatText),
	}
}

// Load reads a YAML configuration file. Fields missing from the file keep
// their Default values; unknown fields are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration bytes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values. Nothing is defaulted silently.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if _, ok := networkChainIDs[c.Network]; !ok {
		return fmt.Errorf("network: unknown network %q", c.Network)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch logging.Format(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("log_format: unknown format %q", c.LogFormat)
	}
	return nil
}

// EffectiveChainID returns ChainID if set, else the network's chain id.
func (c *Config) EffectiveChainID() uint8 {
	if c.ChainID != nil {
		return *c.ChainID
	}
	return networkChainIDs[c.Network]
}

// Mainnet reports whether addresses use the mainnet prefix.
func (c *Config) Mainnet() bool {
	return c.Network == NetworkMainnet
}

// SetNetwork switches network and clears any chain id override.
func (c *Config) SetNetwork(network string) error {
	if _, ok := networkChainIDs[network]; !ok {
		return fmt.Errorf("network: unknown network %q", network)
	}
	c.Network = network
	c.ChainID = nil
	return nil
}
