package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tos-network/tos-signer/internal/config"
	"github.com/tos-network/tos-signer/internal/logging"
	"github.com/tos-network/tos-signer/pkg/address"
	"github.com/tos-network/tos-signer/pkg/api"
)

// commonFlags are accepted by every command that needs a Service. fixtures
// is only registered by shield.
type commonFlags struct {
	configPath string
	network    string
	verbose    bool
	fixtures   bool
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	c := &commonFlags{}
	fs.StringVar(&c.configPath, "config", "", "path to YAML configuration")
	fs.StringVar(&c.network, "network", "", "network override")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	return fs, c
}

// service loads configuration, applies flag overrides and builds the Service.
func (c *commonFlags) service(stderr io.Writer) (*api.Service, error) {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if c.network != "" {
		if err := cfg.SetNetwork(c.network); err != nil {
			return nil, err
		}
	}
	if c.verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := logging.NewWriter(stderr, cfg.LogLevel, logging.Format(cfg.LogFormat))
	if err != nil {
		return nil, err
	}

	opts := []api.Option{api.WithLogger(logger)}
	if c.fixtures {
		opts = append(opts, api.WithFixtures())
	}
	return api.New(cfg, opts...)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// parseSeedByte accepts decimal or 0x-prefixed hex.
func parseSeedByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid seed byte %q: %w", s, err)
	}
	return byte(v), nil
}

func parseHex32(what, s string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return out, fmt.Errorf("%s: %w", what, err)
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("%s: expected 32 bytes, got %d", what, len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

// parsePublicKey accepts a bech32 address or 64 hex characters.
func parsePublicKey(s string) ([32]byte, error) {
	if strings.HasPrefix(s, address.HRPMainnet+"1") || strings.HasPrefix(s, address.HRPTestnet+"1") {
		pub, _, err := address.Decode(s)
		return pub, err
	}
	return parseHex32("public key", s)
}

// message returns -msg as bytes, or -hex decoded.
func message(text, hexText string) ([]byte, error) {
	switch {
	case text != "" && hexText != "":
		return nil, errors.New("use only one of -msg and -hex")
	case hexText != "":
		return hex.DecodeString(hexText)
	default:
		return []byte(text), nil
	}
}
