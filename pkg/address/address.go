// Package address converts TOS public keys and private keys to and from
// their text encodings.
//
// An address is bech32(hrp, public_key(32) || address_type(1)) with hrp
// "tos" on mainnet and "tst" elsewhere. Only the normal address type (0x00)
// is produced or accepted.
package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/bech32"
)

const (
	HRPMainnet = "tos"
	HRPTestnet = "tst"

	// TypeNormal is the address type byte of a plain public key address.
	TypeNormal byte = 0x00

	keySize = 32
)

// Private key base58check version bytes.
const (
	privateKeyVersionMainnet byte = 0x80
	privateKeyVersionTestnet byte = 0xef
)

var (
	ErrInvalidHRP     = errors.New("address: unknown human-readable prefix")
	ErrInvalidType    = errors.New("address: unsupported address type")
	ErrInvalidLength  = errors.New("address: invalid payload length")
	ErrInvalidVersion = errors.New("address: invalid private key version byte")
)

// HRP returns the human-readable prefix for the network.
func HRP(mainnet bool) string {
	if mainnet {
		return HRPMainnet
	}
	return HRPTestnet
}

// Encode returns the bech32 address of a compressed public key.
func Encode(publicKey [keySize]byte, mainnet bool) (string, error) {
	payload := make([]byte, 0, keySize+1)
	payload = append(payload, publicKey[:]...)
	payload = append(payload, TypeNormal)

	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert address bits: %w", err)
	}
	return bech32.Encode(HRP(mainnet), data)
}

// Decode parses a bech32 address and returns the public key and whether the
// address is a mainnet address. The key is not checked to be a valid point.
func Decode(addr string) (publicKey [keySize]byte, mainnet bool, err error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return publicKey, false, fmt.Errorf("address: %w", err)
	}

	switch strings.ToLower(hrp) {
	case HRPMainnet:
		mainnet = true
	case HRPTestnet:
	default:
		return publicKey, false, fmt.Errorf("%w: %q", ErrInvalidHRP, hrp)
	}

	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return publicKey, false, fmt.Errorf("address: %w", err)
	}
	if len(payload) != keySize+1 {
		return publicKey, false, fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(payload))
	}
	if payload[keySize] != TypeNormal {
		return publicKey, false, fmt.Errorf("%w: 0x%02x", ErrInvalidType, payload[keySize])
	}

	copy(publicKey[:], payload[:keySize])
	return publicKey, mainnet, nil
}

// EncodePrivateKey encodes a 32-byte private key as base58check with a
// network version byte (0x80 mainnet, 0xef otherwise).
func EncodePrivateKey(privateKey [keySize]byte, mainnet bool) string {
	version := privateKeyVersionTestnet
	if mainnet {
		version = privateKeyVersionMainnet
	}
	return base58.CheckEncode(privateKey[:], version)
}

// ParsePrivateKey accepts a private key as 64 hex characters or in the
// base58check form produced by EncodePrivateKey.
func ParsePrivateKey(s string) ([keySize]byte, error) {
	var out [keySize]byte
	s = strings.TrimSpace(s)

	if len(s) == 2*keySize {
		if raw, err := hex.DecodeString(s); err == nil {
			copy(out[:], raw)
			return out, nil
		}
	}

	raw, version, err := base58.CheckDecode(s)
	if err != nil {
		return out, fmt.Errorf("address: invalid private key: %w", err)
	}
	if version != privateKeyVersionMainnet && version != privateKeyVersionTestnet {
		return out, fmt.Errorf("%w: 0x%02x", ErrInvalidVersion, version)
	}
	if len(raw) != keySize {
		return out, fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(raw))
	}
	copy(out[:], raw)
	return out, nil
}
