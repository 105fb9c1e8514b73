package address

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ones() [32]byte {
	var k [32]byte
	copy(k[:], bytes.Repeat([]byte{0x01}, 32))
	return k
}

func TestEncodeVectors(t *testing.T) {
	tests := []struct {
		mainnet bool
		want    string
	}{
		{true, "tos1qyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqsqha3c2p"},
		{false, "tst1qyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqsqvdcezd"},
	}

	for _, tt := range tests {
		got, err := Encode(ones(), tt.mainnet)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)

		key, mainnet, err := Decode(tt.want)
		require.NoError(t, err)
		assert.Equal(t, ones(), key)
		assert.Equal(t, tt.mainnet, mainnet)
	}
}

func TestDecodeErrors(t *testing.T) {
	var key [32]byte
	key[0] = 0xAA

	btc, err := encodeRaw("bc", append(key[:], TypeNormal))
	require.NoError(t, err)
	_, _, err = Decode(btc)
	assert.ErrorIs(t, err, ErrInvalidHRP)

	wrongType, err := encodeRaw(HRPMainnet, append(key[:], 0x01))
	require.NoError(t, err)
	_, _, err = Decode(wrongType)
	assert.ErrorIs(t, err, ErrInvalidType)

	short, err := encodeRaw(HRPMainnet, key[:31])
	require.NoError(t, err)
	_, _, err = Decode(short)
	assert.ErrorIs(t, err, ErrInvalidLength)

	// Flip one data character; the checksum must catch it.
	good, err := Encode(key, true)
	require.NoError(t, err)
	bad := []byte(good)
	if bad[10] == 'q' {
		bad[10] = 'p'
	} else {
		bad[10] = 'q'
	}
	_, _, err = Decode(string(bad))
	assert.Error(t, err)
}

func TestPrivateKeyEncoding(t *testing.T) {
	var priv [32]byte
	priv[0] = 0x01

	assert.Equal(t, "5Hpj8DKG44nNjuTG4mCmPFpnugcNRk98e1K51zfFDWwB4v3WZZc", EncodePrivateKey(priv, true))
	assert.Equal(t, "91bMhx8oeHrWhxxYh76gFrNkZLy5augKyxB26d1kZFgDqrtEbiN", EncodePrivateKey(priv, false))

	for _, text := range []string{
		EncodePrivateKey(priv, true),
		EncodePrivateKey(priv, false),
		"0100000000000000000000000000000000000000000000000000000000000000",
		"  0100000000000000000000000000000000000000000000000000000000000000\n",
	} {
		got, err := ParsePrivateKey(text)
		require.NoError(t, err, text)
		assert.Equal(t, priv, got)
	}

	_, err := ParsePrivateKey("not a key")
	assert.Error(t, err)
}
