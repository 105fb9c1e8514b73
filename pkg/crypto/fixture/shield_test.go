package fixture

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tos-network/tos-signer/pkg/crypto"
)

func TestMakeShieldCrypto(t *testing.T) {
	dest, err := crypto.DeriveKeyPairFromByte(0x02)
	require.NoError(t, err)
	destPub := dest.PublicBytes()

	sc, err := MakeShieldCrypto(0x02, 500_000_000)
	require.NoError(t, err)

	require.NoError(t, crypto.VerifyShieldBytes(sc.Commitment[:], sc.ReceiverHandle[:], destPub[:], 500_000_000, sc.Proof[:]))
	assert.ErrorIs(t,
		crypto.VerifyShieldBytes(sc.Commitment[:], sc.ReceiverHandle[:], destPub[:], 500_000_001, sc.Proof[:]),
		crypto.ErrVerificationFailed)

	again, err := MakeShieldCrypto(0x02, 500_000_000)
	require.NoError(t, err)
	assert.Equal(t, sc, again)

	other, err := MakeShieldCrypto(0x02, 500_000_001)
	require.NoError(t, err)
	assert.NotEqual(t, sc.Commitment, other.Commitment)
}

func TestMakeShieldCryptoKnownVector(t *testing.T) {
	sc, err := MakeShieldCrypto(0x02, 500_000_000)
	require.NoError(t, err)

	assert.Equal(t, "94717843d56231d21d64a254402462edb68fb47994376199a2c597ebeb4c0d60", hex.EncodeToString(sc.Commitment[:]))
	assert.Equal(t, "92bec0b54e38e761c14a3fd9aa37f46942fe373a3590d251a1ba788a44273779", hex.EncodeToString(sc.ReceiverHandle[:]))
	assert.Equal(t,
		"825d5da7d56d2ca681a2547f42cf64da2205b2d4b1a9b11416f9b4b56af7df08"+
			"0023d452367b58ad661425f74713da8e2b23b8a72d6485d3fe179d30f2f6fb24"+
			"5ae38dd311ae568c4ca8d3b9527f765cedc4251e292cd16dd5e1bb377ba51b07",
		hex.EncodeToString(sc.Proof[:]))
}

func TestMakeShieldCryptoZeroSeed(t *testing.T) {
	_, err := MakeShieldCrypto(0x00, 1)
	assert.ErrorIs(t, err, crypto.ErrZeroScalar)
}

func TestRandomValidPoint(t *testing.T) {
	p := RandomValidPoint()
	assert.Equal(t, p, RandomValidPoint())
	assert.Equal(t, "3e18947ecdb40f96ae55b8afc9ef2616721cafa2a4059e6cfc164846df21fc6f", hex.EncodeToString(p[:]))

	_, err := crypto.DecodePoint("point", p[:])
	assert.NoError(t, err)
}

func TestDummyCTValidityProof(t *testing.T) {
	proof := DummyCTValidityProof()
	assert.Equal(t, proof, DummyCTValidityProof())
	require.Len(t, proof, 160)

	for i := 0; i < 3; i++ {
		_, err := crypto.DecodePoint("Y", proof[i*32:(i+1)*32])
		assert.NoError(t, err, "Y_%d", i)
	}
	for i := 3; i < 5; i++ {
		_, err := crypto.DecodeScalar("z", proof[i*32:(i+1)*32])
		assert.NoError(t, err)
	}
}
