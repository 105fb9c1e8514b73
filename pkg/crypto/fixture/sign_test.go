package fixture

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tos-network/tos-signer/pkg/crypto"
)

func TestSignDeterministic(t *testing.T) {
	kp, err := crypto.DeriveKeyPairFromByte(0x42)
	require.NoError(t, err)
	msg := []byte("Hello, world!")

	a, err := SignDeterministic(kp, msg)
	require.NoError(t, err)
	b, err := SignDeterministic(kp, msg)
	require.NoError(t, err)

	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.True(t, crypto.Verify(kp.Public(), msg, a))

	other, err := crypto.DeriveKeyPairFromByte(0x43)
	require.NoError(t, err)
	assert.False(t, crypto.Verify(other.Public(), msg, a))

	c, err := SignDeterministic(kp, []byte("Hello, world?"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Bytes(), c.Bytes())
}

func TestSignDeterministicDiffersFromRandom(t *testing.T) {
	kp, err := crypto.DeriveKeyPairFromByte(0x42)
	require.NoError(t, err)
	msg := []byte("Hello, world!")

	det, err := SignDeterministic(kp, msg)
	require.NoError(t, err)
	rnd, err := crypto.Sign(nil, kp, msg)
	require.NoError(t, err)

	assert.NotEqual(t, det.Bytes(), rnd.Bytes())
	assert.True(t, crypto.Verify(kp.Public(), msg, rnd))
}

func TestSignWithSeedByte(t *testing.T) {
	pub, sig, err := SignWithSeedByte(0x01, []byte("data"))
	require.NoError(t, err)
	require.NoError(t, crypto.VerifyBytes(pub[:], []byte("data"), sig[:]))

	_, _, err = SignWithSeedByte(0x00, []byte("data"))
	assert.ErrorIs(t, err, crypto.ErrZeroScalar)
}

func TestSignWithSeedByteKnownVector(t *testing.T) {
	pub, sig, err := SignWithSeedByte(0x42, []byte("Hello, world!"))
	require.NoError(t, err)

	assert.Equal(t, "5e33a9d4c8a40694ffd1f8de2d0b94fa11e0bfbadbd08b642f5a2f82503e1129", hex.EncodeToString(pub[:]))
	assert.Equal(t,
		"58ead296ce3d0d349408fbcdb3c079d0b9be326d7728f72028d22451497aad01"+
			"ecb9e9743614e118fac123dcfafed4c20481982aa0d51d4dfa7130d2f72eae04",
		hex.EncodeToString(sig[:]))
}
