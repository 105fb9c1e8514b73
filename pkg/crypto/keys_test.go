package crypto

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/gtank/ristretto255"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKeyPairDeterministic(t *testing.T) {
	for _, b := range []byte{0x01, 0x02, 0x42, 0x43, 0xFF} {
		a, err := DeriveKeyPairFromByte(b)
		require.NoError(t, err)
		c, err := DeriveKeyPairFromByte(b)
		require.NoError(t, err)

		assert.Equal(t, a.PrivateBytes(), c.PrivateBytes())
		assert.Equal(t, a.PublicBytes(), c.PublicBytes())
		assert.True(t, a.Public().Equal(c.Public()))
	}
}

func TestDeriveKeyPairInvertedRelation(t *testing.T) {
	kp, err := DeriveKeyPairFromByte(0x42)
	require.NoError(t, err)

	// private * public == H
	got := ristretto255.NewElement().ScalarMult(kp.private, kp.Public().Point())
	assert.Equal(t, 1, got.Equal(H()))
}

func TestDeriveKeyPairInverse(t *testing.T) {
	for _, b := range []byte{0x01, 0x02, 0x42, 0xFF} {
		kp, err := DeriveKeyPairFromByte(b)
		require.NoError(t, err)
		product := ristretto255.NewScalar().Multiply(kp.private, kp.privateInv)
		assert.Equal(t, 1, product.Equal(oneScalar()), "seed byte %d", b)
	}
}

func TestDeriveKeyPairKnownAccounts(t *testing.T) {
	tests := []struct {
		name     string
		seedByte byte
		public   string
	}{
		{"alice", 0x02, "f05bc1df2831717c2992d85b57e0cf3d123fd6c254257de5f784be369747b249"},
		{"bob", 0x03, "c29d170ab8a5b42a3520878501a87a27f9b5653fca8b0c59fc2786cf26e37824"},
		{"seed 0x42", 0x42, "5e33a9d4c8a40694ffd1f8de2d0b94fa11e0bfbadbd08b642f5a2f82503e1129"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := DeriveKeyPairFromByte(tt.seedByte)
			require.NoError(t, err)
			pub := kp.PublicBytes()
			assert.Equal(t, tt.public, hex.EncodeToString(pub[:]))
		})
	}
}

func TestDeriveKeyPairZeroSeed(t *testing.T) {
	_, err := DeriveKeyPairFromByte(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZeroScalar))

	var zeroErr *ZeroScalarError
	assert.ErrorAs(t, err, &zeroErr)

	// A seed equal to the group order also reduces to zero.
	_, err = DeriveKeyPair(groupOrder)
	assert.ErrorIs(t, err, ErrZeroScalar)
}

func TestKeyPairFromPrivateBytes(t *testing.T) {
	fromByte, err := DeriveKeyPairFromByte(0x01)
	require.NoError(t, err)

	// l + 1 reduces to the same private key as seed byte 1.
	seed := groupOrder
	seed[0]++
	fromBytes, err := KeyPairFromPrivateBytes(seed[:])
	require.NoError(t, err)
	assert.Equal(t, fromByte.PublicBytes(), fromBytes.PublicBytes())

	_, err = KeyPairFromPrivateBytes(make([]byte, 31))
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "private key", decodeErr.What)
}

func TestParsePublicKey(t *testing.T) {
	kp, err := DeriveKeyPairFromByte(0x07)
	require.NoError(t, err)

	pb := kp.PublicBytes()
	pub, err := ParsePublicKey(pb[:])
	require.NoError(t, err)
	assert.True(t, pub.Equal(kp.Public()))
	assert.Equal(t, pb, pub.Bytes())

	other, err := DeriveKeyPairFromByte(0x08)
	require.NoError(t, err)
	assert.False(t, pub.Equal(other.Public()))
	assert.False(t, pub.Equal(nil))
}
