package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/gtank/ristretto255"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// groupOrder is l = 2^252 + 27742317777372353535851937790883648493,
// little-endian.
var groupOrder = [ScalarSize]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

const (
	valueGeneratorHex    = "e2f2ae0a6abc4e71a884a961c500515f58e30b6aa582dd8db6a65945e08d2d76"
	blindingGeneratorHex = "8c9240b456a9e6dc65c377a1048d745f94a08cdb7f44cbcd7b46f34048871134"
)

func TestGenerators(t *testing.T) {
	g := EncodePoint(G())
	h := EncodePoint(H())

	assert.Equal(t, valueGeneratorHex, hex.EncodeToString(g[:]))
	assert.Equal(t, blindingGeneratorHex, hex.EncodeToString(h[:]))
}

func TestGeneratorsAreCopies(t *testing.T) {
	g := G()
	g.Add(g, g)

	again := EncodePoint(G())
	assert.Equal(t, valueGeneratorHex, hex.EncodeToString(again[:]))
}

func TestReduceScalar(t *testing.T) {
	order := groupOrder
	assert.True(t, isZeroScalar(ReduceScalar(order)))

	// l + 5 reduces to 5
	order[0] += 5
	assert.Equal(t, 1, ReduceScalar(order).Equal(ScalarFromUint64(5)))
}

func TestDecodeRejectsNonCanonical(t *testing.T) {
	ff := bytes.Repeat([]byte{0xFF}, 32)

	_, err := DecodeScalar("test scalar", ff)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "test scalar", decodeErr.What)

	_, err = DecodePoint("test point", ff)
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "test point", decodeErr.What)

	_, err = DecodePoint("short point", ff[:31])
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, err.Error(), "expected 32 bytes, got 31")
}

func TestHashToScalarConcatenates(t *testing.T) {
	a := HashToScalar([]byte("hello, "), []byte("world"))
	b := HashToScalar([]byte("hello, world"))
	assert.Equal(t, 1, a.Equal(b))
}

func TestNonZeroNonce(t *testing.T) {
	k := nonZeroNonce(ristretto255.NewScalar())
	assert.Equal(t, 1, k.Equal(oneScalar()))

	seven := ScalarFromUint64(7)
	assert.Equal(t, 1, nonZeroNonce(seven).Equal(seven))
}
