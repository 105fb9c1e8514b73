package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterIntegersAreBigEndian(t *testing.T) {
	w := NewWriter(16)
	w.U8(0xAB)
	w.U16(0x0102)
	w.U64(0x0102030405060708)
	w.Bool(true)
	w.Bool(false)

	out, err := w.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0xAB,
		0x01, 0x02,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x01,
		0x00,
	}, out)
}

func TestWriterOptionalBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"none", nil, []byte{0x00}},
		{"empty", []byte{}, []byte{0x01, 0x00, 0x00}},
		{"three bytes", []byte{0xAA, 0xBB, 0xCC}, []byte{0x01, 0x00, 0x03, 0xAA, 0xBB, 0xCC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(0)
			w.OptionalBytes("extra_data", tt.in)
			out, err := w.Bytes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestWriterOptionalBytesTooLong(t *testing.T) {
	w := NewWriter(0)
	w.OptionalBytes("extra_data", make([]byte, 1<<16))

	_, err := w.Bytes()
	var lerr *LengthError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "extra_data", lerr.Field)
}

func TestWriterFixedWidthMismatch(t *testing.T) {
	w := NewWriter(64)
	w.U8(1)
	w.Fixed("source", make([]byte, 31), 32)
	// Writes after the first error are dropped.
	w.U64(7)

	_, err := w.Bytes()
	var lerr *LengthError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "source", lerr.Field)
	assert.Equal(t, 32, lerr.Expected)
	assert.Equal(t, 31, lerr.Got)
	assert.Equal(t, 1, w.Len())
}

func TestWriterBytesExact(t *testing.T) {
	w := NewWriter(0)
	w.U64(1)

	out, err := w.BytesExact(8)
	require.NoError(t, err)
	assert.Len(t, out, 8)

	_, err = w.BytesExact(9)
	var lerr *LengthError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "frame", lerr.Field)
}

func TestWriterBytesReturnsCopy(t *testing.T) {
	w := NewWriter(0)
	w.Raw([]byte{1, 2, 3})
	out, err := w.Bytes()
	require.NoError(t, err)
	out[0] = 9

	again, err := w.Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.Equal([]byte{1, 2, 3}, again))
}

func TestReaderRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.U8(3)
	w.U16(500)
	w.U64(500_000_000)
	w.Fixed("hash", bytes.Repeat([]byte{0x11}, 32), 32)
	w.OptionalBytes("a", nil)
	w.OptionalBytes("b", []byte("memo"))
	frame, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(frame)
	assert.Equal(t, uint8(3), r.U8())
	assert.Equal(t, uint16(500), r.U16())
	assert.Equal(t, uint64(500_000_000), r.U64())
	assert.Equal(t, bytes.Repeat([]byte{0x11}, 32), r.Fixed(32))
	assert.Nil(t, r.OptionalBytes())
	assert.Equal(t, []byte("memo"), r.OptionalBytes())
	require.NoError(t, r.Done())
}

func TestReaderErrors(t *testing.T) {
	r := NewReader([]byte{0x01})
	r.U16()
	assert.ErrorIs(t, r.Err(), ErrShortBuffer)

	r = NewReader([]byte{0x02})
	r.Bool()
	assert.Error(t, r.Err())

	r = NewReader([]byte{0x00, 0x01})
	r.U8()
	assert.Error(t, r.Done())
}
