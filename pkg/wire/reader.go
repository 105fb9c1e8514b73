package wire

import (
	"encoding/binary"
	"fmt"
)

// Reader decodes fields written by Writer. Like Writer it records the first
// error and turns subsequent reads into no-ops returning zero values.
type Reader struct {
	data []byte
	off  int
	err  error
}

// NewReader creates a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.off+n > len(r.data) {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrShortBuffer, n, r.off, len(r.data)-r.off)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

// U8 reads a single byte.
func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// U16 reads a big-endian u16.
func (r *Reader) U16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U64 reads a big-endian u64.
func (r *Reader) U64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// Bool reads a presence/boolean byte. Any value other than 0 or 1 is an error.
func (r *Reader) Bool() bool {
	v := r.U8()
	if r.err != nil {
		return false
	}
	switch v {
	case 0:
		return false
	case 1:
		return true
	default:
		r.err = fmt.Errorf("wire: invalid bool byte 0x%02x at offset %d", v, r.off-1)
		return false
	}
}

// Fixed reads exactly n bytes and returns a copy.
func (r *Reader) Fixed(n int) []byte {
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// OptionalBytes reads an Option<Vec<u8>>. None is returned as nil.
func (r *Reader) OptionalBytes() []byte {
	if !r.Bool() {
		return nil
	}
	n := int(r.U16())
	if r.err != nil {
		return nil
	}
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Err returns the first error encountered.
func (r *Reader) Err() error {
	return r.err
}

// Done returns an error if decoding failed or if input remains unread.
func (r *Reader) Done() error {
	if r.err != nil {
		return r.err
	}
	if r.off != len(r.data) {
		return fmt.Errorf("wire: %d trailing bytes", len(r.data)-r.off)
	}
	return nil
}
