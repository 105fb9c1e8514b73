// Package wire implements the big-endian binary framing used by TOS
// transaction payloads and signing frames.
//
// Encoding rules:
//   - Integers are unsigned and big-endian (u8, u16, u64)
//   - bool is a single byte, 0x00 or 0x01
//   - Optional byte strings are a bool presence flag followed, when present,
//     by a u16 length and the bytes
//   - Fixed-width fields (hashes, public keys, points, proofs) are written raw
//     and must have exactly their declared width
//
// A Writer is append-only. The first width violation is recorded and
// returned from Bytes; later writes are ignored so a caller can check the
// error once at the end of a frame.
package wire

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer builds a byte frame field by field.
type Writer struct {
	buf bytes.Buffer
	err error
}

// NewWriter creates a Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	w := &Writer{}
	w.buf.Grow(capacity)
	return w
}

// U8 appends a single byte.
func (w *Writer) U8(v uint8) {
	if w.err != nil {
		return
	}
	w.buf.WriteByte(v)
}

// U16 appends a big-endian u16.
func (w *Writer) U16(v uint16) {
	if w.err != nil {
		return
	}
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// U64 appends a big-endian u64.
func (w *Writer) U64(v uint64) {
	if w.err != nil {
		return
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// Bool appends 0x01 for true and 0x00 for false.
func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
		return
	}
	w.U8(0)
}

// Raw appends b without any length prefix.
func (w *Writer) Raw(b []byte) {
	if w.err != nil {
		return
	}
	w.buf.Write(b)
}

// Fixed appends b after checking that it is exactly size bytes long.
// A mismatch records a *LengthError naming field.
func (w *Writer) Fixed(field string, b []byte, size int) {
	if w.err != nil {
		return
	}
	if len(b) != size {
		w.err = &LengthError{Field: field, Expected: size, Got: len(b)}
		return
	}
	w.buf.Write(b)
}

// OptionalBytes encodes Option<Vec<u8>>: a presence flag, then if present a
// u16 length followed by the bytes. A nil slice encodes None; an empty
// non-nil slice encodes Some with zero length.
func (w *Writer) OptionalBytes(field string, b []byte) {
	if w.err != nil {
		return
	}
	if b == nil {
		w.Bool(false)
		return
	}
	if len(b) > math.MaxUint16 {
		w.err = &LengthError{Field: field, Expected: math.MaxUint16, Got: len(b)}
		return
	}
	w.Bool(true)
	w.U16(uint16(len(b)))
	w.buf.Write(b)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Err returns the first error recorded by the Writer, if any.
func (w *Writer) Err() error {
	return w.err
}

// Bytes returns the frame, or the first recorded error.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	return out, nil
}

// BytesExact returns the frame after checking that its total length equals
// the sum of the declared field widths given by expected.
func (w *Writer) BytesExact(expected int) ([]byte, error) {
	out, err := w.Bytes()
	if err != nil {
		return nil, err
	}
	if len(out) != expected {
		return nil, &LengthError{Field: "frame", Expected: expected, Got: len(out)}
	}
	return out, nil
}
