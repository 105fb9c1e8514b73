package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/gtank/ristretto255"
	"golang.org/x/crypto/sha3"
)

const (
	// ScalarSize is the length of a canonical little-endian scalar encoding.
	ScalarSize = 32
	// PointSize is the length of a compressed ristretto255 point.
	PointSize = 32
	// WideSize is the number of uniform bytes reduced into one scalar.
	WideSize = 64
)

var (
	generatorsOnce sync.Once
	valueGen       *ristretto255.Element // G
	blindingGen    *ristretto255.Element // H
)

func initGenerators() {
	generatorsOnce.Do(func() {
		valueGen = ristretto255.NewElement().Base()

		// H = hash_from_bytes::<Sha3_512>(compress(G))
		digest := sha3.Sum512(valueGen.Encode(nil))
		blindingGen = ristretto255.NewElement().FromUniformBytes(digest[:])
	})
}

// G returns a copy of the value generator (the ristretto255 base point).
func G() *ristretto255.Element {
	initGenerators()
	return copyElement(valueGen)
}

// H returns a copy of the blinding generator, also the base point for key
// derivation and signatures.
func H() *ristretto255.Element {
	initGenerators()
	return copyElement(blindingGen)
}

func copyElement(p *ristretto255.Element) *ristretto255.Element {
	return ristretto255.NewElement().Add(p, ristretto255.NewElement())
}

// mulG returns s*G.
func mulG(s *ristretto255.Scalar) *ristretto255.Element {
	return ristretto255.NewElement().ScalarBaseMult(s)
}

// mulH returns s*H.
func mulH(s *ristretto255.Scalar) *ristretto255.Element {
	initGenerators()
	return ristretto255.NewElement().ScalarMult(s, blindingGen)
}

// ReduceScalar interprets b as a little-endian integer and reduces it modulo
// the group order.
func ReduceScalar(b [ScalarSize]byte) *ristretto255.Scalar {
	var wide [WideSize]byte
	copy(wide[:], b[:])
	return ristretto255.NewScalar().FromUniformBytes(wide[:])
}

// ScalarFromUint64 returns v as a scalar.
func ScalarFromUint64(v uint64) *ristretto255.Scalar {
	var b [ScalarSize]byte
	binary.LittleEndian.PutUint64(b[:8], v)
	return ReduceScalar(b)
}

// HashToScalar hashes the concatenation of parts with SHA3-512 and reduces
// the 64-byte digest modulo the group order.
func HashToScalar(parts ...[]byte) *ristretto255.Scalar {
	h := sha3.New512()
	for _, p := range parts {
		h.Write(p)
	}
	return ristretto255.NewScalar().FromUniformBytes(h.Sum(nil))
}

// RandomScalar reads 64 bytes from r and reduces them to a scalar. A nil
// reader means crypto/rand.
func RandomScalar(r io.Reader) (*ristretto255.Scalar, error) {
	if r == nil {
		r = rand.Reader
	}
	var buf [WideSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("failed to read randomness: %w", err)
	}
	return ristretto255.NewScalar().FromUniformBytes(buf[:]), nil
}

// RandomPoint reads 64 bytes from r and maps them to a group element.
func RandomPoint(r io.Reader) (*ristretto255.Element, error) {
	if r == nil {
		r = rand.Reader
	}
	var buf [WideSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("failed to read randomness: %w", err)
	}
	return ristretto255.NewElement().FromUniformBytes(buf[:]), nil
}

// DecodeScalar decodes a canonical 32-byte little-endian scalar.
func DecodeScalar(what string, b []byte) (*ristretto255.Scalar, error) {
	if len(b) != ScalarSize {
		return nil, &DecodeError{What: what, Cause: errLength(ScalarSize, len(b))}
	}
	s := ristretto255.NewScalar()
	if err := s.Decode(b); err != nil {
		return nil, &DecodeError{What: what, Cause: err}
	}
	return s, nil
}

// DecodePoint decodes a canonical compressed ristretto255 point.
func DecodePoint(what string, b []byte) (*ristretto255.Element, error) {
	if len(b) != PointSize {
		return nil, &DecodeError{What: what, Cause: errLength(PointSize, len(b))}
	}
	p := ristretto255.NewElement()
	if err := p.Decode(b); err != nil {
		return nil, &DecodeError{What: what, Cause: err}
	}
	return p, nil
}

// EncodePoint returns the compressed encoding of p.
func EncodePoint(p *ristretto255.Element) [PointSize]byte {
	var out [PointSize]byte
	copy(out[:], p.Encode(nil))
	return out
}

// EncodeScalar returns the canonical encoding of s.
func EncodeScalar(s *ristretto255.Scalar) [ScalarSize]byte {
	var out [ScalarSize]byte
	copy(out[:], s.Encode(nil))
	return out
}

func isZeroScalar(s *ristretto255.Scalar) bool {
	return s.Equal(ristretto255.NewScalar()) == 1
}

func oneScalar() *ristretto255.Scalar {
	return ScalarFromUint64(1)
}

// nonZeroNonce maps a zero nonce to one. Two unrelated operations whose
// nonces both hash to zero share k = 1.
func nonZeroNonce(k *ristretto255.Scalar) *ristretto255.Scalar {
	if isZeroScalar(k) {
		return oneScalar()
	}
	return k
}
