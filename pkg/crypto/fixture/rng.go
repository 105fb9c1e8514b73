package fixture

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"
)

const seedDomain = "tos-signer/chacha-seed/v1"

// Seed derives a 32-byte ChaCha20 key from a label and two small integers:
//
//	SHA3-512("tos-signer/chacha-seed/v1" || label || a || b_be64)[:32]
func Seed(label string, a byte, b uint64) [32]byte {
	h := sha3.New512()
	h.Write([]byte(seedDomain))
	h.Write([]byte(label))
	h.Write([]byte{a})
	var be [8]byte
	binary.BigEndian.PutUint64(be[:], b)
	h.Write(be[:])

	var seed [32]byte
	copy(seed[:], h.Sum(nil))
	return seed
}

// RNG is a deterministic byte stream: the ChaCha20 keystream for the seed
// with an all-zero nonce, starting at block 0.
type RNG struct {
	cipher *chacha20.Cipher
}

// NewRNG creates a stream keyed by seed.
func NewRNG(seed [32]byte) *RNG {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	return &RNG{cipher: c}
}

// Read fills p with the next len(p) keystream bytes. It never fails.
func (r *RNG) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

var _ io.Reader = (*RNG)(nil)
