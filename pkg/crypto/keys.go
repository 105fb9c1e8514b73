package crypto

import "github.com/gtank/ristretto255"

// KeyPair holds a private scalar and its public point public = private⁻¹ * H.
//
// A KeyPair is immutable once derived and safe to share between goroutines.
type KeyPair struct {
	private    *ristretto255.Scalar
	privateInv *ristretto255.Scalar
	public     *PublicKey
}

// PublicKey is a ristretto255 point together with its compressed encoding.
type PublicKey struct {
	point      *ristretto255.Element
	compressed [PointSize]byte
}

// DeriveKeyPair reduces seed modulo the group order to obtain the private key
// and derives public = private⁻¹ * H.
//
// Returns a *ZeroScalarError if the seed reduces to zero.
func DeriveKeyPair(seed [ScalarSize]byte) (*KeyPair, error) {
	private := ReduceScalar(seed)
	if isZeroScalar(private) {
		return nil, &ZeroScalarError{}
	}

	inv := ristretto255.NewScalar().Invert(private)
	return &KeyPair{
		private:    private,
		privateInv: inv,
		public:     newPublicKey(mulH(inv)),
	}, nil
}

// DeriveKeyPairFromByte derives a key pair from a single seed byte placed in
// the low byte of an otherwise zero 32-byte seed. Seed byte 0 yields a
// *ZeroScalarError.
func DeriveKeyPairFromByte(b byte) (*KeyPair, error) {
	var seed [ScalarSize]byte
	seed[0] = b
	return DeriveKeyPair(seed)
}

// KeyPairFromPrivateBytes derives a key pair from raw 32-byte private key
// material. The bytes are reduced, not required to be canonical.
func KeyPairFromPrivateBytes(privateKey []byte) (*KeyPair, error) {
	if len(privateKey) != ScalarSize {
		return nil, &DecodeError{What: "private key", Cause: errLength(ScalarSize, len(privateKey))}
	}
	var seed [ScalarSize]byte
	copy(seed[:], privateKey)
	return DeriveKeyPair(seed)
}

// Public returns the public key.
func (kp *KeyPair) Public() *PublicKey {
	return kp.public
}

// PublicBytes returns the compressed public key.
func (kp *KeyPair) PublicBytes() [PointSize]byte {
	return kp.public.compressed
}

// PrivateBytes returns the canonical encoding of the private scalar.
func (kp *KeyPair) PrivateBytes() [ScalarSize]byte {
	return EncodeScalar(kp.private)
}

func newPublicKey(p *ristretto255.Element) *PublicKey {
	return &PublicKey{point: p, compressed: EncodePoint(p)}
}

// ParsePublicKey decodes a compressed public key.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	p, err := DecodePoint("public key", b)
	if err != nil {
		return nil, err
	}
	return newPublicKey(p), nil
}

// Bytes returns the compressed public key.
func (pk *PublicKey) Bytes() [PointSize]byte {
	return pk.compressed
}

// Point returns a copy of the public key's group element.
func (pk *PublicKey) Point() *ristretto255.Element {
	return copyElement(pk.point)
}

// Equal reports whether two public keys encode the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && pk.point.Equal(other.point) == 1
}
