package crypto

import (
	"io"

	"github.com/gtank/ristretto255"
)

// SignatureSize is the length of an encoded signature: s || e.
const SignatureSize = 2 * ScalarSize

// Signature is a Schnorr signature over ristretto255 with base point H.
//
// Verification relies on the inverted-key relation public = private⁻¹ * H:
// with s = private⁻¹*e + k, s*H - e*public = k*H.
type Signature struct {
	s *ristretto255.Scalar
	e *ristretto255.Scalar
}

// NonceFunc supplies the per-signature nonce k.
type NonceFunc func(kp *KeyPair, message []byte) (*ristretto255.Scalar, error)

// RandomNonce returns a NonceFunc drawing k uniformly from r. A nil reader
// means crypto/rand.
func RandomNonce(r io.Reader) NonceFunc {
	return func(*KeyPair, []byte) (*ristretto255.Scalar, error) {
		return RandomScalar(r)
	}
}

// Sign signs message with a nonce drawn from rand (crypto/rand when nil).
func Sign(rand io.Reader, kp *KeyPair, message []byte) (*Signature, error) {
	return SignWithNonce(kp, message, RandomNonce(rand))
}

// SignWithNonce signs message with the nonce produced by nonce:
//
//	R = k*H
//	e = SHA3-512(public || message || R) mod l
//	s = private⁻¹*e + k
//
// A zero nonce is replaced by one.
func SignWithNonce(kp *KeyPair, message []byte, nonce NonceFunc) (*Signature, error) {
	k, err := nonce(kp, message)
	if err != nil {
		return nil, err
	}
	k = nonZeroNonce(k)

	r := mulH(k)
	public := kp.PublicBytes()
	e := challengeScalar(public[:], message, r)

	s := ristretto255.NewScalar().Multiply(kp.privateInv, e)
	s = ristretto255.NewScalar().Add(s, k)

	return &Signature{s: s, e: e}, nil
}

func challengeScalar(public []byte, message []byte, r *ristretto255.Element) *ristretto255.Scalar {
	rc := EncodePoint(r)
	return HashToScalar(public, message, rc[:])
}

// Verify reports whether sig is a valid signature of message under pub.
func Verify(pub *PublicKey, message []byte, sig *Signature) bool {
	if pub == nil || sig == nil {
		return false
	}

	// R' = s*H - e*P
	sH := mulH(sig.s)
	eP := ristretto255.NewElement().ScalarMult(sig.e, pub.point)
	r := ristretto255.NewElement().Subtract(sH, eP)

	e := challengeScalar(pub.compressed[:], message, r)
	return e.Equal(sig.e) == 1
}

// VerifyBytes decodes the public key and signature and verifies message.
//
// Returns a *DecodeError for malformed input and a *VerificationFailure when
// the signature does not match.
func VerifyBytes(publicKey, message, signature []byte) error {
	pub, err := ParsePublicKey(publicKey)
	if err != nil {
		return err
	}
	sig, err := ParseSignature(signature)
	if err != nil {
		return err
	}
	if !Verify(pub, message, sig) {
		return &VerificationFailure{What: "signature"}
	}
	return nil
}

// Bytes returns the 64-byte encoding s || e.
func (sig *Signature) Bytes() [SignatureSize]byte {
	var out [SignatureSize]byte
	s := EncodeScalar(sig.s)
	e := EncodeScalar(sig.e)
	copy(out[:ScalarSize], s[:])
	copy(out[ScalarSize:], e[:])
	return out
}

// ParseSignature decodes s || e, rejecting non-canonical scalars.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) != SignatureSize {
		return nil, &DecodeError{What: "signature", Cause: errLength(SignatureSize, len(b))}
	}
	s, err := DecodeScalar("signature s", b[:ScalarSize])
	if err != nil {
		return nil, err
	}
	e, err := DecodeScalar("signature e", b[ScalarSize:])
	if err != nil {
		return nil, err
	}
	return &Signature{s: s, e: e}, nil
}
