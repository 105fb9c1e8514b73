package fixture

import (
	"github.com/gtank/ristretto255"
	"golang.org/x/crypto/sha3"

	"github.com/tos-network/tos-signer/pkg/crypto"
)

const nonceDomain = "tos-signer/deterministic-nonce/v1"

// DeterministicNonce derives the signing nonce from the secret key:
//
//	k = SHA3-512("tos-signer/deterministic-nonce/v1" || private || public || message) mod l
func DeterministicNonce(kp *crypto.KeyPair, message []byte) (*ristretto255.Scalar, error) {
	private := kp.PrivateBytes()
	public := kp.PublicBytes()

	h := sha3.New512()
	h.Write([]byte(nonceDomain))
	h.Write(private[:])
	h.Write(public[:])
	h.Write(message)
	return ristretto255.NewScalar().FromUniformBytes(h.Sum(nil)), nil
}

// SignDeterministic signs message with DeterministicNonce, so identical
// inputs always produce identical signatures.
func SignDeterministic(kp *crypto.KeyPair, message []byte) (*crypto.Signature, error) {
	return crypto.SignWithNonce(kp, message, DeterministicNonce)
}

// SignWithSeedByte derives the key pair for seedByte and signs message
// deterministically. It returns the compressed public key and signature.
func SignWithSeedByte(seedByte byte, message []byte) ([crypto.PointSize]byte, [crypto.SignatureSize]byte, error) {
	kp, err := crypto.DeriveKeyPairFromByte(seedByte)
	if err != nil {
		return [crypto.PointSize]byte{}, [crypto.SignatureSize]byte{}, err
	}
	sig, err := SignDeterministic(kp, message)
	if err != nil {
		return [crypto.PointSize]byte{}, [crypto.SignatureSize]byte{}, err
	}
	return kp.PublicBytes(), sig.Bytes(), nil
}
