package tx

import (
	"fmt"

	"github.com/tos-network/tos-signer/pkg/crypto"
)

// Signer signs unsigned transactions with the source account's key.
//
// The Signer role:
//   - Fills in Source from the key pair when it is unset
//   - Refuses to sign a transaction whose Source belongs to another key
//   - Signs the frame returned by SigningBytes
//
// A Signer holds no per-transaction state and may be shared.
type Signer struct {
	kp    *crypto.KeyPair
	nonce crypto.NonceFunc
}

// NewSigner creates a Signer for kp. A nil nonce draws nonces from
// crypto/rand.
func NewSigner(kp *crypto.KeyPair, nonce crypto.NonceFunc) *Signer {
	if nonce == nil {
		nonce = crypto.RandomNonce(nil)
	}
	return &Signer{kp: kp, nonce: nonce}
}

// PublicKey returns the signer's compressed public key.
func (s *Signer) PublicKey() [PublicKeySize]byte {
	return s.kp.PublicBytes()
}

// Sign signs tx and returns the 64-byte signature. tx.Source is filled in
// only when signing succeeds.
//
// Returns an error if:
//   - tx.Source is set to a different public key
//   - SigningBytes fails
func (s *Signer) Sign(tx *UnsignedTransaction) ([crypto.SignatureSize]byte, error) {
	var out [crypto.SignatureSize]byte

	pub := s.kp.PublicBytes()
	var zero [PublicKeySize]byte
	if tx.Source != zero && tx.Source != pub {
		return out, payloadErr(ErrInvalidSignature, "source %x does not match signer %x", tx.Source, pub)
	}

	framed := *tx
	framed.Source = pub
	frame, err := framed.SigningBytes()
	if err != nil {
		return out, fmt.Errorf("failed to build signing frame: %w", err)
	}

	sig, err := crypto.SignWithNonce(s.kp, frame, s.nonce)
	if err != nil {
		return out, fmt.Errorf("failed to sign: %w", err)
	}
	tx.Source = pub
	return sig.Bytes(), nil
}

// VerifySignature checks signature over tx's signing frame under tx.Source.
func VerifySignature(tx *UnsignedTransaction, signature []byte) error {
	frame, err := tx.SigningBytes()
	if err != nil {
		return err
	}
	if err := crypto.VerifyBytes(tx.Source[:], frame, signature); err != nil {
		return &PayloadError{Code: ErrInvalidSignature, Message: "source signature", Cause: err}
	}
	return nil
}
