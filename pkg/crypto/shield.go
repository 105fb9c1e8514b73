package crypto

import (
	"io"

	"github.com/gtank/ristretto255"
)

// ShieldProofSize is the length of an encoded proof: Y_H || Y_P || z.
const ShieldProofSize = 2*PointSize + ScalarSize

// ShieldProof proves knowledge of r such that
//
//	handle           = r * P
//	commitment - a*G = r * H
//
// for a public amount a and recipient key P, without revealing r.
//
// Transcript order (part of the wire contract):
//
//	append "dom-sep" = "shield-commitment-proof"
//	append "Y_H", append "Y_P"
//	c = challenge "c" (64 bytes, wide-reduced)
//	challenge "w" (64 bytes, discarded)
//
// The discarded "w" challenge keeps the transcript in step with the other
// proofs composed into the same transaction transcript.
type ShieldProof struct {
	yH *ristretto255.Element
	yP *ristretto255.Element
	z  *ristretto255.Scalar
}

// ProveShield builds a shield proof for the blinding factor bf and recipient,
// drawing the proof nonce k from rand (crypto/rand when nil).
//
// k must never repeat for the same r: two proofs with equal k reveal r.
// A nil recipient or blinding factor is a *DecodeError.
func ProveShield(rand io.Reader, t Transcript, recipient *PublicKey, bf *BlindingFactor) (*ShieldProof, error) {
	if recipient == nil {
		return nil, &DecodeError{What: "recipient"}
	}
	if bf == nil {
		return nil, &DecodeError{What: "blinding factor"}
	}

	k, err := RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	k = nonZeroNonce(k)

	yH := mulH(k)
	yP := ristretto255.NewElement().ScalarMult(k, recipient.point)

	c := shieldChallenge(t, EncodePoint(yH), EncodePoint(yP))

	// z = c*r + k
	z := ristretto255.NewScalar().Multiply(c, bf.r)
	z = ristretto255.NewScalar().Add(z, k)

	t.ExtractBytes(labelW, WideSize)

	return &ShieldProof{yH: yH, yP: yP, z: z}, nil
}

func shieldChallenge(t Transcript, yH, yP [PointSize]byte) *ristretto255.Scalar {
	t.AppendMessage(labelDomSep, []byte(shieldDomainSeparator))
	t.AppendMessage(labelYH, yH[:])
	t.AppendMessage(labelYP, yP[:])
	return challengeScalarFrom(t, labelC)
}

// Verify checks the proof against commitment, handle, recipient and amount:
//
//	z*H == Y_H + c*(commitment - amount*G)
//	z*P == Y_P + c*handle
//
// t must be in the same state the prover's transcript was in. Returns a
// *DecodeError for a nil input and a *VerificationFailure if either equation
// does not hold.
func (p *ShieldProof) Verify(t Transcript, commitment *Commitment, handle *DecryptionHandle, recipient *PublicKey, amount uint64) error {
	switch {
	case p == nil:
		return &DecodeError{What: "shield proof"}
	case commitment == nil:
		return &DecodeError{What: "commitment"}
	case handle == nil:
		return &DecodeError{What: "decryption handle"}
	case recipient == nil:
		return &DecodeError{What: "recipient"}
	}

	c := shieldChallenge(t, EncodePoint(p.yH), EncodePoint(p.yP))
	t.ExtractBytes(labelW, WideSize)

	// z*H == Y_H + c*(C - a*G)
	lhsH := mulH(p.z)
	rhsH := ristretto255.NewElement().ScalarMult(c, commitment.withoutAmount(amount))
	rhsH = ristretto255.NewElement().Add(p.yH, rhsH)

	// z*P == Y_P + c*D
	lhsP := ristretto255.NewElement().ScalarMult(p.z, recipient.point)
	rhsP := ristretto255.NewElement().ScalarMult(c, handle.point)
	rhsP = ristretto255.NewElement().Add(p.yP, rhsP)

	if lhsH.Equal(rhsH)&lhsP.Equal(rhsP) != 1 {
		return &VerificationFailure{What: "shield proof"}
	}
	return nil
}

// Bytes returns the 96-byte encoding Y_H || Y_P || z.
func (p *ShieldProof) Bytes() [ShieldProofSize]byte {
	var out [ShieldProofSize]byte
	yH := EncodePoint(p.yH)
	yP := EncodePoint(p.yP)
	z := EncodeScalar(p.z)
	copy(out[0:PointSize], yH[:])
	copy(out[PointSize:2*PointSize], yP[:])
	copy(out[2*PointSize:], z[:])
	return out
}

// ParseShieldProof decodes Y_H || Y_P || z, rejecting non-canonical points
// and scalars.
func ParseShieldProof(b []byte) (*ShieldProof, error) {
	if len(b) != ShieldProofSize {
		return nil, &DecodeError{What: "shield proof", Cause: errLength(ShieldProofSize, len(b))}
	}
	yH, err := DecodePoint("shield proof Y_H", b[0:PointSize])
	if err != nil {
		return nil, err
	}
	yP, err := DecodePoint("shield proof Y_P", b[PointSize:2*PointSize])
	if err != nil {
		return nil, err
	}
	z, err := DecodeScalar("shield proof z", b[2*PointSize:])
	if err != nil {
		return nil, err
	}
	return &ShieldProof{yH: yH, yP: yP, z: z}, nil
}

// ShieldOutput is the (commitment, receiver handle, proof) triple carried by
// a shield transfer.
type ShieldOutput struct {
	Commitment *Commitment
	Handle     *DecryptionHandle
	Proof      *ShieldProof
}

// NewShieldOutput draws a fresh blinding factor r and then a proof nonce k
// from rand, in that order, and builds the commitment to amount, the
// recipient's decryption handle and the shield proof over a fresh transcript.
func NewShieldOutput(rand io.Reader, recipient *PublicKey, amount uint64) (*ShieldOutput, *BlindingFactor, error) {
	if recipient == nil {
		return nil, nil, &DecodeError{What: "recipient"}
	}

	bf, err := NewBlindingFactor(rand)
	if err != nil {
		return nil, nil, err
	}

	commitment := Commit(amount, bf)
	handle := NewDecryptionHandle(recipient, bf)

	proof, err := ProveShield(rand, NewShieldTranscript(), recipient, bf)
	if err != nil {
		return nil, nil, err
	}

	return &ShieldOutput{Commitment: commitment, Handle: handle, Proof: proof}, bf, nil
}

// Verify checks the output's proof over a fresh shield transcript.
func (o *ShieldOutput) Verify(recipient *PublicKey, amount uint64) error {
	return o.Proof.Verify(NewShieldTranscript(), o.Commitment, o.Handle, recipient, amount)
}

// VerifyShieldBytes decodes a shield transfer's crypto fields and verifies
// the proof over a fresh shield transcript.
func VerifyShieldBytes(commitment, handle, recipient []byte, amount uint64, proof []byte) error {
	c, err := ParseCommitment(commitment)
	if err != nil {
		return err
	}
	d, err := ParseDecryptionHandle(handle)
	if err != nil {
		return err
	}
	p, err := ParsePublicKey(recipient)
	if err != nil {
		return err
	}
	sp, err := ParseShieldProof(proof)
	if err != nil {
		return err
	}
	return sp.Verify(NewShieldTranscript(), c, d, p, amount)
}
