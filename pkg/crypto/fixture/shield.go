package fixture

import (
	"fmt"

	"github.com/tos-network/tos-signer/pkg/crypto"
)

// CTValidityProofSize is the T1 ciphertext validity proof length:
// Y_0 || Y_1 || Y_2 || z_r || z_x.
const CTValidityProofSize = 3*crypto.PointSize + 2*crypto.ScalarSize

// ShieldCrypto is a deterministic shield transfer crypto tuple.
type ShieldCrypto struct {
	Commitment     [crypto.PointSize]byte
	ReceiverHandle [crypto.PointSize]byte
	Proof          [crypto.ShieldProofSize]byte
}

// MakeShieldCrypto builds a valid (commitment, receiver handle, proof) tuple
// for the recipient derived from destSeed. The blinding factor and proof
// nonce come from the RNG seeded with Seed("shield-crypto", destSeed, amount).
func MakeShieldCrypto(destSeed byte, amount uint64) (*ShieldCrypto, error) {
	dest, err := crypto.DeriveKeyPairFromByte(destSeed)
	if err != nil {
		return nil, fmt.Errorf("derive destination key: %w", err)
	}

	rng := NewRNG(Seed("shield-crypto", destSeed, amount))
	out, _, err := crypto.NewShieldOutput(rng, dest.Public(), amount)
	if err != nil {
		return nil, err
	}

	return &ShieldCrypto{
		Commitment:     out.Commitment.Bytes(),
		ReceiverHandle: out.Handle.Bytes(),
		Proof:          out.Proof.Bytes(),
	}, nil
}

// RandomValidPoint returns a fixed, valid compressed point for fields that
// must decode but need not verify.
func RandomValidPoint() [crypto.PointSize]byte {
	rng := NewRNG(Seed("random-valid-point", 0, 0))
	p, err := crypto.RandomPoint(rng)
	if err != nil {
		panic(err) // RNG.Read never fails
	}
	return crypto.EncodePoint(p)
}

// DummyCTValidityProof returns wire-valid ciphertext validity proof bytes:
// three valid points and two canonical scalars. The proof does not verify.
func DummyCTValidityProof() [CTValidityProofSize]byte {
	rng := NewRNG(Seed("dummy-ct-validity-proof", 0, 0))

	var out [CTValidityProofSize]byte
	off := 0
	for i := 0; i < 3; i++ {
		p, err := crypto.RandomPoint(rng)
		if err != nil {
			panic(err)
		}
		enc := crypto.EncodePoint(p)
		off += copy(out[off:], enc[:])
	}
	for i := 0; i < 2; i++ {
		s, err := crypto.RandomScalar(rng)
		if err != nil {
			panic(err)
		}
		enc := crypto.EncodeScalar(s)
		off += copy(out[off:], enc[:])
	}
	return out
}
