package crypto

import (
	"github.com/gtank/merlin"
	"github.com/gtank/ristretto255"
)

// Transcript is the Fiat-Shamir state shared by a prover and a verifier.
// *merlin.Transcript satisfies it.
type Transcript interface {
	AppendMessage(label, message []byte)
	ExtractBytes(label []byte, outLen int) []byte
}

const (
	shieldTranscriptLabel = "shield_commitment_proof"
	shieldDomainSeparator = "shield-commitment-proof"
)

var (
	labelDomSep = []byte("dom-sep")
	labelYH     = []byte("Y_H")
	labelYP     = []byte("Y_P")
	labelC      = []byte("c")
	labelW      = []byte("w")
)

// NewShieldTranscript returns a fresh Merlin transcript for a stand-alone
// shield commitment proof.
func NewShieldTranscript() Transcript {
	return merlin.NewTranscript(shieldTranscriptLabel)
}

// challengeScalarFrom extracts 64 challenge bytes under label and reduces
// them to a scalar.
func challengeScalarFrom(t Transcript, label []byte) *ristretto255.Scalar {
	return ristretto255.NewScalar().FromUniformBytes(t.ExtractBytes(label, WideSize))
}
