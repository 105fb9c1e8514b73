package crypto

import (
	"io"

	"github.com/gtank/ristretto255"
)

// BlindingFactor is the random scalar r shared by a commitment and its
// decryption handles.
//
// r must be drawn fresh for every shielding operation. Reusing r for two
// amounts reveals their difference (C1 - C2 = (a1-a2)*G), and reusing it for
// two recipients links their handles. Nothing in this package detects reuse.
type BlindingFactor struct {
	r *ristretto255.Scalar
}

// NewBlindingFactor draws a uniformly random blinding factor from rand
// (crypto/rand when nil).
func NewBlindingFactor(rand io.Reader) (*BlindingFactor, error) {
	r, err := RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	return &BlindingFactor{r: r}, nil
}

// BlindingFactorFromBytes decodes a canonical blinding factor.
func BlindingFactorFromBytes(b []byte) (*BlindingFactor, error) {
	r, err := DecodeScalar("blinding factor", b)
	if err != nil {
		return nil, err
	}
	return &BlindingFactor{r: r}, nil
}

// Bytes returns the canonical encoding of r.
func (bf *BlindingFactor) Bytes() [ScalarSize]byte {
	return EncodeScalar(bf.r)
}

// Add returns the blinding factor of the sum of two commitments.
func (bf *BlindingFactor) Add(other *BlindingFactor) *BlindingFactor {
	return &BlindingFactor{r: ristretto255.NewScalar().Add(bf.r, other.r)}
}

// Sub returns the blinding factor of the difference of two commitments.
func (bf *BlindingFactor) Sub(other *BlindingFactor) *BlindingFactor {
	return &BlindingFactor{r: ristretto255.NewScalar().Subtract(bf.r, other.r)}
}

// Commitment is a Pedersen commitment C = amount*G + r*H.
type Commitment struct {
	point *ristretto255.Element
}

// Commit creates the commitment amount*G + r*H.
func Commit(amount uint64, bf *BlindingFactor) *Commitment {
	aG := mulG(ScalarFromUint64(amount))
	rH := mulH(bf.r)
	return &Commitment{point: ristretto255.NewElement().Add(aG, rH)}
}

// ParseCommitment decodes a compressed commitment.
func ParseCommitment(b []byte) (*Commitment, error) {
	p, err := DecodePoint("commitment", b)
	if err != nil {
		return nil, err
	}
	return &Commitment{point: p}, nil
}

// Bytes returns the compressed commitment.
func (c *Commitment) Bytes() [PointSize]byte {
	return EncodePoint(c.point)
}

// Add returns c + other, a commitment to the sum of the amounts.
func (c *Commitment) Add(other *Commitment) *Commitment {
	return &Commitment{point: ristretto255.NewElement().Add(c.point, other.point)}
}

// Sub returns c - other, a commitment to the difference of the amounts.
func (c *Commitment) Sub(other *Commitment) *Commitment {
	return &Commitment{point: ristretto255.NewElement().Subtract(c.point, other.point)}
}

// Equal reports whether two commitments are the same point.
func (c *Commitment) Equal(other *Commitment) bool {
	return other != nil && c.point.Equal(other.point) == 1
}

// Opens reports whether c commits to amount under bf.
func (c *Commitment) Opens(amount uint64, bf *BlindingFactor) bool {
	return c.Equal(Commit(amount, bf))
}

// withoutAmount returns c - amount*G, which equals r*H for an honest commitment.
func (c *Commitment) withoutAmount(amount uint64) *ristretto255.Element {
	return ristretto255.NewElement().Subtract(c.point, mulG(ScalarFromUint64(amount)))
}

// DecryptionHandle is D = r * P for a recipient public key P. The recipient
// uses it with its private key to recover the committed amount.
type DecryptionHandle struct {
	point *ristretto255.Element
}

// NewDecryptionHandle creates r * recipient.
func NewDecryptionHandle(recipient *PublicKey, bf *BlindingFactor) *DecryptionHandle {
	return &DecryptionHandle{point: ristretto255.NewElement().ScalarMult(bf.r, recipient.point)}
}

// ParseDecryptionHandle decodes a compressed decryption handle.
func ParseDecryptionHandle(b []byte) (*DecryptionHandle, error) {
	p, err := DecodePoint("decryption handle", b)
	if err != nil {
		return nil, err
	}
	return &DecryptionHandle{point: p}, nil
}

// Bytes returns the compressed handle.
func (d *DecryptionHandle) Bytes() [PointSize]byte {
	return EncodePoint(d.point)
}
