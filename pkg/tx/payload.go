package tx

import (
	"fmt"
	"io"

	"github.com/tos-network/tos-signer/pkg/crypto"
	"github.com/tos-network/tos-signer/pkg/wire"
)

// Transfer is one plaintext transfer output.
type Transfer struct {
	Asset       [HashSize]byte
	Destination [PublicKeySize]byte
	Amount      uint64
	ExtraData   []byte // nil encodes None
}

// transferSize is the encoded size of a transfer without extra data payload
// bytes: asset + destination + amount + presence flag.
const transferSize = HashSize + PublicKeySize + 8 + 1

// extraDataBudget tracks the running extra data size of a payload.
type extraDataBudget struct {
	sum int
}

func (b *extraDataBudget) add(index int, extra []byte) error {
	if extra == nil {
		return nil
	}
	if len(extra) > ExtraDataLimitSize {
		return payloadErr(ErrInvalidPayload, "transfers[%d]: extra_data is %d bytes, limit %d", index, len(extra), ExtraDataLimitSize)
	}
	// presence flag + u16 length + bytes
	b.sum += 3 + len(extra)
	if b.sum > ExtraDataLimitSumSize {
		return payloadErr(ErrInvalidPayload, "transfers[%d]: extra_data sum %d exceeds %d", index, b.sum, ExtraDataLimitSumSize)
	}
	return nil
}

func checkTransferCount(n int) error {
	if n == 0 || n > MaxTransferCount {
		return payloadErr(ErrInvalidPayload, "invalid transfer count %d (want 1..%d)", n, MaxTransferCount)
	}
	return nil
}

// EncodeTransfers encodes a transfers payload:
//
//	count(u16) | (asset(32) | destination(32) | amount(u64) | extra_data(optional))*
func EncodeTransfers(transfers []Transfer) ([]byte, error) {
	if err := checkTransferCount(len(transfers)); err != nil {
		return nil, err
	}

	var budget extraDataBudget
	w := wire.NewWriter(2 + len(transfers)*transferSize)
	w.U16(uint16(len(transfers)))
	for i, t := range transfers {
		if err := budget.add(i, t.ExtraData); err != nil {
			return nil, err
		}
		w.Raw(t.Asset[:])
		w.Raw(t.Destination[:])
		w.U64(t.Amount)
		w.OptionalBytes(fmt.Sprintf("transfers[%d].extra_data", i), t.ExtraData)
	}
	return w.Bytes()
}

// DecodeTransfers parses a transfers payload, applying the same limits as
// EncodeTransfers.
func DecodeTransfers(payload []byte) ([]Transfer, error) {
	r := wire.NewReader(payload)
	n := int(r.U16())
	if r.Err() != nil {
		return nil, &PayloadError{Code: ErrInvalidFormat, Message: "transfers payload", Cause: r.Err()}
	}
	if err := checkTransferCount(n); err != nil {
		return nil, err
	}

	var budget extraDataBudget
	transfers := make([]Transfer, 0, n)
	for i := 0; i < n; i++ {
		var t Transfer
		copy(t.Asset[:], r.Fixed(HashSize))
		copy(t.Destination[:], r.Fixed(PublicKeySize))
		t.Amount = r.U64()
		t.ExtraData = r.OptionalBytes()
		if r.Err() != nil {
			break
		}
		if err := budget.add(i, t.ExtraData); err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	if err := r.Done(); err != nil {
		return nil, &PayloadError{Code: ErrInvalidFormat, Message: "transfers payload", Cause: err}
	}
	return transfers, nil
}

// EncodeBurn encodes a burn payload: asset(32) | amount(u64).
func EncodeBurn(asset [HashSize]byte, amount uint64) []byte {
	w := wire.NewWriter(HashSize + 8)
	w.Raw(asset[:])
	w.U64(amount)
	out, _ := w.Bytes() // fixed-width fields only
	return out
}

// ShieldTransfer moves a plaintext amount into a confidential balance. The
// commitment, receiver handle and proof come from crypto.NewShieldOutput.
type ShieldTransfer struct {
	Asset          [HashSize]byte
	Destination    [PublicKeySize]byte
	Amount         uint64
	ExtraData      []byte
	Commitment     [crypto.PointSize]byte
	ReceiverHandle [crypto.PointSize]byte
	Proof          [crypto.ShieldProofSize]byte
}

const shieldTransferSize = transferSize + 2*crypto.PointSize + crypto.ShieldProofSize

// BuildShieldTransfer draws a fresh blinding factor and proof nonce from rand
// (crypto/rand when nil) and returns the shield transfer for destination
// together with the blinding factor, which the sender needs to open the
// commitment later.
func BuildShieldTransfer(rand io.Reader, asset [HashSize]byte, destination *crypto.PublicKey, amount uint64, extra []byte) (*ShieldTransfer, *crypto.BlindingFactor, error) {
	out, bf, err := crypto.NewShieldOutput(rand, destination, amount)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build shield output: %w", err)
	}
	return &ShieldTransfer{
		Asset:          asset,
		Destination:    destination.Bytes(),
		Amount:         amount,
		ExtraData:      extra,
		Commitment:     out.Commitment.Bytes(),
		ReceiverHandle: out.Handle.Bytes(),
		Proof:          out.Proof.Bytes(),
	}, bf, nil
}

// Verify checks the transfer's shield proof against its destination and amount.
func (st *ShieldTransfer) Verify() error {
	return crypto.VerifyShieldBytes(st.Commitment[:], st.ReceiverHandle[:], st.Destination[:], st.Amount, st.Proof[:])
}

// EncodeShieldTransfers encodes a shield transfers payload:
//
//	count(u16) | (asset | destination | amount | extra_data | commitment(32) |
//	              receiver_handle(32) | proof(96))*
func EncodeShieldTransfers(transfers []ShieldTransfer) ([]byte, error) {
	if err := checkTransferCount(len(transfers)); err != nil {
		return nil, err
	}

	var budget extraDataBudget
	w := wire.NewWriter(2 + len(transfers)*shieldTransferSize)
	w.U16(uint16(len(transfers)))
	for i, t := range transfers {
		if err := budget.add(i, t.ExtraData); err != nil {
			return nil, err
		}
		w.Raw(t.Asset[:])
		w.Raw(t.Destination[:])
		w.U64(t.Amount)
		w.OptionalBytes(fmt.Sprintf("transfers[%d].extra_data", i), t.ExtraData)
		w.Raw(t.Commitment[:])
		w.Raw(t.ReceiverHandle[:])
		w.Raw(t.Proof[:])
	}
	return w.Bytes()
}

// DecodeShieldTransfers parses a shield transfers payload. Proofs are not
// verified; call Verify on each transfer.
func DecodeShieldTransfers(payload []byte) ([]ShieldTransfer, error) {
	r := wire.NewReader(payload)
	n := int(r.U16())
	if r.Err() != nil {
		return nil, &PayloadError{Code: ErrInvalidFormat, Message: "shield transfers payload", Cause: r.Err()}
	}
	if err := checkTransferCount(n); err != nil {
		return nil, err
	}

	var budget extraDataBudget
	transfers := make([]ShieldTransfer, 0, n)
	for i := 0; i < n; i++ {
		var t ShieldTransfer
		copy(t.Asset[:], r.Fixed(HashSize))
		copy(t.Destination[:], r.Fixed(PublicKeySize))
		t.Amount = r.U64()
		t.ExtraData = r.OptionalBytes()
		copy(t.Commitment[:], r.Fixed(crypto.PointSize))
		copy(t.ReceiverHandle[:], r.Fixed(crypto.PointSize))
		copy(t.Proof[:], r.Fixed(crypto.ShieldProofSize))
		if r.Err() != nil {
			break
		}
		if err := budget.add(i, t.ExtraData); err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	if err := r.Done(); err != nil {
		return nil, &PayloadError{Code: ErrInvalidFormat, Message: "shield transfers payload", Cause: err}
	}
	return transfers, nil
}
