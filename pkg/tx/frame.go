package tx

import (
	"github.com/tos-network/tos-signer/pkg/wire"
)

// UnsignedTransaction holds every field covered by the source signature.
// Payload is the already-encoded type payload (see EncodeTransfers,
// EncodeBurn, EncodeShieldTransfers).
type UnsignedTransaction struct {
	Version             TxVersion
	ChainID             uint8
	Source              [PublicKeySize]byte
	Type                TxType
	Payload             []byte
	Fee                 uint64
	FeeType             FeeType
	Nonce               uint64
	ReferenceHash       [HashSize]byte
	ReferenceTopoHeight uint64
}

// SigningBytes returns the exact byte sequence the source key signs.
//
// The frame length must equal FrameOverhead + len(Payload); a mismatch is
// returned as a *wire.LengthError.
func (tx *UnsignedTransaction) SigningBytes() ([]byte, error) {
	if tx.Version != TxVersionT1 {
		return nil, payloadErr(ErrInvalidVersion, "unsupported tx version %d", tx.Version)
	}
	if !tx.Type.Valid() {
		return nil, payloadErr(ErrInvalidType, "unsupported tx type %d", uint8(tx.Type))
	}
	if !tx.FeeType.Valid() {
		return nil, payloadErr(ErrInvalidFormat, "unsupported fee type %d", uint8(tx.FeeType))
	}

	w := wire.NewWriter(FrameOverhead + len(tx.Payload))
	w.U8(uint8(tx.Version))
	w.U8(tx.ChainID)
	w.Fixed("source", tx.Source[:], PublicKeySize)
	w.U8(uint8(tx.Type))
	w.Raw(tx.Payload)
	w.U64(tx.Fee)
	w.U8(uint8(tx.FeeType))
	w.U64(tx.Nonce)
	w.Fixed("reference_hash", tx.ReferenceHash[:], HashSize)
	w.U64(tx.ReferenceTopoHeight)

	return w.BytesExact(FrameOverhead + len(tx.Payload))
}

// ParseSigningBytes splits a signing frame back into its fields. Everything
// between the type id and the trailing fixed-width fields is the payload.
func ParseSigningBytes(frame []byte) (*UnsignedTransaction, error) {
	if len(frame) < FrameOverhead {
		return nil, &PayloadError{
			Code:    ErrInvalidFormat,
			Message: "signing frame",
			Cause:   &wire.LengthError{Field: "frame", Expected: FrameOverhead, Got: len(frame)},
		}
	}

	tx := &UnsignedTransaction{}
	r := wire.NewReader(frame)
	tx.Version = TxVersion(r.U8())
	tx.ChainID = r.U8()
	copy(tx.Source[:], r.Fixed(PublicKeySize))
	tx.Type = TxType(r.U8())
	tx.Payload = r.Fixed(len(frame) - FrameOverhead)
	tx.Fee = r.U64()
	tx.FeeType = FeeType(r.U8())
	tx.Nonce = r.U64()
	copy(tx.ReferenceHash[:], r.Fixed(HashSize))
	tx.ReferenceTopoHeight = r.U64()
	if err := r.Done(); err != nil {
		return nil, &PayloadError{Code: ErrInvalidFormat, Message: "signing frame", Cause: err}
	}

	if tx.Version != TxVersionT1 {
		return nil, payloadErr(ErrInvalidVersion, "unsupported tx version %d", tx.Version)
	}
	if !tx.Type.Valid() {
		return nil, payloadErr(ErrInvalidType, "unsupported tx type %d", uint8(tx.Type))
	}
	return tx, nil
}
