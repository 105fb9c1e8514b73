// Package api is the high-level entry point for applications using the TOS
// signer. It wraps key derivation, signing, payload encoding and shield
// crypto behind a Service that carries configuration and logging:
//
//  1. PublicKey / PublicKeyFromPrivate / Address - Key derivation and encoding
//  2. SignData / SignWithKey - Schnorr signatures over raw bytes
//  3. NewTransaction / BuildSigningBytes - Transaction signing frames
//  4. EncodeTransferPayload / EncodeBurnPayload - Payload encoders
//  5. SignTransfer - Build and sign a transfers transaction in one step
//  6. ShieldTransfer / MakeShieldCrypto - Shield transfer crypto
//  7. Verify / VerifyShieldTransfer - Signature and proof checks
//
// SignData, SignWithKey and SignTransfer always draw nonces from the
// configured random source. Deterministic signing is only reachable through
// the separately named SignDataFixture, SignTransferFixture and
// MakeShieldCrypto, which fail with ErrFixturesDisabled unless the Service
// was created with WithFixtures.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tos-network/tos-signer/internal/config"
	"github.com/tos-network/tos-signer/internal/logging"
	"github.com/tos-network/tos-signer/pkg/address"
	"github.com/tos-network/tos-signer/pkg/crypto"
	"github.com/tos-network/tos-signer/pkg/crypto/fixture"
	"github.com/tos-network/tos-signer/pkg/tx"
)

// ErrFixturesDisabled is returned by fixture-only operations on a Service
// created without WithFixtures.
var ErrFixturesDisabled = errors.New("api: fixture mode is not enabled")

// Service is safe for concurrent use if its random source is.
type Service struct {
	cfg      *config.Config
	log      logging.Logger
	rand     io.Reader
	fixtures bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards output.
func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithRand sets the randomness source for nonces and blinding factors.
// The default is crypto/rand.
func WithRand(r io.Reader) Option {
	return func(s *Service) { s.rand = r }
}

// WithFixtures enables SignDataFixture, SignTransferFixture and
// MakeShieldCrypto. The production signing methods are unaffected.
func WithFixtures() Option {
	return func(s *Service) { s.fixtures = true }
}

// New creates a Service. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Service{cfg: cfg, log: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("network", cfg.Network, "fixtures", s.fixtures)
	return s, nil
}

// Config returns the service configuration.
func (s *Service) Config() *config.Config {
	return s.cfg
}

// ============================================================================
// API Function 1: Keys and addresses
// ============================================================================

// PublicKey derives the public key for a single seed byte.
func (s *Service) PublicKey(ctx context.Context, seedByte byte) ([crypto.PointSize]byte, error) {
	kp, err := crypto.DeriveKeyPairFromByte(seedByte)
	if err != nil {
		return [crypto.PointSize]byte{}, err
	}
	pub := kp.PublicBytes()
	s.log.Debug(ctx, "derived public key", logging.Redacted("seed"), logging.Hex("public_key", pub[:]))
	return pub, nil
}

// PublicKeyFromPrivate derives the public key for 32 bytes of private key
// material.
func (s *Service) PublicKeyFromPrivate(ctx context.Context, privateKey []byte) ([crypto.PointSize]byte, error) {
	kp, err := crypto.KeyPairFromPrivateBytes(privateKey)
	if err != nil {
		return [crypto.PointSize]byte{}, err
	}
	pub := kp.PublicBytes()
	s.log.Debug(ctx, "derived public key", logging.Redacted("private_key"), logging.Hex("public_key", pub[:]))
	return pub, nil
}

// Address encodes a public key for the configured network.
func (s *Service) Address(ctx context.Context, publicKey [crypto.PointSize]byte) (string, error) {
	if _, err := crypto.ParsePublicKey(publicKey[:]); err != nil {
		return "", err
	}
	return address.Encode(publicKey, s.cfg.Mainnet())
}

// ============================================================================
// API Function 2: Signing raw data
// ============================================================================

// SignData signs data with the key derived from seedByte.
func (s *Service) SignData(ctx context.Context, data []byte, seedByte byte) ([crypto.SignatureSize]byte, error) {
	kp, err := crypto.DeriveKeyPairFromByte(seedByte)
	if err != nil {
		return [crypto.SignatureSize]byte{}, err
	}
	return s.sign(ctx, kp, data, crypto.RandomNonce(s.rand))
}

// SignDataFixture signs data with the key derived from seedByte using the
// deterministic fixture nonce. Identical inputs give identical signatures.
func (s *Service) SignDataFixture(ctx context.Context, data []byte, seedByte byte) ([crypto.SignatureSize]byte, error) {
	if !s.fixtures {
		return [crypto.SignatureSize]byte{}, ErrFixturesDisabled
	}
	kp, err := crypto.DeriveKeyPairFromByte(seedByte)
	if err != nil {
		return [crypto.SignatureSize]byte{}, err
	}
	return s.sign(ctx, kp, data, fixture.DeterministicNonce)
}

// SignWithKey signs data with 32 bytes of private key material.
func (s *Service) SignWithKey(ctx context.Context, data []byte, privateKey []byte) ([crypto.SignatureSize]byte, error) {
	kp, err := crypto.KeyPairFromPrivateBytes(privateKey)
	if err != nil {
		return [crypto.SignatureSize]byte{}, err
	}
	return s.sign(ctx, kp, data, crypto.RandomNonce(s.rand))
}

func (s *Service) sign(ctx context.Context, kp *crypto.KeyPair, data []byte, nonce crypto.NonceFunc) ([crypto.SignatureSize]byte, error) {
	sig, err := crypto.SignWithNonce(kp, data, nonce)
	if err != nil {
		s.log.Error(ctx, "signing failed", "error", err)
		return [crypto.SignatureSize]byte{}, fmt.Errorf("failed to sign: %w", err)
	}
	pub := kp.PublicBytes()
	s.log.Info(ctx, "signed data", logging.Hex("public_key", pub[:]), "len", len(data))
	return sig.Bytes(), nil
}

// ============================================================================
// API Function 3: Signing frames
// ============================================================================

// NewTransaction returns a T1 unsigned transaction on the configured chain.
func (s *Service) NewTransaction(source [tx.PublicKeySize]byte, txType tx.TxType, payload []byte) *tx.UnsignedTransaction {
	return &tx.UnsignedTransaction{
		Version: tx.TxVersionT1,
		ChainID: s.cfg.EffectiveChainID(),
		Source:  source,
		Type:    txType,
		Payload: payload,
		FeeType: tx.FeeTypeTOS,
	}
}

// BuildSigningBytes returns the frame the source key signs for utx.
func (s *Service) BuildSigningBytes(ctx context.Context, utx *tx.UnsignedTransaction) ([]byte, error) {
	frame, err := utx.SigningBytes()
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "built signing frame", "tx_type", utx.Type.String(), "len", len(frame))
	return frame, nil
}

// ============================================================================
// API Function 4: Payload encoders
// ============================================================================

// EncodeTransferPayload encodes a transfers payload.
func (s *Service) EncodeTransferPayload(transfers []tx.Transfer) ([]byte, error) {
	return tx.EncodeTransfers(transfers)
}

// EncodeBurnPayload encodes a burn payload.
func (s *Service) EncodeBurnPayload(asset [tx.HashSize]byte, amount uint64) []byte {
	return tx.EncodeBurn(asset, amount)
}

// ============================================================================
// API Function 5: SignTransfer
// ============================================================================

// TransferRequest describes a transfers transaction to sign.
type TransferRequest struct {
	PrivateKey          []byte
	Transfers           []tx.Transfer
	Fee                 uint64
	FeeType             tx.FeeType
	Nonce               uint64
	ReferenceHash       [tx.HashSize]byte
	ReferenceTopoHeight uint64
}

// SignedTransaction is a signing frame and its source signature.
type SignedTransaction struct {
	Transaction *tx.UnsignedTransaction
	Frame       []byte
	Signature   [crypto.SignatureSize]byte
}

// SignTransfer encodes the transfers, assembles the frame on the configured
// chain with the key's public key as source, and signs it.
func (s *Service) SignTransfer(ctx context.Context, req *TransferRequest) (*SignedTransaction, error) {
	return s.signTransfer(ctx, req, crypto.RandomNonce(s.rand))
}

// SignTransferFixture is SignTransfer with the deterministic fixture nonce.
func (s *Service) SignTransferFixture(ctx context.Context, req *TransferRequest) (*SignedTransaction, error) {
	if !s.fixtures {
		return nil, ErrFixturesDisabled
	}
	return s.signTransfer(ctx, req, fixture.DeterministicNonce)
}

func (s *Service) signTransfer(ctx context.Context, req *TransferRequest, nonce crypto.NonceFunc) (*SignedTransaction, error) {
	kp, err := crypto.KeyPairFromPrivateBytes(req.PrivateKey)
	if err != nil {
		return nil, err
	}

	payload, err := tx.EncodeTransfers(req.Transfers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transfers: %w", err)
	}

	utx := s.NewTransaction(kp.PublicBytes(), tx.TxTypeTransfers, payload)
	utx.Fee = req.Fee
	utx.FeeType = req.FeeType
	utx.Nonce = req.Nonce
	utx.ReferenceHash = req.ReferenceHash
	utx.ReferenceTopoHeight = req.ReferenceTopoHeight

	sig, err := tx.NewSigner(kp, nonce).Sign(utx)
	if err != nil {
		return nil, err
	}
	frame, err := utx.SigningBytes()
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "signed transfer",
		logging.Hex("source", utx.Source[:]),
		"transfers", len(req.Transfers),
		"nonce", utx.Nonce,
		"chain_id", utx.ChainID,
	)
	return &SignedTransaction{Transaction: utx, Frame: frame, Signature: sig}, nil
}

// ============================================================================
// API Function 6: Shield crypto
// ============================================================================

// ShieldTransfer builds a shield transfer to destination with fresh
// randomness. The blinding factor is returned so the sender can open the
// commitment later; it must be kept secret.
func (s *Service) ShieldTransfer(ctx context.Context, asset [tx.HashSize]byte, destination [crypto.PointSize]byte, amount uint64, extra []byte) (*tx.ShieldTransfer, *crypto.BlindingFactor, error) {
	dest, err := crypto.ParsePublicKey(destination[:])
	if err != nil {
		return nil, nil, err
	}
	st, bf, err := tx.BuildShieldTransfer(s.rand, asset, dest, amount, extra)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info(ctx, "built shield transfer", logging.Hex("destination", destination[:]), logging.Redacted("blinding_factor"))
	return st, bf, nil
}

// MakeShieldCrypto returns the deterministic shield tuple for the
// destination derived from destSeed. Fixture mode only.
func (s *Service) MakeShieldCrypto(ctx context.Context, destSeed byte, amount uint64) (*fixture.ShieldCrypto, error) {
	if !s.fixtures {
		return nil, ErrFixturesDisabled
	}
	sc, err := fixture.MakeShieldCrypto(destSeed, amount)
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "made fixture shield crypto", "dest_seed", destSeed, "amount", amount)
	return sc, nil
}

// ============================================================================
// API Function 7: Verification
// ============================================================================

// Verify reports whether signature is valid for message under publicKey.
// Malformed inputs are errors; a mismatch is (false, nil).
func (s *Service) Verify(ctx context.Context, publicKey, message, signature []byte) (bool, error) {
	err := crypto.VerifyBytes(publicKey, message, signature)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, crypto.ErrVerificationFailed):
		s.log.Debug(ctx, "signature rejected", logging.Hex("public_key", publicKey))
		return false, nil
	default:
		return false, err
	}
}

// VerifyShieldTransfer checks a shield transfer's proof.
func (s *Service) VerifyShieldTransfer(ctx context.Context, st *tx.ShieldTransfer) error {
	if err := st.Verify(); err != nil {
		s.log.Warn(ctx, "shield proof rejected", logging.Hex("destination", st.Destination[:]), "error", err)
		return err
	}
	return nil
}

// Generators returns the compressed value generator G and blinding
// generator H.
func (s *Service) Generators() (g, h [crypto.PointSize]byte) {
	return crypto.EncodePoint(crypto.G()), crypto.EncodePoint(crypto.H())
}
