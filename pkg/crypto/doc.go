// Package crypto implements the TOS signing and shielding primitives over the
// ristretto255 group.
//
// The package provides:
//   - Key derivation with the inverted-key convention: public = private⁻¹ * H
//   - Schnorr signatures (s, e) over arbitrary messages, hashed with SHA3-512
//   - Pedersen commitments C = amount*G + r*H and decryption handles D = r*P
//   - Shield commitment proofs: a Fiat-Shamir Sigma protocol proving that a
//     commitment and a decryption handle share the same blinding factor
//
// G is the ristretto255 base point and H is derived from it by hashing its
// compressed encoding with SHA3-512 (the bulletproofs PedersenGens default).
// Both are initialised once and never mutated.
//
// Every scalar and point crossing the package boundary is decoded
// canonically; malformed input is reported as a *DecodeError before any
// arithmetic is performed. All functions are safe for concurrent use.
//
// The only nonce source reachable from this package is caller-supplied
// randomness. Deterministic fixtures live in package fixture.
package crypto
