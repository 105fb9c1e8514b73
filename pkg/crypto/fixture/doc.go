// Package fixture derives reproducible signatures, keys and shield crypto for
// test vectors and conformance fixtures.
//
// Nothing here is suitable for signing real transactions. SignDeterministic
// hashes the private key into the nonce without any RFC 6979 style domain
// separation across message types, and the shield helpers draw their
// "randomness" from a ChaCha20 stream keyed by public inputs.
package fixture
