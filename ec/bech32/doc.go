// Package bech32 provides a Go implementation of the bech32 format specified in
// BIP 173, as used by NIP-19 for nostr keys and identifiers.
//
// Bech32 strings consist of a human-readable part (hrp), followed by the
// separator 1, then a checksummed data part encoded using the 32 characters
// "qpzry9x8gf2tvdw0s3jn54khce6mua7l". The checksum is a BCH code over GF(32)
// that detects any error affecting at most four characters and has less than a
// 1 in 10^9 chance of failing to detect more errors.
//
// Encode and Decode work on 8-bit payloads and do the regrouping into 5-bit
// symbols themselves. EncodeBase32 and DecodeBase32 expose the symbol level for
// callers that regroup with ConvertBits. EncodeTo and DecodeTo write into caller
// provided buffers and do not allocate.
//
// Only the original bech32 checksum constant is supported, bech32m strings fail
// with ErrInvalidChecksum.
package bech32
