// Package bech32encoding implements the fixed length NIP-19 entities: npub
// public keys, nsec secret keys and note event ids, all 32 bytes encoded as 63
// character bech32 strings.
//
// The Encode functions write into fixed size arrays owned by the caller and do
// not allocate. Decoding checks the prefix and that exactly 32 bytes were
// carried.
package bech32encoding
