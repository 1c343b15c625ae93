package bech32encoding

import (
	"errors"

	"nkey.mleku.dev/ec/bech32"
	"nkey.mleku.dev/hex"
)

const (
	// KeyLen is the length of the binary keys and ids NIP-19 encodes.
	KeyLen = 32
	// HexKeyLen is the length of a key in hex.
	HexKeyLen = KeyLen * 2
	// Bech32HRPLen is the length of each of the fixed length prefixes.
	Bech32HRPLen = 4
	// EncodedKeyLen is the length of a bech32 encoded key: the prefix, the
	// separator, 52 data characters and 6 checksum characters.
	EncodedKeyLen = Bech32HRPLen + 1 + (KeyLen*8+4)/5 + bech32.ChecksumLen
	// NpubLen is the length of an encoded npub.
	NpubLen = EncodedKeyLen
	// NsecLen is the length of an encoded nsec.
	NsecLen = EncodedKeyLen
	// NoteLen is the length of an encoded note.
	NoteLen = EncodedKeyLen
)

// EncodeFixed encodes a 32 byte key under tag into dst. It fails if key is not
// exactly KeyLen bytes long or the tag is not known, and allocates nothing.
func EncodeFixed(tag Tag, key by, dst *[EncodedKeyLen]byte) (err er) {
	if len(key) != KeyLen {
		return bech32.ErrInvalidPayloadLength{Expected: KeyLen,
			Actual: len(key)}
	}
	hrp := tag.HRP()
	if hrp == nil {
		return ErrUnknownPrefix(tag.String())
	}
	_, err = bech32.EncodeTo(dst[:], hrp, key)
	return
}

// EncodeNpub encodes a public key as an npub.
func EncodeNpub(pk *[KeyLen]byte) (npub [NpubLen]byte) {
	// a known tag and a key of the right length cannot fail
	_ = EncodeFixed(Npub, pk[:], &npub)
	return
}

// EncodeNsec encodes a secret key as an nsec.
func EncodeNsec(sk *[KeyLen]byte) (nsec [NsecLen]byte) {
	_ = EncodeFixed(Nsec, sk[:], &nsec)
	return
}

// EncodeNote encodes an event id as a note.
func EncodeNote(id *[KeyLen]byte) (note [NoteLen]byte) {
	_ = EncodeFixed(Note, id[:], &note)
	return
}

// DecodeFixed decodes a fixed length NIP-19 string into dst and returns its
// tag. dst is only written when decoding succeeds.
func DecodeFixed[V st | by](s V, dst *[KeyLen]byte) (tag Tag, err er) {
	var key [KeyLen]byte
	var hrp by
	var n no
	if hrp, n, err = bech32.DecodeTo(key[:], s); err != nil {
		var short bech32.ErrShortBuffer
		if errors.As(err, &short) {
			err = bech32.ErrInvalidPayloadLength{Expected: KeyLen,
				Actual: short.Need}
		}
		return Unknown, err
	}
	if n != KeyLen {
		return Unknown, bech32.ErrInvalidPayloadLength{Expected: KeyLen,
			Actual: n}
	}
	if tag, err = ParseTag(hrp); err != nil {
		return
	}
	*dst = key
	return
}

func decodeTag[V st | by](s V, want Tag) (key [KeyLen]byte, err er) {
	var tag Tag
	if tag, err = DecodeFixed(s, &key); chk.D(err) {
		return
	}
	if tag != want {
		err = ErrWrongPrefix{Expected: want, Actual: tag}
		key = [KeyLen]byte{}
		return
	}
	return
}

// DecodeNpub decodes an npub into the public key it carries.
func DecodeNpub[V st | by](npub V) (pk [KeyLen]byte, err er) {
	return decodeTag(npub, Npub)
}

// DecodeNsec decodes an nsec into the secret key it carries.
func DecodeNsec[V st | by](nsec V) (sk [KeyLen]byte, err er) {
	return decodeTag(nsec, Nsec)
}

// DecodeNote decodes a note into the event id it carries.
func DecodeNote[V st | by](note V) (id [KeyLen]byte, err er) {
	return decodeTag(note, Note)
}

// HexToBech32 encodes a 64 character hex key under tag.
func HexToBech32[V st | by](tag Tag, keyHex V) (encoded by, err er) {
	var key [KeyLen]byte
	if err = hex.DecFixed(key[:], keyHex); chk.D(err) {
		err = errorf.D("failed to decode %s hex: %w", tag, err)
		return
	}
	var out [EncodedKeyLen]byte
	if err = EncodeFixed(tag, key[:], &out); chk.D(err) {
		return
	}
	encoded = append(encoded, out[:]...)
	return
}

// Bech32ToHex decodes a fixed length NIP-19 string and returns the tag and the
// hex of the key.
func Bech32ToHex[V st | by](s V) (tag Tag, keyHex by, err er) {
	var key [KeyLen]byte
	if tag, err = DecodeFixed(s, &key); chk.D(err) {
		return
	}
	keyHex = hex.EncAppend(make(by, 0, HexKeyLen), key[:])
	return
}

func bech32ToHexTag[V st | by](s V, want Tag) (keyHex by, err er) {
	var key [KeyLen]byte
	if key, err = decodeTag(s, want); err != nil {
		return
	}
	keyHex = hex.EncAppend(make(by, 0, HexKeyLen), key[:])
	return
}

// HexToNpub converts a hex encoded public key to an npub.
func HexToNpub[V st | by](pkHex V) (npub by, err er) { return HexToBech32(Npub, pkHex) }

// HexToNsec converts a hex encoded secret key to an nsec.
func HexToNsec[V st | by](skHex V) (nsec by, err er) { return HexToBech32(Nsec, skHex) }

// NpubToHex converts an npub to the hex of the public key.
func NpubToHex[V st | by](npub V) (pkHex by, err er) { return bech32ToHexTag(npub, Npub) }

// NsecToHex converts an nsec to the hex of the secret key.
func NsecToHex[V st | by](nsec V) (skHex by, err er) { return bech32ToHexTag(nsec, Nsec) }

// BinToNpub encodes a binary public key as an npub, failing if it is not 32
// bytes.
func BinToNpub(pk by) (npub by, err er) {
	var out [NpubLen]byte
	if err = EncodeFixed(Npub, pk, &out); chk.D(err) {
		return
	}
	return append(npub, out[:]...), nil
}

// BinToNsec encodes a binary secret key as an nsec, failing if it is not 32
// bytes.
func BinToNsec(sk by) (nsec by, err er) {
	var out [NsecLen]byte
	if err = EncodeFixed(Nsec, sk, &out); chk.D(err) {
		return
	}
	return append(nsec, out[:]...), nil
}
