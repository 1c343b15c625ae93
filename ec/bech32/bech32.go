package bech32

import (
	"bytes"
)

const (
	// Charset is the set of characters used in the data section of bech32
	// strings. The index of a character is the 5-bit value it encodes.
	Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	// Separator divides the human-readable part from the data.
	Separator = '1'
	// MaxLen is the longest a bech32 string may be.
	MaxLen = 90
)

// charsetRev maps a character to its 5-bit value, -1 for characters outside
// Charset. Uppercase letters map the same as lowercase.
var charsetRev [128]int8

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}
	for i := range Charset {
		c := Charset[i]
		charsetRev[c] = int8(i)
		if c >= 'a' && c <= 'z' {
			charsetRev[c-('a'-'A')] = int8(i)
		}
	}
}

// EncodedLen is the length of the bech32 string for a human-readable part of
// hrpLen characters and a payload of payloadLen bytes.
func EncodedLen(hrpLen, payloadLen no) no {
	return hrpLen + 1 + Base32Len(payloadLen) + ChecksumLen
}

// checkHRP accepts only non-empty, lowercase letter human-readable parts, the
// only form an encoder produces.
func checkHRP(hrp by) (err er) {
	if len(hrp) == 0 {
		return ErrEmptyPrefix{}
	}
	for _, c := range hrp {
		if c < 'a' || c > 'z' {
			return ErrInvalidCharacter(c)
		}
	}
	return
}

// EncodeTo writes the bech32 encoding of payload under the human-readable part
// hrp into dst, which must have room for EncodedLen(len(hrp), len(payload))
// bytes, and returns the number of bytes written. Nothing is allocated.
func EncodeTo(dst, hrp, payload by) (n no, err er) {
	if err = checkHRP(hrp); err != nil {
		return
	}
	if len(payload) == 0 {
		err = ErrInvalidPayloadLength{}
		return
	}
	l := EncodedLen(len(hrp), len(payload))
	if l > MaxLen {
		err = ErrInvalidLength(l)
		return
	}
	if len(dst) < l {
		err = ErrShortBuffer{Need: l, Have: len(dst)}
		return
	}
	p := newPolymod().hrp(hrp)
	n = copy(dst, hrp)
	dst[n] = Separator
	n++
	var written no
	written, p = pack(dst[n:], payload, p)
	n += written
	for _, v := range p.checksum() {
		dst[n] = Charset[v]
		n++
	}
	return
}

// Encode returns the bech32 encoding of payload under the human-readable part
// hrp. The hrp must be lowercase letters and the payload must not be empty.
func Encode(hrp, payload by) (encoded by, err er) {
	if len(payload) > MaxLen {
		err = ErrInvalidLength(EncodedLen(len(hrp), len(payload)))
		return
	}
	encoded = make(by, EncodedLen(len(hrp), len(payload)))
	var n no
	if n, err = EncodeTo(encoded, hrp, payload); chk.T(err) {
		return nil, err
	}
	return encoded[:n], nil
}

// EncodeBase32 encodes data that has already been regrouped into 5-bit
// symbols, as by Convert8to5.
func EncodeBase32(hrp, data by) (encoded by, err er) {
	if err = checkHRP(hrp); chk.T(err) {
		return
	}
	l := len(hrp) + 1 + len(data) + ChecksumLen
	if l > MaxLen {
		err = ErrInvalidLength(l)
		return
	}
	for _, v := range data {
		if v > 31 {
			err = ErrInvalidDataByte(v)
			return
		}
	}
	encoded = make(by, 0, l)
	encoded = append(encoded, hrp...)
	encoded = append(encoded, Separator)
	for _, v := range data {
		encoded = append(encoded, Charset[v])
	}
	for _, v := range CreateChecksum(hrp, data) {
		encoded = append(encoded, Charset[v])
	}
	return
}

// parse checks the structure, characters and checksum of a bech32 string and
// splits it into the human-readable part and the data characters, checksum
// included. At least minData data symbols must precede the checksum.
func parse(s by, minData no) (hrp, data by, err er) {
	if len(s) > MaxLen {
		err = ErrInvalidLength(len(s))
		return
	}
	var hasLower, hasUpper bo
	for _, c := range s {
		switch {
		case c < 33 || c > 126:
			err = ErrInvalidCharacter(c)
			return
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}
	}
	if hasLower && hasUpper {
		err = ErrMixedCase{}
		return
	}
	sep := bytes.LastIndexByte(s, Separator)
	switch {
	case sep < 0:
		err = ErrMissingSeparator{}
		return
	case sep == 0:
		err = ErrEmptyPrefix{}
		return
	case len(s)-sep-1 < ChecksumLen+minData:
		err = ErrInvalidSeparatorIndex(sep)
		return
	}
	hrp, data = s[:sep], s[sep+1:]
	p := newPolymod().hrp(hrp)
	for _, c := range data {
		v := charsetRev[c]
		if v < 0 {
			err = ErrInvalidCharacter(c)
			return
		}
		p = p.step(byte(v))
	}
	if !p.valid() {
		err = checksumError(hrp, data)
		return
	}
	return
}

// checksumError builds the error for a failed checksum, showing the checksum
// the data should have carried.
func checksumError(hrp, data by) er {
	split := len(data) - ChecksumLen
	p := newPolymod().hrp(hrp)
	for _, c := range data[:split] {
		p = p.step(byte(charsetRev[c]))
	}
	expected := make(by, ChecksumLen)
	for i, v := range p.checksum() {
		expected[i] = Charset[v]
	}
	return ErrInvalidChecksum{
		Expected: st(expected),
		Actual:   st(bytes.ToLower(data[split:])),
	}
}

// Decode validates a bech32 string and returns its lowercase human-readable
// part and the payload bytes. Strings must be all lowercase or all uppercase,
// and carry at least one data symbol. The separator is the last '1', so the
// human-readable part may itself contain '1' as BIP-173 allows. Errors are
// typed, see error.go.
func Decode[V st | by](s V) (hrp, payload by, err er) {
	var data by
	if hrp, data, err = parse(by(s), 1); chk.T(err) {
		return nil, nil, err
	}
	chars := data[:len(data)-ChecksumLen]
	payload = make(by, Base256Len(len(chars)))
	if _, err = unpack(payload, chars); chk.T(err) {
		return nil, nil, err
	}
	hrp = bytes.ToLower(hrp)
	return
}

// DecodeTo is Decode writing the payload into dst instead of allocating. The
// returned hrp is the slice of s before the separator, in the case it was
// given in, and n is the number of payload bytes written.
func DecodeTo[V st | by](dst by, s V) (hrp by, n no, err er) {
	var data by
	if hrp, data, err = parse(by(s), 1); err != nil {
		return nil, 0, err
	}
	chars := data[:len(data)-ChecksumLen]
	if need := Base256Len(len(chars)); len(dst) < need {
		err = ErrShortBuffer{Need: need, Have: len(dst)}
		return nil, 0, err
	}
	if n, err = unpack(dst, chars); err != nil {
		return nil, 0, err
	}
	return
}

// DecodeBase32 validates a bech32 string and returns its lowercase
// human-readable part and the 5-bit data symbols without the checksum. Unlike
// Decode an empty data part is accepted.
func DecodeBase32[V st | by](s V) (hrp, data by, err er) {
	var chars by
	if hrp, chars, err = parse(by(s), 0); chk.T(err) {
		return nil, nil, err
	}
	chars = chars[:len(chars)-ChecksumLen]
	data = make(by, len(chars))
	for i, c := range chars {
		data[i] = byte(charsetRev[c])
	}
	hrp = bytes.ToLower(hrp)
	return
}
