// Package hex wraps encoding/hex with short names and adds append-style and
// fixed-length helpers. Encoding goes through the SIMD capable templexxx/xhex,
// decoding through encoding/hex, which rejects characters that are not hex
// digits.
package hex

import (
	"encoding/hex"

	"github.com/templexxx/xhex"
)

var (
	Enc      = hex.EncodeToString
	EncBytes = hex.Encode
	Dec      = hex.DecodeString
	DecBytes = hex.Decode
	DecLen   = hex.DecodedLen
	EncLen   = hex.EncodedLen
)

type InvalidByteError = hex.InvalidByteError

// EncAppend appends the hex encoding of src to dst.
func EncAppend(dst, src by) (b by) {
	l := len(dst)
	dst = append(dst, make(by, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// DecAppend appends the bytes decoded from the hex in src to dst.
func DecAppend(dst, src by) (b by, err er) {
	if len(src)%2 != 0 {
		err = hex.ErrLength
		return
	}
	l := len(dst)
	b = append(dst, make(by, len(src)/2)...)
	if _, err = hex.Decode(b[l:], src); chk.D(err) {
		b = dst
		return
	}
	return
}

// DecFixed decodes hex into dst, requiring the hex to be exactly twice the
// length of dst.
func DecFixed[V st | by](dst by, src V) (err er) {
	if len(src) != len(dst)*2 {
		err = errorf.D("hex string is %d characters, must be %d", len(src),
			len(dst)*2)
		return
	}
	if _, err = hex.Decode(dst, by(src)); chk.D(err) {
		return
	}
	return
}
