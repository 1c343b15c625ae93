// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"fmt"
)

// ErrMixedCase is returned when the bech32 string has both lower and uppercase
// characters.
type ErrMixedCase struct{}

func (err ErrMixedCase) Error() string {
	return "string not all lowercase or all uppercase"
}

// ErrInvalidBitGroups is returned when conversion is attempted between byte
// slices using bit-per-element of unsupported value.
type ErrInvalidBitGroups struct{}

func (err ErrInvalidBitGroups) Error() string {
	return "only bit groups between 1 and 8 allowed"
}

// ErrInvalidPadding is returned when regrouping without padding leaves bits
// over that cannot have come from zero padding: either a whole source group or
// more is left, or the left over bits are not all zero.
type ErrInvalidPadding struct {
	Bits    no
	NonZero bo
}

func (err ErrInvalidPadding) Error() string {
	if err.NonZero {
		return fmt.Sprintf("non-zero padding in final %d bits", err.Bits)
	}
	return fmt.Sprintf("invalid incomplete group of %d bits", err.Bits)
}

// ErrInvalidLength is returned when the bech32 string has an invalid length
// given the BIP-173 defined restrictions, or an encoding would produce one.
type ErrInvalidLength no

func (err ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid bech32 string length %d, maximum is %d",
		no(err), MaxLen)
}

// ErrInvalidCharacter is returned when the bech32 string has a character
// outside the range of the supported charset, or a human-readable part given
// to an encoder contains something other than a lowercase letter.
type ErrInvalidCharacter rune

func (err ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character in string: %q", rune(err))
}

// ErrMissingSeparator is returned when the string has no separator character
// '1' at all.
type ErrMissingSeparator struct{}

func (err ErrMissingSeparator) Error() string {
	return "missing separator '1'"
}

// ErrEmptyPrefix is returned when the human-readable part is empty.
type ErrEmptyPrefix struct{}

func (err ErrEmptyPrefix) Error() string {
	return "empty human-readable part"
}

// ErrInvalidSeparatorIndex is returned when the separator character '1' is
// in an invalid position in the bech32 string, leaving too few characters for
// the checksum and data after it.
type ErrInvalidSeparatorIndex no

func (err ErrInvalidSeparatorIndex) Error() string {
	return fmt.Sprintf("invalid separator index %d", no(err))
}

// ErrInvalidChecksum is returned when the extracted checksum of the string
// is different than what was expected.
type ErrInvalidChecksum struct {
	Expected st
	Actual   st
}

func (err ErrInvalidChecksum) Error() string {
	return fmt.Sprintf("invalid checksum (expected %v got %v)",
		err.Expected, err.Actual)
}

// ErrInvalidDataByte is returned when a byte outside the range required for
// conversion into a string was found.
type ErrInvalidDataByte byte

func (err ErrInvalidDataByte) Error() string {
	return fmt.Sprintf("invalid data byte: %v", byte(err))
}

// ErrInvalidPayloadLength is returned when a payload is empty, or is not the
// length a fixed length encoding requires.
type ErrInvalidPayloadLength struct {
	Expected no
	Actual   no
}

func (err ErrInvalidPayloadLength) Error() string {
	if err.Expected == 0 {
		return fmt.Sprintf("invalid payload length %d", err.Actual)
	}
	return fmt.Sprintf("invalid payload length %d, must be %d", err.Actual,
		err.Expected)
}

// ErrShortBuffer is returned when a caller provided buffer cannot hold the
// result.
type ErrShortBuffer struct {
	Need no
	Have no
}

func (err ErrShortBuffer) Error() string {
	return fmt.Sprintf("buffer too small, need %d bytes, have %d", err.Need,
		err.Have)
}
