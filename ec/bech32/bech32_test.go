package bech32

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

// nip19Vectors are npub/nsec strings with the hex of their payload.
var nip19Vectors = []struct {
	hrp, hex, encoded st
}{
	{"npub", "7e7e9c42a91bfef19fa929e5fda1b72e0ebc1a4c1141673e2794234d86addf4e",
		"npub10elfcs4fr0l0r8af98jlmgdh9c8tcxjvz9qkw038js35mp4dma8qzvjptg"},
	{"nsec", "67dea2ed018072d675f5415ecfaed7d2597555e202d85b3d65ea4e58d2d92ffa",
		"nsec1vl029mgpspedva04g90vltkh6fvh240zqtv9k0t9af8935ke9laqsnlfe5"},
	{"npub", "3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d",
		"npub180cvv07tjdrrgpa0j7j7tmnyl2yr6yr7l8j4s3evf6u64th6gkwsyjh6w6"},
	{"nsec", "3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d",
		"nsec180cvv07tjdrrgpa0j7j7tmnyl2yr6yr7l8j4s3evf6u64th6gkwsgyumg0"},
	{"npub", "0000000000000000000000000000000000000000000000000000000000000000",
		"npub1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqzqujme"},
}

func TestValidStrings(t *testing.T) {
	valid := []struct {
		s   st
		hrp st
		n   no
	}{
		{"A12UEL5L", "a", 0},
		{"a12uel5l", "a", 0},
		{"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs",
			"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio", 0},
		{"abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw", "abcdef", 32},
		{"split1checkupstagehandshakeupstreamerranterredcaperred2y9e3w", "split", 48},
		{"?1ezyfcl", "?", 0},
	}
	for _, v := range valid {
		hrp, data, err := DecodeBase32(v.s)
		require.NoError(t, err, v.s)
		require.Equal(t, v.hrp, st(hrp), v.s)
		require.Len(t, data, v.n, v.s)
		// an encoder only produces lowercase letter prefixes, so only those
		// round trip through EncodeBase32.
		if strings.Trim(v.hrp, "abcdefghijklmnopqrstuvwxyz") == "" {
			var re by
			re, err = EncodeBase32(hrp, data)
			require.NoError(t, err, v.s)
			require.Equal(t, strings.ToLower(v.s), st(re))
		}
	}
}

func TestInvalidStrings(t *testing.T) {
	invalid := []struct {
		s    st
		want er
	}{
		{"\x201nwldj5", ErrInvalidCharacter(' ')},
		{"\x7f1axkwrx", ErrInvalidCharacter(0x7f)},
		{"\x801eym55h", ErrInvalidCharacter(0x80)},
		{"an84characterslonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1569pvx",
			ErrInvalidLength(91)},
		{"pzry9x0s0muk", ErrMissingSeparator{}},
		{"1pzry9x0s0muk", ErrEmptyPrefix{}},
		{"x1b4n0q5v", ErrInvalidCharacter('b')},
		{"li1dgmt3", ErrInvalidSeparatorIndex(2)},
		{"de1lg7wt\xff", ErrInvalidCharacter(0xff)},
		{"10a06t8", ErrEmptyPrefix{}},
		{"1qzzfhee", ErrEmptyPrefix{}},
		{"a12UEL5L", ErrMixedCase{}},
	}
	for _, v := range invalid {
		_, _, err := DecodeBase32(v.s)
		require.Equal(t, v.want, err, "%q", v.s)
		_, _, err = Decode(v.s)
		require.Equal(t, v.want, err, "%q", v.s)
	}
	// checksum computed over the uppercase form of the prefix
	_, _, err := DecodeBase32("A1G7SGD8")
	require.IsType(t, ErrInvalidChecksum{}, err)
}

func TestDecodeRejectsEmptyPayload(t *testing.T) {
	_, _, err := Decode("a12uel5l")
	require.Equal(t, ErrInvalidSeparatorIndex(1), err)
}

func TestNIP19Vectors(t *testing.T) {
	for _, v := range nip19Vectors {
		payload := make(by, 32)
		_, n, err := DecodeTo(payload, v.encoded)
		require.Equal(t, 32, n)
		require.NoError(t, err)
		require.Equal(t, v.hex, hex.EncodeToString(payload))
		var enc by
		enc, err = Encode(by(v.hrp), payload)
		require.NoError(t, err)
		require.Equal(t, v.encoded, st(enc))
		require.Len(t, enc, EncodedLen(len(v.hrp), 32))
		hrp, dec, err := Decode(strings.ToUpper(v.encoded))
		require.NoError(t, err)
		require.Equal(t, v.hrp, st(hrp))
		require.Equal(t, payload, dec)
	}
}

func TestRoundTrip(t *testing.T) {
	var err error
	for _, hrp := range []st{"a", "npub", "nsec", "note", "lnbc", "abcdefghij"} {
		for n := 1; EncodedLen(len(hrp), n) <= MaxLen; n++ {
			payload := frand.Bytes(n)
			var encoded, hrp2, payload2 by
			if encoded, err = Encode(by(hrp), payload); chk.E(err) {
				t.Fatalf("hrp %s length %d: %s", hrp, n, err)
			}
			if len(encoded) != EncodedLen(len(hrp), n) {
				t.Fatalf("encoded length %d, expected %d", len(encoded),
					EncodedLen(len(hrp), n))
			}
			if !bytes.HasPrefix(encoded, by(hrp+"1")) {
				t.Fatalf("missing prefix in %s", encoded)
			}
			if hrp2, payload2, err = Decode(encoded); chk.E(err) {
				t.Fatalf("failed to decode %s: %s", encoded, err)
			}
			if st(hrp2) != hrp || !bytes.Equal(payload, payload2) {
				t.Fatalf("round trip mangled %s %x: got %s %x", hrp, payload,
					hrp2, payload2)
			}
		}
	}
}

func TestSubstitutionDetected(t *testing.T) {
	for _, v := range nip19Vectors {
		sep := strings.LastIndexByte(v.encoded, Separator)
		for i := sep + 1; i < len(v.encoded); i++ {
			for j := range Charset {
				if Charset[j] == v.encoded[i] {
					continue
				}
				mangled := by(v.encoded)
				mangled[i] = Charset[j]
				_, _, err := Decode(mangled)
				if _, ok := err.(ErrInvalidChecksum); !ok {
					t.Fatalf("substituting %c at %d in %s gave %v", Charset[j],
						i, v.encoded, err)
				}
			}
		}
	}
}

func TestChecksumErrorShowsExpected(t *testing.T) {
	v := nip19Vectors[0]
	mangled := v.encoded[:len(v.encoded)-1] + "q"
	_, _, err := Decode(mangled)
	require.Equal(t, ErrInvalidChecksum{
		Expected: v.encoded[len(v.encoded)-ChecksumLen:],
		Actual:   mangled[len(mangled)-ChecksumLen:],
	}, err)
}

func TestMixedCaseRejected(t *testing.T) {
	for _, v := range nip19Vectors {
		for i := range v.encoded {
			c := v.encoded[i]
			if c < 'a' || c > 'z' {
				continue
			}
			mangled := by(v.encoded)
			mangled[i] = c - ('a' - 'A')
			_, _, err := Decode(mangled)
			require.Equal(t, ErrMixedCase{}, err, "%s", mangled)
		}
	}
}

func TestExcludedCharactersRejected(t *testing.T) {
	for _, v := range nip19Vectors {
		sep := strings.LastIndexByte(v.encoded, Separator)
		for i := sep + 1; i < len(v.encoded); i++ {
			for _, c := range by("bio") {
				mangled := by(v.encoded)
				mangled[i] = c
				_, _, err := Decode(mangled)
				require.Equal(t, ErrInvalidCharacter(c), err, "%s", mangled)
			}
			// a '1' becomes the separator, so the string is split somewhere
			// else rather than rejected for its alphabet.
			mangled := by(v.encoded)
			mangled[i] = Separator
			_, _, err := Decode(mangled)
			require.Error(t, err)
			require.NotEqual(t, ErrInvalidCharacter(Separator), err)
		}
	}
}

func TestLengthBoundary(t *testing.T) {
	encoded, err := Encode(by("npub"), make(by, 49))
	require.NoError(t, err)
	require.Len(t, encoded, MaxLen)
	_, err = Encode(by("npub"), make(by, 50))
	require.Equal(t, ErrInvalidLength(91), err)
	_, err = Encode(by("npub"), make(by, 1000))
	require.IsType(t, ErrInvalidLength(0), err)
	_, _, err = Decode(append(encoded, 'q'))
	require.Equal(t, ErrInvalidLength(91), err)
}

func TestEncodeRejectsBadInput(t *testing.T) {
	_, err := Encode(nil, by{1})
	require.Equal(t, ErrEmptyPrefix{}, err)
	_, err = Encode(by("nPub"), by{1})
	require.Equal(t, ErrInvalidCharacter('P'), err)
	_, err = Encode(by("n1"), by{1})
	require.Equal(t, ErrInvalidCharacter('1'), err)
	_, err = Encode(by("npub"), nil)
	require.Equal(t, ErrInvalidPayloadLength{}, err)
	_, err = EncodeBase32(by("npub"), by{0, 32})
	require.Equal(t, ErrInvalidDataByte(32), err)
	var small [10]byte
	_, err = EncodeTo(small[:], by("npub"), make(by, 32))
	require.Equal(t, ErrShortBuffer{Need: 63, Have: 10}, err)
}

func TestPaddingRejected(t *testing.T) {
	// 52 symbols carry 260 bits, the last 4 are padding
	symbols := make(by, 52)
	symbols[51] = 1
	encoded, err := EncodeBase32(by("npub"), symbols)
	require.NoError(t, err)
	_, _, err = Decode(encoded)
	require.Equal(t, ErrInvalidPadding{Bits: 4, NonZero: true}, err)
	// 3 symbols leave 7 bits, more than padding can account for
	encoded, err = EncodeBase32(by("npub"), make(by, 3))
	require.NoError(t, err)
	_, _, err = Decode(encoded)
	require.Equal(t, ErrInvalidPadding{Bits: 7}, err)
	_, _, err = DecodeTo(make(by, 1), encoded)
	require.Equal(t, ErrInvalidPadding{Bits: 7}, err)
}

func TestDecodeToShortBuffer(t *testing.T) {
	_, _, err := DecodeTo(make(by, 31), nip19Vectors[0].encoded)
	require.Equal(t, ErrShortBuffer{Need: 32, Have: 31}, err)
}

func TestFixedBuffersDoNotAllocate(t *testing.T) {
	hrp := by("npub")
	var key [32]byte
	frand.Read(key[:])
	var out [63]byte
	var back [32]byte
	allocs := testing.AllocsPerRun(100, func() {
		if _, err := EncodeTo(out[:], hrp, key[:]); err != nil {
			t.Fatal(err)
		}
		if _, _, err := DecodeTo(back[:], out[:]); err != nil {
			t.Fatal(err)
		}
	})
	if allocs != 0 {
		t.Fatalf("fixed buffer encode and decode allocated %v times", allocs)
	}
	if back != key {
		t.Fatalf("got %x, expected %x", back, key)
	}
}
