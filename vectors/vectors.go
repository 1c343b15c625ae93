// Package vectors loads bech32 test vectors from JSON and checks them against
// the codec, one at a time or as a concurrent batch.
package vectors

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"nkey.mleku.dev/bech32encoding"
	"nkey.mleku.dev/ec/bech32"
	"nkey.mleku.dev/hex"
)

// Vector is one test case. Kind is the human-readable part, Bytes the hex of
// the payload and Encoded the bech32 string. A vector with Error set is
// invalid: decoding Encoded must fail with an error containing that text, and
// Kind and Bytes are ignored.
type Vector struct {
	Name    st `json:"name"`
	Kind    st `json:"kind,omitempty"`
	Bytes   st `json:"bytes,omitempty"`
	Encoded st `json:"encoded"`
	Error   st `json:"error,omitempty"`
}

// Parse reads a JSON array of vectors. Unnamed vectors are named by their
// position, and names must be unique.
func Parse(b by) (vs []Vector, err er) {
	if err = json.Unmarshal(b, &vs); err != nil {
		err = errors.Wrap(err, "parsing vectors")
		return
	}
	seen := make(map[st]struct{}, len(vs))
	for i := range vs {
		if vs[i].Name == "" {
			vs[i].Name = "#" + strconv.Itoa(i)
		}
		if _, ok := seen[vs[i].Name]; ok {
			err = errors.Errorf("duplicate vector name %q", vs[i].Name)
			return
		}
		seen[vs[i].Name] = struct{}{}
	}
	return
}

// Load reads and parses a vector file.
func Load(path st) (vs []Vector, err er) {
	var b by
	if b, err = os.ReadFile(path); chk.E(err) {
		return
	}
	if vs, err = Parse(b); chk.E(err) {
		err = errors.Wrapf(err, "loading %s", path)
		return
	}
	log.D.F("loaded %d vectors from %s", len(vs), path)
	return
}

// Check runs the vector through the codec. A valid vector must encode to
// exactly Encoded and Encoded must decode back to Kind and Bytes, through the
// fixed length key adapter as well when Kind is npub, nsec or note.
func (v *Vector) Check() (err er) {
	if v.Error != "" {
		return v.checkInvalid()
	}
	var payload by
	if payload, err = hex.Dec(v.Bytes); err != nil {
		return errors.Wrapf(err, "vector %s: bytes", v.Name)
	}
	var encoded by
	if encoded, err = bech32.Encode(by(v.Kind), payload); err != nil {
		return errors.Wrapf(err, "vector %s: encode", v.Name)
	}
	if st(encoded) != v.Encoded {
		return errors.Errorf("vector %s: encoded to %s, expected %s", v.Name,
			encoded, v.Encoded)
	}
	var hrp, decoded by
	if hrp, decoded, err = bech32.Decode(v.Encoded); err != nil {
		return errors.Wrapf(err, "vector %s: decode", v.Name)
	}
	if st(hrp) != v.Kind || !equals(decoded, payload) {
		return errors.Errorf("vector %s: decoded to %s %x, expected %s %s",
			v.Name, hrp, decoded, v.Kind, v.Bytes)
	}
	if tag, e := bech32encoding.ParseTag(v.Kind); e == nil &&
		len(payload) == bech32encoding.KeyLen {
		if err = v.checkFixed(tag, payload); err != nil {
			return
		}
	}
	return
}

func (v *Vector) checkFixed(tag bech32encoding.Tag, key by) (err er) {
	var out [bech32encoding.EncodedKeyLen]byte
	if err = bech32encoding.EncodeFixed(tag, key, &out); err != nil {
		return errors.Wrapf(err, "vector %s: fixed encode", v.Name)
	}
	if st(out[:]) != v.Encoded {
		return errors.Errorf("vector %s: fixed encoder gave %s, expected %s",
			v.Name, out[:], v.Encoded)
	}
	var back [bech32encoding.KeyLen]byte
	var got bech32encoding.Tag
	if got, err = bech32encoding.DecodeFixed(v.Encoded, &back); err != nil {
		return errors.Wrapf(err, "vector %s: fixed decode", v.Name)
	}
	if got != tag || !equals(back[:], key) {
		return errors.Errorf("vector %s: fixed decoder gave %s %x, expected %s %x",
			v.Name, got, back, tag, key)
	}
	return
}

func (v *Vector) checkInvalid() (err er) {
	if _, _, err = bech32.Decode(v.Encoded); err == nil {
		return errors.Errorf("vector %s: %q decoded, expected error %q",
			v.Name, v.Encoded, v.Error)
	}
	if !strings.Contains(err.Error(), v.Error) {
		return errors.Errorf("vector %s: got error %q, expected %q", v.Name,
			err.Error(), v.Error)
	}
	return nil
}
