package bech32encoding

import (
	"fmt"
)

var (
	NpubHRP = by("npub")
	NsecHRP = by("nsec")
	NoteHRP = by("note")
)

// Tag identifies which kind of 32 byte value a NIP-19 string carries.
type Tag byte

const (
	Unknown Tag = iota
	Npub
	Nsec
	Note
)

var tagHRPs = [...]by{Npub: NpubHRP, Nsec: NsecHRP, Note: NoteHRP}

// Tags lists the known tags.
var Tags = []Tag{Npub, Nsec, Note}

// HRP returns the human-readable part for the tag, nil if it is not known.
func (t Tag) HRP() (hrp by) {
	if t == Unknown || no(t) >= len(tagHRPs) {
		return
	}
	return tagHRPs[t]
}

func (t Tag) String() string {
	if hrp := t.HRP(); hrp != nil {
		return st(hrp)
	}
	return fmt.Sprintf("unknown(%d)", byte(t))
}

// ParseTag returns the tag whose human-readable part is hrp, ignoring case.
func ParseTag[V st | by](hrp V) (t Tag, err er) {
	for _, t = range Tags {
		if equalFold(by(hrp), t.HRP()) {
			return
		}
	}
	return Unknown, ErrUnknownPrefix(hrp)
}

// equalFold compares ASCII case insensitively without allocating.
func equalFold(a, b by) bo {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i]|0x20 != b[i]|0x20 {
			return false
		}
	}
	return true
}

// ErrUnknownPrefix is returned when a string decodes but its human-readable
// part is not one of the fixed length NIP-19 tags.
type ErrUnknownPrefix st

func (err ErrUnknownPrefix) Error() string {
	return fmt.Sprintf("unknown NIP-19 prefix %q", st(err))
}

// ErrWrongPrefix is returned when a string carries a different tag than the
// one asked for.
type ErrWrongPrefix struct {
	Expected Tag
	Actual   Tag
}

func (err ErrWrongPrefix) Error() string {
	return fmt.Sprintf("wrong human readable part, got '%s' want '%s'",
		err.Actual, err.Expected)
}
