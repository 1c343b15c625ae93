package bech32encoding

import (
	"bytes"

	"nkey.mleku.dev/lol"
)

type (
	bo = bool
	by = []byte
	st = string
	er = error
	no = int
)

var (
	chk, errorf = lol.Main.Check, lol.Main.Errorf
	equals      = bytes.Equal
)
