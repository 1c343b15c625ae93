package bech32

import (
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
	chk = lol.Main.Check
)
