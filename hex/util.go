package hex

import (
	"nkey.mleku.dev/lol"
)

type (
	by = []byte
	st = string
	er = error
)

var (
	chk, errorf = lol.Main.Check, lol.Main.Errorf
)
