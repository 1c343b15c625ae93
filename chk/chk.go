// Package chk gives the lol.Check printers short names, so a call site reads
// `if err = f(); chk.E(err) { return }`.
package chk

import (
	"nkey.mleku.dev/lol"
)

var (
	F = lol.Main.Check.F
	E = lol.Main.Check.E
	W = lol.Main.Check.W
	I = lol.Main.Check.I
	D = lol.Main.Check.D
	T = lol.Main.Check.T
)
