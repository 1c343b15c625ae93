// Package errorf gives the lol.Errorf constructors short names. Each one builds
// an error with fmt.Errorf and logs it at its level before returning it.
package errorf

import (
	"nkey.mleku.dev/lol"
)

var (
	F = lol.Main.Errorf.F
	E = lol.Main.Errorf.E
	W = lol.Main.Errorf.W
	I = lol.Main.Errorf.I
	D = lol.Main.Errorf.D
	T = lol.Main.Errorf.T
)
