// Package log gives the lol.Log level printers short names.
package log

import (
	"nkey.mleku.dev/lol"
)

var (
	F = lol.Main.Log.F
	E = lol.Main.Log.E
	W = lol.Main.Log.W
	I = lol.Main.Log.I
	D = lol.Main.Log.D
	T = lol.Main.Log.T
)
