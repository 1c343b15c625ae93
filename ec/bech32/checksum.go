package bech32

const (
	// ChecksumLen is the number of symbols in the checksum.
	ChecksumLen = 6
	// Bech32Const is the value the checksum residue of a valid string takes.
	Bech32Const = 1
)

// gen holds the generator constants of the BCH code, one for each bit of the top
// symbol shifted out of the residue.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// polymod is the running residue of the checksum computation, 30 bits holding
// six 5-bit symbols. It starts at 1.
type polymod uint32

func newPolymod() polymod { return 1 }

// step shifts in one 5-bit symbol.
func (p polymod) step(v byte) polymod {
	top := p >> 25
	p = (p&0x1ffffff)<<5 ^ polymod(v)
	for i := range gen {
		if top>>i&1 == 1 {
			p ^= polymod(gen[i])
		}
	}
	return p
}

// hrp shifts in the expansion of the human-readable part without building it:
// the high three bits of each character, a zero, then the low five bits of each
// character. Uppercase letters are folded to lowercase first.
func (p polymod) hrp(hrp by) polymod {
	for _, c := range hrp {
		p = p.step(lower(c) >> 5)
	}
	p = p.step(0)
	for _, c := range hrp {
		p = p.step(lower(c) & 31)
	}
	return p
}

func (p polymod) symbols(data by) polymod {
	for _, v := range data {
		p = p.step(v)
	}
	return p
}

// checksum finishes the residue of hrp and data into checksum symbols.
func (p polymod) checksum() (cs [ChecksumLen]byte) {
	for range ChecksumLen {
		p = p.step(0)
	}
	r := uint32(p) ^ Bech32Const
	for i := range cs {
		cs[i] = byte(r >> (5 * (ChecksumLen - 1 - i)) & 31)
	}
	return
}

func (p polymod) valid() bo { return uint32(p) == Bech32Const }

// ExpandHRP returns the human-readable part expanded into the symbols that
// precede the data in the checksum computation.
func ExpandHRP(hrp by) (expanded by) {
	expanded = make(by, 0, len(hrp)*2+1)
	for _, c := range hrp {
		expanded = append(expanded, lower(c)>>5)
	}
	expanded = append(expanded, 0)
	for _, c := range hrp {
		expanded = append(expanded, lower(c)&31)
	}
	return
}

// CreateChecksum computes the checksum symbols for the human-readable part and
// the 5-bit data symbols. Symbols must be below 32.
func CreateChecksum(hrp, data by) [ChecksumLen]byte {
	return newPolymod().hrp(hrp).symbols(data).checksum()
}

// VerifyChecksum reports whether data, which ends with the checksum symbols, is
// valid for the human-readable part.
func VerifyChecksum(hrp, data by) bo {
	return newPolymod().hrp(hrp).symbols(data).valid()
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
