package bech32

// ConvertBits regroups the bits of data from fromBits wide groups into toBits
// wide groups, treating the input as one big-endian bit stream. Only the low
// fromBits of each input element may be set.
//
// With pad set a final partial group is filled out with zero bits, so the
// conversion never loses data. Without it the left over bits are dropped, and
// they must number fewer than fromBits and all be zero, otherwise
// ErrInvalidPadding is returned.
func ConvertBits(data by, fromBits, toBits uint8, pad bo) (regrouped by,
	err er) {

	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		err = ErrInvalidBitGroups{}
		return
	}
	regrouped = make(by, 0, len(data)*no(fromBits)/no(toBits)+1)
	var acc uint32
	var bits uint8
	mask := uint32(1)<<toBits - 1
	for _, b := range data {
		if fromBits < 8 && b>>fromBits != 0 {
			err = ErrInvalidDataByte(b)
			return nil, err
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&mask))
		}
	}
	if pad {
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&mask))
		}
		return
	}
	if err = checkPadding(acc, bits, fromBits); err != nil {
		return nil, err
	}
	return
}

// Convert8to5 packs bytes into 5-bit symbols. With pad set, which is what
// encoding requires, it cannot fail.
func Convert8to5(data by, pad bo) (by, er) { return ConvertBits(data, 8, 5, pad) }

// Convert5to8 unpacks 5-bit symbols into bytes. Decoding uses pad false, which
// rejects symbols that do not come from zero padded bytes.
func Convert5to8(data by, pad bo) (by, er) { return ConvertBits(data, 5, 8, pad) }

// Base32Len is the number of 5-bit symbols n bytes pack into.
func Base32Len(n no) no { return (n*8 + 4) / 5 }

// Base256Len is the number of whole bytes n 5-bit symbols unpack into.
func Base256Len(n no) no { return n * 5 / 8 }

func checkPadding(acc uint32, bits, fromBits uint8) (err er) {
	if bits >= fromBits {
		return ErrInvalidPadding{Bits: no(bits)}
	}
	if acc&(uint32(1)<<bits-1) != 0 {
		return ErrInvalidPadding{Bits: no(bits), NonZero: true}
	}
	return
}

// pack writes the 5-bit symbols of src into dst as charset characters, folding
// each symbol into the checksum as it goes. dst must hold Base32Len(len(src))
// bytes.
func pack(dst, src by, p polymod) (n no, _ polymod) {
	var acc uint32
	var bits uint8
	for _, b := range src {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			v := byte(acc >> bits & 31)
			p = p.step(v)
			dst[n] = Charset[v]
			n++
		}
	}
	if bits > 0 {
		v := byte(acc << (5 - bits) & 31)
		p = p.step(v)
		dst[n] = Charset[v]
		n++
	}
	return n, p
}

// unpack decodes already validated charset characters into bytes in dst, which
// must hold Base256Len(len(chars)) bytes.
func unpack(dst, chars by) (n no, err er) {
	var acc uint32
	var bits uint8
	for _, c := range chars {
		acc = acc<<5 | uint32(charsetRev[lower(c)])
		bits += 5
		if bits >= 8 {
			bits -= 8
			dst[n] = byte(acc >> bits)
			n++
		}
	}
	if err = checkPadding(acc, bits, 5); err != nil {
		return
	}
	return
}
