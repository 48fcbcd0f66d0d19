package enc

// packTriplet splits three bytes into four 6-bit values and writes their symbols into dst.
func packTriplet(dst []byte, b1, b2, b3 byte) {
	_ = dst[3]
	dst[0] = SymbolOf(b1 >> 2)
	dst[1] = SymbolOf(((b1 & 0x03) << 4) | (b2 >> 4))
	dst[2] = SymbolOf(((b2 & 0x0F) << 2) | (b3 >> 6))
	dst[3] = SymbolOf(b3 & 0x3F)
}

// unpackQuadruplet is the reverse of packTriplet. If one of the symbols is not part of the
// alphabet, its index within src is returned together with ok=false.
func unpackQuadruplet(src string) (b1, b2, b3 byte, bad int, ok bool) {
	var c [4]byte
	for i := 0; i < 4; i++ {
		if c[i], ok = ValueOf(src[i]); !ok {
			return 0, 0, 0, i, false
		}
	}

	b1 = (c[0] << 2) | ((c[1] >> 4) & 0x03)
	b2 = ((c[1] << 4) & 0xF0) | ((c[2] >> 2) & 0x0F)
	b3 = ((c[2] << 6) & 0xC0) | (c[3] & 0x3F)
	return b1, b2, b3, 0, true
}
