package gifenc

// GIF LZW codes never exceed 12 bits; the code table holds at most 4096
// entries before a clear code must reset it.
const (
	maxCodeWidth = 12
	tableCeiling = 1<<maxCodeWidth - 1
)

// lzwEncode compresses an index stream with the GIF variant of LZW and
// returns the bit-packed byte stream, ready for sub-block framing.
//
// The code table starts with one entry per literal below the clear code
// plus the two control codes. The clear code is emitted first, the end
// code last, and the code width grows by one bit each time the next
// assigned table entry crosses a power-of-two boundary. When the table is
// about to exhaust its 12-bit code space a clear code resets it. The
// discipline mirrors what compress/lzw's LSB writer produces, so any
// compliant GIF reader decodes the stream back to the exact input.
func lzwEncode(indices []byte, minCodeSize uint) []byte {
	clearCode := uint32(1) << minCodeSize
	endCode := clearCode + 1

	var p bitPacker
	width := minCodeSize + 1
	hi := endCode              // highest assigned code so far
	overflow := clearCode << 1 // hi reaching this widens the next codes
	table := make(map[uint32]uint32)

	// A new table entry takes the next free code; growing past the
	// ceiling instead resets the table with an explicit clear code.
	bumpHi := func() {
		hi++
		if hi == overflow {
			width++
			overflow <<= 1
		}
		if hi == tableCeiling {
			p.pack(clearCode, width)
			width = minCodeSize + 1
			hi = endCode
			overflow = clearCode << 1
			table = make(map[uint32]uint32)
		}
	}

	p.pack(clearCode, width)
	if len(indices) == 0 {
		p.pack(endCode, width)
		return p.flush()
	}

	code := uint32(indices[0])
	for _, x := range indices[1:] {
		literal := uint32(x)
		key := code<<8 | literal
		if next, ok := table[key]; ok {
			code = next
			continue
		}
		// Longest match ended: emit it, record the extension, restart.
		p.pack(code, width)
		bumpHi()
		if hi != endCode { // not just reset
			table[key] = hi
		}
		code = literal
	}

	p.pack(code, width)
	bumpHi()
	p.pack(endCode, width)
	return p.flush()
}
