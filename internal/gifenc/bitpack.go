package gifenc

// bitPacker accumulates variable-width integer codes into bytes,
// least-significant-bit first: a code's low bit lands on the lowest unused
// bit of the current byte. This is the bit order the GIF LZW sub-format
// mandates.
type bitPacker struct {
	out  []byte
	acc  uint32
	bits uint
}

// pack appends one code of the given width in bits.
func (p *bitPacker) pack(code uint32, width uint) {
	p.acc |= code << p.bits
	p.bits += width
	for p.bits >= 8 {
		p.out = append(p.out, byte(p.acc))
		p.acc >>= 8
		p.bits -= 8
	}
}

// flush pads the final partial byte with zero bits and returns the packed
// stream. The packer must not be reused afterwards.
func (p *bitPacker) flush() []byte {
	if p.bits > 0 {
		p.out = append(p.out, byte(p.acc))
		p.acc = 0
		p.bits = 0
	}
	return p.out
}
