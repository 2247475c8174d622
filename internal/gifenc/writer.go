package gifenc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/OTKUSteyler/IMGTOGIF/internal/ir"
)

// ErrEncoding marks a caller contract violation: the indexed image or
// palette handed to Encode is malformed. It is never patched internally.
var ErrEncoding = errors.New("gifenc: invalid encode input")

// GIF89a block introducers and the trailer.
const (
	sExtension       = 0x21
	sImageDescriptor = 0x2C
	sTrailer         = 0x3B
	gcLabel          = 0xF9
	gcBlockSize      = 0x04
)

// maxSubBlock is the data capacity of one length-prefixed sub-block.
const maxSubBlock = 255

// Options control the optional fields of the graphics control extension.
type Options struct {
	// Transparent marks TransparentIndex as the transparent palette slot.
	Transparent      bool
	TransparentIndex byte
}

// Encode serializes an indexed image and its 256-entry palette into a
// complete single-frame GIF89a byte stream: signature, logical screen
// descriptor, global color table, graphics control extension, image
// descriptor, LZW-compressed pixel data in sub-blocks, trailer.
func Encode(img *ir.IndexedImage, palette ir.Palette, opts Options) ([]byte, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimensions %dx%d", ErrEncoding, img.Width, img.Height)
	}
	if img.Width > 0xFFFF || img.Height > 0xFFFF {
		return nil, fmt.Errorf("%w: dimensions %dx%d exceed the 16-bit descriptor fields", ErrEncoding, img.Width, img.Height)
	}
	if !img.Valid() {
		return nil, fmt.Errorf("%w: index buffer is %d bytes, want %d for %dx%d",
			ErrEncoding, len(img.Pix), img.Width*img.Height, img.Width, img.Height)
	}
	if len(palette) != ir.PaletteSize {
		return nil, fmt.Errorf("%w: palette has %d entries, want %d", ErrEncoding, len(palette), ir.PaletteSize)
	}

	var buf bytes.Buffer
	buf.Grow(13 + 3*ir.PaletteSize + len(img.Pix)/2)

	buf.WriteString("GIF89a")

	// Logical screen descriptor. 0xF7 = global color table present,
	// 8 bits of color resolution, table size code 7 (256 entries).
	writeUint16(&buf, uint16(img.Width))
	writeUint16(&buf, uint16(img.Height))
	buf.WriteByte(0xF7)
	buf.WriteByte(0x00) // background color index
	buf.WriteByte(0x00) // pixel aspect ratio

	for _, c := range palette {
		buf.WriteByte(c.R)
		buf.WriteByte(c.G)
		buf.WriteByte(c.B)
	}

	// Graphics control extension: disposal 0, no user input, zero delay.
	buf.WriteByte(sExtension)
	buf.WriteByte(gcLabel)
	buf.WriteByte(gcBlockSize)
	var gcFlags byte
	if opts.Transparent {
		gcFlags |= 0x01
	}
	buf.WriteByte(gcFlags)
	writeUint16(&buf, 0) // delay time
	buf.WriteByte(opts.TransparentIndex)
	buf.WriteByte(0x00) // block terminator

	// Image descriptor at (0,0), full logical screen, no local color
	// table, no interlace.
	buf.WriteByte(sImageDescriptor)
	writeUint16(&buf, 0)
	writeUint16(&buf, 0)
	writeUint16(&buf, uint16(img.Width))
	writeUint16(&buf, uint16(img.Height))
	buf.WriteByte(0x00)

	minCodeSize := minimumCodeSize(img.Pix)
	buf.WriteByte(byte(minCodeSize))
	writeSubBlocks(&buf, lzwEncode(img.Pix, minCodeSize))
	buf.WriteByte(0x00) // zero-length block ends the image data

	buf.WriteByte(sTrailer)
	return buf.Bytes(), nil
}

// minimumCodeSize picks the smallest LZW code size whose literal alphabet
// covers every index actually used, clamped to the [2,8] range the format
// allows.
func minimumCodeSize(indices []byte) uint {
	var max byte
	for _, x := range indices {
		if x > max {
			max = x
		}
	}
	size := uint(2)
	for 1<<size < int(max)+1 {
		size++
	}
	return size
}

// writeSubBlocks frames data into length-prefixed chunks of at most 255
// bytes each.
func writeSubBlocks(buf *bytes.Buffer, data []byte) {
	for len(data) > 0 {
		n := len(data)
		if n > maxSubBlock {
			n = maxSubBlock
		}
		buf.WriteByte(byte(n))
		buf.Write(data[:n])
		data = data[n:]
	}
}

// Little-endian.
func writeUint16(buf *bytes.Buffer, v uint16) {
	buf.WriteByte(byte(v))
	buf.WriteByte(byte(v >> 8))
}
