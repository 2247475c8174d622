package ir

// PaletteSize is the number of entries in a GIF global color table with
// size code 7. The quantizer always pads its palette to exactly this many
// entries so the table size stays a power of two.
const PaletteSize = 256

// RGB is one palette entry. Alpha is not part of a GIF color table.
type RGB struct {
	R, G, B uint8
}

// Palette is an ordered list of colors referenced by index from an
// IndexedImage. Entry order is first-seen order of distinct quantized
// colors; trailing entries are (0,0,0) padding.
type Palette []RGB

// RawImage is the intermediate representation produced by the source
// decoder and the resampler. Pixels are interleaved R,G,B,A bytes
// (4 bytes per pixel, row-major order). It is never mutated once built.
type RawImage struct {
	Width  int
	Height int
	Pix    []byte // len = Width * Height * 4
}

// IndexedImage is the quantized form passed to the GIF writer. Each entry
// of Pix references a Palette slot.
type IndexedImage struct {
	Width  int
	Height int
	Pix    []byte // len = Width * Height
}

// Valid reports whether the buffer length matches the declared dimensions.
func (r *RawImage) Valid() bool {
	return r.Width > 0 && r.Height > 0 && len(r.Pix) == r.Width*r.Height*4
}

// Valid reports whether the buffer length matches the declared dimensions.
func (m *IndexedImage) Valid() bool {
	return m.Width > 0 && m.Height > 0 && len(m.Pix) == m.Width*m.Height
}
