package gifenc

import (
	"testing"

	"github.com/OTKUSteyler/IMGTOGIF/internal/ir"
)

// rawFromPixels builds a RawImage from a list of RGBA quads laid out in
// row-major order.
func rawFromPixels(t *testing.T, width, height int, pixels ...[4]byte) *ir.RawImage {
	t.Helper()
	if len(pixels) != width*height {
		t.Fatalf("got %d pixels for %dx%d", len(pixels), width, height)
	}
	img := &ir.RawImage{Width: width, Height: height, Pix: make([]byte, 0, len(pixels)*4)}
	for _, p := range pixels {
		img.Pix = append(img.Pix, p[0], p[1], p[2], p[3])
	}
	return img
}

func TestQuantizeSingleRedPixel(t *testing.T) {
	img := rawFromPixels(t, 1, 1, [4]byte{255, 0, 0, 255})

	palette, indexed, stats := Quantize(img)

	if len(palette) != ir.PaletteSize {
		t.Fatalf("palette has %d entries, want %d", len(palette), ir.PaletteSize)
	}
	if want := (ir.RGB{R: 240}); palette[0] != want {
		t.Errorf("palette[0] = %+v, want %+v", palette[0], want)
	}
	for i := 1; i < ir.PaletteSize; i++ {
		if palette[i] != (ir.RGB{}) {
			t.Fatalf("palette[%d] = %+v, want black padding", i, palette[i])
		}
	}
	if len(indexed.Pix) != 1 || indexed.Pix[0] != 0 {
		t.Errorf("index buffer = %v, want [0]", indexed.Pix)
	}
	if stats.DistinctColors != 1 || stats.OverflowPixels != 0 {
		t.Errorf("stats = %+v, want 1 distinct color and no overflow", stats)
	}
}

func TestQuantizeFirstSeenOrder(t *testing.T) {
	// Four colors in distinct quantization buckets.
	img := rawFromPixels(t, 2, 2,
		[4]byte{16, 0, 0, 255},
		[4]byte{0, 32, 0, 255},
		[4]byte{0, 0, 48, 255},
		[4]byte{64, 64, 64, 255},
	)

	palette, indexed, stats := Quantize(img)

	want := []ir.RGB{
		{R: 16}, {G: 32}, {B: 48}, {R: 64, G: 64, B: 64},
	}
	for i, c := range want {
		if palette[i] != c {
			t.Errorf("palette[%d] = %+v, want %+v", i, palette[i], c)
		}
	}
	for i := len(want); i < ir.PaletteSize; i++ {
		if palette[i] != (ir.RGB{}) {
			t.Fatalf("palette[%d] = %+v, want black padding", i, palette[i])
		}
	}
	for i := 0; i < 4; i++ {
		if indexed.Pix[i] != byte(i) {
			t.Errorf("index[%d] = %d, want %d (first-seen order)", i, indexed.Pix[i], i)
		}
	}
	if stats.DistinctColors != 4 {
		t.Errorf("DistinctColors = %d, want 4", stats.DistinctColors)
	}
}

func TestQuantizeBucketing(t *testing.T) {
	// 17 and 31 share the floor(c/16)*16 = 16 bucket; 32 does not.
	img := rawFromPixels(t, 3, 1,
		[4]byte{17, 0, 0, 255},
		[4]byte{31, 0, 0, 255},
		[4]byte{32, 0, 0, 255},
	)

	palette, indexed, stats := Quantize(img)

	if stats.DistinctColors != 2 {
		t.Fatalf("DistinctColors = %d, want 2", stats.DistinctColors)
	}
	if palette[0] != (ir.RGB{R: 16}) || palette[1] != (ir.RGB{R: 32}) {
		t.Errorf("palette[0:2] = %+v %+v, want (16,0,0) (32,0,0)", palette[0], palette[1])
	}
	if indexed.Pix[0] != 0 || indexed.Pix[1] != 0 || indexed.Pix[2] != 1 {
		t.Errorf("indices = %v, want [0 0 1]", indexed.Pix)
	}
}

func TestQuantizeAlphaIgnored(t *testing.T) {
	img := rawFromPixels(t, 2, 1,
		[4]byte{100, 100, 100, 255},
		[4]byte{100, 100, 100, 0},
	)

	_, indexed, stats := Quantize(img)

	if stats.DistinctColors != 1 {
		t.Errorf("DistinctColors = %d, want 1 (alpha must not split colors)", stats.DistinctColors)
	}
	if indexed.Pix[0] != indexed.Pix[1] {
		t.Errorf("indices = %v, want both equal", indexed.Pix)
	}
}

func TestQuantizeOverflowMapsToIndexZero(t *testing.T) {
	// 300 pixels, each in its own quantization bucket: 44 colors arrive
	// after the palette is full and must collapse to index 0.
	const distinct = 300
	img := &ir.RawImage{Width: distinct, Height: 1, Pix: make([]byte, distinct*4)}
	for i := 0; i < distinct; i++ {
		img.Pix[i*4] = byte(i%16) << 4
		img.Pix[i*4+1] = byte(i/16%16) << 4
		img.Pix[i*4+2] = byte(i/256%16) << 4
		img.Pix[i*4+3] = 255
	}

	palette, indexed, stats := Quantize(img)

	if len(palette) != ir.PaletteSize {
		t.Fatalf("palette has %d entries, want %d", len(palette), ir.PaletteSize)
	}
	if stats.DistinctColors != distinct {
		t.Errorf("DistinctColors = %d, want %d", stats.DistinctColors, distinct)
	}
	if want := distinct - ir.PaletteSize; stats.OverflowPixels != want {
		t.Errorf("OverflowPixels = %d, want %d", stats.OverflowPixels, want)
	}
	for i := 0; i < ir.PaletteSize; i++ {
		if indexed.Pix[i] != byte(i) {
			t.Fatalf("index[%d] = %d, want %d", i, indexed.Pix[i], i)
		}
	}
	for i := ir.PaletteSize; i < distinct; i++ {
		if indexed.Pix[i] != 0 {
			t.Fatalf("index[%d] = %d, want 0 (overflow policy)", i, indexed.Pix[i])
		}
	}
}
