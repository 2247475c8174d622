package gifenc

import (
	"github.com/OTKUSteyler/IMGTOGIF/internal/ir"
)

// quantShift reduces each 8-bit channel to 16 uniform levels, giving at
// most 16*16*16 = 4096 distinct quantized colors before the palette cap.
const quantShift = 4

// Slot markers for quantized colors that have no palette entry (yet).
const (
	slotUnseen   = -1
	slotOverflow = -2 // seen after the palette filled up; maps to index 0
)

// Stats reports what the quantizer saw. OverflowPixels counts pixels whose
// quantized color arrived after the palette was already full; those pixels
// are mapped to index 0 rather than failing the conversion.
type Stats struct {
	DistinctColors int
	OverflowPixels int
}

// Quantize reduces an RGBA pixel buffer to a 256-entry palette and an
// index buffer referencing it. Each channel is bucketed to
// floor(c/16)*16; alpha is ignored. Palette slots are assigned in
// first-seen order, and once all 256 are taken any further distinct color
// collapses to index 0. The palette is padded with black to exactly
// ir.PaletteSize entries.
func Quantize(img *ir.RawImage) (ir.Palette, *ir.IndexedImage, Stats) {
	palette := make(ir.Palette, 0, ir.PaletteSize)
	indexed := &ir.IndexedImage{
		Width:  img.Width,
		Height: img.Height,
		Pix:    make([]byte, img.Width*img.Height),
	}

	// One slot per possible quantized color.
	var slots [1 << (3 * (8 - quantShift))]int16
	for i := range slots {
		slots[i] = slotUnseen
	}

	var stats Stats
	for i, p := 0, 0; p < len(img.Pix); i, p = i+1, p+4 {
		r := img.Pix[p] >> quantShift
		g := img.Pix[p+1] >> quantShift
		b := img.Pix[p+2] >> quantShift
		key := uint16(r)<<8 | uint16(g)<<4 | uint16(b)

		slot := slots[key]
		if slot == slotUnseen {
			stats.DistinctColors++
			if len(palette) < ir.PaletteSize {
				slot = int16(len(palette))
				palette = append(palette, ir.RGB{
					R: r << quantShift,
					G: g << quantShift,
					B: b << quantShift,
				})
			} else {
				slot = slotOverflow
			}
			slots[key] = slot
		}
		if slot == slotOverflow {
			// Palette is full: collapse to the first color found.
			stats.OverflowPixels++
			slot = 0
		}
		indexed.Pix[i] = byte(slot)
	}

	for len(palette) < ir.PaletteSize {
		palette = append(palette, ir.RGB{})
	}
	return palette, indexed, stats
}
