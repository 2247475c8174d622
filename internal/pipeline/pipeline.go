package pipeline

import (
	"fmt"
	"image"

	"github.com/andybons/gogif"

	"github.com/OTKUSteyler/IMGTOGIF/internal/gifenc"
	"github.com/OTKUSteyler/IMGTOGIF/internal/imaging"
	"github.com/OTKUSteyler/IMGTOGIF/internal/ir"
)

// Quantizer selects the palette-building strategy.
type Quantizer string

const (
	// QuantizerUniform buckets each channel to 16 levels, first-seen
	// palette order. The default.
	QuantizerUniform Quantizer = "uniform"
	// QuantizerMedianCut builds an adaptive palette; better fidelity on
	// photographic sources.
	QuantizerMedianCut Quantizer = "mediancut"
)

// ParseQuantizer converts a string flag value to a Quantizer.
func ParseQuantizer(s string) (Quantizer, error) {
	switch s {
	case "", string(QuantizerUniform):
		return QuantizerUniform, nil
	case string(QuantizerMedianCut):
		return QuantizerMedianCut, nil
	default:
		return "", fmt.Errorf("unknown quantizer: %q", s)
	}
}

// Options controls the full image→GIF conversion pipeline.
type Options struct {
	TargetWidth  int // 0 = derive from height, or keep the source width
	TargetHeight int // 0 = derive from width, or keep the source height
	BlurSigma    float32
	Quantizer    Quantizer
	Transparent  bool
}

// Result holds the output of a pipeline run.
type Result struct {
	Data           []byte // the finished GIF89a stream
	Format         string // detected source format
	SrcWidth       int
	SrcHeight      int
	Width          int // output logical screen size
	Height         int
	DistinctColors int
	OverflowPixels int
}

// Run executes the full conversion: decode → resize → prefilter →
// quantize → GIF encode. Stage failures propagate once, wrapped with the
// stage name; there are no retries.
func Run(data []byte, opts Options) (*Result, error) {
	raw, format, err := imaging.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	srcW, srcH := raw.Width, raw.Height

	w, h := imaging.TargetSize(srcW, srcH, opts.TargetWidth, opts.TargetHeight)
	raw = imaging.Resample(raw, w, h)
	raw = imaging.Blur(raw, opts.BlurSigma)

	var (
		palette ir.Palette
		indexed *ir.IndexedImage
		stats   gifenc.Stats
	)
	switch opts.Quantizer {
	case QuantizerMedianCut:
		palette, indexed, stats = quantizeMedianCut(raw)
	case QuantizerUniform, "":
		palette, indexed, stats = gifenc.Quantize(raw)
	default:
		return nil, fmt.Errorf("quantize: unknown quantizer %q", opts.Quantizer)
	}

	encoded, err := gifenc.Encode(indexed, palette, gifenc.Options{Transparent: opts.Transparent})
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:           encoded,
		Format:         format,
		SrcWidth:       srcW,
		SrcHeight:      srcH,
		Width:          w,
		Height:         h,
		DistinctColors: stats.DistinctColors,
		OverflowPixels: stats.OverflowPixels,
	}, nil
}

// quantizeMedianCut substitutes gogif's adaptive median-cut quantizer for
// the uniform one. The palette is still padded to 256 entries and the
// mapping stays deterministic, so the writer's invariants hold unchanged.
func quantizeMedianCut(raw *ir.RawImage) (ir.Palette, *ir.IndexedImage, gifenc.Stats) {
	src := imaging.ToImage(raw)
	pm := image.NewPaletted(src.Bounds(), nil)
	q := &gogif.MedianCutQuantizer{NumColor: ir.PaletteSize}
	q.Quantize(pm, src.Bounds(), src, image.Point{})

	palette := make(ir.Palette, 0, ir.PaletteSize)
	for _, c := range pm.Palette {
		r, g, b, _ := c.RGBA()
		palette = append(palette, ir.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
	}
	stats := gifenc.Stats{DistinctColors: len(palette)}
	for len(palette) < ir.PaletteSize {
		palette = append(palette, ir.RGB{})
	}

	indexed := &ir.IndexedImage{Width: raw.Width, Height: raw.Height, Pix: pm.Pix}
	return palette, indexed, stats
}
