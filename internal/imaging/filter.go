package imaging

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/OTKUSteyler/IMGTOGIF/internal/ir"
)

// Blur applies a Gaussian prefilter before quantization. Softening
// high-frequency noise keeps photographic sources from burning through
// the 256-entry palette. sigma <= 0 is a no-op.
func Blur(img *ir.RawImage, sigma float32) *ir.RawImage {
	if sigma <= 0 {
		return img
	}
	g := gift.New(gift.GaussianBlur(sigma))
	src := ToImage(img)
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return FromImage(dst)
}
