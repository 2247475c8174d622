package imaging

import (
	"math"

	"github.com/nfnt/resize"

	"github.com/OTKUSteyler/IMGTOGIF/internal/ir"
)

// TargetSize resolves the requested output dimensions against the source
// size. Both given: used as-is. One given: the other is derived from the
// source aspect ratio and rounded. Neither: the source size is kept.
// Derived dimensions never round below 1.
func TargetSize(srcW, srcH, reqW, reqH int) (int, int) {
	switch {
	case reqW > 0 && reqH > 0:
		return reqW, reqH
	case reqW > 0:
		return reqW, atLeastOne(math.Round(float64(reqW) * float64(srcH) / float64(srcW)))
	case reqH > 0:
		return atLeastOne(math.Round(float64(reqH) * float64(srcW) / float64(srcH))), reqH
	default:
		return srcW, srcH
	}
}

// Resample scales the image to w x h using bilinear interpolation.
// A same-size request returns the input untouched.
func Resample(img *ir.RawImage, w, h int) *ir.RawImage {
	if w == img.Width && h == img.Height {
		return img
	}
	return FromImage(resize.Resize(uint(w), uint(h), ToImage(img), resize.Bilinear))
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
