package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/webp"

	"github.com/OTKUSteyler/IMGTOGIF/internal/ir"
)

// ErrDecode marks source bytes that could not be interpreted as an image:
// malformed data, an unsupported format, or an empty buffer. It is
// surfaced to the caller unchanged, with no retry.
var ErrDecode = errors.New("imaging: cannot decode image data")

// CodecSet is the handle for the process-wide decode capability. It is
// initialized once and shared by every conversion.
type CodecSet struct {
	Formats []string // registered format names, sorted
}

var (
	codecsOnce sync.Once
	codecs     *CodecSet
)

// Codecs registers the non-stdlib decoders and returns the capability
// handle. Safe for repeated and concurrent calls: the first caller wins
// and everyone gets the same set.
func Codecs() *CodecSet {
	codecsOnce.Do(func() {
		image.RegisterFormat("webp", "RIFF????WEBP", webp.Decode, webp.DecodeConfig)
		image.RegisterFormat("qoi", "qoif", qoi.Decode, qoi.DecodeConfig)
		codecs = &CodecSet{Formats: []string{"gif", "jpeg", "png", "qoi", "webp"}}
	})
	return codecs
}

// Decode interprets source bytes as an image and returns its RGBA pixels
// along with the detected format name.
func Decode(data []byte) (*ir.RawImage, string, error) {
	Codecs()
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty input", ErrDecode)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return FromImage(img), format, nil
}

// FromImage copies any image.Image into a RawImage with bounds starting
// at (0,0).
func FromImage(src image.Image) *ir.RawImage {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &ir.RawImage{Width: b.Dx(), Height: b.Dy(), Pix: dst.Pix}
}

// ToImage wraps a RawImage as an *image.RGBA without copying pixels. The
// caller must treat the result as read-only.
func ToImage(raw *ir.RawImage) *image.RGBA {
	return &image.RGBA{
		Pix:    raw.Pix,
		Stride: raw.Width * 4,
		Rect:   image.Rect(0, 0, raw.Width, raw.Height),
	}
}
