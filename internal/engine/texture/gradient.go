// Package texture loads the altitude color-gradient lookup texture.
package texture

import (
	"fmt"
	"image"
	_ "image/png" // gradient asset is a PNG
	"io"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Gradient holds the color ramp mapping normalized altitude to RGB.
type Gradient struct {
	Texels []uint8 // packed RGB
	Width  int
}

// LoadGradientFile reads and decodes the gradient image at path.
// A missing or unreadable asset is an error; the caller treats it as
// fatal at startup.
func LoadGradientFile(path string) (*Gradient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gradient %s: %w", path, err)
	}
	defer f.Close()

	g, err := DecodeGradient(f)
	if err != nil {
		return nil, fmt.Errorf("decoding gradient %s: %w", path, err)
	}
	return g, nil
}

// DecodeGradient decodes an image and extracts its first pixel row as
// the 1-D color ramp.
func DecodeGradient(r io.Reader) (*Gradient, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	if width == 0 {
		return nil, fmt.Errorf("gradient image has no pixels")
	}

	texels := make([]uint8, 0, width*3)
	y := bounds.Min.Y
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		r16, g16, b16, _ := img.At(x, y).RGBA()
		texels = append(texels, uint8(r16>>8), uint8(g16>>8), uint8(b16>>8))
	}

	return &Gradient{Texels: texels, Width: width}, nil
}

// Upload creates a 1-D lookup texture from the gradient. Sampling is
// NEAREST with edge clamping so altitude bands stay crisp. Requires a
// current GL context.
func (g *Gradient) Upload() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_1D, id)
	gl.TexParameteri(gl.TEXTURE_1D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_1D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_1D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexImage1D(gl.TEXTURE_1D, 0, gl.RGB, int32(g.Width), 0,
		gl.RGB, gl.UNSIGNED_BYTE, unsafe.Pointer(&g.Texels[0]))
	gl.BindTexture(gl.TEXTURE_1D, 0)
	return id
}
