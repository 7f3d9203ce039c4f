// Package noise provides procedural detail-noise textures for the
// landscape shader. Field generation is pure; the GL texture lifecycle
// (New/Use/Unuse/Destroy) wraps it for rendering.
package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

const (
	alpha   = 2.0
	beta    = 2.0
	octaves = 3
)

// Field generates a size x size grayscale Perlin field. Values are
// remapped from the generator's [-1,1] range to [0,255] and are
// deterministic for a given seed.
func Field(size int, frequency float64, seed int64) []uint8 {
	p := perlin.NewPerlin(alpha, beta, octaves, seed)
	buf := make([]uint8, size*size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := p.Noise2D(float64(x)*frequency, float64(y)*frequency)
			v = (v + 1) * 0.5
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			buf[y*size+x] = uint8(v * 255)
		}
	}

	return buf
}

// UniformName returns the shader sampler name for noise texture i.
func UniformName(i int) string {
	return fmt.Sprintf("uNoise%d", i)
}
