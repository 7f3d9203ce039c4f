package noise

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ruddysteph/gl-3D/internal/engine/shader"
)

// Textures owns the GL detail-noise textures. Requires a current GL
// context.
type Textures struct {
	ids  []uint32
	size int
}

// NewTextures generates count noise fields at increasing frequencies and
// uploads them as single-channel 2D textures.
func NewTextures(count, size int, seed int64) *Textures {
	t := &Textures{
		ids:  make([]uint32, count),
		size: size,
	}

	frequency := 1.0 / float64(size) * 8
	for i := range t.ids {
		field := Field(size, frequency, seed+int64(i))

		gl.GenTextures(1, &t.ids[i])
		gl.BindTexture(gl.TEXTURE_2D, t.ids[i])
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(size), int32(size),
			0, gl.RED, gl.UNSIGNED_BYTE, unsafe.Pointer(&field[0]))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.MIRRORED_REPEAT)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.MIRRORED_REPEAT)

		// Each level doubles the sampling frequency.
		frequency *= 2
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t
}

// Use binds the noise textures starting at the given texture unit and
// points the program's sampler uniforms at them.
func (t *Textures) Use(program uint32, unit int) {
	for i, id := range t.ids {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit+i))
		gl.BindTexture(gl.TEXTURE_2D, id)
		gl.Uniform1i(shader.GetUniform(program, UniformName(i)), int32(unit+i))
	}
}

// Unuse unbinds the texture units claimed by Use.
func (t *Textures) Unuse(unit int) {
	for i := range t.ids {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit+i))
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

// Destroy deletes the GL textures.
func (t *Textures) Destroy() {
	for i := range t.ids {
		if t.ids[i] != 0 {
			gl.DeleteTextures(1, &t.ids[i])
			t.ids[i] = 0
		}
	}
}
