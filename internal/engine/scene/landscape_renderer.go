// Package scene renders the landscape: the terrain mesh and the water
// plane through one shared shader program.
package scene

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/ruddysteph/gl-3D/internal/engine/noise"
	"github.com/ruddysteph/gl-3D/internal/engine/scene/shaders"
	"github.com/ruddysteph/gl-3D/internal/engine/shader"
	"github.com/ruddysteph/gl-3D/internal/engine/terrain"
	"github.com/ruddysteph/gl-3D/internal/engine/texture"
	"github.com/ruddysteph/gl-3D/internal/engine/water"
	"github.com/ruddysteph/gl-3D/internal/logger"
	"github.com/ruddysteph/gl-3D/pkg/math"
)

// noiseUnit is the first texture unit claimed by the noise textures;
// unit 0 holds the gradient.
const noiseUnit = 1

// LandscapeRenderer owns the GL resources for the terrain and water
// draw calls.
type LandscapeRenderer struct {
	program uint32

	// Uniform locations
	locModelView  int32
	locProjection int32
	locLightPos   int32
	locGradient   int32
	locWater      int32
	locCycle      int32

	// Terrain mesh
	terrainVAO   uint32
	terrainVBO   uint32
	terrainEBO   uint32
	terrainCount int32

	// Water quad
	waterVAO   uint32
	waterVBO   uint32
	waterCount int32

	gradientTex uint32
	noiseTex    *noise.Textures

	wireframe bool
}

// NewLandscapeRenderer initializes OpenGL state and compiles the
// landscape shader. Must be called after the GL context exists.
func NewLandscapeRenderer() (*LandscapeRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Sky clear color plus the demo's fixed state: depth test, back-face
	// culling, alpha blending for the water plane.
	gl.ClearColor(0.0, 0.4, 0.9, 0.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	lr := &LandscapeRenderer{}

	program, err := shader.CompileProgram(shaders.LandscapeVertexShader, shaders.LandscapeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("landscape shader: %w", err)
	}
	lr.program = program

	lr.locModelView = shader.GetUniform(program, "uModelView")
	lr.locProjection = shader.GetUniform(program, "uProjection")
	lr.locLightPos = shader.GetUniform(program, "uLightPos")
	lr.locGradient = shader.GetUniform(program, "uGradient")
	lr.locWater = shader.GetUniform(program, "uWater")
	lr.locCycle = shader.GetUniform(program, "uCycle")

	return lr, nil
}

// LoadTerrain uploads the landscape mesh to the GPU.
func (lr *LandscapeRenderer) LoadTerrain(mesh *terrain.Mesh) {
	gl.GenVertexArrays(1, &lr.terrainVAO)
	gl.BindVertexArray(lr.terrainVAO)

	gl.GenBuffers(1, &lr.terrainVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.terrainVBO)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &lr.terrainEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, lr.terrainEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	lr.terrainCount = int32(len(mesh.Indices))
}

// LoadWater uploads the unit water quad.
func (lr *LandscapeRenderer) LoadWater() {
	vertices := water.BuildQuad()
	stride := int32(water.VertexStride * 4)

	gl.GenVertexArrays(1, &lr.waterVAO)
	gl.BindVertexArray(lr.waterVAO)

	gl.GenBuffers(1, &lr.waterVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.waterVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	lr.waterCount = int32(len(vertices) / water.VertexStride)
}

// LoadGradient uploads the altitude color ramp as a 1-D lookup texture.
func (lr *LandscapeRenderer) LoadGradient(g *texture.Gradient) {
	lr.gradientTex = g.Upload()
}

// AttachNoise takes ownership of the detail-noise textures.
func (lr *LandscapeRenderer) AttachNoise(nt *noise.Textures) {
	lr.noiseTex = nt
}

// SetWireframe switches the polygon mode.
func (lr *LandscapeRenderer) SetWireframe(on bool) {
	lr.wireframe = on
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Wireframe reports the current polygon mode.
func (lr *LandscapeRenderer) Wireframe() bool {
	return lr.wireframe
}

// Resize updates the viewport.
func (lr *LandscapeRenderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Render draws one frame: the terrain mesh, then the water quad laid
// flat with the water shader flag set. modelView already contains the
// world scales; lightPos is in view space.
func (lr *LandscapeRenderer) Render(projection, modelView math.Mat4, lightPos math.Vec4, cycle float32) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(lr.program)

	gl.UniformMatrix4fv(lr.locProjection, 1, false, projection.Ptr())
	gl.UniformMatrix4fv(lr.locModelView, 1, false, modelView.Ptr())
	gl.Uniform4f(lr.locLightPos, lightPos[0], lightPos[1], lightPos[2], lightPos[3])
	gl.Uniform1f(lr.locCycle, cycle)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_1D, lr.gradientTex)
	gl.Uniform1i(lr.locGradient, 0)
	if lr.noiseTex != nil {
		lr.noiseTex.Use(lr.program, noiseUnit)
	}

	// Terrain
	gl.Uniform1i(lr.locWater, 0)
	gl.BindVertexArray(lr.terrainVAO)
	gl.DrawElements(gl.TRIANGLES, lr.terrainCount, gl.UNSIGNED_INT, nil)

	// Water: reorient the XY quad into the XZ plane
	waterMV := modelView.Mul(math.RotateX(float32(-gomath.Pi / 2)))
	gl.UniformMatrix4fv(lr.locModelView, 1, false, waterMV.Ptr())
	gl.Uniform1i(lr.locWater, 1)
	gl.BindVertexArray(lr.waterVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, lr.waterCount)

	gl.BindVertexArray(0)
	if lr.noiseTex != nil {
		lr.noiseTex.Unuse(noiseUnit)
	}
}

// Destroy releases all GL resources.
func (lr *LandscapeRenderer) Destroy() {
	if lr.terrainVAO != 0 {
		gl.DeleteVertexArrays(1, &lr.terrainVAO)
		lr.terrainVAO = 0
	}
	if lr.terrainVBO != 0 {
		gl.DeleteBuffers(1, &lr.terrainVBO)
		lr.terrainVBO = 0
	}
	if lr.terrainEBO != 0 {
		gl.DeleteBuffers(1, &lr.terrainEBO)
		lr.terrainEBO = 0
	}
	if lr.waterVAO != 0 {
		gl.DeleteVertexArrays(1, &lr.waterVAO)
		lr.waterVAO = 0
	}
	if lr.waterVBO != 0 {
		gl.DeleteBuffers(1, &lr.waterVBO)
		lr.waterVBO = 0
	}
	if lr.gradientTex != 0 {
		gl.DeleteTextures(1, &lr.gradientTex)
		lr.gradientTex = 0
	}
	if lr.noiseTex != nil {
		lr.noiseTex.Destroy()
		lr.noiseTex = nil
	}
	if lr.program != 0 {
		gl.DeleteProgram(lr.program)
		lr.program = 0
	}
}
