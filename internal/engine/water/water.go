// Package water provides the sea-level plane geometry.
package water

// VertexStride is the number of floats per vertex (position, normal,
// texcoord), matching the landscape shader's attribute layout.
const VertexStride = 8

// BuildQuad returns an interleaved unit quad in the XY plane facing +Z,
// spanning [-1,1] on both axes as two CCW triangles. The renderer lays
// it flat with a -90 degree X rotation and the terrain model scale.
func BuildQuad() []float32 {
	corners := [4][2]float32{
		{-1, -1},
		{1, -1},
		{1, 1},
		{-1, 1},
	}

	quad := func(i int) []float32 {
		c := corners[i]
		return []float32{
			c[0], c[1], 0, // position
			0, 0, 1, // normal
			(c[0] + 1) / 2, (c[1] + 1) / 2, // texcoord
		}
	}

	var vertices []float32
	for _, i := range []int{0, 1, 2, 0, 2, 3} {
		vertices = append(vertices, quad(i)...)
	}
	return vertices
}
