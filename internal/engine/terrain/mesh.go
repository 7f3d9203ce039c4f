package terrain

import "math"

// BuildMesh converts a heightmap into a renderable grid mesh. Vertices
// span [-1,1] in X and Z with row 0 at +Z, matching the world mapping
// used by Heightmap.Altitude; Y is the sample remapped to [-1,1].
func BuildMesh(h *Heightmap) *Mesh {
	w, d := h.Width, h.Height
	vertices := make([]Vertex, 0, w*d)

	for iz := 0; iz < d; iz++ {
		for ix := 0; ix < w; ix++ {
			px := 2*float32(ix)/float32(w-1) - 1
			pz := 1 - 2*float32(iz)/float32(d-1)
			py := 2*h.At(ix, iz) - 1

			vertices = append(vertices, Vertex{
				Position: [3]float32{px, py, pz},
				Normal:   gridNormal(h, ix, iz),
				TexCoord: [2]float32{
					float32(ix) / float32(w-1),
					float32(iz) / float32(d-1),
				},
			})
		}
	}

	// Two CCW triangles per cell, front faces up.
	indices := make([]uint32, 0, (w-1)*(d-1)*6)
	for iz := 0; iz < d-1; iz++ {
		for ix := 0; ix < w-1; ix++ {
			a := uint32(iz*w + ix)
			b := a + 1
			c := a + uint32(w)
			e := c + 1
			indices = append(indices,
				a, b, c,
				b, e, c,
			)
		}
	}

	return &Mesh{Vertices: vertices, Indices: indices}
}

// gridNormal estimates the surface normal at a grid point by central
// differences, falling back to one-sided differences on the border.
func gridNormal(h *Heightmap, ix, iz int) [3]float32 {
	at := func(x, z int) float32 {
		if x < 0 {
			x = 0
		}
		if x > h.Width-1 {
			x = h.Width - 1
		}
		if z < 0 {
			z = 0
		}
		if z > h.Height-1 {
			z = h.Height - 1
		}
		return 2*h.At(x, z) - 1
	}

	xStep := 2 / float32(h.Width-1)
	zStep := 2 / float32(h.Height-1)

	// Mesh Z decreases as the row index grows, so the +Z neighbor is the
	// previous row.
	dydx := (at(ix+1, iz) - at(ix-1, iz)) / (2 * xStep)
	dydz := (at(ix, iz-1) - at(ix, iz+1)) / (2 * zStep)

	nx, ny, nz := -dydx, float32(1), -dydz
	l := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
	return [3]float32{nx / l, ny / l, nz / l}
}
