// Package terrain provides fractal heightmap generation, altitude lookup
// and grid mesh building for the landscape.
package terrain

// Heightmap holds normalized elevation samples in [0,1], row-major.
// It is immutable after generation.
type Heightmap struct {
	Data   []float32
	Width  int
	Height int
}

// Vertex represents a landscape mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds the landscape mesh data ready for GPU upload.
// Positions span [-1,1] on each axis; the model matrix applies the
// world scales.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}
