package terrain

import (
	"math/rand"
)

// Generate builds a fractal heightmap with the midpoint-displacement
// (diamond-square) algorithm. Displacement amplitude shrinks by the
// roughness factor at each subdivision level. The algorithm needs a
// (2^n+1) square grid, so the requested size is covered by the next
// such grid and cropped. Output samples are normalized to [0,1] and
// deterministic for a given rng.
func Generate(width, height int, roughness float64, rng *rand.Rand) *Heightmap {
	side := coveringSide(width, height)
	grid := make([]float64, side*side)

	// Seed the four corners.
	grid[0] = rng.Float64()
	grid[side-1] = rng.Float64()
	grid[(side-1)*side] = rng.Float64()
	grid[(side-1)*side+side-1] = rng.Float64()

	amp := 0.5
	for step := side - 1; step > 1; step /= 2 {
		half := step / 2

		// Diamond step: center of each square from its four corners.
		for z := half; z < side; z += step {
			for x := half; x < side; x += step {
				avg := (grid[(z-half)*side+x-half] +
					grid[(z-half)*side+x+half] +
					grid[(z+half)*side+x-half] +
					grid[(z+half)*side+x+half]) / 4
				grid[z*side+x] = avg + (rng.Float64()*2-1)*amp
			}
		}

		// Square step: edge midpoints from their diamond neighbors.
		for z := 0; z < side; z += half {
			for x := (z + half) % step; x < side; x += step {
				var sum float64
				var n int
				if x >= half {
					sum += grid[z*side+x-half]
					n++
				}
				if x+half < side {
					sum += grid[z*side+x+half]
					n++
				}
				if z >= half {
					sum += grid[(z-half)*side+x]
					n++
				}
				if z+half < side {
					sum += grid[(z+half)*side+x]
					n++
				}
				grid[z*side+x] = sum/float64(n) + (rng.Float64()*2-1)*amp
			}
		}

		amp *= roughness
	}

	return cropNormalized(grid, side, width, height)
}

// coveringSide returns the smallest 2^n+1 covering both dimensions.
func coveringSide(width, height int) int {
	need := width
	if height > need {
		need = height
	}
	side := 2
	for side+1 < need {
		side *= 2
	}
	return side + 1
}

// cropNormalized rescales the grid to [0,1] and crops it to width x height.
func cropNormalized(grid []float64, side, width, height int) *Heightmap {
	lo, hi := grid[0], grid[0]
	for _, v := range grid {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	data := make([]float32, width*height)
	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			data[z*width+x] = float32((grid[z*side+x] - lo) / span)
		}
	}

	return &Heightmap{Data: data, Width: width, Height: height}
}

// Altitude returns the world-space elevation under world coordinates
// (x, z). The lookup maps world space onto the grid using the configured
// scales and reads the nearest (truncated) sample; coordinates mapping
// outside the grid yield a flat altitude of 0.
//
// This is a point sample, not an interpolation. The exact altitude
// between three surrounding vertices would come from the plane equation
// of their triangle (its normal gives the a, b, c coefficients of
// ax+by+cz+d=0); a ground-hugging walker would need that, the fly
// camera does not.
func (h *Heightmap) Altitude(x, z, scaleXZ, scaleY float32) float32 {
	gx := float32(h.Width>>1) + (x/scaleXZ)*(float32(h.Width)/2)
	gz := float32(h.Height>>1) - (z/scaleXZ)*(float32(h.Height)/2)
	if gx >= 0 && gx < float32(h.Width) && gz >= 0 && gz < float32(h.Height) {
		return (2*h.Data[int(gx)+int(gz)*h.Width] - 1) * scaleY
	}
	return 0
}

// At returns the raw normalized sample at grid indices (x, z).
func (h *Heightmap) At(x, z int) float32 {
	return h.Data[z*h.Width+x]
}
