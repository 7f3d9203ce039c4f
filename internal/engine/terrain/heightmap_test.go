package terrain

import (
	"math/rand"
	"testing"
)

func TestGenerateBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := Generate(129, 129, 0.5, rng)

	if h.Width != 129 || h.Height != 129 {
		t.Fatalf("expected 129x129, got %dx%d", h.Width, h.Height)
	}
	if len(h.Data) != 129*129 {
		t.Fatalf("expected %d samples, got %d", 129*129, len(h.Data))
	}

	lo, hi := h.Data[0], h.Data[0]
	for _, v := range h.Data {
		if v < 0 || v > 1 {
			t.Fatalf("sample %f outside [0,1]", v)
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	// Normalization should use the full range.
	if lo != 0 || hi != 1 {
		t.Errorf("expected normalized range [0,1], got [%f,%f]", lo, hi)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(65, 65, 0.5, rand.New(rand.NewSource(42)))
	b := Generate(65, 65, 0.5, rand.New(rand.NewSource(42)))

	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("same seed should give identical heightmaps, differ at %d", i)
		}
	}

	c := Generate(65, 65, 0.5, rand.New(rand.NewSource(43)))
	same := true
	for i := range a.Data {
		if a.Data[i] != c.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should give different heightmaps")
	}
}

func TestGenerateNonPowerOfTwoSize(t *testing.T) {
	// 100 is not 2^n+1; generation covers with a 129 grid and crops.
	h := Generate(100, 80, 0.5, rand.New(rand.NewSource(3)))

	if h.Width != 100 || h.Height != 80 {
		t.Fatalf("expected 100x80, got %dx%d", h.Width, h.Height)
	}
	for _, v := range h.Data {
		if v < 0 || v > 1 {
			t.Fatalf("sample %f outside [0,1]", v)
		}
	}
}

func TestCoveringSide(t *testing.T) {
	cases := []struct{ need, want int }{
		{2, 3},
		{3, 3},
		{4, 5},
		{100, 129},
		{129, 129},
		{513, 513},
	}
	for _, c := range cases {
		if got := coveringSide(c.need, 2); got != c.want {
			t.Errorf("coveringSide(%d): got %d, want %d", c.need, got, c.want)
		}
	}
}

func TestAltitudeInRange(t *testing.T) {
	// 4x4 grid with cell (1,1) = 0.75; world (-50, 50) maps onto indices
	// (1,1) at scale 100; the denormalized altitude is (2*0.75-1)*10 = 5.
	h := &Heightmap{Data: make([]float32, 16), Width: 4, Height: 4}
	h.Data[1+1*4] = 0.75

	got := h.Altitude(-50, 50, 100, 10)
	if got != 5.0 {
		t.Errorf("altitude at cell (1,1): got %f, want 5.0", got)
	}
}

func TestAltitudeOutOfRange(t *testing.T) {
	h := &Heightmap{Data: make([]float32, 16), Width: 4, Height: 4}
	for i := range h.Data {
		h.Data[i] = 1 // would denormalize to +scaleY if sampled
	}

	// World (150, -150) maps onto indices (5,5), outside the 4x4 grid.
	if got := h.Altitude(150, -150, 100, 10); got != 0 {
		t.Errorf("out-of-range lookup should be 0, got %f", got)
	}
	// Far outside on each axis separately.
	if got := h.Altitude(1e6, 0, 100, 10); got != 0 {
		t.Errorf("expected 0 altitude beyond +x extent, got %f", got)
	}
	if got := h.Altitude(0, -1e6, 100, 10); got != 0 {
		t.Errorf("expected 0 altitude beyond -z extent, got %f", got)
	}
}

func TestAltitudeCenter(t *testing.T) {
	h := &Heightmap{Data: make([]float32, 9), Width: 3, Height: 3}
	h.Data[1+1*3] = 1.0

	// World origin maps to the grid center sample.
	if got := h.Altitude(0, 0, 100, 10); got != 10 {
		t.Errorf("altitude at origin: got %f, want 10", got)
	}
}

func TestAltitudePureFunction(t *testing.T) {
	h := Generate(33, 33, 0.5, rand.New(rand.NewSource(9)))

	a := h.Altitude(12.5, -7.25, 100, 10)
	b := h.Altitude(12.5, -7.25, 100, 10)
	if a != b {
		t.Errorf("altitude lookup should be pure: %f != %f", a, b)
	}

	// Check the documented formula against a manual index computation.
	gx := float32(33>>1) + (12.5/100)*(33.0/2)
	gz := float32(33>>1) - (-7.25/100)*(33.0/2)
	want := (2*h.Data[int(gx)+int(gz)*33] - 1) * 10
	if a != want {
		t.Errorf("altitude: got %f, want %f", a, want)
	}
}
