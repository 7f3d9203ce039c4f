package camera

import (
	gomath "math"
	"testing"
)

func TestTickNoFlags(t *testing.T) {
	c := NewFlyCamera()
	c.X, c.Z, c.Theta = 3, -7, 1.2

	for _, dt := range []float64{0, 0.001, 0.016, 1.5} {
		c.Tick(dt, KeyState{})
		if c.X != 3 || c.Z != -7 || c.Theta != 1.2 {
			t.Fatalf("tick with no flags must not move the camera, got (%f, %f, %f)", c.X, c.Z, c.Theta)
		}
	}
}

func TestTickRotationRate(t *testing.T) {
	c := NewFlyCamera()
	c.X, c.Z = 50, -20

	dt := 0.25
	c.Tick(dt, KeyState{Left: true})
	want := float32(dt) * float32(gomath.Pi)
	if diff := c.Theta - want; diff < -1e-6 || diff > 1e-6 {
		t.Errorf("left rotation: theta %f, want %f", c.Theta, want)
	}
	// Rotation must not touch position.
	if c.X != 50 || c.Z != -20 {
		t.Errorf("rotation moved the camera to (%f, %f)", c.X, c.Z)
	}

	c.Tick(dt, KeyState{Right: true})
	if diff := c.Theta; diff < -1e-6 || diff > 1e-6 {
		t.Errorf("opposite rotations should cancel, theta %f", diff)
	}
}

func TestTickTranslation(t *testing.T) {
	c := NewFlyCamera()
	theta := float32(0.8)
	c.Theta = theta

	dt := 0.5
	c.Tick(dt, KeyState{Forward: true})

	wantX := -float32(dt) * 5 * float32(gomath.Sin(float64(theta)))
	wantZ := -float32(dt) * 5 * float32(gomath.Cos(float64(theta)))
	if !close(c.X, wantX) || !close(c.Z, wantZ) {
		t.Errorf("forward: got (%f, %f), want (%f, %f)", c.X, c.Z, wantX, wantZ)
	}
	if c.Theta != theta {
		t.Errorf("translation changed heading to %f", c.Theta)
	}

	c.Tick(dt, KeyState{Backward: true})
	if !close(c.X, 0) || !close(c.Z, 0) {
		t.Errorf("backward should undo forward, got (%f, %f)", c.X, c.Z)
	}
}

func TestTickForwardAlongMinusZ(t *testing.T) {
	// Heading 0 faces -Z, so forward motion decreases Z only.
	c := NewFlyCamera()
	c.Tick(1.0, KeyState{Forward: true})

	if !close(c.X, 0) {
		t.Errorf("heading 0 forward should not change X, got %f", c.X)
	}
	if !close(c.Z, -5) {
		t.Errorf("heading 0 forward for 1s should give Z=-5, got %f", c.Z)
	}
}

func TestEyeAndTarget(t *testing.T) {
	c := NewFlyCamera()
	c.X, c.Z = 10, 20

	eye := c.Eye(3)
	if eye.X != 10 || eye.Y != 5 || eye.Z != 20 {
		t.Errorf("eye: got %v, want (10, 5, 20)", eye)
	}

	// Heading 0: target one unit toward -Z, pitched down by 0.25.
	target := c.Target(3, 0.25)
	if !close(target.X, 10) || !close(target.Y, 4.75) || !close(target.Z, 19) {
		t.Errorf("target: got %v, want (10, 4.75, 19)", target)
	}
}

func TestViewMatrixFinite(t *testing.T) {
	c := NewFlyCamera()
	c.X, c.Z, c.Theta = 1, 2, 0.3

	m := c.ViewMatrix(0, 0.1)
	if m[15] != 1 {
		t.Errorf("view matrix [15] should be 1, got %f", m[15])
	}
	// The eye must map to the view-space origin.
	eye := c.Eye(0)
	p := m.TransformPoint([3]float32{eye.X, eye.Y, eye.Z})
	for i, v := range p {
		if v < -1e-4 || v > 1e-4 {
			t.Errorf("eye should map to origin, component %d = %f", i, v)
		}
	}
}

func close(a, b float32) bool {
	d := a - b
	return d > -1e-5 && d < 1e-5
}
