// Package camera provides the first-person fly camera.
package camera

import (
	gomath "math"

	"github.com/ruddysteph/gl-3D/pkg/math"
)

// KeyState holds the four directional key flags read once per tick.
type KeyState struct {
	Left     bool
	Right    bool
	Forward  bool
	Backward bool
}

// FlyCamera flies over the landscape on the XZ plane with a heading
// angle. Theta of 0 faces -Z; forward motion follows the heading.
type FlyCamera struct {
	X, Z  float32
	Theta float32 // heading, radians

	TurnRate  float32 // radians per second
	MoveRate  float32 // world units per second
	EyeHeight float32 // eye offset above the ground
}

// NewFlyCamera creates a fly camera with the demo's default rates.
func NewFlyCamera() *FlyCamera {
	return &FlyCamera{
		TurnRate:  gomath.Pi,
		MoveRate:  5.0,
		EyeHeight: 2.0,
	}
}

// Tick integrates heading and position from the key flags over dt
// seconds. No collision, no bounds clamping: the camera may leave the
// terrain extent.
func (c *FlyCamera) Tick(dt float64, keys KeyState) {
	if keys.Left {
		c.Theta += float32(dt) * c.TurnRate
	}
	if keys.Right {
		c.Theta -= float32(dt) * c.TurnRate
	}

	sin := float32(gomath.Sin(float64(c.Theta)))
	cos := float32(gomath.Cos(float64(c.Theta)))
	if keys.Forward {
		c.X += -float32(dt) * c.MoveRate * sin
		c.Z += -float32(dt) * c.MoveRate * cos
	}
	if keys.Backward {
		c.X += float32(dt) * c.MoveRate * sin
		c.Z += float32(dt) * c.MoveRate * cos
	}
}

// Eye returns the eye position for the given ground elevation.
func (c *FlyCamera) Eye(groundY float32) math.Vec3 {
	return math.Vec3{X: c.X, Y: groundY + c.EyeHeight, Z: c.Z}
}

// Target returns the look-at point one unit ahead along the heading,
// tilted vertically by the pitch offset.
func (c *FlyCamera) Target(groundY, pitch float32) math.Vec3 {
	sin := float32(gomath.Sin(float64(c.Theta)))
	cos := float32(gomath.Cos(float64(c.Theta)))
	return math.Vec3{
		X: c.X - sin,
		Y: groundY + c.EyeHeight - pitch,
		Z: c.Z - cos,
	}
}

// ViewMatrix returns the look-at view matrix for the current state.
// pitch is the vertical look offset derived from the mouse Y position.
func (c *FlyCamera) ViewMatrix(groundY, pitch float32) math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Eye(groundY), c.Target(groundY, pitch), up)
}
