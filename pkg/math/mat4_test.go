package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestScaleTransform(t *testing.T) {
	m := Scale(100, 10, 100)
	p := [3]float32{1, 1, -1}
	result := m.TransformPoint(p)

	expected := [3]float32{100, 10, -100}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	p := [3]float32{1, 0, 0}           // Point on X axis
	result := m.TransformPoint(p)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateXQuadReorientation(t *testing.T) {
	// A -90 degree X rotation lays an XY quad flat into the XZ plane.
	m := RotateX(float32(-math.Pi / 2))
	p := [3]float32{1, 1, 0}
	result := m.TransformPoint(p)

	if abs(result[0]-1) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateX -90: got %v, want (1, 0, -1)", result)
	}
}

func TestFrustum(t *testing.T) {
	// The demo's projection: symmetric frustum with aspect-corrected
	// vertical extent.
	w, h := float32(800), float32(600)
	m := Frustum(-0.5, 0.5, -0.5*h/w, 0.5*h/w, 1, 1000)

	// Symmetric frustum: no off-center terms.
	if m[8] != 0 || m[9] != 0 {
		t.Errorf("symmetric frustum should have zero offset terms, got %f, %f", m[8], m[9])
	}
	// Element [11] should be -1 for perspective projection.
	if m[11] != -1 {
		t.Errorf("Frustum [11] should be -1, got %f", m[11])
	}
	// m[0] = 2n/(r-l) = 2, m[5] = 2n/(t-b) = 2*w/h.
	if abs(m[0]-2) > 0.001 {
		t.Errorf("Frustum [0]: got %f, want 2", m[0])
	}
	if abs(m[5]-2*w/h) > 0.001 {
		t.Errorf("Frustum [5]: got %f, want %f", m[5], 2*w/h)
	}
}

func TestFrustumDepthRange(t *testing.T) {
	m := Frustum(-1, 1, -1, 1, 1, 1000)

	// A point on the near plane maps to clip z = -w, far plane to z = +w.
	near := m.MulVec4(Vec4{0, 0, -1, 1})
	if abs(near[2]/near[3]+1) > 0.001 {
		t.Errorf("near plane should map to NDC z=-1, got %f", near[2]/near[3])
	}
	far := m.MulVec4(Vec4{0, 0, -1000, 1})
	if abs(far[2]/far[3]-1) > 0.001 {
		t.Errorf("far plane should map to NDC z=1, got %f", far[2]/far[3])
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)

	m := Perspective(fov, aspect, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
	// The eye maps to the origin in view space.
	p := m.TransformPoint([3]float32{eye.X, eye.Y, eye.Z})
	if abs(p[0]) > 0.001 || abs(p[1]) > 0.001 || abs(p[2]) > 0.001 {
		t.Errorf("LookAt should map eye to origin, got %v", p)
	}
}

func TestMulVec4LightTransform(t *testing.T) {
	// The render pass transforms the light position by the view matrix.
	view := Translate(-10, 0, 0)
	light := view.MulVec4(Vec4{100, 100, 0, 1})

	expected := Vec4{90, 100, 0, 1}
	if light != expected {
		t.Errorf("MulVec4: got %v, want %v", light, expected)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
