package core

import (
	"math"
	"testing"
)

func TestNewPointAndDirectionHomogeneous(t *testing.T) {
	p := NewPoint(1, 2, 3)
	if p.W != 1 {
		t.Errorf("Expected point W=1, got %v", p.W)
	}

	d := NewDirection(1, 2, 3)
	if d.W != 0 {
		t.Errorf("Expected direction W=0, got %v", d.W)
	}

	// The difference of two points is a free direction
	diff := NewPoint(4, 5, 6).Subtract(NewPoint(1, 1, 1))
	if diff.W != 0 {
		t.Errorf("Expected point difference W=0, got %v", diff.W)
	}
}

func TestVec4DotIncludesHomogeneousComponent(t *testing.T) {
	a := NewPoint(1, 2, 3)
	b := NewPoint(4, 5, 6)

	// 4 + 10 + 18 + 1*1
	if got := a.Dot(b); math.Abs(got-33) > 1e-12 {
		t.Errorf("Expected point dot 33, got %v", got)
	}

	// Pure directions are unaffected by the homogeneous slot
	da := NewDirection(1, 2, 3)
	db := NewDirection(4, 5, 6)
	if got := da.Dot(db); math.Abs(got-32) > 1e-12 {
		t.Errorf("Expected direction dot 32, got %v", got)
	}
}

func TestVec4Cross3RightHanded(t *testing.T) {
	x := NewDirection(1, 0, 0)
	y := NewDirection(0, 1, 0)

	z := x.Cross3(y)
	expected := NewDirection(0, 0, 1)
	if z != expected {
		t.Errorf("Expected x cross y = %v, got %v", expected, z)
	}

	// Anti-commutative
	negZ := y.Cross3(x)
	if negZ != NewDirection(0, 0, -1) {
		t.Errorf("Expected y cross x = -z, got %v", negZ)
	}
}

func TestVec4Cross3ZeroesHomogeneous(t *testing.T) {
	// Even when fed points, the cross product result is a free direction
	a := NewPoint(1, 2, 3)
	b := NewPoint(4, 5, 6)
	if got := a.Cross3(b); got.W != 0 {
		t.Errorf("Expected cross product W=0, got %v", got.W)
	}
}

func TestVec4Normalize(t *testing.T) {
	v := NewDirection(3, 4, 0)
	n := v.Normalize()

	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %v", n.Length())
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", n)
	}
	if n.W != 0 {
		t.Errorf("Expected normalized direction W=0, got %v", n.W)
	}
}

func TestVec4NormalizeZeroVector(t *testing.T) {
	if got := (Vec4{}).Normalize(); got != (Vec4{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", got)
	}
}

func TestVec4AddSubtractMultiply(t *testing.T) {
	a := NewDirection(1, 2, 3)
	b := NewDirection(4, 5, 6)

	if got := a.Add(b); got != NewDirection(5, 7, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Subtract(a); got != NewDirection(3, 3, 3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); got != NewDirection(2, 4, 6) {
		t.Errorf("Multiply: got %v", got)
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewPoint(0, 0, 0), NewDirection(0, 0, -1))
	p := ray.At(5)

	if p != NewPoint(0, 0, -5) {
		t.Errorf("Expected point (0,0,-5) with W=1, got %v", p)
	}
}
