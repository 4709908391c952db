package core

import "math"

// Vec4 represents a homogeneous 4-component vector. Points carry W=1,
// free directions carry W=0. Dot includes the homogeneous component, so
// any vector used as a direction must be built as a difference of two
// points or constructed with NewDirection; a stray W pollutes every
// cosine computed from it.
type Vec4 struct {
	X, Y, Z, W float64
}

// NewPoint creates a position vector with homogeneous coordinate 1.
func NewPoint(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// NewDirection creates a free direction vector with homogeneous coordinate 0.
func NewDirection(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 0}
}

// Add returns the sum of two vectors
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Subtract returns the difference of two vectors
func (v Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Multiply returns the vector scaled by a scalar
func (v Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// Dot returns the dot product over all four components
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude of the vector
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Cross3 returns the cross product of the first three components.
// The result is a free direction (W=0).
func (v Vec4) Cross3(other Vec4) Vec4 {
	return Vec4{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
		W: 0,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	if length == 0 {
		return Vec4{}
	}
	return Vec4{v.X / length, v.Y / length, v.Z / length, v.W / length}
}
