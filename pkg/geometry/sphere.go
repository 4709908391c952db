package geometry

import (
	"math"

	"github.com/pkoziol/go-phong-raytracer/pkg/core"
)

// Intersection describes where a ray meets a sphere: the parametric
// distance along the ray and the section point itself.
type Intersection struct {
	T     float64
	Point core.Vec4
}

// Sphere represents a sphere with a flat surface color
type Sphere struct {
	Center core.Vec4
	Radius float64
	Color  core.Color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec4, radius float64, color core.Color) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Intersect tests if a ray intersects the sphere. Intersections behind
// the ray origin count as misses, so the reported distance is always
// non-negative.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, fall back to the farther one
	root := (-halfB - sqrtD) / a
	if root < 0 {
		root = (-halfB + sqrtD) / a
		if root < 0 {
			return Intersection{}, false
		}
	}

	return Intersection{T: root, Point: ray.At(root)}, true
}

// NormalAt returns the outward unit normal at a point on the sphere surface
func (s *Sphere) NormalAt(point core.Vec4) core.Vec4 {
	return point.Subtract(s.Center).Multiply(1.0 / s.Radius)
}
