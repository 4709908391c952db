package core

// Ray represents a ray with an origin point and a normalized direction
type Ray struct {
	Origin    Vec4
	Direction Vec4
}

// NewRay creates a new ray
func NewRay(origin, direction Vec4) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec4 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
