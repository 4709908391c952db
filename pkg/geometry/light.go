package geometry

import "github.com/pkoziol/go-phong-raytracer/pkg/core"

// Light is a point light source. Lights are read-only during a render.
type Light struct {
	Position core.Vec4
	Color    core.Color
}

// NewLight creates a new point light
func NewLight(position core.Vec4, color core.Color) Light {
	return Light{Position: position, Color: color}
}
