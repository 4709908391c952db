package renderer

import (
	"math"

	"github.com/pkoziol/go-phong-raytracer/pkg/core"
)

// Camera describes a pinhole camera: its position, the center point of
// the view plane, an up direction, and a horizontal field of view in
// degrees. The renderer never mutates it. Degenerate configurations
// (screen center on top of the position, up parallel to the view
// direction) are not guarded against and produce NaN rays.
type Camera struct {
	Position     core.Vec4
	ScreenCenter core.Vec4
	Up           core.Vec4
	FOV          float64
}

// NewCamera creates a new camera
func NewCamera(position, screenCenter, up core.Vec4, fov float64) *Camera {
	return &Camera{
		Position:     position,
		ScreenCenter: screenCenter,
		Up:           up,
		FOV:          fov,
	}
}

// rayGenerator maps pixel coordinates to primary rays. It fixes the
// right-handed view-plane basis and the world-space pixel step once per
// render so per-pixel work is two axis scales and a normalize.
type rayGenerator struct {
	origin       core.Vec4
	screenCenter core.Vec4
	right        core.Vec4
	up           core.Vec4
	// step is derived from the horizontal FOV only and reused for the
	// vertical axis, so non-square images render with non-square pixels.
	step  float64
	halfW int
	halfH int
}

// newRayGenerator derives the screen basis from the camera. The cross
// product order fixes the handedness and must not change.
func newRayGenerator(camera *Camera, width, height int) rayGenerator {
	centralRay := camera.ScreenCenter.Subtract(camera.Position)

	screenRight := centralRay.Cross3(camera.Up).Normalize()
	screenUp := screenRight.Cross3(centralRay).Normalize()

	fov := camera.FOV * math.Pi / 180
	step := math.Tan(fov/2) * centralRay.Length() / float64(width/2)

	return rayGenerator{
		origin:       camera.Position,
		screenCenter: camera.ScreenCenter,
		right:        screenRight,
		up:           screenUp,
		step:         step,
		halfW:        width / 2,
		halfH:        height / 2,
	}
}

// GetRay returns the normalized primary ray through pixel (i, j)
func (g rayGenerator) GetRay(i, j int) core.Ray {
	x := float64(i - g.halfW)
	y := float64(j - g.halfH)

	pointOnScreen := g.screenCenter.
		Add(g.right.Multiply(x * g.step)).
		Add(g.up.Multiply(y * g.step))

	return core.NewRay(g.origin, pointOnScreen.Subtract(g.origin).Normalize())
}
