package scene

import (
	"github.com/pkoziol/go-phong-raytracer/pkg/core"
	"github.com/pkoziol/go-phong-raytracer/pkg/geometry"
	"github.com/pkoziol/go-phong-raytracer/pkg/renderer"
)

// NewDefaultScene creates a scene with three spheres and two colored
// lights, camera at the origin looking down -Z.
func NewDefaultScene() *Scene {
	camera := renderer.NewCamera(
		core.NewPoint(0, 0, 0),  // position
		core.NewPoint(0, 0, -1), // screen center
		core.NewDirection(0, 1, 0),
		60.0,
	)

	spheres := []*geometry.Sphere{
		geometry.NewSphere(core.NewPoint(0, 0, -6), 1.5, core.NewColor(0.9, 0.2, 0.2)),
		geometry.NewSphere(core.NewPoint(-2.5, -0.5, -8), 1.0, core.NewColor(0.2, 0.8, 0.3)),
		geometry.NewSphere(core.NewPoint(2.5, 1.0, -9), 1.2, core.NewColor(0.25, 0.35, 0.9)),
	}

	lights := []geometry.Light{
		geometry.NewLight(core.NewPoint(5, 5, 0), core.NewColor(1, 1, 1)),
		geometry.NewLight(core.NewPoint(-6, 2, -2), core.NewColor(0.4, 0.4, 0.6)),
	}

	return &Scene{Camera: camera, Spheres: spheres, Lights: lights}
}

// NewTwoSphereScene creates a scene with two overlapping spheres and a
// single white light, useful for exercising nearest-hit selection.
func NewTwoSphereScene() *Scene {
	camera := renderer.NewCamera(
		core.NewPoint(0, 0, 0),
		core.NewPoint(0, 0, -1),
		core.NewDirection(0, 1, 0),
		45.0,
	)

	spheres := []*geometry.Sphere{
		geometry.NewSphere(core.NewPoint(-0.7, 0, -5), 1.0, core.NewColor(0.9, 0.6, 0.1)),
		geometry.NewSphere(core.NewPoint(0.7, 0, -6), 1.3, core.NewColor(0.3, 0.6, 0.9)),
	}

	lights := []geometry.Light{
		geometry.NewLight(core.NewPoint(0, 8, 0), core.NewColor(1, 1, 1)),
	}

	return &Scene{Camera: camera, Spheres: spheres, Lights: lights}
}

// NewHeadOnScene creates the minimal benchmark scene: one sphere on the
// view axis and a white light at the camera.
func NewHeadOnScene() *Scene {
	camera := renderer.NewCamera(
		core.NewPoint(0, 0, 0),
		core.NewPoint(0, 0, -1),
		core.NewDirection(0, 1, 0),
		30.0,
	)

	spheres := []*geometry.Sphere{
		geometry.NewSphere(core.NewPoint(0, 0, -5), 1.0, core.NewColor(0.8, 0.8, 0.8)),
	}

	lights := []geometry.Light{
		geometry.NewLight(core.NewPoint(0, 0, 0), core.NewColor(1, 1, 1)),
	}

	return &Scene{Camera: camera, Spheres: spheres, Lights: lights}
}
