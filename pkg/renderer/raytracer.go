package renderer

import (
	"math"
	"runtime"

	"github.com/pkoziol/go-phong-raytracer/pkg/core"
	"github.com/pkoziol/go-phong-raytracer/pkg/geometry"
)

// Phong shading constants, shared by every sphere in the scene
const (
	ka = 0.1 // ambient
	kd = 0.6 // diffuse
	ks = 0.3 // specular
	m  = 8.0 // specular exponent
)

// Raytracer renders a scene of spheres under Phong illumination. It
// borrows the camera, sphere list and light list for the duration of a
// render and never mutates them, so a single Raytracer is safe to use
// from every worker at once.
type Raytracer struct {
	camera     *Camera
	spheres    []*geometry.Sphere
	lights     []geometry.Light
	numWorkers int
	progress   func(columnsDone, totalColumns int)
}

// NewRaytracer creates a new raytracer for the given camera, spheres and lights
func NewRaytracer(camera *Camera, spheres []*geometry.Sphere, lights []geometry.Light) *Raytracer {
	return &Raytracer{
		camera:     camera,
		spheres:    spheres,
		lights:     lights,
		numWorkers: runtime.NumCPU(),
	}
}

// SetNumWorkers sets the worker count for the parallel strategy.
// Non-positive values keep the default of runtime.NumCPU().
func (rt *Raytracer) SetNumWorkers(n int) {
	if n > 0 {
		rt.numWorkers = n
	}
}

// SetProgressFunc installs a callback invoked as column chunks finish.
// The parallel strategy may invoke it from multiple goroutines.
func (rt *Raytracer) SetProgressFunc(fn func(columnsDone, totalColumns int)) {
	rt.progress = fn
}

// nearestHit scans every sphere and keeps the smallest non-negative
// intersection distance. The strict < comparison means the earliest
// sphere in the list wins ties, which keeps renders deterministic.
func (rt *Raytracer) nearestHit(ray core.Ray) (*geometry.Sphere, geometry.Intersection, bool) {
	zBuffer := math.MaxFloat64
	var nearest *geometry.Sphere
	var section geometry.Intersection

	for _, sphere := range rt.spheres {
		hit, ok := sphere.Intersect(ray)
		if !ok {
			continue
		}
		if hit.T < zBuffer {
			zBuffer = hit.T
			nearest = sphere
			section = hit
		}
	}

	return nearest, section, nearest != nil
}

// cosineBetween returns the cosine of the angle between a and b,
// optionally clamped at zero. The unclamped form feeds the reflection
// vector, the clamped form feeds the diffuse and specular terms.
func cosineBetween(a, b core.Vec4, clamp bool) float64 {
	cos := a.Dot(b) / a.Length() / b.Length()
	if clamp && cos < 0 {
		cos = 0
	}
	return cos
}

// shade computes the Phong color at a section point on a sphere:
// an ambient base plus a diffuse and specular contribution per light.
// The sum is unclamped and may exceed displayable range.
func (rt *Raytracer) shade(section core.Vec4, sphere *geometry.Sphere) core.Color {
	c := sphere.Color.Scale(ka)
	normal := sphere.NormalAt(section)

	for _, light := range rt.lights {
		lightDir := light.Position.Subtract(section).Normalize()
		reflected := normal.Multiply(2 * cosineBetween(normal, lightDir, false)).Subtract(lightDir)

		diffuse := kd * cosineBetween(normal, lightDir, true)

		observer := rt.camera.Position.Subtract(section).Normalize()
		specular := ks * math.Pow(cosineBetween(observer, reflected, true), m)

		c = c.Add(light.Color.MultiplyColor(sphere.Color).Scale(diffuse + specular))
	}

	return c
}

// renderPixel traces the primary ray for (i, j) and writes the shaded
// color of the nearest hit. Missed pixels are never written and stay at
// the image background.
func (rt *Raytracer) renderPixel(gen rayGenerator, img *Image, i, j int) {
	ray := gen.GetRay(i, j)
	sphere, hit, ok := rt.nearestHit(ray)
	if !ok {
		return
	}
	img.Set(i, j, rt.shade(hit.Point, sphere))
}

func (rt *Raytracer) reportProgress(columnsDone, totalColumns int) {
	if rt.progress != nil {
		rt.progress(columnsDone, totalColumns)
	}
}
