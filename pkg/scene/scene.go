package scene

import (
	"fmt"
	"sort"

	"github.com/pkoziol/go-phong-raytracer/pkg/geometry"
	"github.com/pkoziol/go-phong-raytracer/pkg/renderer"
)

// Scene bundles a camera with the spheres and lights it renders. The
// renderer borrows these for the duration of a render and never
// mutates them.
type Scene struct {
	Camera  *renderer.Camera
	Spheres []*geometry.Sphere
	Lights  []geometry.Light
}

// NewRaytracer creates a raytracer over this scene
func (s *Scene) NewRaytracer() *renderer.Raytracer {
	return renderer.NewRaytracer(s.Camera, s.Spheres, s.Lights)
}

var constructors = map[string]func() *Scene{
	"default":     NewDefaultScene,
	"two-spheres": NewTwoSphereScene,
	"head-on":     NewHeadOnScene,
}

// ByName returns the scene registered under name
func ByName(name string) (*Scene, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names lists the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
