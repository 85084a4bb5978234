package render

import "github.com/taigrr/glyph3d/pkg/math3d"

// Light is a single directional light. Direction points from the scene
// toward the light source, so a face lit head-on has a normal parallel to
// Direction.
type Light struct {
	Direction math3d.Vec3
	// Static pins the light in world space, so shading stays constant while
	// the camera orbits. When false the light rides with the camera and the
	// lit side always faces the viewer.
	Static bool
}

// NewLight creates a light shining from dir (normalized; a zero vector is
// kept as-is and shades everything mid-ramp).
func NewLight(dir math3d.Vec3, static bool) Light {
	return Light{Direction: dir.Normalize(), Static: static}
}

// DefaultLight is a static light from the upper left, slightly in front of
// the scene.
func DefaultLight() Light {
	return NewLight(math3d.V3(-0.75, 1, 0.5), true)
}
