package render

import (
	"math"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// Camera control constants.
const (
	// AngleStep is the per-press rotation step.
	AngleStep = 5 * math.Pi / 180

	// DefaultZoom shows a normalized, Scale(3)-sized mesh at roughly half
	// the viewport height.
	DefaultZoom = 0.5
	ZoomStep    = 0.1
	ZoomMin     = 0.1
	ZoomMax     = 10.0

	// maxAltitude keeps the orbit strictly off the poles, where the
	// camera's up vector degenerates.
	maxAltitude = math.Pi/2 - 0.01
)

// Camera is an orbital viewpoint: two orbit angles and a zoom scalar,
// always facing the origin. It never reads geometry; its state reaches the
// output only through the transform the renderer applies to every vertex.
type Camera struct {
	Azimuth  float64 // Orbit around the vertical axis, radians, [0, 2π)
	Altitude float64 // Orbit around the horizontal axis, radians, |alt| < π/2
	Zoom     float64 // View scale factor, strictly positive
}

// NewCamera creates a camera at azimuth 0, altitude 0 and the given zoom.
// Out-of-range values are clamped, never rejected.
func NewCamera(zoom float64) *Camera {
	return &Camera{Zoom: clamp(zoom, ZoomMin, ZoomMax)}
}

// RotateLeft orbits left by rad.
func (c *Camera) RotateLeft(rad float64) {
	c.Azimuth = wrapAngle(c.Azimuth + rad)
}

// RotateRight orbits right by rad.
func (c *Camera) RotateRight(rad float64) {
	c.Azimuth = wrapAngle(c.Azimuth - rad)
}

// RotateUp orbits up by rad, clamped strictly inside +90 degrees.
func (c *Camera) RotateUp(rad float64) {
	c.Altitude = math.Min(c.Altitude+rad, maxAltitude)
}

// RotateDown orbits down by rad, clamped strictly inside -90 degrees.
func (c *Camera) RotateDown(rad float64) {
	c.Altitude = math.Max(c.Altitude-rad, -maxAltitude)
}

// ZoomIn moves the viewpoint closer by one step.
func (c *Camera) ZoomIn() {
	c.Zoom = math.Min(c.Zoom+ZoomStep, ZoomMax)
}

// ZoomOut moves the viewpoint away by one step. The zoom never reaches
// zero, so the viewpoint cannot collapse onto the object.
func (c *Camera) ZoomOut() {
	c.Zoom = math.Max(c.Zoom-ZoomStep, ZoomMin)
}

// Transform returns v in camera space: the world rotated opposite to the
// camera's orbit, azimuth first, then altitude.
func (c *Camera) Transform(v math3d.Vec3) math3d.Vec3 {
	return v.RotateY(-c.Azimuth).RotateX(-c.Altitude)
}

// wrapAngle normalizes rad into [0, 2π).
func wrapAngle(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
