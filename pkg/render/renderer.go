package render

import (
	"math"

	"github.com/taigrr/glyph3d/pkg/math3d"
	"github.com/taigrr/glyph3d/pkg/models"
)

// DefaultRamp orders characters by apparent brightness, darkest first.
// There is no blank entry, so a lit face never disappears into the
// background.
const DefaultRamp = ".,-~:;=!*#$@"

// Renderer turns a mesh into projected triangles and composites them into a
// Buffer. The viewer sits on the negative Z axis looking toward positive Z;
// the camera orbit is applied to the mesh, not the viewpoint.
type Renderer struct {
	Camera *Camera
	Light  Light
	Ramp   []rune
}

// NewRenderer creates a renderer with the default luminance ramp.
func NewRenderer(cam *Camera, light Light) *Renderer {
	return &Renderer{
		Camera: cam,
		Light:  light,
		Ramp:   []rune(DefaultRamp),
	}
}

// Render draws every front-facing triangle of mesh into buf. The buffer is
// not cleared first, so several meshes can share one frame.
func (r *Renderer) Render(mesh *models.Mesh, buf *Buffer) {
	for i := range mesh.Faces {
		f := mesh.Faces[i]

		v1 := r.Camera.Transform(mesh.Vertices[f.V[0]])
		v2 := r.Camera.Transform(mesh.Vertices[f.V[1]])
		v3 := r.Camera.Transform(mesh.Vertices[f.V[2]])

		// Outward normal in camera space. A positive Z component means the
		// face points away from the viewer at -Z.
		normal := v2.Sub(v1).Cross(v3.Sub(v1))
		if normal.Z > 0 {
			continue
		}

		shadeNormal := normal
		if r.Light.Static {
			// A static light shades against the world-space normal, so the
			// lit side stays put while the camera orbits.
			shadeNormal = mesh.FaceNormal(i)
		}

		proj := Projection{
			P1:       buf.ToScreen(v1, r.Camera.Zoom),
			P2:       buf.ToScreen(v2, r.Camera.Zoom),
			P3:       buf.ToScreen(v3, r.Camera.Zoom),
			Char:     r.Shade(shadeNormal),
			Material: f.Material,
		}
		buf.DrawProjection(&proj)
	}
}

// Shade picks the ramp character for a surface normal: the cosine between
// the normal and the light direction, mapped from [-1,1] onto the full
// ramp. Faces turned fully away still get the darkest character.
func (r *Renderer) Shade(normal math3d.Vec3) rune {
	if len(r.Ramp) == 0 {
		return ' '
	}
	intensity := (math3d.CosineSimilarity(normal, r.Light.Direction) + 1) * 0.5
	idx := int(math.Round(intensity * float64(len(r.Ramp)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(r.Ramp) {
		idx = len(r.Ramp) - 1
	}
	return r.Ramp[idx]
}
