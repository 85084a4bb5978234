package render

import (
	"math"
	"testing"

	"github.com/taigrr/glyph3d/pkg/math3d"
	"github.com/taigrr/glyph3d/pkg/models"
)

// facingTriangle is a triangle in the z=0 plane whose outward normal points
// at the viewer (-Z), large enough to cover the center of the screen at
// zoom 1.
func facingTriangle(material int) *models.Mesh {
	m := models.NewMesh("tri")
	m.Vertices = []math3d.Vec3{
		math3d.V3(0, 0.8, 0),
		math3d.V3(-0.8, -0.8, 0),
		math3d.V3(0.8, -0.8, 0),
	}
	m.Faces = []models.Face{{V: [3]int{0, 2, 1}, Material: material}}
	return m
}

// headOnLight shines from the viewer's position, camera-locked.
func headOnLight() Light {
	return NewLight(math3d.V3(0, 0, -1), false)
}

func countDrawn(b *Buffer) int {
	n := 0
	for row := range b.Rows {
		for col := range b.Cols {
			if b.At(col, row).Char != ' ' {
				n++
			}
		}
	}
	return n
}

func TestRenderFrontFace(t *testing.T) {
	mesh := facingTriangle(-1)
	buf := NewBuffer(20, 10)
	r := NewRenderer(NewCamera(1), headOnLight())

	r.Render(mesh, buf)

	if countDrawn(buf) == 0 {
		t.Fatal("front-facing triangle drew no cells")
	}
	// Lit head-on: every covered cell carries the brightest ramp character.
	center := buf.At(buf.Cols/2, buf.Rows/2)
	if center.Char != '@' {
		t.Errorf("center cell = %q, want brightest ramp char '@'", center.Char)
	}
}

func TestRenderBackfaceCulled(t *testing.T) {
	mesh := facingTriangle(-1)
	mesh.FlipFaces() // normal now points away from the viewer
	buf := NewBuffer(20, 10)
	r := NewRenderer(NewCamera(1), headOnLight())

	r.Render(mesh, buf)

	if n := countDrawn(buf); n != 0 {
		t.Errorf("back-facing triangle drew %d cells, want 0", n)
	}
}

func TestRenderCarriesMaterial(t *testing.T) {
	mesh := facingTriangle(3)
	buf := NewBuffer(20, 10)
	r := NewRenderer(NewCamera(1), headOnLight())

	r.Render(mesh, buf)

	if got := buf.At(buf.Cols/2, buf.Rows/2).Material; got != 3 {
		t.Errorf("center cell material = %d, want 3", got)
	}
}

func TestRenderLightModes(t *testing.T) {
	// A camera-locked light from behind the scene (+Z) hits only the far
	// side, so the visible face reads darkest.
	mesh := facingTriangle(-1)
	buf := NewBuffer(20, 10)
	r := NewRenderer(NewCamera(1), NewLight(math3d.V3(0, 0, 1), false))

	r.Render(mesh, buf)

	if got := buf.At(buf.Cols/2, buf.Rows/2).Char; got != '.' {
		t.Errorf("back-lit face = %q, want darkest ramp char '.'", got)
	}

	// Orbit a third of a half turn: the face stays visible, but its
	// camera-space normal no longer matches the world normal. A static
	// light keeps shading off the world normal, so the face stays at full
	// brightness; a camera-locked one sees the tilted normal and dims.
	dir := math3d.V3(0, 0, -1)
	for _, tc := range []struct {
		name   string
		static bool
		want   rune
	}{
		{"static stays bright", true, '@'},
		{"camera-locked dims", false, '*'},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera(1)
			cam.RotateLeft(math.Pi / 3)
			ro := NewRenderer(cam, NewLight(dir, tc.static))
			b := NewBuffer(20, 10)

			ro.Render(mesh, b)

			if countDrawn(b) == 0 {
				t.Fatal("orbited camera sees no cells")
			}
			if got := b.At(b.Cols/2, b.Rows/2).Char; got != tc.want {
				t.Errorf("center cell = %q, want %q", got, tc.want)
			}
		})
	}
}

// unitCube is an axis-aligned cube with CCW-from-outside winding, vertices
// at ±0.5.
func unitCube() *models.Mesh {
	m := models.NewMesh("cube")
	m.Vertices = []math3d.Vec3{
		math3d.V3(-0.5, -0.5, -0.5),
		math3d.V3(0.5, -0.5, -0.5),
		math3d.V3(0.5, 0.5, -0.5),
		math3d.V3(-0.5, 0.5, -0.5),
		math3d.V3(-0.5, -0.5, 0.5),
		math3d.V3(0.5, -0.5, 0.5),
		math3d.V3(0.5, 0.5, 0.5),
		math3d.V3(-0.5, 0.5, 0.5),
	}
	for _, q := range [][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{3, 7, 6, 2}, // +Y
		{0, 1, 5, 4}, // -Y
	} {
		m.Faces = append(m.Faces,
			models.Face{V: [3]int{q[0], q[1], q[2]}, Material: -1},
			models.Face{V: [3]int{q[0], q[2], q[3]}, Material: -1},
		)
	}
	return m
}

func TestRenderCubeScenario(t *testing.T) {
	// Default orientation, static light along the view axis: only the front
	// face can contribute pixels (the back face is culled, the others are
	// edge-on), it covers the middle of the screen, and it is lit head-on.
	mesh := unitCube()
	buf := NewBuffer(40, 20)
	r := NewRenderer(NewCamera(1), NewLight(math3d.V3(0, 0, -1), true))

	r.Render(mesh, buf)

	if buf.At(buf.Cols/2, buf.Rows/2).Char != '@' {
		t.Errorf("center cell = %q, want brightest ramp char '@'",
			buf.At(buf.Cols/2, buf.Rows/2).Char)
	}
	for row := range buf.Rows {
		for col := range buf.Cols {
			if px := buf.At(col, row); px.Char != ' ' && px.Char != '@' {
				t.Fatalf("cell (%d,%d) = %q; only the head-on front face may draw", col, row, px.Char)
			}
		}
	}
	for _, corner := range [][2]int{{0, 0}, {buf.Cols - 1, 0}, {0, buf.Rows - 1}, {buf.Cols - 1, buf.Rows - 1}} {
		if px := buf.At(corner[0], corner[1]); px.Char != ' ' {
			t.Errorf("corner cell (%d,%d) = %q, want blank", corner[0], corner[1], px.Char)
		}
	}
}

func TestShade(t *testing.T) {
	r := NewRenderer(NewCamera(1), NewLight(math3d.V3(0, 0, -1), false))

	tests := []struct {
		name   string
		normal math3d.Vec3
		want   rune
	}{
		{"toward light", math3d.V3(0, 0, -1), '@'},
		{"away from light", math3d.V3(0, 0, 1), '.'},
		{"orthogonal", math3d.V3(1, 0, 0), '='},
		{"unnormalized input", math3d.V3(0, 0, -42), '@'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Shade(tc.normal); got != tc.want {
				t.Errorf("Shade(%v) = %q, want %q", tc.normal, got, tc.want)
			}
		})
	}
}

func TestShadeEmptyRamp(t *testing.T) {
	r := &Renderer{Light: DefaultLight(), Ramp: nil}
	if got := r.Shade(math3d.V3(0, 0, -1)); got != ' ' {
		t.Errorf("empty ramp Shade = %q, want blank", got)
	}
}
