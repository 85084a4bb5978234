// Package models provides triangle mesh loading and representation for glyph3d.
package models

import (
	"github.com/taigrr/glyph3d/pkg/math3d"
)

// Mesh represents a 3D model: vertex list, triangular face list, material list.
// It is populated once by a loader, adjusted by the setup transforms below,
// and read-only for the rest of execution.
type Mesh struct {
	Name      string
	Vertices  []math3d.Vec3
	Faces     []Face
	Materials []Material
}

// Face is a triangle. Vertex order encodes the winding: counter-clockwise
// seen from outside, so the outward normal follows the right-hand rule.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material holds a diffuse reflectance color, components in [0,1].
type Material struct {
	Name    string
	Diffuse math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// MaterialCount returns the number of materials.
func (m *Mesh) MaterialCount() int {
	return len(m.Materials)
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// FaceNormal returns the outward unit normal of face i, derived from the
// winding order.
func (m *Mesh) FaceNormal(i int) math3d.Vec3 {
	f := m.Faces[i]
	v0 := m.Vertices[f.V[0]]
	e1 := m.Vertices[f.V[1]].Sub(v0)
	e2 := m.Vertices[f.V[2]].Sub(v0)
	return e1.Cross(e2).Normalize()
}

// FaceCentroid returns the centroid of face i.
func (m *Mesh) FaceCentroid(i int) math3d.Vec3 {
	f := m.Faces[i]
	return m.Vertices[f.V[0]].
		Add(m.Vertices[f.V[1]]).
		Add(m.Vertices[f.V[2]]).
		Scale(1.0 / 3.0)
}

// Normalize recenters the mesh at the origin and uniformly rescales it so the
// longest bounding-box dimension equals 1. The result is independent of the
// source file's original units.
func (m *Mesh) Normalize() {
	if len(m.Vertices) == 0 {
		return
	}

	min, max := m.Bounds()
	center := min.Add(max).Scale(0.5)
	size := max.Sub(min)

	longest := 1e-6
	for _, d := range []float64{size.X, size.Y, size.Z} {
		if d > longest {
			longest = d
		}
	}

	inv := 1.0 / longest
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Sub(center).Scale(inv)
	}
}

// Scale multiplies every vertex by factor uniformly.
func (m *Mesh) Scale(factor float64) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Scale(factor)
	}
}

// FlipFaces reverses the winding of every face without touching vertex
// positions, flipping the sign of every derived normal.
func (m *Mesh) FlipFaces() {
	for i := range m.Faces {
		m.Faces[i].V[1], m.Faces[i].V[2] = m.Faces[i].V[2], m.Faces[i].V[1]
	}
}

// InvertX negates the X coordinate of every vertex. Mirroring inverts
// handedness, so the winding is reversed too, keeping outward normals outward.
func (m *Mesh) InvertX() {
	for i := range m.Vertices {
		m.Vertices[i].X = -m.Vertices[i].X
	}
	m.FlipFaces()
}

// InvertY negates the Y coordinate of every vertex and reverses winding.
func (m *Mesh) InvertY() {
	for i := range m.Vertices {
		m.Vertices[i].Y = -m.Vertices[i].Y
	}
	m.FlipFaces()
}

// InvertZ negates the Z coordinate of every vertex and reverses winding.
func (m *Mesh) InvertZ() {
	for i := range m.Vertices {
		m.Vertices[i].Z = -m.Vertices[i].Z
	}
	m.FlipFaces()
}
