package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// OBJLoader loads Wavefront OBJ files into Mesh format.
type OBJLoader struct {
	// WithMaterials enables mtllib/usemtl handling. When false, material
	// statements are ignored and every face gets material index -1.
	WithMaterials bool
}

// NewOBJLoader creates an OBJ loader with materials disabled.
func NewOBJLoader() *OBJLoader {
	return &OBJLoader{}
}

// LoadOBJ loads an OBJ file, optionally resolving its MTL materials.
func LoadOBJ(path string, withMaterials bool) (*Mesh, error) {
	loader := &OBJLoader{WithMaterials: withMaterials}
	return loader.Load(path)
}

// Load loads an OBJ file and returns a Mesh. Malformed statements are
// skipped with a warning; a missing or unreadable file is an error.
func (l *OBJLoader) Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh := NewMesh(filepath.Base(path))
	if err := l.decode(f, mesh, filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("parse obj %q: %w", path, err)
	}
	return mesh, nil
}

// decode parses OBJ statements from r into mesh. dir is the directory used
// to resolve relative mtllib references.
func (l *OBJLoader) decode(r io.Reader, mesh *Mesh, dir string) error {
	scanner := bufio.NewScanner(r)
	currentMaterial := -1

	for scanner.Scan() {
		line := strings.ReplaceAll(strings.TrimSpace(scanner.Text()), "\t", " ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "v":
			v, err := parseVertex(args)
			if err != nil {
				log.Warn("skipping invalid vertex", "line", line, "err", err)
				continue
			}
			mesh.Vertices = append(mesh.Vertices, v)

		case "f":
			if err := l.parseFace(mesh, args, currentMaterial); err != nil {
				log.Warn("skipping invalid face", "line", line, "err", err)
			}

		case "mtllib":
			if !l.WithMaterials || len(args) == 0 {
				continue
			}
			mtlPath := filepath.Join(dir, args[0])
			if err := loadMTL(mtlPath, mesh); err != nil {
				log.Warn("could not load materials", "path", mtlPath, "err", err)
			}

		case "usemtl":
			if !l.WithMaterials || len(args) == 0 {
				continue
			}
			currentMaterial = mesh.findMaterial(args[0])
			if currentMaterial < 0 {
				log.Warn("unknown material", "name", args[0])
			}

			// Everything else (vn, vt, o, g, s, ...) is ignored.
		}
	}

	return scanner.Err()
}

// parseVertex parses "v x y z" arguments.
func parseVertex(args []string) (math3d.Vec3, error) {
	if len(args) < 3 {
		return math3d.Zero3(), fmt.Errorf("need 3 coordinates, got %d", len(args))
	}

	var coords [3]float64
	for i := range 3 {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return math3d.Zero3(), fmt.Errorf("coordinate %d: %w", i, err)
		}
		coords[i] = v
	}
	return math3d.V3(coords[0], coords[1], coords[2]), nil
}

// parseFace parses "f a b c ..." arguments. Indices may carry texture and
// normal references ("a/b/c"); only the vertex index is used. Negative
// indices count back from the current end of the vertex list. Polygons with
// more than three vertices are ear-clipped into triangles.
func (l *OBJLoader) parseFace(mesh *Mesh, args []string, material int) error {
	if len(args) < 3 {
		return fmt.Errorf("face has %d indices, need at least 3", len(args))
	}

	indices := make([]int, 0, len(args))
	for _, token := range args {
		if slash := strings.IndexByte(token, '/'); slash >= 0 {
			token = token[:slash]
		}
		raw, err := strconv.Atoi(token)
		if err != nil {
			return fmt.Errorf("vertex index %q: %w", token, err)
		}
		idx, err := resolveIndex(raw, len(mesh.Vertices))
		if err != nil {
			return err
		}
		indices = append(indices, idx)
	}

	if len(indices) == 3 {
		mesh.Faces = append(mesh.Faces, Face{
			V:        [3]int{indices[0], indices[1], indices[2]},
			Material: material,
		})
		return nil
	}

	polygon := make([]math3d.Vec3, len(indices))
	for i, idx := range indices {
		polygon[i] = mesh.Vertices[idx]
	}

	tris, err := triangulate(polygon)
	if err != nil {
		return err
	}

	for i := 0; i < len(tris); i += 3 {
		mesh.Faces = append(mesh.Faces, Face{
			V: [3]int{
				indices[tris[i]],
				indices[tris[i+1]],
				indices[tris[i+2]],
			},
			Material: material,
		})
	}
	return nil
}

// resolveIndex converts a 1-based OBJ vertex index (possibly negative,
// counting from the end) to a 0-based slice index.
func resolveIndex(raw, total int) (int, error) {
	switch {
	case raw == 0, raw > total, raw < -total:
		return 0, fmt.Errorf("vertex index %d out of range (have %d vertices)", raw, total)
	case raw < 0:
		return total + raw, nil
	default:
		return raw - 1, nil
	}
}

// findMaterial returns the index of the named material, or -1.
func (m *Mesh) findMaterial(name string) int {
	for i := range m.Materials {
		if m.Materials[i].Name == name {
			return i
		}
	}
	return -1
}

// loadMTL parses an MTL file and appends its materials to the mesh.
// Only the diffuse color (Kd) is read; everything else is ignored.
func loadMTL(path string, mesh *Mesh) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open mtl: %w", err)
	}
	defer f.Close()

	mats, err := decodeMTL(f)
	if err != nil {
		return fmt.Errorf("parse mtl %q: %w", path, err)
	}
	mesh.Materials = append(mesh.Materials, mats...)
	return nil
}

// decodeMTL parses newmtl/Kd statements from r.
func decodeMTL(r io.Reader) ([]Material, error) {
	var (
		mats    []Material
		current *Material
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "newmtl":
			if len(args) == 0 {
				log.Warn("newmtl without a name")
				continue
			}
			mats = append(mats, Material{
				Name:    args[0],
				Diffuse: math3d.V3(1, 1, 1),
			})
			current = &mats[len(mats)-1]

		case "Kd":
			if current == nil {
				log.Warn("Kd before newmtl")
				continue
			}
			kd, err := parseVertex(args)
			if err != nil {
				log.Warn("skipping invalid diffuse color", "line", line, "err", err)
				continue
			}
			current.Diffuse = kd
		}
	}

	return mats, scanner.Err()
}
