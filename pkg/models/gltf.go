package models

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// LoadGLB loads a binary GLTF (.glb/.gltf) file into a Mesh. Only triangle
// geometry and the material base color are read; textures, normals and UVs
// are ignored (the renderer shades per face from the winding-derived normal).
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))

	// Map GLTF material index -> mesh material index, allocated on first use.
	matIndex := make(map[int]int)

	for _, m := range doc.Meshes {
		if err := processGLTFMesh(doc, m, mesh, matIndex); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	return mesh, nil
}

// processGLTFMesh extracts triangle geometry from one GLTF mesh.
func processGLTFMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh, matIndex map[int]int) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		material := -1
		if prim.Material != nil {
			material = meshMaterial(doc, *prim.Material, mesh, matIndex)
		}

		baseVertex := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, positions...)

		// GLTF winding matches ours: counter-clockwise seen from outside.
		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				mesh.Faces = append(mesh.Faces, Face{
					V: [3]int{
						baseVertex + indices[i],
						baseVertex + indices[i+1],
						baseVertex + indices[i+2],
					},
					Material: material,
				})
			}
		} else {
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, Face{
					V:        [3]int{baseVertex + i, baseVertex + i + 1, baseVertex + i + 2},
					Material: material,
				})
			}
		}
	}

	return nil
}

// meshMaterial returns the mesh material index for a GLTF material,
// converting its base color factor to a diffuse color on first use.
func meshMaterial(doc *gltf.Document, gltfIdx int, mesh *Mesh, matIndex map[int]int) int {
	if idx, ok := matIndex[gltfIdx]; ok {
		return idx
	}
	if gltfIdx < 0 || gltfIdx >= len(doc.Materials) {
		return -1
	}

	src := doc.Materials[gltfIdx]
	mat := Material{Name: src.Name, Diffuse: math3d.V3(1, 1, 1)}
	if pbr := src.PBRMetallicRoughness; pbr != nil && pbr.BaseColorFactor != nil {
		c := *pbr.BaseColorFactor
		mat.Diffuse = math3d.V3(float64(c[0]), float64(c[1]), float64(c[2]))
	}

	idx := len(mesh.Materials)
	mesh.Materials = append(mesh.Materials, mat)
	matIndex[gltfIdx] = idx
	return idx
}

// readVec3Accessor reads Vec3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}

	result := make([]math3d.Vec3, len(floats))
	for i, f := range floats {
		result[i] = math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}

	return result, nil
}

// readIndices reads index data from a GLTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	switch v := data.(type) {
	case []uint8:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint16:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint32:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unexpected index type: %T", data)
	}
}

// readAccessorData reads raw data from a GLTF accessor.
func readAccessorData(doc *gltf.Document, accessor *gltf.Accessor) (any, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	if buffer.URI != "" {
		return nil, fmt.Errorf("external buffers not supported")
	}
	bufData := buffer.Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	count := accessor.Count

	switch accessor.Type {
	case gltf.AccessorVec3:
		if stride == 0 {
			stride = 12 // 3 floats * 4 bytes
		}
		result := make([][3]float32, count)
		for i := range count {
			offset := start + i*stride
			for j := range 3 {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorScalar:
		if stride == 0 {
			switch accessor.ComponentType {
			case gltf.ComponentUbyte:
				stride = 1
			case gltf.ComponentUshort:
				stride = 2
			case gltf.ComponentUint:
				stride = 4
			}
		}

		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			result := make([]uint8, count)
			for i := range count {
				result[i] = bufData[start+i*stride]
			}
			return result, nil
		case gltf.ComponentUshort:
			result := make([]uint16, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint16(bufData[offset]) | uint16(bufData[offset+1])<<8
			}
			return result, nil
		case gltf.ComponentUint:
			result := make([]uint32, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint32(bufData[offset]) |
					uint32(bufData[offset+1])<<8 |
					uint32(bufData[offset+2])<<16 |
					uint32(bufData[offset+3])<<24
			}
			return result, nil
		}
	}

	return nil, fmt.Errorf("unsupported accessor type: %v / %v", accessor.Type, accessor.ComponentType)
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return *(*float32)(unsafe.Pointer(&bits))
}
