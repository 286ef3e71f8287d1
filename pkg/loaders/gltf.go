package loaders

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/glint-render/glint/pkg/core"
	"github.com/glint-render/glint/pkg/geometry"
)

// LoadGLTF loads a glTF or binary glTF (.glb) file and returns its
// triangle meshes as a group of sub-groups, one per mesh. Primitives with
// per-vertex normals become smooth triangles; the rest become flat ones.
func LoadGLTF(path string) (*geometry.Group, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return buildGroup(doc)
}

// buildGroup assembles shape groups from a parsed glTF document
func buildGroup(doc *gltf.Document) (*geometry.Group, error) {
	root := geometry.NewGroup()

	for _, m := range doc.Meshes {
		meshGroup := geometry.NewGroup()

		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				// Lines, points and strips have no surface to trace
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}

			var normals []core.Tuple
			if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				normals, err = readVec3Accessor(doc, normIdx)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: read normals: %w", m.Name, err)
				}
			}

			var indices []int
			if prim.Indices != nil {
				indices, err = readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: read indices: %w", m.Name, err)
				}
			} else {
				// Sequential, non-indexed triangles
				indices = make([]int, len(positions))
				for i := range indices {
					indices[i] = i
				}
			}

			addTriangles(meshGroup, positions, normals, indices)
		}

		if len(meshGroup.Children()) > 0 {
			root.AddChild(meshGroup)
		}
	}

	return root, nil
}

// addTriangles builds a triangle per index triple, skipping degenerate
// faces with no area
func addTriangles(group *geometry.Group, positions, normals []core.Tuple, indices []int) {
	smooth := len(normals) == len(positions)

	for i := 0; i+2 < len(indices); i += 3 {
		i1, i2, i3 := indices[i], indices[i+1], indices[i+2]
		if i1 >= len(positions) || i2 >= len(positions) || i3 >= len(positions) {
			continue
		}

		p1 := pointFrom(positions[i1])
		p2 := pointFrom(positions[i2])
		p3 := pointFrom(positions[i3])
		if degenerate(p1, p2, p3) {
			continue
		}

		if smooth {
			group.AddChild(geometry.NewSmoothTriangle(
				p1, p2, p3,
				vectorFrom(normals[i1]),
				vectorFrom(normals[i2]),
				vectorFrom(normals[i3]),
			))
		} else {
			group.AddChild(geometry.NewTriangle(p1, p2, p3))
		}
	}
}

func pointFrom(t core.Tuple) core.Tuple {
	return core.NewPoint(t.X, t.Y, t.Z)
}

func vectorFrom(t core.Tuple) core.Tuple {
	return core.NewVector(t.X, t.Y, t.Z)
}

func degenerate(p1, p2, p3 core.Tuple) bool {
	cross := p2.Subtract(p1).Cross(p3.Subtract(p1))
	return cross.Magnitude() < core.Epsilon
}

// readVec3Accessor reads float32 VEC3 data from an accessor
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]core.Tuple, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3 components, got %v", accessor.ComponentType)
	}

	data, stride, start, err := accessorData(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]core.Tuple, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		offset := start + i*stride
		result[i] = core.Tuple{
			X: float64(readFloat32(data[offset:])),
			Y: float64(readFloat32(data[offset+4:])),
			Z: float64(readFloat32(data[offset+8:])),
		}
	}
	return result, nil
}

// readIndices reads scalar index data, whatever its component width
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var width int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		width = 1
	case gltf.ComponentUshort:
		width = 2
	case gltf.ComponentUint:
		width = 4
	default:
		return nil, fmt.Errorf("unsupported index component type: %v", accessor.ComponentType)
	}

	data, stride, start, err := accessorData(doc, accessor, width)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		offset := start + i*stride
		switch width {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(uint16(data[offset]) | uint16(data[offset+1])<<8)
		case 4:
			result[i] = int(uint32(data[offset]) |
				uint32(data[offset+1])<<8 |
				uint32(data[offset+2])<<16 |
				uint32(data[offset+3])<<24)
		}
	}
	return result, nil
}

// accessorData resolves an accessor's backing bytes, effective stride and
// starting offset
func accessorData(doc *gltf.Document, accessor *gltf.Accessor, defaultStride int) ([]byte, int, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if len(buffer.Data) == 0 {
		return nil, 0, 0, fmt.Errorf("buffer has no data")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = defaultStride
	}
	start := bufferView.ByteOffset + accessor.ByteOffset

	return buffer.Data, stride, start, nil
}

// readFloat32 reads a little-endian float32
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
