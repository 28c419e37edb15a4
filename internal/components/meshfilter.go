package components

import (
	"math"
	"scalegrab/internal/engine"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshFilter holds the surface vertices of an object in local space, one list
// per level of detail. LODs[0] is the highest detail.
type MeshFilter struct {
	engine.BaseComponent
	LODs [][]rl.Vector3
}

func NewMeshFilter(lods ...[]rl.Vector3) *MeshFilter {
	return &MeshFilter{LODs: lods}
}

// NewBoxMeshFilter builds a box surface centered on the origin. LOD0 has the
// corners plus edge midpoints, LOD1 only the corners.
func NewBoxMeshFilter(size rl.Vector3) *MeshFilter {
	h := rl.Vector3Scale(size, 0.5)
	var corners, detailed []rl.Vector3
	for _, x := range []float32{-1, 0, 1} {
		for _, y := range []float32{-1, 0, 1} {
			for _, z := range []float32{-1, 0, 1} {
				zeros := 0
				for _, c := range []float32{x, y, z} {
					if c == 0 {
						zeros++
					}
				}
				p := rl.Vector3{X: x * h.X, Y: y * h.Y, Z: z * h.Z}
				switch zeros {
				case 0:
					corners = append(corners, p)
					detailed = append(detailed, p)
				case 1:
					detailed = append(detailed, p)
				}
			}
		}
	}
	return NewMeshFilter(detailed, corners)
}

// NewSphereMeshFilter samples a UV sphere with the given ring and slice counts.
func NewSphereMeshFilter(radius float32, rings, slices int) *MeshFilter {
	verts := []rl.Vector3{{Y: radius}, {Y: -radius}}
	for r := 1; r < rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		for s := 0; s < slices; s++ {
			theta := 2 * math.Pi * float64(s) / float64(slices)
			verts = append(verts, rl.Vector3{
				X: radius * float32(math.Sin(phi)*math.Cos(theta)),
				Y: radius * float32(math.Cos(phi)),
				Z: radius * float32(math.Sin(phi)*math.Sin(theta)),
			})
		}
	}
	return NewMeshFilter(verts)
}

// NewMeshFilterFromModel copies the vertex positions of every mesh in a loaded
// raylib model into a single LOD.
func NewMeshFilterFromModel(model rl.Model) *MeshFilter {
	var verts []rl.Vector3
	for _, mesh := range model.GetMeshes() {
		if mesh.Vertices == nil || mesh.VertexCount == 0 {
			continue
		}
		raw := unsafe.Slice(mesh.Vertices, mesh.VertexCount*3)
		for i := int32(0); i < mesh.VertexCount; i++ {
			verts = append(verts, rl.Vector3{X: raw[i*3+0], Y: raw[i*3+1], Z: raw[i*3+2]})
		}
	}
	return NewMeshFilter(verts)
}

// Vertices returns the highest-detail vertex list, or nil.
func (m *MeshFilter) Vertices() []rl.Vector3 {
	for _, lod := range m.LODs {
		if len(lod) > 0 {
			return lod
		}
	}
	return nil
}

// WorldVertices transforms the highest-detail vertices into world space.
func (m *MeshFilter) WorldVertices() []rl.Vector3 {
	g := m.GetGameObject()
	local := m.Vertices()
	if g == nil || len(local) == 0 {
		return nil
	}
	out := make([]rl.Vector3, len(local))
	for i, v := range local {
		out[i] = g.LocalToWorld(v)
	}
	return out
}
