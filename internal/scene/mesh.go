package scene

import (
	"math"

	"github.com/chewxy/math32"
)

// AABB is an axis-aligned bounding box in a mesh's local space.
type AABB struct {
	Min, Max Vector3
}

// Mesh holds triangle geometry. Indices are consumed three at a time, one triangle each.
type Mesh struct {
	Name      string
	Positions []Vector3
	Normals   []Vector3
	UVs       [][2]float32 // Texture coordinates with 0, 0 at the top-left of the image.
	Indices   []int
	Bounds    AABB
}

// NewMesh creates a new, empty Mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// TriangleCount returns the number of triangles in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Indices) / 3
}

// Triangle returns the three vertex positions of the triangle at the given index.
func (mesh *Mesh) Triangle(index int) (Vector3, Vector3, Vector3) {
	i := index * 3
	return mesh.Positions[mesh.Indices[i]], mesh.Positions[mesh.Indices[i+1]], mesh.Positions[mesh.Indices[i+2]]
}

// UpdateBounds recalculates the Mesh's bounding box from its vertex positions.
func (mesh *Mesh) UpdateBounds() {

	if len(mesh.Positions) == 0 {
		mesh.Bounds = AABB{}
		return
	}

	min := NewVector3Uniform(math.MaxFloat32)
	max := NewVector3Uniform(-math.MaxFloat32)

	for _, p := range mesh.Positions {
		min.X = math32.Min(min.X, p.X)
		min.Y = math32.Min(min.Y, p.Y)
		min.Z = math32.Min(min.Z, p.Z)
		max.X = math32.Max(max.X, p.X)
		max.Y = math32.Max(max.Y, p.Y)
		max.Z = math32.Max(max.Z, p.Z)
	}

	mesh.Bounds = AABB{Min: min, Max: max}

}

// GenerateNormals fills in flat vertex normals from the triangle faces when the mesh has none.
func (mesh *Mesh) GenerateNormals() {

	if len(mesh.Normals) == len(mesh.Positions) {
		return
	}

	mesh.Normals = make([]Vector3, len(mesh.Positions))

	for t := 0; t < mesh.TriangleCount(); t++ {
		v0, v1, v2 := mesh.Triangle(t)
		normal := v1.Sub(v0).Cross(v2.Sub(v0))
		for i := 0; i < 3; i++ {
			idx := mesh.Indices[t*3+i]
			mesh.Normals[idx] = mesh.Normals[idx].Add(normal)
		}
	}

	for i := range mesh.Normals {
		mesh.Normals[i] = mesh.Normals[i].Unit()
	}

}

// NewPlaneMesh creates a width x height plane centered on the origin, facing +Z.
func NewPlaneMesh(name string, width, height float32) *Mesh {

	hw, hh := width/2, height/2

	mesh := NewMesh(name)
	mesh.Positions = []Vector3{
		{-hw, hh, 0},
		{hw, hh, 0},
		{-hw, -hh, 0},
		{hw, -hh, 0},
	}
	mesh.Normals = []Vector3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	mesh.UVs = [][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	mesh.Indices = []int{0, 2, 1, 2, 3, 1}
	mesh.UpdateBounds()

	return mesh

}
