package scene

import (
	"sort"

	"github.com/chewxy/math32"
)

// Ray is a half-line starting at Origin and heading along Direction (a unit vector).
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns the point at the given distance along the Ray.
func (ray Ray) At(distance float32) Vector3 {
	return ray.Origin.Add(ray.Direction.Scale(distance))
}

// RayHit represents the result of a raycast against a Node's mesh.
type RayHit struct {
	Node     *Node   // Node is the mesh Node that was struck.
	Position Vector3 // Position is the world position that the Node was struck.
	Distance float32 // Distance is the distance from the ray's origin to Position.
}

// Raycast tests the ray against every mesh Node within the given roots (recursively, roots included) and returns
// one hit per struck Node, ordered front-to-back. Hidden nodes can still be struck; collapsed (zero-scale) nodes cannot.
// Nodes struck at the same distance keep their traversal order.
func Raycast(ray Ray, roots ...*Node) []RayHit {

	hits := []RayHit{}

	for _, root := range roots {
		root.Walk(func(n *Node) bool {
			if n.Mesh != nil {
				if hit, ok := RaycastNode(ray, n); ok {
					hits = append(hits, hit)
				}
			}
			return true
		})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })

	return hits

}

// RaycastNode tests the ray against a single Node's mesh, returning the nearest struck triangle.
func RaycastNode(ray Ray, node *Node) (RayHit, bool) {

	if node.Mesh == nil || node.IsCollapsed() {
		return RayHit{}, false
	}

	world := node.WorldTransform()
	inv := world.Inv()

	// Test in the mesh's local space; the AABB slab test rejects most misses before the triangle loop.
	localOrigin := TransformPoint(inv, ray.Origin)
	localDir := TransformDirection(inv, ray.Direction)

	if !rayAABB(localOrigin, localDir, node.Mesh.Bounds) {
		return RayHit{}, false
	}

	doubleSided := false
	if mat := node.Material(); mat != nil {
		doubleSided = mat.DoubleSided
	}

	bestT := float32(-1)

	for t := 0; t < node.Mesh.TriangleCount(); t++ {
		v0, v1, v2 := node.Mesh.Triangle(t)
		if d, ok := rayTriangle(localOrigin, localDir, v0, v1, v2, doubleSided); ok {
			if bestT < 0 || d < bestT {
				bestT = d
			}
		}
	}

	if bestT < 0 {
		return RayHit{}, false
	}

	position := TransformPoint(world, localOrigin.Add(localDir.Scale(bestT)))

	return RayHit{
		Node:     node,
		Position: position,
		Distance: position.DistanceTo(ray.Origin),
	}, true

}

// rayAABB is a slab test; the ray direction need not be normalized.
func rayAABB(origin, dir Vector3, box AABB) bool {

	t1 := (box.Min.X - origin.X) / dir.X
	t2 := (box.Max.X - origin.X) / dir.X
	t3 := (box.Min.Y - origin.Y) / dir.Y
	t4 := (box.Max.Y - origin.Y) / dir.Y
	t5 := (box.Min.Z - origin.Z) / dir.Z
	t6 := (box.Max.Z - origin.Z) / dir.Z

	tmin := math32.Max(math32.Max(slabMin(t1, t2), slabMin(t3, t4)), slabMin(t5, t6))
	tmax := math32.Min(math32.Min(slabMax(t1, t2), slabMax(t3, t4)), slabMax(t5, t6))

	if tmax < 0 || tmin > tmax {
		return false
	}

	return true

}

// slabMin and slabMax treat NaN (a zero direction component on a box face) as unbounded.
func slabMin(a, b float32) float32 {
	if math32.IsNaN(a) {
		return math32.Inf(-1)
	}
	if math32.IsNaN(b) {
		return math32.Inf(-1)
	}
	return math32.Min(a, b)
}

func slabMax(a, b float32) float32 {
	if math32.IsNaN(a) {
		return math32.Inf(1)
	}
	if math32.IsNaN(b) {
		return math32.Inf(1)
	}
	return math32.Max(a, b)
}

// rayTriangle is the Möller-Trumbore intersection test. Triangles are front-facing when wound counter-clockwise.
func rayTriangle(origin, dir, v0, v1, v2 Vector3, doubleSided bool) (float32, bool) {

	const epsilon = 1e-7

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := dir.Cross(edge2)
	det := edge1.Dot(h)

	if det > -epsilon && det < epsilon {
		return 0, false
	}

	if !doubleSided && det < 0 {
		return 0, false
	}

	invDet := 1 / det
	s := origin.Sub(v0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := invDet * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := invDet * edge2.Dot(q)
	if t <= epsilon {
		return 0, false
	}

	return t, true

}
