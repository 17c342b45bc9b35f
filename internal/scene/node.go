package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Node is an object in the scene graph. Its transform (position, rotation, scale) is local to its parent.
// A Node with a Mesh is drawn and can be struck by rays; Nodes without one only group their children.
type Node struct {
	name     string
	parent   *Node
	children []*Node

	Position Vector3
	Rotation Vector3 // XYZ Euler angles, in radians.
	Scale    Vector3

	Visible       bool
	CastShadow    bool
	ReceiveShadow bool

	Mesh      *Mesh
	Materials []*Material // One material per mesh, or several for multi-material text (face, then side).

	properties *Properties
}

// NewNode returns a new, visible Node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		name:       name,
		Scale:      NewVector3Uniform(1),
		Visible:    true,
		properties: NewProperties(),
	}
}

// NewMeshNode returns a new Node drawing the given mesh with the given materials.
func NewMeshNode(name string, mesh *Mesh, materials ...*Material) *Node {
	node := NewNode(name)
	node.Mesh = mesh
	node.Materials = materials
	return node
}

// Name returns the Node's name.
func (node *Node) Name() string {
	return node.name
}

// SetName sets the Node's name.
func (node *Node) SetName(name string) {
	node.name = name
}

// Properties returns the Node's properties object.
func (node *Node) Properties() *Properties {
	return node.properties
}

// Parent returns the Node's parent, or nil if it has none.
func (node *Node) Parent() *Node {
	return node.parent
}

// Children returns the Node's direct children. The returned slice must not be modified.
func (node *Node) Children() []*Node {
	return node.children
}

// ChildrenRecursive returns the Node's children, grandchildren, etc. in depth-first order.
func (node *Node) ChildrenRecursive() []*Node {
	out := []*Node{}
	for _, child := range node.children {
		out = append(out, child)
		out = append(out, child.ChildrenRecursive()...)
	}
	return out
}

// AddChildren parents the provided children Nodes to the calling Node. If the children are already
// parented to other Nodes, they are unparented before doing so.
func (node *Node) AddChildren(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChildren(child)
		}
		child.parent = node
		node.children = append(node.children, child)
	}
}

// RemoveChildren removes the provided children from the calling Node.
func (node *Node) RemoveChildren(children ...*Node) {
	for _, child := range children {
		for i, c := range node.children {
			if c == child {
				node.children = append(node.children[:i], node.children[i+1:]...)
				child.parent = nil
				break
			}
		}
	}
}

// Get returns the direct child with the given name, or nil if there's none.
func (node *Node) Get(name string) *Node {
	for _, child := range node.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// FindByName searches the Node's tree (depth-first, the Node itself included) for a Node with the given name.
func (node *Node) FindByName(name string) *Node {
	if node.name == name {
		return node
	}
	for _, child := range node.children {
		if found := child.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// Material returns the Node's first material, or nil if it has none.
func (node *Node) Material() *Material {
	if len(node.Materials) == 0 {
		return nil
	}
	return node.Materials[0]
}

// SetMaterial replaces all of the Node's materials with the one given.
func (node *Node) SetMaterial(material *Material) {
	node.Materials = []*Material{material}
}

// LocalTransform returns the Node's transform relative to its parent (translation * rotation * scale).
func (node *Node) LocalTransform() mgl32.Mat4 {
	t := mgl32.Translate3D(node.Position.X, node.Position.Y, node.Position.Z)
	s := mgl32.Scale3D(node.Scale.X, node.Scale.Y, node.Scale.Z)
	return t.Mul4(EulerToMatrix(node.Rotation)).Mul4(s)
}

// WorldTransform returns the Node's absolute transform, combining all of its parents' transforms.
func (node *Node) WorldTransform() mgl32.Mat4 {
	if node.parent == nil {
		return node.LocalTransform()
	}
	return node.parent.WorldTransform().Mul4(node.LocalTransform())
}

// WorldPosition returns the Node's absolute position.
func (node *Node) WorldPosition() Vector3 {
	return TransformPoint(node.WorldTransform(), Vector3{})
}

// IsVisible returns true if the Node and all of its parents are visible.
func (node *Node) IsVisible() bool {
	for n := node; n != nil; n = n.parent {
		if !n.Visible {
			return false
		}
	}
	return true
}

// IsCollapsed returns true if the Node or any of its parents has a zero scale component,
// which makes its geometry degenerate.
func (node *Node) IsCollapsed() bool {
	for n := node; n != nil; n = n.parent {
		if math32.Abs(n.Scale.X) < 1e-9 || math32.Abs(n.Scale.Y) < 1e-9 || math32.Abs(n.Scale.Z) < 1e-9 {
			return true
		}
	}
	return false
}

// Walk calls the function given for the Node and all of its children, depth-first.
// If the function returns false, the Node's children are skipped.
func (node *Node) Walk(fn func(n *Node) bool) {
	if !fn(node) {
		return
	}
	for _, child := range node.children {
		child.Walk(fn)
	}
}
