package room

import (
	"fmt"

	"github.com/solarlune/tetraroom/internal/scene"
	"github.com/solarlune/tetraroom/internal/tween"
)

// Property paths are built from an object's key and its field, i.e. "camera.position.x", so tweens on the same
// field of the same object supersede each other.

func vectorProps(prefix string, v *scene.Vector3) [3]tween.Property {
	return [3]tween.Property{
		tween.Float(prefix+".x", &v.X),
		tween.Float(prefix+".y", &v.Y),
		tween.Float(prefix+".z", &v.Z),
	}
}

// tweenVector tweens every component of the vector towards the target, completing once all three have.
func tweenVector(tl *tween.Timeline, prefix string, v *scene.Vector3, target scene.Vector3, opts tween.Options) *tween.Task {
	props := vectorProps(prefix, v)
	return tween.All(
		tl.To(props[0], target.X, opts),
		tl.To(props[1], target.Y, opts),
		tl.To(props[2], target.Z, opts),
	)
}

// tweenColor tweens the color's red, green, and blue channels towards the target's.
func tweenColor(tl *tween.Timeline, prefix string, c *scene.Color, target scene.Color, opts tween.Options) *tween.Task {
	return tween.All(
		tl.To(tween.Float(prefix+".r", &c.R), target.R, opts),
		tl.To(tween.Float(prefix+".g", &c.G), target.G, opts),
		tl.To(tween.Float(prefix+".b", &c.B), target.B, opts),
	)
}

// nodeKey identifies a node in property paths. Several nodes share a name (every project is "project"), so the
// node's address is part of the key.
func nodeKey(node *scene.Node) string {
	return fmt.Sprintf("%s@%p", node.Name(), node)
}

func positionPath(node *scene.Node) string {
	return nodeKey(node) + ".position"
}

func rotationPath(node *scene.Node) string {
	return nodeKey(node) + ".rotation"
}

func scalePath(node *scene.Node) string {
	return nodeKey(node) + ".scale"
}

func opacityPath(node *scene.Node) string {
	return nodeKey(node) + ".material.opacity"
}

// tweenOpacity tweens the opacity of the node's first material.
func tweenOpacity(tl *tween.Timeline, node *scene.Node, target float32, opts tween.Options) *tween.Task {
	mat := node.Material()
	if mat == nil {
		return tween.Completed()
	}
	return tl.To(tween.Float(opacityPath(node), &mat.Opacity), target, opts)
}
