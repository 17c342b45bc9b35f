// Package scene is a small scene graph: nodes with meshes and materials, point and ambient lights, a perspective
// camera, and ray picking against it all.
package scene

// Scene holds the scene graph root along with the lights illuminating it.
type Scene struct {
	Name        string
	Root        *Node
	Ambient     *AmbientLight
	PointLights []*PointLight
	Background  Color
}

// NewScene returns a new, empty Scene with a black ambient light.
func NewScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Root:       NewNode("Root"),
		Ambient:    NewAmbientLight("ambient", NewColor(1, 1, 1, 1), 0),
		Background: NewColor(0, 0, 0, 1),
	}
}

// AddPointLights adds the given lights to the Scene.
func (scene *Scene) AddPointLights(lights ...*PointLight) {
	scene.PointLights = append(scene.PointLights, lights...)
}

// PointLight returns the PointLight with the given name, or nil if there's none.
func (scene *Scene) PointLight(name string) *PointLight {
	for _, light := range scene.PointLights {
		if light.Name == name {
			return light
		}
	}
	return nil
}

// FindByName searches the Scene's graph for a Node with the given name.
func (scene *Scene) FindByName(name string) *Node {
	return scene.Root.FindByName(name)
}

// Raycast tests the ray against the given roots, or against the Scene's top-level Nodes if none are given.
func (scene *Scene) Raycast(ray Ray, roots ...*Node) []RayHit {
	if len(roots) == 0 {
		roots = scene.Root.Children()
	}
	return Raycast(ray, roots...)
}

// CameraPicker casts rays from a Camera into a Scene.
type CameraPicker struct {
	Camera *Camera
	Scene  *Scene
}

// NewCameraPicker returns a new CameraPicker.
func NewCameraPicker(camera *Camera, scene *Scene) *CameraPicker {
	return &CameraPicker{Camera: camera, Scene: scene}
}

// Pick casts a ray through the given normalized device coordinates and returns every hit, front-to-back.
func (picker *CameraPicker) Pick(ndcX, ndcY float32, roots ...*Node) []RayHit {
	return picker.Scene.Raycast(picker.Camera.RayFromNDC(ndcX, ndcY), roots...)
}
