package scene

import (
	"image"
	"testing"

	"github.com/chewxy/math32"
)

func TestEulerRoundTrip(t *testing.T) {

	rotations := []Vector3{
		{0, 0, 0},
		{-1.57, 0, 1.57},
		{0.3, -0.8, 1.2},
		{-0.1, 0.4, 0},
		{0, 0, 1.55},
	}

	for i, rot := range rotations {
		back := MatrixToEuler(EulerToMatrix(rot))
		if !EulerToMatrix(back).ApproxEqualThreshold(EulerToMatrix(rot), 1e-4) {
			t.Fatal("failed on rotation #", i, ": got", back, "want", rot)
		}
	}

}

func TestLookAtRotation(t *testing.T) {

	eye := NewVector3(1, 1, 1)
	target := NewVector3(0, 0.5, 0)

	rot := LookAtRotation(eye, target, WorldUp)
	forward := TransformDirection(EulerToMatrix(rot), NewVector3(0, 0, -1))

	if !forward.EqualsApprox(target.Sub(eye).Unit(), 1e-4) {
		t.Fatal("look-at forward axis is", forward, "want", target.Sub(eye).Unit())
	}

}

func TestRaycastOrdersHitsFrontToBack(t *testing.T) {

	root := NewNode("root")

	far := NewMeshNode("far", NewPlaneMesh("far", 1, 1), NewMaterial("far"))
	far.Position = NewVector3(0, 0, -2)

	near := NewMeshNode("near", NewPlaneMesh("near", 1, 1), NewMaterial("near"))
	near.Position = NewVector3(0, 0, -1)

	root.AddChildren(far, near)

	hits := Raycast(Ray{Origin: NewVector3(0, 0, 0), Direction: NewVector3(0, 0, -1)}, root)

	if len(hits) != 2 {
		t.Fatal("expected 2 hits, got", len(hits))
	}

	if hits[0].Node != near || hits[1].Node != far {
		t.Fatal("hits are not ordered front-to-back:", hits[0].Node.Name(), hits[1].Node.Name())
	}

	if math32.Abs(hits[0].Distance-1) > 1e-4 {
		t.Fatal("expected the near hit at distance 1, got", hits[0].Distance)
	}

}

func TestRaycastBackFaces(t *testing.T) {

	plane := NewMeshNode("plane", NewPlaneMesh("plane", 1, 1), NewMaterial("plane"))
	ray := Ray{Origin: NewVector3(0, 0, -1), Direction: NewVector3(0, 0, 1)}

	if len(Raycast(ray, plane)) != 0 {
		t.Fatal("a single-sided plane should not be struck from behind")
	}

	plane.Material().DoubleSided = true

	if len(Raycast(ray, plane)) != 1 {
		t.Fatal("a double-sided plane should be struck from behind")
	}

}

func TestRaycastSkipsCollapsedNodes(t *testing.T) {

	parent := NewNode("parent")
	plane := NewMeshNode("plane", NewPlaneMesh("plane", 1, 1), NewMaterial("plane"))
	parent.AddChildren(plane)

	ray := Ray{Origin: NewVector3(0, 0, 1), Direction: NewVector3(0, 0, -1)}

	parent.Visible = false
	if len(Raycast(ray, parent)) != 1 {
		t.Fatal("hidden nodes should still be struck")
	}

	parent.Scale = NewVector3(0, 0, 0)
	if len(Raycast(ray, parent)) != 0 {
		t.Fatal("nodes with a collapsed parent should not be struck")
	}

}

func TestRaycastTransformedNode(t *testing.T) {

	plane := NewMeshNode("plane", NewPlaneMesh("plane", 1, 1), NewMaterial("plane"))
	plane.Position = NewVector3(3, 0, 0)
	plane.Rotation = NewVector3(0, -math32.Pi/2, 0) // Now faces -X.
	plane.Scale = NewVector3(2, 2, 2)

	hits := Raycast(Ray{Origin: NewVector3(0, 0.9, 0.9), Direction: NewVector3(1, 0, 0)}, plane)

	if len(hits) != 1 {
		t.Fatal("expected the rotated, scaled plane to be struck")
	}

	if !hits[0].Position.EqualsApprox(NewVector3(3, 0.9, 0.9), 1e-4) {
		t.Fatal("hit position is", hits[0].Position)
	}

}

func TestCameraPicker(t *testing.T) {

	scene := NewScene("test")

	plane := NewMeshNode("plane", NewPlaneMesh("plane", 1, 1), NewMaterial("plane"))
	plane.Position = NewVector3(0, 0, -3)
	scene.Root.AddChildren(plane)

	camera := NewCamera(75, 1, 0.01, 1000)
	scene.Root.AddChildren(camera.Node)

	picker := NewCameraPicker(camera, scene)

	hits := picker.Pick(0, 0)
	if len(hits) != 1 || hits[0].Node != plane {
		t.Fatal("expected the center of the view to strike the plane")
	}

	if len(picker.Pick(0.9, 0.9)) != 0 {
		t.Fatal("expected the corner of the view to miss the plane")
	}

	ndc, ok := camera.WorldToNDC(plane.WorldPosition())
	if !ok || math32.Abs(ndc.X) > 1e-4 || math32.Abs(ndc.Y) > 1e-4 {
		t.Fatal("the plane should project to the center of the view, got", ndc)
	}

}

func TestPointLightAttenuation(t *testing.T) {

	light := NewPointLight("room", NewColor(1, 1, 1, 1), 2.5, 10)

	if light.Attenuation(10) != 0 {
		t.Fatal("light should be fully attenuated at its distance")
	}

	if light.Attenuation(1) <= light.Attenuation(2) {
		t.Fatal("light should weaken with distance")
	}

	light.Position = NewVector3(0, 2, 0)
	if r, _, _ := light.Light(NewVector3(0, 0, 0), NewVector3(0, -1, 0)); r != 0 {
		t.Fatal("surfaces facing away from the light should not be lit")
	}

}

func TestTexturePlayerLoops(t *testing.T) {

	frames := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 1, 1)),
		image.NewRGBA(image.Rect(0, 0, 1, 1)),
		image.NewRGBA(image.Rect(0, 0, 1, 1)),
	}

	player := NewTexturePlayer(frames, []float32{0.1})

	player.Update(0.15)
	if player.FrameIndex() != 1 {
		t.Fatal("expected frame 1, got", player.FrameIndex())
	}

	player.Update(0.2)
	if player.FrameIndex() != 0 {
		t.Fatal("expected the player to loop back to frame 0, got", player.FrameIndex())
	}

	mat := NewMaterial("video")
	mat.TextureSource = player
	if mat.CurrentTexture() != frames[0] {
		t.Fatal("material should sample the current video frame")
	}

}
