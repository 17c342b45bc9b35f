package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking down its local -Z axis.
type Camera struct {
	*Node
	fieldOfView float32 // Vertical field of view, in degrees.
	aspect      float32
	near, far   float32
}

// NewCamera creates a new perspective Camera.
func NewCamera(fovY, aspect, near, far float32) *Camera {
	return &Camera{
		Node:        NewNode("Camera"),
		fieldOfView: fovY,
		aspect:      aspect,
		near:        near,
		far:         far,
	}
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float32 {
	return camera.fieldOfView
}

// Aspect returns the width / height ratio of the Camera.
func (camera *Camera) Aspect() float32 {
	return camera.aspect
}

// SetAspect sets the width / height ratio of the Camera; call it when the viewport is resized.
func (camera *Camera) SetAspect(aspect float32) {
	if aspect > 0 {
		camera.aspect = aspect
	}
}

// Near returns the near plane of the Camera.
func (camera *Camera) Near() float32 {
	return camera.near
}

// Far returns the far plane of the Camera.
func (camera *Camera) Far() float32 {
	return camera.far
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(camera.fieldOfView), camera.aspect, camera.near, camera.far)
}

// ViewMatrix returns the inverse of the Camera's world transform.
func (camera *Camera) ViewMatrix() mgl32.Mat4 {
	return camera.WorldTransform().Inv()
}

// Pose returns the Camera's local position and rotation.
func (camera *Camera) Pose() (Vector3, Vector3) {
	return camera.Position, camera.Rotation
}

// RayFromNDC returns a ray cast from the Camera through the given point in normalized device coordinates,
// where x and y range from -1 (left, bottom) to 1 (right, top).
func (camera *Camera) RayFromNDC(x, y float32) Ray {

	inv := camera.Projection().Mul4(camera.ViewMatrix()).Inv()

	point := inv.Mul4x1(mgl32.Vec4{x, y, 0.5, 1})
	if math32.Abs(point[3]) > 1e-9 {
		point = point.Mul(1 / point[3])
	}

	origin := camera.WorldPosition()
	target := Vector3{point[0], point[1], point[2]}

	return Ray{Origin: origin, Direction: target.Sub(origin).Unit()}

}

// WorldToNDC projects a world position into normalized device coordinates. The returned boolean is
// false if the point is behind the camera.
func (camera *Camera) WorldToNDC(point Vector3) (Vector3, bool) {
	clip := camera.Projection().Mul4(camera.ViewMatrix()).Mul4x1(point.Vec4(1))
	if clip[3] <= 0 {
		return Vector3{}, false
	}
	return Vector3{clip[0] / clip[3], clip[1] / clip[3], clip[2] / clip[3]}, true
}
