package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the up direction of the right-handed coordinate system the room is authored in.
var WorldUp = NewVector3(0, 1, 0)

// Vector3 represents a 3D vector (position, rotation as XYZ Euler angles, scale, direction).
// Vector3 functions return modified copies, so they can be chained.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3Uniform creates a new Vector3 with all three components set to the given value.
func NewVector3Uniform(value float32) Vector3 {
	return Vector3{X: value, Y: value, Z: value}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the Vector3 with each component multiplied by the scalar given.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Dot returns the dot product of the calling Vector3 and the other Vector3 provided.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns the cross product of the calling Vector3 and the other Vector3 provided.
func (vec Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the Vector3; cheaper than Magnitude when only comparing lengths.
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.Dot(vec)
}

// Unit returns a copy of the Vector3 normalized to a length of 1. A zero vector is returned unchanged.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l == 0 {
		return vec
	}
	return vec.Scale(1 / l)
}

// DistanceTo returns the distance from the calling Vector3 to the other Vector3 provided.
func (vec Vector3) DistanceTo(other Vector3) float32 {
	return vec.Sub(other).Magnitude()
}

// Lerp linearly interpolates from the calling Vector3 towards the other one by the percentage given (0 to 1).
func (vec Vector3) Lerp(other Vector3, percentage float32) Vector3 {
	return vec.Add(other.Sub(vec).Scale(percentage))
}

// Equals returns true if the two Vector3s are within a small tolerance of each other.
func (vec Vector3) Equals(other Vector3) bool {
	return vec.EqualsApprox(other, 1e-5)
}

// EqualsApprox returns true if every component of the two Vector3s differs by no more than the tolerance given.
func (vec Vector3) EqualsApprox(other Vector3, tolerance float32) bool {
	return math32.Abs(vec.X-other.X) <= tolerance &&
		math32.Abs(vec.Y-other.Y) <= tolerance &&
		math32.Abs(vec.Z-other.Z) <= tolerance
}

// Vec3 converts the Vector3 to an mgl32.Vec3.
func (vec Vector3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{vec.X, vec.Y, vec.Z}
}

// Vec4 converts the Vector3 to an mgl32.Vec4 with the W component given.
func (vec Vector3) Vec4(w float32) mgl32.Vec4 {
	return mgl32.Vec4{vec.X, vec.Y, vec.Z, w}
}

func vector3From(v mgl32.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// TransformPoint transforms the point given by the matrix provided (with a W of 1, then divided through by W).
func TransformPoint(m mgl32.Mat4, point Vector3) Vector3 {
	return vector3From(mgl32.TransformCoordinate(point.Vec3(), m))
}

// TransformDirection transforms the direction given by the rotation and scale of the matrix provided, ignoring translation.
func TransformDirection(m mgl32.Mat4, dir Vector3) Vector3 {
	return vector3From(mgl32.TransformNormal(dir.Vec3(), m))
}
