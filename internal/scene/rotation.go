package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rotations are stored as XYZ Euler angles in radians: the rotation matrix is Rx * Ry * Rz.

// EulerToMatrix returns the rotation matrix for the XYZ Euler angles given.
func EulerToMatrix(euler Vector3) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(euler.X).Mul4(mgl32.HomogRotate3DY(euler.Y)).Mul4(mgl32.HomogRotate3DZ(euler.Z))
}

// MatrixToEuler extracts XYZ Euler angles from the (unscaled) rotation part of the matrix given.
func MatrixToEuler(m mgl32.Mat4) Vector3 {

	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m22, m23 := m.At(1, 1), m.At(1, 2)
	m32, m33 := m.At(2, 1), m.At(2, 2)

	euler := Vector3{Y: math32.Asin(clamp(m13, -1, 1))}

	if math32.Abs(m13) < 0.9999999 {
		euler.X = math32.Atan2(-m23, m33)
		euler.Z = math32.Atan2(-m12, m11)
	} else {
		// Gimbal lock; Z is folded into X.
		euler.X = math32.Atan2(m32, m22)
		euler.Z = 0
	}

	return euler

}

// QuaternionToEuler converts a quaternion (in GLTF's x, y, z, w order) to XYZ Euler angles.
func QuaternionToEuler(x, y, z, w float32) Vector3 {
	q := mgl32.Quat{W: w, V: mgl32.Vec3{x, y, z}}.Normalize()
	return MatrixToEuler(q.Mat4())
}

// LookAtRotation returns the Euler rotation that points an object's -Z axis from eye towards target,
// as cameras look down their -Z axis.
func LookAtRotation(eye, target, up Vector3) Vector3 {

	zAxis := eye.Sub(target).Unit()
	if zAxis.MagnitudeSquared() == 0 {
		zAxis = NewVector3(0, 0, 1)
	}

	xAxis := up.Cross(zAxis)
	if xAxis.MagnitudeSquared() == 0 {
		// up and forward are parallel; nudge the forward axis to get a usable basis.
		zAxis.Z += 0.0001
		xAxis = up.Cross(zAxis)
	}
	xAxis = xAxis.Unit()
	yAxis := zAxis.Cross(xAxis)

	m := mgl32.Ident4()
	m.SetCol(0, xAxis.Vec4(0))
	m.SetCol(1, yAxis.Vec4(0))
	m.SetCol(2, zAxis.Vec4(0))

	return MatrixToEuler(m)

}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}
