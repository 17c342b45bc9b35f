// Package orbit implements free-look orbit controls: a camera circling a target within distance and angle limits.
package orbit

import (
	"errors"

	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"
	"github.com/solarlune/tetraroom/internal/scene"
)

// ErrDisabled is returned by mutating calls while the Controls are disabled (i.e. during a choreographed camera move).
var ErrDisabled = errors.New("orbit: controls are disabled")

// Limits bound the orbit. Azimuth is the angle around the Y axis measured from +Z towards +X; polar is the
// angle down from +Y.
type Limits struct {
	MinDistance float32 `yaml:"minDistance"`
	MaxDistance float32 `yaml:"maxDistance"`
	MinAzimuth  float32 `yaml:"minAzimuth"`
	MaxAzimuth  float32 `yaml:"maxAzimuth"`
	MinPolar    float32 `yaml:"minPolar"`
	MaxPolar    float32 `yaml:"maxPolar"`
}

// DefaultLimits returns the room's orbit limits.
func DefaultLimits() Limits {
	return Limits{
		MinDistance: 0.9,
		MaxDistance: 1.6,
		MinAzimuth:  0.2,
		MaxAzimuth:  math32.Pi * 0.78,
		MinPolar:    0.3,
		MaxPolar:    math32.Pi / 2,
	}
}

// Controls orbit a camera around a target point.
type Controls struct {
	Camera *scene.Camera
	Target scene.Vector3
	Limits

	Enabled   bool
	EnablePan bool

	// Damping smooths Rotate and Zoom by springing towards the requested orbit instead of jumping there.
	Damping bool

	RotateSpeed float32
	ZoomSpeed   float32

	azimuth, polar, distance float32
	dirty                    bool

	goalAzimuth, goalPolar, goalDistance float32
	velAzimuth, velPolar, velDistance    float64
	spring                               harmonica.Spring
}

// NewControls returns enabled Controls orbiting the camera around the target, reading the starting orbit from
// the camera's current position.
func NewControls(camera *scene.Camera, target scene.Vector3, limits Limits) *Controls {
	controls := &Controls{
		Camera:      camera,
		Target:      target,
		Limits:      limits,
		Enabled:     true,
		RotateSpeed: 1,
		ZoomSpeed:   1,
		spring:      harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0),
	}
	controls.Sync()
	return controls
}

// Spherical returns the current azimuth, polar angle, and distance of the orbit.
func (controls *Controls) Spherical() (azimuth, polar, distance float32) {
	return controls.azimuth, controls.polar, controls.distance
}

// Sync re-reads the orbit from the camera's position, i.e. after the camera has been moved by something else.
func (controls *Controls) Sync() {

	offset := controls.Camera.Position.Sub(controls.Target)

	controls.distance = offset.Magnitude()
	if controls.distance == 0 {
		controls.azimuth, controls.polar = 0, 0
	} else {
		controls.azimuth = math32.Atan2(offset.X, offset.Z)
		controls.polar = math32.Acos(clamp(offset.Y/controls.distance, -1, 1))
	}

	controls.goalAzimuth = controls.azimuth
	controls.goalPolar = controls.polar
	controls.goalDistance = controls.distance
	controls.velAzimuth, controls.velPolar, controls.velDistance = 0, 0, 0
	controls.dirty = false

}

// Rotate orbits the camera by the given azimuth and polar deltas, in radians.
func (controls *Controls) Rotate(deltaAzimuth, deltaPolar float32) error {
	if !controls.Enabled {
		return ErrDisabled
	}
	controls.goalAzimuth = controls.clampAzimuth(controls.goalAzimuth + deltaAzimuth*controls.RotateSpeed)
	controls.goalPolar = clamp(controls.goalPolar+deltaPolar*controls.RotateSpeed, controls.MinPolar, controls.MaxPolar)
	controls.dirty = true
	return nil
}

// Zoom scales the distance to the target; values below 1 move closer.
func (controls *Controls) Zoom(scale float32) error {
	if !controls.Enabled {
		return ErrDisabled
	}
	if scale <= 0 {
		return nil
	}
	scale = math32.Pow(scale, controls.ZoomSpeed)
	controls.goalDistance = clamp(controls.goalDistance*scale, controls.MinDistance, controls.MaxDistance)
	controls.dirty = true
	return nil
}

// Pan is rejected unless EnablePan is set; the room never enables it.
func (controls *Controls) Pan(dx, dy float32) error {
	if !controls.Enabled || !controls.EnablePan {
		return ErrDisabled
	}
	right := scene.TransformDirection(controls.Camera.WorldTransform(), scene.NewVector3(1, 0, 0)).Scale(dx)
	up := scene.TransformDirection(controls.Camera.WorldTransform(), scene.NewVector3(0, 1, 0)).Scale(dy)
	controls.Target = controls.Target.Add(right).Add(up)
	controls.Camera.Position = controls.Camera.Position.Add(right).Add(up)
	return nil
}

// Update moves the camera to the (clamped) orbit and points it at the target. It only touches the camera
// after Rotate or Zoom (or while damping settles), and never while disabled, so choreographed moves aren't
// fought over.
func (controls *Controls) Update() {

	if !controls.Enabled || !controls.dirty {
		return
	}

	controls.goalAzimuth = controls.clampAzimuth(controls.goalAzimuth)
	controls.goalPolar = clamp(controls.goalPolar, controls.MinPolar, controls.MaxPolar)
	controls.goalDistance = clamp(controls.goalDistance, controls.MinDistance, controls.MaxDistance)

	if controls.Damping {
		controls.azimuth = controls.springTo(controls.azimuth, &controls.velAzimuth, controls.goalAzimuth)
		controls.polar = controls.springTo(controls.polar, &controls.velPolar, controls.goalPolar)
		controls.distance = controls.springTo(controls.distance, &controls.velDistance, controls.goalDistance)
		if controls.settled() {
			controls.dirty = false
		}
	} else {
		controls.azimuth = controls.goalAzimuth
		controls.polar = controls.goalPolar
		controls.distance = controls.goalDistance
		controls.dirty = false
	}

	sinPolar := math32.Sin(controls.polar)

	offset := scene.NewVector3(
		controls.distance*sinPolar*math32.Sin(controls.azimuth),
		controls.distance*math32.Cos(controls.polar),
		controls.distance*sinPolar*math32.Cos(controls.azimuth),
	)

	controls.Camera.Position = controls.Target.Add(offset)
	controls.Camera.Rotation = scene.LookAtRotation(controls.Camera.Position, controls.Target, scene.WorldUp)

}

func (controls *Controls) settled() bool {
	const epsilon = 1e-4
	return math32.Abs(controls.azimuth-controls.goalAzimuth) < epsilon &&
		math32.Abs(controls.polar-controls.goalPolar) < epsilon &&
		math32.Abs(controls.distance-controls.goalDistance) < epsilon
}

func (controls *Controls) springTo(current float32, velocity *float64, goal float32) float32 {
	pos, vel := controls.spring.Update(float64(current), *velocity, float64(goal))
	*velocity = vel
	return float32(pos)
}

func (controls *Controls) clampAzimuth(azimuth float32) float32 {
	if controls.MinAzimuth >= controls.MaxAzimuth {
		return azimuth
	}
	return clamp(azimuth, controls.MinAzimuth, controls.MaxAzimuth)
}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}
