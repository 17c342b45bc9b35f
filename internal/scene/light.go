package scene

import "github.com/chewxy/math32"

// AmbientLight represents an ambient light that colors the entire Scene evenly.
type AmbientLight struct {
	Name      string
	Color     Color
	Intensity float32
}

// NewAmbientLight returns a new AmbientLight.
func NewAmbientLight(name string, color Color, intensity float32) *AmbientLight {
	return &AmbientLight{Name: name, Color: color, Intensity: intensity}
}

// Light returns the light contribution of the AmbientLight.
func (amb *AmbientLight) Light() (float32, float32, float32) {
	return amb.Color.R * amb.Intensity, amb.Color.G * amb.Intensity, amb.Color.B * amb.Intensity
}

// ShadowSettings mirror the shadow map configuration of a shadow-casting light.
type ShadowSettings struct {
	Radius  float32
	MapSize int
	Far     float32
	Bias    float32
}

// PointLight represents a light radiating in all directions from a single position.
type PointLight struct {
	Name      string
	Color     Color
	Intensity float32
	// Distance is the distance after which the light fully attenuates. If this is 0, the light
	// falls off with the inverse square law alone.
	Distance   float32
	Position   Vector3
	CastShadow bool
	Shadow     ShadowSettings
}

// NewPointLight creates a new PointLight.
func NewPointLight(name string, color Color, intensity, distance float32) *PointLight {
	return &PointLight{
		Name:      name,
		Color:     color,
		Intensity: intensity,
		Distance:  distance,
	}
}

// Light returns the R, G, and B contribution of the PointLight to a surface at the given world position
// with the given world normal.
func (point *PointLight) Light(position, normal Vector3) (float32, float32, float32) {

	toLight := point.Position.Sub(position)
	distance := toLight.Magnitude()
	if distance == 0 {
		return 0, 0, 0
	}

	diffuse := normal.Dot(toLight.Scale(1 / distance))
	if diffuse <= 0 {
		return 0, 0, 0
	}

	factor := diffuse * point.Attenuation(distance) * point.Intensity

	return point.Color.R * factor, point.Color.G * factor, point.Color.B * factor

}

// Attenuation returns how much of the light remains at the given distance.
func (point *PointLight) Attenuation(distance float32) float32 {

	att := 1 / math32.Max(distance*distance, 0.01)

	if point.Distance > 0 {
		cut := clamp(1-math32.Pow(distance/point.Distance, 4), 0, 1)
		att *= cut * cut
	}

	return att

}
