package scene

import "image"

// MaterialKind indicates how a Material responds to light.
type MaterialKind int

const (
	MaterialStandard MaterialKind = iota // Lit, roughness / metalness shading.
	MaterialBasic                        // Unlit; the color (and texture) is drawn as-is.
	MaterialPhysical                     // Lit, with transmission and index of refraction (glass).
	MaterialPhong                        // Lit, classic shading used by the wall text.
)

// TextureSource provides a texture that can change over time, like a looping video frame sequence.
type TextureSource interface {
	Frame() image.Image
}

// Material describes the surface of a mesh.
type Material struct {
	Name string
	Kind MaterialKind

	Color       Color
	Opacity     float32
	Transparent bool // If Opacity is honored while drawing.
	DoubleSided bool // If back faces are drawn and can be struck by rays.

	Texture       image.Image
	TextureSource TextureSource // Overrides Texture when set.

	Roughness    float32
	IOR          float32
	Transmission float32
	DepthWrite   bool
	DepthTest    bool
	FlatShading  bool
}

// NewMaterial returns an opaque, white standard Material.
func NewMaterial(name string) *Material {
	return &Material{
		Name:       name,
		Kind:       MaterialStandard,
		Color:      NewColor(1, 1, 1, 1),
		Opacity:    1,
		Roughness:  1,
		IOR:        1.5,
		DepthWrite: true,
		DepthTest:  true,
	}
}

// CurrentTexture returns the image to sample for this material, or nil if it is untextured.
func (mat *Material) CurrentTexture() image.Image {
	if mat.TextureSource != nil {
		if frame := mat.TextureSource.Frame(); frame != nil {
			return frame
		}
	}
	return mat.Texture
}

// EffectiveOpacity returns the opacity used to draw the material, clamped to the 0 to 1 range.
// Opaque materials always return 1.
func (mat *Material) EffectiveOpacity() float32 {
	if !mat.Transparent {
		return 1
	}
	return clamp(mat.Opacity, 0, 1)
}
