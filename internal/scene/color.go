package scene

import "image/color"

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
// Lights and text materials may be driven past 1 to overbrighten.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHexRGB returns an opaque Color from a 0xRRGGBB value (i.e. 0x171f27).
func NewColorFromHexRGB(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// SetRGB sets the R, G, and B components of the Color, leaving alpha alone.
func (c *Color) SetRGB(r, g, b float32) {
	c.R = r
	c.G = g
	c.B = b
}

// Mult returns a copy of the Color with each component multiplied by the other Color's matching component.
func (c Color) Mult(other Color) Color {
	c.R *= other.R
	c.G *= other.G
	c.B *= other.B
	c.A *= other.A
	return c
}

// Lerp linearly interpolates each component from the calling Color towards the other one.
func (c Color) Lerp(other Color, percentage float32) Color {
	c.R += (other.R - c.R) * percentage
	c.G += (other.G - c.G) * percentage
	c.B += (other.B - c.B) * percentage
	c.A += (other.A - c.A) * percentage
	return c
}

// Clamped returns a copy of the Color with every component limited to the 0 to 1 range.
func (c Color) Clamped() Color {
	return Color{clamp(c.R, 0, 1), clamp(c.G, 0, 1), clamp(c.B, 0, 1), clamp(c.A, 0, 1)}
}

// ToNRGBA64 converts the Color to a non-premultiplied image/color value, clamping overbright components.
func (c Color) ToNRGBA64() color.NRGBA64 {
	cl := c.Clamped()
	return color.NRGBA64{
		R: uint16(cl.R * 0xffff),
		G: uint16(cl.G * 0xffff),
		B: uint16(cl.B * 0xffff),
		A: uint16(cl.A * 0xffff),
	}
}
