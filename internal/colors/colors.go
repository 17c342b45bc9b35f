// Package colors contains functions to quickly generate scene.Color instances by name (i.e. "White()", "Coral()", "Ink()", etc).
package colors

import "github.com/solarlune/tetraroom/internal/scene"

// Transparent generates a scene.Color instance of the provided name.
func Transparent() scene.Color {
	return scene.NewColor(0, 0, 0, 0)
}

// White generates a scene.Color instance of the provided name.
func White() scene.Color {
	return scene.NewColor(1, 1, 1, 1)
}

// Black generates a scene.Color instance of the provided name.
func Black() scene.Color {
	return scene.NewColor(0, 0, 0, 1)
}

// Red generates a scene.Color instance of the provided name.
func Red() scene.Color {
	return scene.NewColor(1, 0, 0, 1)
}

// Green generates a scene.Color instance of the provided name.
func Green() scene.Color {
	return scene.NewColor(0, 1, 0, 1)
}

// Ink is the dark blue-gray of the wall text faces in the light theme (0x171f27).
func Ink() scene.Color {
	return scene.NewColorFromHexRGB(0x171f27)
}

// Glass is the tint of the PC case glass (0x999999).
func Glass() scene.Color {
	return scene.NewColorFromHexRGB(0x999999)
}

// Coral generates a scene.Color instance of the provided name; the card gradient starts here.
func Coral() scene.Color {
	return scene.NewColorFromHexRGB(0xff6b6b)
}

// Salmon generates a scene.Color instance of the provided name; the card gradient's midpoint.
func Salmon() scene.Color {
	return scene.NewColorFromHexRGB(0xff8e8e)
}

// Blush generates a scene.Color instance of the provided name; the card gradient ends here.
func Blush() scene.Color {
	return scene.NewColorFromHexRGB(0xffa8a8)
}

// PalePink is the color of the card's hint line.
func PalePink() scene.Color {
	return scene.NewColorFromHexRGB(0xffe6e6)
}

// Flame generates a scene.Color instance of the provided name; the button gradient's ends.
func Flame() scene.Color {
	return scene.NewColorFromHexRGB(0xff6b35)
}

// Tangerine generates a scene.Color instance of the provided name; the button gradient's midpoint.
func Tangerine() scene.Color {
	return scene.NewColorFromHexRGB(0xf7931e)
}

// Shade is the translucent black used for drop shadows.
func Shade(alpha float32) scene.Color {
	return scene.NewColor(0, 0, 0, alpha)
}

// Night is the page background in the dark theme.
func Night() scene.Color {
	return scene.NewColorFromHexRGB(0x1b1b2f)
}

// Day is the page background in the light theme.
func Day() scene.Color {
	return scene.NewColorFromHexRGB(0xe8e4dc)
}
