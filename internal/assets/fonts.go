package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts are the two typefaces used for the wall text and the drawn textures.
type Fonts struct {
	Title    *opentype.Font
	Subtitle *opentype.Font
}

// DefaultFonts returns the Go fonts: bold for titles, regular for subtitles.
func DefaultFonts() Fonts {
	// The embedded Go fonts always parse.
	title, _ := opentype.Parse(gobold.TTF)
	subtitle, _ := opentype.Parse(goregular.TTF)
	return Fonts{Title: title, Subtitle: subtitle}
}

// ParseFont parses TrueType or OpenType font data.
func ParseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

// Face returns a face of the font at the size given, in pixels.
func Face(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	return face, nil
}
