package render

import (
	"image/color"
	"log"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/tetraroom/internal/assets"
	"github.com/solarlune/tetraroom/internal/colors"
	"github.com/solarlune/tetraroom/internal/room"
	"github.com/solarlune/tetraroom/internal/scene"
	"github.com/solarlune/tetraroom/internal/ui"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Palette is the set of flat colors the page chrome is drawn with.
type Palette struct {
	Background color.Color
	Panel      color.Color
	Hover      color.Color
	Text       color.Color
	Accent     color.Color
}

// PaletteFor returns the palette matching the document's theme class.
func PaletteFor(doc *ui.Document) Palette {
	if doc.HasClass(ui.DarkThemeClass) {
		return Palette{
			Background: colors.Night().ToNRGBA64(),
			Panel:      scaleAlpha(colors.Black(), 0.6),
			Hover:      scaleAlpha(colors.Black(), 0.85),
			Text:       colors.White().ToNRGBA64(),
			Accent:     colors.Tangerine().ToNRGBA64(),
		}
	}
	return Palette{
		Background: colors.Day().ToNRGBA64(),
		Panel:      scaleAlpha(colors.White(), 0.8),
		Hover:      colors.White().ToNRGBA64(),
		Text:       colors.Ink().ToNRGBA64(),
		Accent:     colors.Flame().ToNRGBA64(),
	}
}

// Chrome draws the page chrome, the overlay, and the loading screen.
type Chrome struct {
	Renderer *Renderer // Uploads the overlay page.

	label text.Face
	title text.Face
}

// NewChrome returns a Chrome drawing labels with the fonts given, falling back to a fixed bitmap face.
func NewChrome(fonts assets.Fonts, renderer *Renderer) *Chrome {
	return &Chrome{
		Renderer: renderer,
		label:    goXFace(fonts.Subtitle, 16),
		title:    goXFace(fonts.Title, 28),
	}
}

func goXFace(f *opentype.Font, size float64) text.Face {
	if f != nil {
		face, err := assets.Face(f, size)
		if err == nil {
			return text.NewGoXFace(face)
		}
		log.Println("render:", err)
	}
	return text.NewGoXFace(basicfont.Face7x13)
}

// DrawDocument draws the shown chrome elements, bottom-most first. The overlay's elements are left to DrawOverlay.
func (c *Chrome) DrawDocument(screen *ebiten.Image, doc *ui.Document) {

	pal := PaletteFor(doc)

	for _, e := range doc.Elements() {

		if e.Container || !e.Shown() || e.ID == ui.OverlayPage || e.ID == ui.OverlayClose {
			continue
		}

		r := e.Rect

		if e.ID == ui.CloseButton {
			cx, cy := r.Center()
			fill := pal.Panel
			if e.Hovered {
				fill = pal.Hover
			}
			vector.DrawFilledCircle(screen, cx, cy, r.W/2, fill, true)
			drawCross(screen, cx, cy, r.W/5, 0, 3, pal.Text)
			continue
		}

		fill := pal.Panel
		if e.Hovered {
			fill = pal.Hover
		}
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, fill, true)

		label := pal.Text
		if e.Hovered {
			label = pal.Accent
		}
		c.drawLabel(screen, e.Label, c.label, r, label)

	}

}

// DrawOverlay draws the celebration page over the whole screen, faded by the overlay's opacity, along with its
// dismiss control.
func (c *Chrome) DrawOverlay(screen *ebiten.Image, overlay *room.Overlay, dismiss *ui.Element) {

	if overlay == nil || !overlay.Visible || overlay.Opacity <= 0 {
		return
	}

	bounds := screen.Bounds()

	if overlay.Page != nil {
		page := c.Renderer.Texture(overlay.Page)
		pb := page.Bounds()
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(float64(bounds.Dx())/float64(pb.Dx()), float64(bounds.Dy())/float64(pb.Dy()))
		opts.ColorScale.ScaleAlpha(overlay.Opacity)
		opts.Filter = ebiten.FilterLinear
		screen.DrawImage(page, opts)
	} else {
		vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), scaleAlpha(colors.White(), overlay.Opacity), false)
	}

	if dismiss == nil {
		return
	}

	cx, cy := dismiss.Rect.Center()
	radius := dismiss.Rect.W / 2 * overlay.CloseScale
	vector.DrawFilledCircle(screen, cx, cy, radius, scaleAlpha(colors.Shade(0.6), overlay.Opacity), true)
	drawCross(screen, cx, cy, radius*0.45, overlay.CloseRotation, 4, scaleAlpha(colors.White(), overlay.Opacity))

}

// DrawLoader draws the loading screen with a progress bar for the fraction given.
func (c *Chrome) DrawLoader(screen *ebiten.Image, progress float32) {

	bounds := screen.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())

	screen.Fill(colors.Night().ToNRGBA64())

	c.drawLabel(screen, "Loading", c.title, ui.Rect{X: 0, Y: h/2 - 60, W: w, H: 40}, colors.White().ToNRGBA64())

	barW, barH := w*0.4, float32(6)
	x, y := (w-barW)/2, h/2
	vector.DrawFilledRect(screen, x, y, barW, barH, scaleAlpha(colors.White(), 0.2), false)
	vector.DrawFilledRect(screen, x, y, barW*math32.Max(0, math32.Min(1, progress)), barH, colors.Tangerine().ToNRGBA64(), false)

}

func (c *Chrome) drawLabel(screen *ebiten.Image, s string, face text.Face, r ui.Rect, clr color.Color) {
	if s == "" {
		return
	}
	cx, cy := r.Center()
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(cx), float64(cy))
	opts.ColorScale.ScaleWithColor(clr)
	opts.PrimaryAlign = text.AlignCenter
	opts.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, opts)
}

// drawCross draws an X of the given half-size centered on cx, cy, rotated by angle radians.
func drawCross(screen *ebiten.Image, cx, cy, size, angle, width float32, clr color.Color) {
	for _, a := range []float32{math32.Pi / 4, -math32.Pi / 4} {
		dx, dy := math32.Cos(a+angle)*size, math32.Sin(a+angle)*size
		vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, width, clr, true)
	}
}

func scaleAlpha(c scene.Color, alpha float32) color.NRGBA64 {
	c.A *= alpha
	return c.ToNRGBA64()
}
