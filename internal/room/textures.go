package room

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/solarlune/tetraroom/internal/assets"
	"github.com/solarlune/tetraroom/internal/colors"
	"github.com/solarlune/tetraroom/internal/config"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Textures drawn at startup: the celebration card and button, the wall text, and the fallback celebration page.
// Coordinates below are laid out for the reference canvas sizes and scaled to the requested size.

const (
	cardCanvasW, cardCanvasH     = 512, 342
	buttonCanvasW, buttonCanvasH = 400, 144
)

type gradientStop struct {
	at    float32
	color color.NRGBA64
}

// linearGradient is an unbounded image shading along the line from x0, y0 to x1, y1.
type linearGradient struct {
	x0, y0, x1, y1 float32
	stops          []gradientStop
}

func newLinearGradient(x0, y0, x1, y1 float32, stops ...gradientStop) *linearGradient {
	return &linearGradient{x0: x0, y0: y0, x1: x1, y1: y1, stops: stops}
}

func (g *linearGradient) ColorModel() color.Model { return color.NRGBA64Model }

func (g *linearGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *linearGradient) At(x, y int) color.Color {

	dx, dy := g.x1-g.x0, g.y1-g.y0
	length := dx*dx + dy*dy
	t := float32(0)
	if length > 0 {
		t = ((float32(x)+0.5-g.x0)*dx + (float32(y)+0.5-g.y0)*dy) / length
	}
	t = math32.Max(0, math32.Min(1, t))

	if t <= g.stops[0].at {
		return g.stops[0].color
	}

	for i := 1; i < len(g.stops); i++ {
		a, b := g.stops[i-1], g.stops[i]
		if t <= b.at {
			p := (t - a.at) / (b.at - a.at)
			mix := func(u, v uint16) uint16 { return uint16(float32(u) + (float32(v)-float32(u))*p) }
			return color.NRGBA64{
				R: mix(a.color.R, b.color.R),
				G: mix(a.color.G, b.color.G),
				B: mix(a.color.B, b.color.B),
				A: mix(a.color.A, b.color.A),
			}
		}
	}

	return g.stops[len(g.stops)-1].color

}

type point struct{ x, y float32 }

// roundRectPoints outlines a rounded rectangle clockwise (in image space) as a polygon.
func roundRectPoints(x, y, w, h, r float32) []point {

	r = math32.Min(r, math32.Min(w, h)/2)
	if r <= 0 {
		return []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}

	const steps = 8
	corners := []struct{ cx, cy, start float32 }{
		{x + w - r, y + r, -math32.Pi / 2},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, math32.Pi / 2},
		{x + r, y + r, math32.Pi},
	}

	pts := make([]point, 0, len(corners)*(steps+1))
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			a := c.start + float32(i)/steps*math32.Pi/2
			pts = append(pts, point{c.cx + math32.Cos(a)*r, c.cy + math32.Sin(a)*r})
		}
	}
	return pts

}

func addPolygon(z *vector.Rasterizer, pts []point, reverse bool) {
	n := len(pts)
	at := func(i int) point {
		if reverse {
			return pts[n-1-i]
		}
		return pts[i]
	}
	z.MoveTo(at(0).x, at(0).y)
	for i := 1; i < n; i++ {
		z.LineTo(at(i).x, at(i).y)
	}
	z.ClosePath()
}

func fillRoundRect(dst draw.Image, x, y, w, h, r float32, src image.Image) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	addPolygon(z, roundRectPoints(x, y, w, h, r), false)
	z.Draw(dst, b, src, image.Point{})
}

// strokeRoundRect draws the outline of a rounded rectangle, centered on its edge like a canvas stroke.
func strokeRoundRect(dst draw.Image, x, y, w, h, r, lineWidth float32, src image.Image) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	half := lineWidth / 2
	addPolygon(z, roundRectPoints(x-half, y-half, w+lineWidth, h+lineWidth, r+half), false)
	addPolygon(z, roundRectPoints(x+half, y+half, w-lineWidth, h-lineWidth, math32.Max(r-half, 0)), true)
	z.Draw(dst, b, src, image.Point{})
}

// fontFace returns a face of the font at the pixel size given, falling back to a fixed bitmap face.
func fontFace(f *opentype.Font, size float64) font.Face {
	if f != nil {
		face, err := assets.Face(f, size)
		if err == nil {
			return face
		}
		log.Println("room:", err)
	}
	return basicfont.Face7x13
}

func uniform(c color.Color) *image.Uniform {
	return image.NewUniform(c)
}

// drawCentered draws the string horizontally centered on cx, with its baseline at y.
func drawCentered(dst draw.Image, face font.Face, s string, cx, y float32, src image.Image) {
	d := &font.Drawer{Dst: dst, Src: src, Face: face}
	width := d.MeasureString(s)
	d.Dot = fixed.Point26_6{X: fixed.Int26_6(cx*64) - width/2, Y: fixed.Int26_6(y * 64)}
	d.DrawString(s)
}

// middleBaseline returns the baseline that vertically centers the face's glyphs on y.
func middleBaseline(face font.Face, y float32) float32 {
	m := face.Metrics()
	return y + float32(m.Ascent-m.Descent)/64/2
}

// DrawCard draws the celebration card: a warm gradient, a white border, and its greeting.
func DrawCard(cel config.Celebration, fonts assets.Fonts) *image.NRGBA {

	w, h := cel.Card.TextureWidth, cel.Card.TextureHeight
	if w <= 0 || h <= 0 {
		w, h = cardCanvasW, cardCanvasH
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	sx, sy := float32(w)/cardCanvasW, float32(h)/cardCanvasH

	bg := newLinearGradient(0, 0, float32(w), float32(h),
		gradientStop{0, colors.Coral().ToNRGBA64()},
		gradientStop{0.5, colors.Salmon().ToNRGBA64()},
		gradientStop{1, colors.Blush().ToNRGBA64()},
	)
	draw.Draw(img, img.Bounds(), bg, image.Point{}, draw.Src)

	white := uniform(colors.White().ToNRGBA64())
	strokeRoundRect(img, 20*sx, 20*sy, 472*sx, 302*sy, 0, 8*sx, white)

	drawCentered(img, fontFace(fonts.Title, float64(48*sy)), cel.CardHeading, 256*sx, 130*sy, white)
	drawCentered(img, fontFace(fonts.Title, float64(36*sy)), cel.CardSubheading, 256*sx, 180*sy, white)
	drawCentered(img, fontFace(fonts.Subtitle, float64(20*sy)), cel.CardHint, 256*sx, 250*sy, uniform(colors.PalePink().ToNRGBA64()))

	return img

}

// DrawButton draws the celebration button: a rounded, shadowed gradient pill with its label and hint.
func DrawButton(cel config.Celebration, fonts assets.Fonts) *image.NRGBA {

	w, h := cel.Button.TextureWidth, cel.Button.TextureHeight
	if w <= 0 || h <= 0 {
		w, h = buttonCanvasW, buttonCanvasH
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	sx, sy := float32(w)/buttonCanvasW, float32(h)/buttonCanvasH

	fillRoundRect(img, 13*sx, 13*sy, 380*sx, 124*sy, 20*sx, uniform(colors.Shade(0.3).ToNRGBA64()))

	bg := newLinearGradient(0, 0, float32(w), float32(h),
		gradientStop{0, colors.Flame().ToNRGBA64()},
		gradientStop{0.5, colors.Tangerine().ToNRGBA64()},
		gradientStop{1, colors.Flame().ToNRGBA64()},
	)
	fillRoundRect(img, 10*sx, 10*sy, 380*sx, 124*sy, 20*sx, bg)

	white := uniform(colors.White().ToNRGBA64())
	strokeRoundRect(img, 10*sx, 10*sy, 380*sx, 124*sy, 20*sx, 3*sx, white)

	shadow := uniform(colors.Shade(0.5).ToNRGBA64())

	label := fontFace(fonts.Title, float64(28*sy))
	baseline := middleBaseline(label, 72*sy)
	drawCentered(img, label, cel.ButtonLabel, 200*sx+2, baseline+2, shadow)
	drawCentered(img, label, cel.ButtonLabel, 200*sx, baseline, white)

	hint := fontFace(fonts.Title, float64(16*sy))
	baseline = middleBaseline(hint, 100*sy)
	drawCentered(img, hint, cel.ButtonHint, 200*sx+2, baseline+2, shadow)
	drawCentered(img, hint, cel.ButtonHint, 200*sx, baseline, white)

	return img

}

// textMask is white text on a transparent background, measured in pixels.
type textMask struct {
	image   *image.NRGBA
	width   float32
	height  float32
	descent float32
}

// drawTextMask draws the string at the pixel size given. Materials tint the white glyphs with their color.
func drawTextMask(f *opentype.Font, s string, size float64) textMask {

	face := fontFace(f, size)
	m := face.Metrics()

	const pad = 2

	d := &font.Drawer{Face: face}
	width := d.MeasureString(s).Ceil() + pad*2
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	height := ascent + descent + pad*2

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d.Dst = img
	d.Src = uniform(color.White)
	d.Dot = fixed.P(pad, pad+ascent)
	d.DrawString(s)

	return textMask{
		image:   img,
		width:   float32(width),
		height:  float32(height),
		descent: float32(descent + pad),
	}

}

// DrawCelebrationPage draws the page shown by the overlay when no page image is configured.
func DrawCelebrationPage(w, h int, heading, subheading string, fonts assets.Fonts) *image.NRGBA {

	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	bg := newLinearGradient(0, 0, float32(w), float32(h),
		gradientStop{0, colors.PalePink().ToNRGBA64()},
		gradientStop{1, colors.Blush().ToNRGBA64()},
	)
	draw.Draw(img, img.Bounds(), bg, image.Point{}, draw.Src)

	confetti := []color.Color{
		colors.Coral().ToNRGBA64(),
		colors.Flame().ToNRGBA64(),
		colors.Tangerine().ToNRGBA64(),
		colors.Salmon().ToNRGBA64(),
		colors.Night().ToNRGBA64(),
	}

	// Fixed seed, so the page looks the same every time.
	rng := rand.New(rand.NewPCG(7, 11))
	size := float32(w+h) / 150
	for i := 0; i < 120; i++ {
		x, y := rng.Float32()*float32(w), rng.Float32()*float32(h)
		fillRoundRect(img, x, y, size, size*0.6, size*0.2, uniform(confetti[rng.IntN(len(confetti))]))
	}

	cx, cy := float32(w)/2, float32(h)/2
	title := fontFace(fonts.Title, float64(h)/8)
	drawCentered(img, title, heading, cx+3, cy+3, uniform(colors.Shade(0.2).ToNRGBA64()))
	drawCentered(img, title, heading, cx, cy, uniform(colors.Flame().ToNRGBA64()))
	drawCentered(img, fontFace(fonts.Subtitle, float64(h)/24), subheading, cx, cy+float32(h)/10, uniform(colors.Ink().ToNRGBA64()))

	return img

}
