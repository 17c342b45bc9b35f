// Package app runs the birthday room as an Ebitengine game: it loads the assets in the background, builds the
// room once they arrive, and feeds it input and frames.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solarlune/tetraroom/internal/assets"
	"github.com/solarlune/tetraroom/internal/config"
	"github.com/solarlune/tetraroom/internal/link"
	"github.com/solarlune/tetraroom/internal/orbit"
	"github.com/solarlune/tetraroom/internal/render"
	"github.com/solarlune/tetraroom/internal/room"
	"github.com/solarlune/tetraroom/internal/ui"
)

// Pointer travel, in pixels, after which a press becomes an orbit drag instead of a click.
const dragThreshold = 4

var _ ebiten.Game = (*Game)(nil)

// Game is the ebiten.Game hosting the room.
type Game struct {
	Env        config.Env
	RoomLayout *config.Layout
	Assets     fs.FS
	Opener     link.Opener

	Loader   *assets.Loader
	Room     *room.Room
	Renderer *render.Renderer
	Chrome   *render.Chrome

	DrawDebugText bool

	width, height int

	pressX, pressY int
	lastX, lastY   int
	dragging       bool
	failed         bool
}

// NewGame returns a Game loading the layout's assets from the file system given.
func NewGame(env config.Env, layout *config.Layout, fsys fs.FS, opener link.Opener) *Game {

	renderer := render.NewRenderer()

	return &Game{
		Env:           env,
		RoomLayout:    layout,
		Assets:        fsys,
		Opener:        opener,
		Loader:        assets.NewLoader(fsys, ManifestFor(layout)),
		Renderer:      renderer,
		Chrome:        render.NewChrome(assets.DefaultFonts(), renderer),
		DrawDebugText: env.Debug,
		width:         env.Width,
		height:        env.Height,
	}

}

// ManifestFor lists the files the layout needs.
func ManifestFor(layout *config.Layout) assets.Manifest {
	m := assets.Manifest{
		Room:         layout.Assets.Room,
		BookCover:    layout.Assets.BookCover,
		BookInner:    layout.Assets.BookInner,
		Video:        layout.Assets.Video,
		TitleFont:    layout.Assets.TitleFont,
		SubtitleFont: layout.Assets.SubtitleFont,
	}
	for _, p := range layout.Projects {
		m.Projects = append(m.Projects, p.Image)
	}
	return m
}

// Start begins loading the assets in the background.
func (g *Game) Start(ctx context.Context) {
	g.debugf("loading %d files", g.Loader.Total())
	g.Loader.Start(ctx)
}

func (g *Game) Update() error {

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.DrawDebugText = !g.DrawDebugText
	}

	if g.Room == nil {
		g.poll()
		return nil
	}

	g.handleInput()

	g.Room.Update(1 / float32(ebiten.TPS()))

	return nil

}

// poll builds the room once the assets arrive. If the room model fails to load, the loading screen stays up.
func (g *Game) poll() {

	if g.failed {
		return
	}

	result, ok := g.Loader.Poll()
	if !ok {
		return
	}

	if result.Err != nil {
		log.Println("app: assets failed to load:", result.Err)
		g.failed = true
		return
	}

	rm, err := room.New(room.Options{
		Layout:              g.RoomLayout,
		Bundle:              result.Bundle,
		Width:               g.width,
		Height:              g.height,
		SmallScreenMaxWidth: g.Env.SmallScreenMaxWidth,
		Opener:              g.Opener,
		OverlayFactory:      g.overlayFactory(),
		OverlayURL:          g.Env.OverlayURL,
	})
	if err != nil {
		log.Println("app: room failed to build:", err)
		g.failed = true
		return
	}

	g.Room = rm
	g.Chrome = render.NewChrome(result.Bundle.Fonts, g.Renderer)

	g.debugf("room built; small screen: %t", rm.Responsive.Applied())

}

// overlayFactory loads the layout's page image when the overlay is first shown. Without one, the room draws its
// own page.
func (g *Game) overlayFactory() room.OverlayFactory {

	if g.RoomLayout.Overlay.Image == "" {
		return nil
	}

	return func() (*room.Overlay, error) {
		page, err := g.Loader.LoadImage(g.RoomLayout.Overlay.Image)
		if err != nil {
			return nil, fmt.Errorf("load overlay page: %w", err)
		}
		return &room.Overlay{Page: page}, nil
	}

}

func (g *Game) handleInput() {

	x, y := ebiten.CursorPosition()

	if x != g.lastX || y != g.lastY {
		g.Room.Move(float32(x), float32(y))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressX, g.pressY = x, y
		g.lastX, g.lastY = x, y
		g.dragging = false
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {

		dx, dy := x-g.pressX, y-g.pressY
		if !g.dragging && dx*dx+dy*dy > dragThreshold*dragThreshold {
			g.dragging = true
		}

		if g.dragging {
			h := float32(g.height)
			if h <= 0 {
				h = 1
			}
			// One window height of drag turns the orbit a full circle.
			err := g.Room.Controls.Rotate(-2*math32.Pi*float32(x-g.lastX)/h, -2*math32.Pi*float32(y-g.lastY)/h)
			if err != nil && !errors.Is(err, orbit.ErrDisabled) {
				log.Println("app:", err)
			}
		}

	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.Room.MouseUp(float32(x), float32(y))
		if !g.dragging {
			fired := g.Room.Click(float32(x), float32(y))
			g.debugf("click at %d, %d reached %d objects", x, y, fired)
		}
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		if err := g.Room.Controls.Zoom(math32.Pow(0.95, float32(wy))); err != nil && !errors.Is(err, orbit.ErrDisabled) {
			log.Println("app:", err)
		}
	}

	if g.Room.Document.Cursor == ui.CursorPointer {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	g.lastX, g.lastY = x, y

}

func (g *Game) Draw(screen *ebiten.Image) {

	if g.Room == nil {
		g.Chrome.DrawLoader(screen, g.Loader.Progress())
		return
	}

	doc := g.Room.Document

	screen.Fill(render.PaletteFor(doc).Background)

	g.Renderer.RenderScene(screen, g.Room.Scene, g.Room.Camera)

	g.Chrome.DrawDocument(screen, doc)
	g.Chrome.DrawOverlay(screen, g.Room.Overlay.Overlay(), doc.ByID(ui.OverlayClose))

	if g.DrawDebugText {
		info := g.Renderer.DebugInfo
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f\nView: %s\nTheme: %s\nMeshes: %d\nTris: %d (%d culled)\nDraw calls: %d\nTweens: %d",
			ebiten.ActualFPS(),
			g.Room.State.View,
			g.Room.State.Theme,
			info.DrawnMeshes,
			info.DrawnTriangles,
			info.CulledTris,
			info.DrawCalls,
			g.Room.Timeline.Len(),
		))
	}

}

// Layout follows the window size; resizes only update the camera's aspect and the chrome.
func (g *Game) Layout(w, h int) (int, int) {
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		if g.Room != nil {
			g.Room.Resize(w, h)
		}
	}
	return w, h
}

func (g *Game) debugf(format string, args ...any) {
	if g.Env.Debug {
		log.Printf("debug: "+format, args...)
	}
}
