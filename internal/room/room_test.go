package room

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/solarlune/tetraroom/internal/assets"
	"github.com/solarlune/tetraroom/internal/config"
	"github.com/solarlune/tetraroom/internal/link"
	"github.com/solarlune/tetraroom/internal/orbit"
	"github.com/solarlune/tetraroom/internal/scene"
	"github.com/solarlune/tetraroom/internal/ui"
)

const tolerance = 1e-3

func quad(name string) *scene.Node {
	return scene.NewMeshNode(name, scene.NewPlaneMesh(name, 0.4, 0.4), scene.NewMaterial(name))
}

// testBundle is a minimal room model: every notable object, all stacked at the origin.
func testBundle() *assets.Bundle {

	root := scene.NewNode("Scene")

	book := quad(NameBook)
	book.AddChildren(quad(NameBookCover))

	board := quad(NameSwitchBoard)
	board.AddChildren(quad(NameSwitch))

	stand := quad(NameStand)
	stand.AddChildren(quad("Screen"))

	cpu := quad(NameCPU)
	cpu.AddChildren(quad("CPUGlass"), quad("CPUGlass2"))

	wall := quad(NameWall)
	wall.AddChildren(quad("Shelf"))

	root.AddChildren(wall, book, board, stand, cpu)

	return &assets.Bundle{
		Library: &assets.Library{Root: root},
		Fonts:   assets.DefaultFonts(),
	}

}

func newTestRoom(t *testing.T, opts Options) (*Room, *link.Recorder) {
	t.Helper()
	rec := &link.Recorder{}
	if opts.Bundle == nil {
		opts.Bundle = testBundle()
	}
	if opts.Opener == nil {
		opts.Opener = rec
	}
	rm, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	return rm, rec
}

// aim points the camera straight down -Z from in front of the origin, and moves every model object out of the
// way except the ones named.
func aim(rm *Room, keep ...string) {
	rm.Camera.Position = scene.NewVector3(0, 0, 3)
	rm.Camera.Rotation = scene.Vector3{}
	for _, child := range rm.Model.Children() {
		kept := false
		for _, name := range keep {
			if child.Name() == name {
				kept = true
			}
		}
		if !kept {
			child.Position = scene.NewVector3(10, 10, 10)
		}
	}
}

func colorNear(a, b scene.Color) bool {
	return math32.Abs(a.R-b.R) < tolerance && math32.Abs(a.G-b.G) < tolerance && math32.Abs(a.B-b.B) < tolerance
}

func advance(rm *Room, seconds float32) {
	const dt = float32(1) / 60
	for elapsed := float32(0); elapsed < seconds; elapsed += dt {
		rm.Update(dt)
	}
}

func center(rm *Room) (float32, float32) {
	return rm.Document.Width / 2, rm.Document.Height / 2
}

func TestBuildDressesModel(t *testing.T) {

	layout, err := config.DefaultLayout()
	if err != nil {
		t.Fatal(err)
	}

	sc, reg, err := Build(layout, testBundle())
	if err != nil {
		t.Fatal(err)
	}

	if reg.Book == nil || reg.BookCover == nil || reg.BookCover.Name() != NameBookCover {
		t.Fatal("book handles not registered")
	}

	if reg.Switch == nil || reg.Switch.Name() != NameSwitch {
		t.Fatal("switch handle not registered")
	}

	if reg.Wall.CastShadow || !reg.Wall.ReceiveShadow {
		t.Fatal("the wall must receive shadows but not cast them")
	}

	if !reg.Wall.Get("Shelf").CastShadow {
		t.Fatal("children of the wall should still cast shadows")
	}

	if reg.BookCover.CastShadow || reg.Switch.CastShadow {
		t.Fatal("the book cover and the switch shouldn't cast shadows")
	}

	if !reg.BookCover.Material().DoubleSided {
		t.Fatal("book cover material should be double-sided")
	}

	if len(reg.CPUGlass) != 2 {
		t.Fatal("expected 2 glass parts, got", len(reg.CPUGlass))
	}
	for i, want := range []float32{2, 1} {
		mat := reg.CPUGlass[i].Material()
		if mat.Kind != scene.MaterialPhysical || mat.Transmission != want || mat.IOR != 3 || mat.DepthWrite {
			t.Errorf("glass part #%d has the wrong material: %+v", i, mat)
		}
	}

	if reg.Screen == nil || reg.Screen.Material().Kind != scene.MaterialBasic {
		t.Fatal("stand screen should have a basic material")
	}

	for _, n := range []*scene.Node{reg.Card, reg.Button} {
		if n.Scale != (scene.Vector3{}) || n.Material().Opacity != 0 {
			t.Fatal(n.Name(), "should start collapsed and transparent")
		}
	}

	if reg.TagOf(reg.Button) != TagCelebrationButton || reg.Button.Properties().String("action") != "loadBirthday" {
		t.Fatal("button isn't registered as the celebration button")
	}

	if len(reg.Projects) != len(layout.Projects) {
		t.Fatal("expected", len(layout.Projects), "projects, got", len(reg.Projects))
	}
	for i, p := range reg.Projects {
		if reg.TagOf(p) != TagProject || p.Properties().String("url") != layout.Projects[i].URL {
			t.Errorf("project #%d isn't registered with its link", i)
		}
	}

	tags := map[string]Tag{
		NameBook:        TagBook,
		NameBookCover:   TagBook,
		NameSwitchBoard: TagSwitchBoard,
		NameSwitch:      TagSwitchBoard,
		NameWall:        TagNone,
		NameCPU:         TagNone,
	}
	for name, want := range tags {
		if got := reg.TagOf(sc.FindByName(name)); got != want {
			t.Errorf("%s is tagged %s, want %s", name, got, want)
		}
	}

	if len(reg.Text) != len(layout.Text) {
		t.Fatal("expected", len(layout.Text), "lines of wall text, got", len(reg.Text))
	}
	for _, text := range reg.Text {
		if len(text.Materials) != 2 {
			t.Fatal(text.Name(), "should have a face and a side material")
		}
	}

	lights := 1 + len(layout.Lights.Fans) + len(layout.Lights.Text)
	if len(sc.PointLights) != lights {
		t.Fatal("expected", lights, "point lights, got", len(sc.PointLights))
	}

}

func TestBuildRequiresModel(t *testing.T) {
	layout, _ := config.DefaultLayout()
	if _, _, err := Build(layout, &assets.Bundle{}); !errors.Is(err, ErrMissingObject) {
		t.Fatal("expected ErrMissingObject, got", err)
	}
}

func TestAboutThenReset(t *testing.T) {

	rm, _ := newTestRoom(t, Options{})
	poses := rm.Layout.Poses

	if rm.State.View != ViewDefault {
		t.Fatal("room should start in the default view")
	}

	arrived := rm.Choreographer.ToAbout()

	if rm.Controls.Enabled {
		t.Fatal("orbit input should lock as soon as a move starts")
	}

	advance(rm, 1)

	if rm.Registry.BookCover.Rotation.X != 0 {
		t.Fatal("the cover mustn't open before the camera arrives")
	}
	if rm.Document.IsShown(ui.CloseButton) {
		t.Fatal("the dismiss control mustn't show before the camera arrives")
	}

	advance(rm, 0.6)

	if !arrived.Done() {
		t.Fatal("camera should have arrived after 1.5 seconds")
	}
	if !rm.Camera.Position.EqualsApprox(poses.About.Position.Vector(), tolerance) ||
		!rm.Camera.Rotation.EqualsApprox(poses.About.Rotation.Vector(), tolerance) {
		t.Fatal("camera is at", rm.Camera.Position, rm.Camera.Rotation, "want the about pose")
	}
	if !rm.Document.IsShown(ui.CloseButton) {
		t.Fatal("the dismiss control should show on arrival")
	}

	advance(rm, 1.6)

	if math32.Abs(rm.Registry.BookCover.Rotation.X-math32.Pi) > tolerance {
		t.Fatal("book cover should be open, rotation is", rm.Registry.BookCover.Rotation.X)
	}

	if light := rm.Choreographer.RoomLight; math32.Abs(light.Intensity-rm.Layout.Themes.AboutRoomIntensity) > tolerance {
		t.Fatal("room light should dim for reading, intensity is", light.Intensity)
	}

	if err := rm.Controls.Rotate(0.1, 0); !errors.Is(err, orbit.ErrDisabled) {
		t.Fatal("orbit input should be locked in the about view")
	}

	rm.Choreographer.Reset()

	if rm.Document.IsShown(ui.CloseButton) {
		t.Fatal("the dismiss control should hide on reset")
	}

	advance(rm, 2)

	if rm.State.View != ViewDefault {
		t.Fatal("view should be back to default")
	}
	if !rm.Camera.Position.EqualsApprox(poses.Default.Position.Vector(), tolerance) ||
		!rm.Camera.Rotation.EqualsApprox(poses.Default.Rotation.Vector(), tolerance) {
		t.Fatal("camera is at", rm.Camera.Position, rm.Camera.Rotation, "want the default pose")
	}
	if math32.Abs(rm.Registry.BookCover.Rotation.X) > tolerance {
		t.Fatal("book cover should be closed")
	}
	if light := rm.Choreographer.RoomLight; math32.Abs(light.Intensity-rm.Layout.Themes.Light.RoomIntensity) > tolerance {
		t.Fatal("room light should be restored, intensity is", light.Intensity)
	}
	if err := rm.Controls.Rotate(0.1, 0); err != nil {
		t.Fatal("orbit input should unlock after reset:", err)
	}

}

func TestAboutWithoutCoverIsNoOp(t *testing.T) {

	bundle := testBundle()
	book := bundle.Library.Root.Get(NameBook)
	book.RemoveChildren(book.Children()...)

	rm, _ := newTestRoom(t, Options{Bundle: bundle})

	if task := rm.Choreographer.ToAbout(); !task.Superseded() {
		t.Fatal("moving to the book without its cover should be dropped")
	}
	if rm.State.View != ViewDefault || !rm.Controls.Enabled {
		t.Fatal("dropped move shouldn't change the view or lock input")
	}

}

func TestLatestMoveWins(t *testing.T) {

	rm, _ := newTestRoom(t, Options{})

	about := rm.Choreographer.ToAbout()
	advance(rm, 0.5)
	rm.Choreographer.ToProjects()

	if !about.Superseded() {
		t.Fatal("the earlier move should be superseded")
	}

	advance(rm, 2)

	if !rm.Camera.Position.EqualsApprox(rm.Layout.Poses.Projects.Position.Vector(), tolerance) {
		t.Fatal("camera should end at the latest move's pose, it's at", rm.Camera.Position)
	}

}

func TestProjectsRevealAndCollapse(t *testing.T) {

	rm, _ := newTestRoom(t, Options{})
	reg := rm.Registry
	lift := rm.Layout.Celebration.Lift

	rm.Choreographer.ToProjects()

	if reg.Card.Scale != scene.NewVector3Uniform(1) {
		t.Fatal("the card should be expanded at once")
	}

	advance(rm, 1.5+2.1)

	if math32.Abs(reg.Card.Material().Opacity-1) > tolerance || math32.Abs(reg.Button.Material().Opacity-1) > tolerance {
		t.Fatal("card and button should be opaque")
	}
	if math32.Abs(reg.Card.Position.Y-(reg.CardRest.Y+lift)) > tolerance {
		t.Fatal("card should be lifted, it's at", reg.Card.Position.Y)
	}
	if !rm.Timeline.Active(scalePath(reg.Button) + ".x") {
		t.Fatal("button should be pulsing")
	}

	rm.Choreographer.Reset()
	advance(rm, 1.2)

	if rm.Timeline.Active(scalePath(reg.Button) + ".x") {
		t.Fatal("button pulse should stop")
	}
	for _, n := range append([]*scene.Node{reg.Card, reg.Button}, reg.Projects...) {
		if n.Scale != (scene.Vector3{}) {
			t.Fatal(n.Name(), "should collapse after fading out")
		}
	}
	if math32.Abs(reg.Card.Position.Y-reg.CardRest.Y) > tolerance {
		t.Fatal("card should be back at rest")
	}

}

func TestThemeAlternates(t *testing.T) {

	rm, _ := newTestRoom(t, Options{})

	want := []Theme{ThemeDark, ThemeLight, ThemeDark, ThemeLight}
	for i, theme := range want {
		if got := rm.Theme.Toggle(); got != theme || rm.State.Theme != theme {
			t.Fatal("toggle #", i, "gave", got, "want", theme)
		}
	}

}

func TestDarkTheme(t *testing.T) {

	rm, _ := newTestRoom(t, Options{})
	dark := rm.Layout.Themes.Dark

	rm.Theme.Set(ThemeDark)

	if math32.Abs(rm.Registry.Switch.Rotation.Z-math32.Pi/7) > tolerance {
		t.Fatal("switch should flip on at once, rotation is", rm.Registry.Switch.Rotation.Z)
	}
	if !rm.Document.HasClass(ui.DarkThemeClass) || rm.Document.HasClass(ui.LightThemeClass) {
		t.Fatal("body classes weren't swapped")
	}
	for _, text := range rm.Registry.Text {
		if text.Materials[0].Color != dark.TextFace.Color() || text.Materials[1].Color != dark.TextSide.Color() {
			t.Fatal("text colors should change at once")
		}
	}

	advance(rm, 0.6)

	room := rm.Choreographer.RoomLight
	if math32.Abs(room.Intensity-1.5) > tolerance || !colorNear(room.Color, dark.RoomColor.Color()) {
		t.Fatal("room light is", room.Intensity, room.Color, "want the dark theme's")
	}
	if math32.Abs(rm.Scene.Ambient.Intensity-dark.AmbientIntensity) > tolerance {
		t.Fatal("ambient light is", rm.Scene.Ambient.Intensity)
	}
	if fan := rm.Scene.PointLight(dark.AccentLight); math32.Abs(fan.Distance-dark.AccentDistance) > tolerance {
		t.Fatal("accent light distance is", fan.Distance)
	}
	for _, light := range rm.Theme.TextLights {
		if math32.Abs(light.Intensity-dark.TextLightIntensity) > tolerance {
			t.Fatal(light.Name, "intensity is", light.Intensity)
		}
	}

	// Reading the book in the dark keeps the room dark.
	rm.Choreographer.ToAbout()
	advance(rm, 2)
	if math32.Abs(room.Intensity-1.5) > tolerance {
		t.Fatal("about view shouldn't touch the room light in the dark theme")
	}

	rm.Choreographer.Reset()
	advance(rm, 2)
	if math32.Abs(room.Intensity-1.5) > tolerance {
		t.Fatal("reset shouldn't restore the light theme's room light in the dark theme, intensity is", room.Intensity)
	}
	if !rm.Controls.Enabled {
		t.Fatal("reset should unlock the controls")
	}

}

func TestQuickDoubleToggle(t *testing.T) {

	rm, _ := newTestRoom(t, Options{})
	light := rm.Layout.Themes.Light

	rm.Theme.Toggle()
	advance(rm, 0.1)
	rm.Theme.Toggle()

	if rm.State.Theme != ThemeLight {
		t.Fatal("two toggles should land back on the light theme")
	}

	advance(rm, rm.Layout.Themes.Duration+0.2)

	room := rm.Choreographer.RoomLight
	if math32.Abs(room.Intensity-light.RoomIntensity) > tolerance || !colorNear(room.Color, light.RoomColor.Color()) {
		t.Fatal("room light is", room.Intensity, room.Color, "want the light theme's")
	}
	if math32.Abs(rm.Scene.Ambient.Intensity-light.AmbientIntensity) > tolerance || !colorNear(rm.Scene.Ambient.Color, light.AmbientColor.Color()) {
		t.Fatal("ambient light is", rm.Scene.Ambient.Intensity, rm.Scene.Ambient.Color)
	}
	if fan := rm.Scene.PointLight(light.AccentLight); math32.Abs(fan.Distance-light.AccentDistance) > tolerance {
		t.Fatal("accent light distance is", fan.Distance)
	}
	for _, l := range rm.Theme.TextLights {
		if math32.Abs(l.Intensity-light.TextLightIntensity) > tolerance {
			t.Fatal(l.Name, "intensity is", l.Intensity)
		}
	}
	if math32.Abs(rm.Registry.Switch.Rotation.Z-light.SwitchRotation) > tolerance {
		t.Fatal("switch should be back off, rotation is", rm.Registry.Switch.Rotation.Z)
	}

}

func TestClickLayersHandlers(t *testing.T) {

	rm, _ := newTestRoom(t, Options{})
	aim(rm, NameBook, NameSwitchBoard)
	rm.Model.Get(NameSwitchBoard).Position = scene.NewVector3(0, 0, -0.5)

	x, y := center(rm)
	fired := rm.Click(x, y)

	// Book, its cover, the switch board, and the switch are all struck.
	if fired != 4 {
		t.Fatal("expected 4 handlers, got", fired)
	}
	if rm.State.Theme != ThemeDark {
		t.Fatal("two switch parts struck by one click should flip the theme once")
	}
	if rm.State.View != ViewAbout {
		t.Fatal("striking the book should move to the about view")
	}

}

func TestChromeBlocksRay(t *testing.T) {

	rm, _ := newTestRoom(t, Options{})
	aim(rm, NameBook, NameSwitchBoard)

	x, y := center(rm)

	for _, id := range []string{ui.CloseButton, ui.ProjectsMenu} {
		ev := PointerEvent{X: x, Y: y, Target: rm.Document.ByID(id)}
		if fired := rm.Dispatcher.Click(ev); fired != 0 {
			t.Fatal("click on", id, "reached", fired, "objects")
		}
	}

	if rm.State.View != ViewDefault || rm.State.Theme != ThemeLight {
		t.Fatal("blocked clicks changed the room's state")
	}

	ev := PointerEvent{X: x, Y: y, Target: rm.Document.ByID(ui.AboutMenu)}
	if fired := rm.Dispatcher.Click(ev); fired == 0 {
		t.Fatal("other chrome shouldn't block the ray")
	}

}

func TestProjectLink(t *testing.T) {

	rm, rec := newTestRoom(t, Options{})
	aim(rm)

	project := rm.Registry.Projects[0]
	project.Position = scene.Vector3{}
	project.Scale = scene.NewVector3Uniform(1)

	x, y := center(rm)
	rm.Click(x, y)

	if rec.Last() != rm.Layout.Projects[0].URL {
		t.Fatal("expected the project's link to open, got", rec.Opened)
	}

	project.Properties().Set("url", "")
	rm.Click(x, y)
	if len(rec.Opened) != 1 {
		t.Fatal("a project without a link shouldn't open anything")
	}

}

func TestCelebrationButtonShowsOverlayOnce(t *testing.T) {

	built := 0
	factory := func() (*Overlay, error) {
		built++
		return &Overlay{}, nil
	}

	rm, _ := newTestRoom(t, Options{OverlayFactory: factory})
	aim(rm)

	button := rm.Registry.Button
	button.Position = scene.Vector3{}
	button.Scale = scene.NewVector3Uniform(1)

	x, y := center(rm)

	rm.Click(x, y)

	if !rm.Overlay.Visible() || !rm.Document.IsShown(ui.OverlayPage) {
		t.Fatal("overlay should show")
	}

	if fired := rm.Click(x, y); fired != 0 {
		t.Fatal("the overlay should block clicks into the room")
	}

	rm.HandleChrome(rm.Document.ByID(ui.OverlayClose))
	advance(rm, 0.6)

	if rm.Overlay.Visible() {
		t.Fatal("overlay should hide after its dismiss fade")
	}

	button.Scale = scene.NewVector3Uniform(1)
	rm.Click(x, y)

	if built != 1 || rm.Overlay.Created() != 1 {
		t.Fatal("overlay should be built once, built", built, "times")
	}
	if !rm.Overlay.Visible() {
		t.Fatal("overlay should show again")
	}

}

func TestOverlayFallback(t *testing.T) {

	failure := errors.New("no page")
	rm, rec := newTestRoom(t, Options{
		OverlayFactory: func() (*Overlay, error) { return nil, failure },
	})

	if err := rm.Overlay.Show(); !errors.Is(err, failure) {
		t.Fatal("expected the factory's error, got", err)
	}
	if rec.Last() != rm.Layout.Overlay.URL {
		t.Fatal("expected the fallback page to open, got", rec.Opened)
	}
	if rm.Overlay.Visible() {
		t.Fatal("overlay shouldn't show")
	}

}

func TestDefaultOverlayDrawsPage(t *testing.T) {

	rm, _ := newTestRoom(t, Options{Width: 320, Height: 200})

	if err := rm.Overlay.Show(); err != nil {
		t.Fatal(err)
	}
	if b := rm.Overlay.Overlay().Page.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Fatal("page should fill the window, it's", b)
	}

	rm.Overlay.HoverClose(true)
	if rm.Overlay.Overlay().CloseScale != 1.1 {
		t.Fatal("dismiss control should grow on hover")
	}

}

func TestButtonHover(t *testing.T) {

	rm, _ := newTestRoom(t, Options{})
	aim(rm)

	button := rm.Registry.Button
	button.Position = scene.Vector3{}
	button.Scale = scene.NewVector3Uniform(1)
	rm.State.View = ViewProjects

	x, y := center(rm)

	rm.Move(x, y)
	if !rm.Dispatcher.ButtonHovered() || rm.Document.Cursor != ui.CursorPointer {
		t.Fatal("button should be hovered with a pointer cursor")
	}

	advance(rm, 0.4)
	if math32.Abs(button.Scale.X-1.1) > tolerance {
		t.Fatal("hovered button should grow, scale is", button.Scale.X)
	}

	rm.Move(0, 0)
	if rm.Dispatcher.ButtonHovered() || rm.Document.Cursor != ui.CursorDefault {
		t.Fatal("button should be left")
	}

	advance(rm, 0.4)
	if math32.Abs(button.Scale.X-1) > tolerance {
		t.Fatal("button should shrink back, scale is", button.Scale.X)
	}

}

func TestHoverDuringCollapse(t *testing.T) {

	rm, _ := newTestRoom(t, Options{})
	button := rm.Registry.Button
	button.Rotation = scene.Vector3{}

	rm.Choreographer.ToProjects()
	advance(rm, 4)

	rm.Choreographer.Reset()
	advance(rm, 0.2)

	// Look straight at the button, mid-fade.
	rm.Camera.Position = button.Position.Add(scene.NewVector3(0, 0, 1))
	rm.Camera.Rotation = scene.Vector3{}

	x, y := center(rm)
	rm.Move(x, y)

	if rm.Dispatcher.ButtonHovered() || rm.Document.Cursor != ui.CursorDefault {
		t.Fatal("a collapsing button shouldn't take hover")
	}

	advance(rm, 3)

	if button.Scale != (scene.Vector3{}) || button.Material().Opacity > tolerance {
		t.Fatal("button should still collapse, scale is", button.Scale, "opacity", button.Material().Opacity)
	}

	// Back in the projects view, hover works again.
	rm.Choreographer.ToProjects()
	advance(rm, 4)
	rm.Camera.Position = button.Position.Add(scene.NewVector3(0, 0, 1))
	rm.Camera.Rotation = scene.Vector3{}
	rm.Move(x, y)

	if !rm.Dispatcher.ButtonHovered() {
		t.Fatal("button should take hover once revealed")
	}

}

func TestChromeActions(t *testing.T) {

	rm, rec := newTestRoom(t, Options{})
	doc := rm.Document

	rm.HandleChrome(doc.ByID(ui.ContactButton))
	if !doc.ContactOpen() {
		t.Fatal("contact dropdown should open")
	}

	entry := doc.ContactLinks()[0]
	x, y := entry.Rect.Center()
	rm.MouseUp(x, y)
	if !doc.ContactOpen() {
		t.Fatal("releasing over the dropdown shouldn't close it")
	}

	rm.HandleChrome(entry)
	if rec.Last() != entry.Href {
		t.Fatal("contact link should open, got", rec.Opened)
	}

	rm.MouseUp(1, doc.Height-1)
	if doc.ContactOpen() {
		t.Fatal("releasing elsewhere should close the dropdown")
	}

	rm.HandleChrome(doc.ByID(ui.ProjectsMenu))
	if rm.State.View != ViewProjects {
		t.Fatal("projects menu should move to the projects view")
	}

	rm.HandleChrome(doc.ByID(ui.AboutMenu))
	if rm.State.View != ViewAbout {
		t.Fatal("about menu should move to the about view")
	}

	advance(rm, 1.6)
	rm.HandleChrome(doc.ByID(ui.CloseButton))
	if rm.State.View != ViewDefault {
		t.Fatal("dismiss control should reset the view")
	}

}

func TestSmallScreen(t *testing.T) {

	layout, err := config.DefaultLayout()
	if err != nil {
		t.Fatal(err)
	}
	about := layout.Poses.About

	rm, _ := newTestRoom(t, Options{Layout: layout, Width: 800, Height: 600, SmallScreenMaxWidth: 992})
	small := layout.SmallScreen

	if !rm.Responsive.Applied() {
		t.Fatal("an 800 pixel window should be small")
	}
	if rm.Choreographer.Poses.About != small.Poses.About || rm.Choreographer.Poses.Projects != small.Poses.Projects {
		t.Fatal("small-screen poses weren't applied")
	}
	if rm.Choreographer.Poses.Default != layout.Poses.Default {
		t.Fatal("the default pose shouldn't change")
	}
	if rm.Model.Scale != scene.NewVector3Uniform(small.Scale) {
		t.Fatal("room should be scaled down, scale is", rm.Model.Scale)
	}
	if rm.Controls.MaxDistance != small.MaxDistance || rm.Controls.MaxAzimuth != small.MaxAzimuth {
		t.Fatal("orbit limits weren't tightened")
	}
	for _, p := range rm.Registry.Projects {
		if p.Position.Z != small.ProjectZ {
			t.Fatal("project planes should move to", small.ProjectZ)
		}
	}
	if layout.Poses.About != about {
		t.Fatal("the caller's layout was modified")
	}

	if rm.ApplySmallScreen(500) {
		t.Fatal("small-screen overrides should only apply once")
	}

	rm.Resize(1920, 1080)
	if math32.Abs(rm.Camera.Aspect()-1920.0/1080) > tolerance || rm.Document.Width != 1920 {
		t.Fatal("resize should update the aspect and the chrome")
	}

	wide, _ := newTestRoom(t, Options{Width: 1280, Height: 720, SmallScreenMaxWidth: 992})
	if wide.Responsive.Applied() || wide.Choreographer.Poses.About != wide.Layout.Poses.About {
		t.Fatal("a wide window shouldn't use the small-screen overrides")
	}

}

func TestDrawnTextures(t *testing.T) {

	layout, _ := config.DefaultLayout()
	cel := layout.Celebration
	fonts := assets.DefaultFonts()

	card := DrawCard(cel, fonts)
	if b := card.Bounds(); b.Dx() != cel.Card.TextureWidth || b.Dy() != cel.Card.TextureHeight {
		t.Fatal("card texture is", b)
	}
	if _, _, _, a := card.At(card.Bounds().Dx()/2, 5).RGBA(); a == 0 {
		t.Fatal("card background should be opaque")
	}

	button := DrawButton(cel, fonts)
	if _, _, _, a := button.At(0, 0).RGBA(); a != 0 {
		t.Fatal("button corners should be transparent")
	}
	if _, _, _, a := button.At(button.Bounds().Dx()/2, 20).RGBA(); a == 0 {
		t.Fatal("button body should be opaque")
	}

	mask := drawTextMask(fonts.Title, "HAPPY", 48)
	if mask.width <= 0 || mask.height <= 0 || mask.descent <= 0 {
		t.Fatal("text mask has no size:", mask.width, mask.height, mask.descent)
	}

}
