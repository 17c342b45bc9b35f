package room

import (
	"fmt"
	"log"

	"github.com/solarlune/tetraroom/internal/anim"
	"github.com/solarlune/tetraroom/internal/assets"
	"github.com/solarlune/tetraroom/internal/config"
	"github.com/solarlune/tetraroom/internal/link"
	"github.com/solarlune/tetraroom/internal/orbit"
	"github.com/solarlune/tetraroom/internal/scene"
	"github.com/solarlune/tetraroom/internal/tween"
	"github.com/solarlune/tetraroom/internal/ui"
)

// Options configure a new Room.
type Options struct {
	Layout *config.Layout // Defaults to the built-in layout.
	Bundle *assets.Bundle

	Width, Height       int
	SmallScreenMaxWidth int

	Opener         link.Opener    // Opens project links and the overlay's fallback page.
	OverlayFactory OverlayFactory // Defaults to drawing the celebration page.
	OverlayURL     string         // Defaults to the layout's overlay URL.
}

// Room is the running birthday room: its scene, camera, page chrome, and the components reacting to input.
type Room struct {
	Layout   *config.Layout
	Scene    *scene.Scene
	Model    *scene.Node // The loaded room model.
	Camera   *scene.Camera
	Controls *orbit.Controls
	Timeline *tween.Timeline
	Mixer    *anim.Mixer
	Registry *Registry
	Document *ui.Document
	State    *State
	Opener   link.Opener

	Choreographer *Choreographer
	Theme         *ThemeController
	Dispatcher    *Dispatcher
	Overlay       *OverlayHost
	Responsive    *Responsive
}

// New builds a Room from the loaded assets, with the camera at the default view and the fans spinning.
func New(opts Options) (*Room, error) {

	layout := opts.Layout
	if layout == nil {
		def, err := config.DefaultLayout()
		if err != nil {
			return nil, err
		}
		layout = def
	}

	// The small-screen overrides write into the layout, so work on a copy.
	layout, err := layout.Clone()
	if err != nil {
		return nil, fmt.Errorf("new room: %w", err)
	}

	sc, reg, err := Build(layout, opts.Bundle)
	if err != nil {
		return nil, err
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = 1280, 720
	}

	cam := layout.Camera
	camera := scene.NewCamera(cam.FieldOfView, float32(width)/float32(height), cam.Near, cam.Far)
	camera.Position = layout.Poses.Default.Position.Vector()
	camera.Rotation = layout.Poses.Default.Rotation.Vector()

	opener := opts.Opener
	if opener == nil {
		opener = link.NewBrowser("")
	}

	rm := &Room{
		Layout:   layout,
		Scene:    sc,
		Model:    opts.Bundle.Library.Root,
		Camera:   camera,
		Controls: orbit.NewControls(camera, cam.Target.Vector(), layout.Controls),
		Timeline: tween.NewTimeline(),
		Mixer:    anim.NewMixer(opts.Bundle.Library.Root),
		Registry: reg,
		Document: ui.NewDocument(float32(width), float32(height), layout.Contact),
		State:    &State{View: ViewDefault, Theme: ThemeLight},
		Opener:   opener,
	}

	if started := rm.Mixer.PlayClips(opts.Bundle.Library.Clips, layout.FanClips...); started < len(layout.FanClips) {
		log.Printf("room: playing %d of %d fan clips", started, len(layout.FanClips))
	}

	factory := opts.OverlayFactory
	if factory == nil {
		factory = rm.drawOverlay(opts.Bundle.Fonts)
	}

	url := opts.OverlayURL
	if url == "" {
		url = layout.Overlay.URL
	}

	rm.Overlay = NewOverlayHost(factory, opener, url, rm.Timeline, rm.Document)

	roomLight := sc.PointLight(layout.Lights.Room.Name)

	textLights := []*scene.PointLight{}
	for _, l := range layout.Lights.Text {
		if light := sc.PointLight(l.Name); light != nil {
			textLights = append(textLights, light)
		}
	}

	rm.Choreographer = &Choreographer{
		Camera:    camera,
		Controls:  rm.Controls,
		Timeline:  rm.Timeline,
		Registry:  reg,
		Document:  rm.Document,
		State:     rm.State,
		Overlay:   rm.Overlay,
		RoomLight: roomLight,
		Poses:     layout.Poses,
		Duration:  cam.Duration,
		Lift:      layout.Celebration.Lift,
		Themes:    layout.Themes,
	}

	rm.Theme = &ThemeController{
		Scene:      sc,
		Registry:   reg,
		Document:   rm.Document,
		Timeline:   rm.Timeline,
		State:      rm.State,
		Themes:     layout.Themes,
		RoomLight:  roomLight,
		TextLights: textLights,
	}

	rm.Dispatcher = &Dispatcher{
		Picker:        scene.NewCameraPicker(camera, sc),
		Registry:      reg,
		Document:      rm.Document,
		State:         rm.State,
		Timeline:      rm.Timeline,
		Choreographer: rm.Choreographer,
		Theme:         rm.Theme,
		Overlay:       rm.Overlay,
		Opener:        opener,
	}

	rm.Responsive = &Responsive{MaxWidth: opts.SmallScreenMaxWidth, Small: layout.SmallScreen}
	if opts.SmallScreenMaxWidth > 0 {
		rm.ApplySmallScreen(width)
	}

	return rm, nil

}

// drawOverlay returns an OverlayFactory drawing the celebration page at the window's size.
func (rm *Room) drawOverlay(fonts assets.Fonts) OverlayFactory {
	return func() (*Overlay, error) {
		w, h := int(rm.Document.Width), int(rm.Document.Height)
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("draw overlay: window is %dx%d", w, h)
		}
		cel := rm.Layout.Celebration
		return &Overlay{Page: DrawCelebrationPage(w, h, cel.CardHeading, cel.ButtonHint, fonts)}, nil
	}
}

// ApplySmallScreen applies the small-screen overrides if the window width given is small. It only has an effect
// once; it returns true if it applied them.
func (rm *Room) ApplySmallScreen(width int) bool {
	return rm.Responsive.Apply(width, rm)
}

// Update advances the Room by dt seconds: tweens, the fan clips, the video screen, and the orbit.
func (rm *Room) Update(dt float32) {
	rm.Timeline.Update(dt)
	rm.Mixer.Update(dt)
	if rm.Registry.Video != nil {
		rm.Registry.Video.Update(dt)
	}
	rm.Controls.Update()
}

// Resize adapts the camera and the page chrome to a new window size. The small-screen overrides aren't revisited.
func (rm *Room) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	rm.Camera.SetAspect(float32(width) / float32(height))
	rm.Document.Layout(float32(width), float32(height))
}

// Click handles a click at window pixel coordinates: the chrome element under it reacts first, then the click is
// cast into the room. It returns the number of room objects that reacted.
func (rm *Room) Click(x, y float32) int {
	target := rm.Document.HitTest(x, y)
	rm.HandleChrome(target)
	return rm.Dispatcher.Click(PointerEvent{X: x, Y: y, Target: target})
}

// HandleChrome performs the action of a clicked chrome element, returning true if it had one.
func (rm *Room) HandleChrome(target *ui.Element) bool {

	if target == nil {
		return false
	}

	switch target.ID {

	case ui.AboutMenu:
		rm.Choreographer.AboutMenu()

	case ui.ProjectsMenu:
		rm.Choreographer.ToProjects()

	case ui.CloseButton:
		rm.Choreographer.Reset()

	case ui.ContactButton:
		rm.Document.ToggleContact()

	case ui.OverlayClose:
		rm.Overlay.Dismiss()

	default:
		if target.Href == "" {
			return false
		}
		if err := rm.Opener.Open(target.Href); err != nil {
			log.Println("room: contact link:", err)
		}

	}

	return true

}

// MouseUp closes the contact dropdown unless the mouse was released over the contact menu.
func (rm *Room) MouseUp(x, y float32) {
	rm.Document.MouseUp(rm.Document.HitTest(x, y))
}

// Move tracks the pointer for hover feedback on the chrome and the celebration button.
func (rm *Room) Move(x, y float32) {
	target := rm.Document.Hover(x, y)
	if rm.Overlay.Overlay() != nil {
		rm.Overlay.HoverClose(target != nil && target.ID == ui.OverlayClose)
	}
	rm.Dispatcher.Move(PointerEvent{X: x, Y: y, Target: target})
}
