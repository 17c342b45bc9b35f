package room

import (
	"log"

	"github.com/solarlune/tetraroom/internal/link"
	"github.com/solarlune/tetraroom/internal/scene"
	"github.com/solarlune/tetraroom/internal/tween"
	"github.com/solarlune/tetraroom/internal/ui"
	"github.com/tanema/gween/ease"
)

// PointerEvent is a pointer action at window pixel coordinates. Target is the chrome element under the pointer,
// or nil if the pointer is over the scene alone.
type PointerEvent struct {
	X, Y   float32
	Target *ui.Element
}

// Dispatcher routes clicks and pointer moves in the window to the room objects they strike.
type Dispatcher struct {
	Picker        *scene.CameraPicker
	Registry      *Registry
	Document      *ui.Document
	State         *State
	Timeline      *tween.Timeline
	Choreographer *Choreographer
	Theme         *ThemeController
	Overlay       *OverlayHost
	Opener        link.Opener

	buttonHovered bool
}

// Click casts a ray through the click and lets every struck object react, nearest first. Clicks on the dismiss
// control or the projects menu never reach the room, and neither do clicks while the Overlay is showing.
// Click returns the number of objects that reacted.
func (d *Dispatcher) Click(ev PointerEvent) int {

	// Read once, so several parts of the switch struck by one click agree on the theme to switch to.
	newTheme := d.State.Theme.Toggled()

	if d.blocked(ev.Target) {
		return 0
	}

	x, y := d.ndc(ev.X, ev.Y)
	fired := 0

	for _, hit := range d.Picker.Pick(x, y) {

		switch d.Registry.TagOf(hit.Node) {

		case TagProject:
			url := hit.Node.Properties().String("url")
			if url == "" {
				continue
			}
			if err := d.Opener.Open(url); err != nil {
				log.Println("room: project link:", err)
			}

		case TagCelebrationButton:
			d.press(hit.Node)
			d.Overlay.Show()

		case TagBook:
			d.Choreographer.ToAbout()

		case TagSwitchBoard:
			d.Theme.Set(newTheme)

		default:
			continue

		}

		fired++

	}

	return fired

}

// Move tracks the pointer over the celebration button, growing it and showing a pointer cursor while hovered.
func (d *Dispatcher) Move(ev PointerEvent) {

	button := d.Registry.Button
	if button == nil {
		return
	}

	// Hover feedback shares the button's scale and opacity with the collapse, so it only runs while the props
	// are shown.
	active := d.State.View == ViewProjects
	if d.Choreographer != nil {
		active = d.Choreographer.PropsShown()
	}

	over := false
	if active && !d.blocked(ev.Target) {
		x, y := d.ndc(ev.X, ev.Y)
		_, over = scene.RaycastNode(d.Picker.Camera.RayFromNDC(x, y), button)
	}

	if over == d.buttonHovered {
		return
	}

	d.buttonHovered = over

	opts := tween.Over(0.3).Eased(ease.OutBack)

	if over {
		d.Document.Cursor = ui.CursorPointer
		tweenVector(d.Timeline, scalePath(button), &button.Scale, scene.NewVector3Uniform(1.1), opts)
		tweenOpacity(d.Timeline, button, 1.2, tween.Over(0.3))
		return
	}

	d.Document.Cursor = ui.CursorDefault

	if active {
		tweenVector(d.Timeline, scalePath(button), &button.Scale, scene.NewVector3Uniform(1), opts)
		tweenOpacity(d.Timeline, button, 1, tween.Over(0.3))
	}

}

// ButtonHovered returns true if the pointer is over the celebration button.
func (d *Dispatcher) ButtonHovered() bool {
	return d.buttonHovered
}

// press plays the button's click feedback: a quick squash, then a springy grow.
func (d *Dispatcher) press(button *scene.Node) {
	tweenVector(d.Timeline, scalePath(button), &button.Scale, scene.NewVector3Uniform(0.9), tween.Over(0.1).Eased(ease.OutCubic)).
		Next(func() *tween.Task {
			return tweenVector(d.Timeline, scalePath(button), &button.Scale, scene.NewVector3Uniform(1.1), tween.Over(0.2).Eased(ease.OutBack))
		})
}

func (d *Dispatcher) blocked(target *ui.Element) bool {

	if d.Overlay != nil && d.Overlay.Visible() {
		return true
	}

	if target == nil {
		return false
	}

	for _, id := range []string{ui.CloseButton, ui.ProjectsMenu, ui.OverlayPage} {
		if e := d.Document.ByID(id); e != nil && e.Contains(target) {
			return true
		}
	}

	return false

}

// ndc converts window pixels to normalized device coordinates, with +Y up.
func (d *Dispatcher) ndc(x, y float32) (float32, float32) {
	return x/d.Document.Width*2 - 1, -(y/d.Document.Height*2 - 1)
}
