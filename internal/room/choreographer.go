package room

import (
	"log"

	"github.com/chewxy/math32"
	"github.com/solarlune/tetraroom/internal/config"
	"github.com/solarlune/tetraroom/internal/orbit"
	"github.com/solarlune/tetraroom/internal/scene"
	"github.com/solarlune/tetraroom/internal/tween"
	"github.com/solarlune/tetraroom/internal/ui"
	"github.com/tanema/gween/ease"
)

// Celebration prop timings, in seconds after the camera arrives at the projects view.
const (
	propFadeDuration  = 1.5
	propLiftDuration  = 1.0
	buttonRevealDelay = 0.5
	pulseDelay        = 1.0
	pulseDuration     = 0.8
	pulseScale        = 1.05
	collapseDuration  = 1.0
)

// Choreographer moves the camera between the room's viewpoints. Orbit input is locked while the camera is
// moving or resting away from the default view, and unlocked once it arrives back at the default view.
// Moves to the same camera property supersede each other, so the latest move always wins.
type Choreographer struct {
	Camera    *scene.Camera
	Controls  *orbit.Controls
	Timeline  *tween.Timeline
	Registry  *Registry
	Document  *ui.Document
	State     *State
	Overlay   *OverlayHost
	RoomLight *scene.PointLight

	Poses    config.Poses
	Duration float32 // Length of a camera move, in seconds.
	Lift     float32 // How far the celebration props rise as they appear.
	Themes   config.Themes

	collapsing bool
}

// TransitionTo moves the camera's position and rotation to the pose over the duration given (in seconds),
// superseding any moves in flight. The returned Task completes on arrival.
func (ch *Choreographer) TransitionTo(pose config.Pose, duration float32) *tween.Task {
	opts := tween.Over(duration)
	return tween.All(
		tweenVector(ch.Timeline, "camera.position", &ch.Camera.Position, pose.Position.Vector(), opts),
		tweenVector(ch.Timeline, "camera.rotation", &ch.Camera.Rotation, pose.Rotation.Vector(), opts),
	)
}

// ToAbout moves the camera to the book. Once it arrives, the book's cover opens and the dismiss control appears.
// In the light theme, the room light dims so the book can be read. If the book isn't loaded, nothing happens and
// the returned Task never completes.
func (ch *Choreographer) ToAbout() *tween.Task {

	cover := ch.Registry.BookCover
	if cover == nil {
		log.Println("room: about view:", ErrMissingObject)
		return tween.Dropped()
	}

	ch.lockInput()
	ch.State.View = ViewAbout

	arrived := ch.TransitionTo(ch.Poses.About, ch.Duration)

	arrived.Then(func() {
		ch.Timeline.To(coverAngle(cover), math32.Pi, tween.Over(ch.Duration))
		ch.showDismiss()
	})

	if ch.State.Theme != ThemeDark {
		ch.dimRoom(ch.Themes.AboutRoomIntensity)
	}

	return arrived

}

// AboutMenu hides the celebration props and moves to the about view, as the about menu entry does.
func (ch *Choreographer) AboutMenu() *tween.Task {
	ch.CollapseProps()
	return ch.ToAbout()
}

// ToProjects closes the book and moves the camera to the celebration card. Once the camera arrives, the card,
// its button, and the project planes fade in and rise, and the button starts pulsing.
func (ch *Choreographer) ToProjects() *tween.Task {

	ch.lockInput()
	ch.State.View = ViewProjects
	ch.closeBook()

	arrived := ch.TransitionTo(ch.Poses.Projects, ch.Duration)
	arrived.Then(ch.showDismiss)

	ch.revealProps(arrived)

	return arrived

}

// Reset returns the camera to the default view: the book closes, the celebration props and the Overlay hide,
// the dismiss control disappears, and orbit input unlocks once the camera arrives. In the light theme, the room
// light returns to full brightness.
func (ch *Choreographer) Reset() *tween.Task {

	ch.closeBook()
	ch.CollapseProps()
	ch.Document.Show(ui.CloseButton, false)

	ch.lockInput()
	ch.State.View = ViewDefault

	arrived := ch.TransitionTo(ch.Poses.Default, ch.Duration)
	arrived.Then(func() {
		ch.Controls.Enabled = true
		ch.Controls.Sync()
	})

	if ch.State.Theme != ThemeDark {
		ch.dimRoom(ch.Themes.Light.RoomIntensity)
	}

	return arrived

}

// CollapseProps fades the celebration props out, lowers them to rest, and collapses them once faded. The Overlay
// is hidden at once.
func (ch *Choreographer) CollapseProps() {

	ch.collapsing = true

	reg := ch.Registry
	tl := ch.Timeline
	fade := tween.Over(collapseDuration)
	collapse := tween.Instant().Delayed(collapseDuration)

	if reg.Card != nil {
		tweenOpacity(tl, reg.Card, 0, fade)
		tl.To(vectorProps(positionPath(reg.Card), &reg.Card.Position)[1], reg.CardRest.Y, fade)
		tweenVector(tl, scalePath(reg.Card), &reg.Card.Scale, scene.Vector3{}, collapse)
	}

	if reg.Button != nil {
		tweenOpacity(tl, reg.Button, 0, fade)
		tl.To(vectorProps(positionPath(reg.Button), &reg.Button.Position)[1], reg.ButtonRest.Y, fade)
		tweenVector(tl, scalePath(reg.Button), &reg.Button.Scale, scene.Vector3{}, collapse)
	}

	for _, project := range reg.Projects {
		tweenOpacity(tl, project, 0, fade)
		tweenVector(tl, scalePath(project), &project.Scale, scene.Vector3{}, collapse)
	}

	if ch.Overlay != nil {
		ch.Overlay.Hide()
	}

}

func (ch *Choreographer) revealProps(arrived *tween.Task) {

	ch.collapsing = false

	reg := ch.Registry
	tl := ch.Timeline
	one := scene.NewVector3Uniform(1)

	shown := []*scene.Node{}
	for _, n := range append([]*scene.Node{reg.Card, reg.Button}, reg.Projects...) {
		if n != nil {
			tweenVector(tl, scalePath(n), &n.Scale, one, tween.Instant())
			shown = append(shown, n)
		}
	}

	arrived.Then(func() {

		fade := tween.Over(propFadeDuration)
		lift := tween.Over(propLiftDuration)

		for _, n := range shown {

			delay := float32(0)
			if n == reg.Button {
				delay = buttonRevealDelay
			}

			tweenOpacity(tl, n, 1, fade.Delayed(delay))

			switch n {
			case reg.Card:
				tl.To(vectorProps(positionPath(n), &n.Position)[1], reg.CardRest.Y+ch.Lift, lift.Delayed(delay))
			case reg.Button:
				tl.To(vectorProps(positionPath(n), &n.Position)[1], reg.ButtonRest.Y+ch.Lift, lift.Delayed(delay))
			}

		}

		if reg.Button != nil {
			tl.After(pulseDelay, func() {
				if ch.State.View == ViewProjects {
					ch.pulse(reg.Button)
				}
			})
		}

	})

}

func (ch *Choreographer) pulse(button *scene.Node) {
	opts := tween.Over(pulseDuration).Eased(ease.InOutCubic).Repeating(-1, true)
	tweenVector(ch.Timeline, scalePath(button), &button.Scale, scene.NewVector3Uniform(pulseScale), opts)
}

// PropsShown returns true if the celebration props are revealed in the projects view and no collapse is under way.
func (ch *Choreographer) PropsShown() bool {
	return ch.State.View == ViewProjects && !ch.collapsing
}

func (ch *Choreographer) closeBook() {
	if cover := ch.Registry.BookCover; cover != nil {
		ch.Timeline.To(coverAngle(cover), 0, tween.Over(ch.Duration))
	}
}

func (ch *Choreographer) dimRoom(intensity float32) {
	if ch.RoomLight != nil {
		ch.Timeline.To(lightIntensity(ch.RoomLight), intensity, tween.Over(ch.Duration))
	}
}

func (ch *Choreographer) lockInput() {
	ch.Controls.Enabled = false
}

func (ch *Choreographer) showDismiss() {
	ch.Document.Show(ui.CloseButton, true)
}

func coverAngle(cover *scene.Node) tween.Property {
	return vectorProps(rotationPath(cover), &cover.Rotation)[0]
}
