package room

import (
	"image"
	"log"

	"github.com/chewxy/math32"
	"github.com/solarlune/tetraroom/internal/link"
	"github.com/solarlune/tetraroom/internal/tween"
	"github.com/solarlune/tetraroom/internal/ui"
)

// Overlay is the full-window celebration page with its dismiss control.
type Overlay struct {
	Page    image.Image
	Opacity float32
	Visible bool

	// The dismiss control's hover styling.
	CloseScale    float32
	CloseRotation float32 // In radians.
}

// OverlayFactory constructs the Overlay. It's called once, the first time the Overlay is shown.
type OverlayFactory func() (*Overlay, error)

// OverlayHost creates the Overlay on demand and shows and hides it. At most one Overlay is ever created; dismissing
// it only hides it.
type OverlayHost struct {
	Factory  OverlayFactory
	Opener   link.Opener
	URL      string // Opened in the browser when the Overlay can't be constructed.
	Timeline *tween.Timeline
	Document *ui.Document

	FadeDuration float32

	overlay *Overlay
	created int
}

// NewOverlayHost returns an OverlayHost with a half-second fade.
func NewOverlayHost(factory OverlayFactory, opener link.Opener, url string, tl *tween.Timeline, doc *ui.Document) *OverlayHost {
	return &OverlayHost{
		Factory:      factory,
		Opener:       opener,
		URL:          url,
		Timeline:     tl,
		Document:     doc,
		FadeDuration: 0.5,
	}
}

// Show creates the Overlay if needed and fades it in. If the Overlay can't be constructed, the page's link is
// opened in the browser instead and the construction error is returned.
func (host *OverlayHost) Show() error {

	if host.overlay == nil {

		overlay, err := host.Factory()
		if err != nil {
			log.Println("room: overlay:", err)
			if openErr := host.Opener.Open(host.URL); openErr != nil {
				log.Println("room: overlay fallback:", openErr)
			}
			return err
		}

		overlay.Opacity = 0
		overlay.CloseScale = 1
		host.overlay = overlay
		host.created++

	}

	host.overlay.Visible = true
	host.Document.Show(ui.OverlayPage, true)
	host.Document.Show(ui.OverlayClose, true)

	host.Timeline.To(host.opacity(), 1, tween.Over(host.FadeDuration))

	return nil

}

// Dismiss fades the Overlay out and hides it once faded.
func (host *OverlayHost) Dismiss() *tween.Task {
	if host.overlay == nil {
		return tween.Completed()
	}
	return host.Timeline.To(host.opacity(), 0, tween.Over(host.FadeDuration)).Then(host.Hide)
}

// Hide hides the Overlay immediately.
func (host *OverlayHost) Hide() {
	if host.overlay == nil {
		return
	}
	host.overlay.Visible = false
	host.Document.Show(ui.OverlayPage, false)
	host.HoverClose(false)
}

// HoverClose applies or removes the dismiss control's hover styling.
func (host *OverlayHost) HoverClose(hovered bool) {
	if host.overlay == nil {
		return
	}
	if hovered {
		host.overlay.CloseScale = 1.1
		host.overlay.CloseRotation = math32.Pi / 2
	} else {
		host.overlay.CloseScale = 1
		host.overlay.CloseRotation = 0
	}
}

// Overlay returns the Overlay, or nil if it hasn't been created yet.
func (host *OverlayHost) Overlay() *Overlay {
	return host.overlay
}

// Created returns how many Overlays were constructed; never more than one.
func (host *OverlayHost) Created() int {
	return host.created
}

// Visible returns true if the Overlay is showing.
func (host *OverlayHost) Visible() bool {
	return host.overlay != nil && host.overlay.Visible
}

func (host *OverlayHost) opacity() tween.Property {
	return tween.Float("overlay.opacity", &host.overlay.Opacity)
}
