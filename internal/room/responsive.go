package room

import (
	"github.com/solarlune/tetraroom/internal/config"
	"github.com/solarlune/tetraroom/internal/scene"
)

// Responsive adapts the room to narrow windows. It applies at most once, at startup; later resizes only change
// the camera's aspect.
type Responsive struct {
	MaxWidth int // Windows this wide or narrower count as small.
	Small    config.SmallScreen

	applied bool
}

// Apply adapts the room if the window width given is small and Apply hasn't already adapted it, returning true
// if it did. The about and projects poses, the model's scale, the orbit limits, and the project planes' depth
// are all overridden.
func (r *Responsive) Apply(width int, rm *Room) bool {

	if r.applied || width > r.MaxWidth {
		return false
	}

	r.applied = true

	rm.Choreographer.Poses.About = r.Small.Poses.About
	rm.Choreographer.Poses.Projects = r.Small.Poses.Projects

	if rm.Model != nil {
		rm.Model.Scale = scene.NewVector3Uniform(r.Small.Scale)
	}

	rm.Controls.MaxDistance = r.Small.MaxDistance
	rm.Controls.MaxAzimuth = r.Small.MaxAzimuth

	for _, project := range rm.Registry.Projects {
		project.Position.Z = r.Small.ProjectZ
	}

	return true

}

// Applied returns true if the small-screen overrides are in effect.
func (r *Responsive) Applied() bool {
	return r.applied
}
