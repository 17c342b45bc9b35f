// Package anim plays keyframed node animations, like the looping fan rotations baked into the room model.
package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/tetraroom/internal/scene"
)

const (
	TrackTypePosition = "Pos"
	TrackTypeScale    = "Sca"
	TrackTypeRotation = "Rot"
)

// Keyframe is a single value of a track at a moment in time. Position and scale tracks use Vector;
// rotation tracks use Quat.
type Keyframe struct {
	Time   float32
	Vector scene.Vector3
	Quat   mgl32.Quat
}

// Track is a series of keyframes, ordered by time, for one property of a node.
type Track struct {
	Type      string
	Keyframes []Keyframe
}

func newTrack(trackType string) *Track {
	return &Track{
		Type:      trackType,
		Keyframes: []Keyframe{},
	}
}

// AddVectorKeyframe adds a position or scale keyframe to the track.
func (track *Track) AddVectorKeyframe(time float32, value scene.Vector3) {
	track.Keyframes = append(track.Keyframes, Keyframe{Time: time, Vector: value})
}

// AddQuatKeyframe adds a rotation keyframe to the track.
func (track *Track) AddQuatKeyframe(time float32, value mgl32.Quat) {
	track.Keyframes = append(track.Keyframes, Keyframe{Time: time, Quat: value})
}

// span returns the keyframes surrounding the time given and how far between them the time lies.
func (track *Track) span(time float32) (Keyframe, Keyframe, float32) {

	first := track.Keyframes[0]
	if time <= first.Time {
		return first, first, 0
	}

	last := track.Keyframes[len(track.Keyframes)-1]
	if time >= last.Time {
		return last, last, 0
	}

	for i := 1; i < len(track.Keyframes); i++ {
		next := track.Keyframes[i]
		if next.Time >= time {
			prev := track.Keyframes[i-1]
			return prev, next, (time - prev.Time) / (next.Time - prev.Time)
		}
	}

	return last, last, 0

}

// ValueAsVector returns the linearly interpolated vector value of the track at the given time.
func (track *Track) ValueAsVector(time float32) (scene.Vector3, bool) {
	if len(track.Keyframes) == 0 {
		return scene.Vector3{}, false
	}
	from, to, t := track.span(time)
	return from.Vector.Lerp(to.Vector, t), true
}

// ValueAsQuaternion returns the spherically interpolated rotation of the track at the given time.
func (track *Track) ValueAsQuaternion(time float32) (mgl32.Quat, bool) {
	if len(track.Keyframes) == 0 {
		return mgl32.QuatIdent(), false
	}
	from, to, t := track.span(time)
	if t == 0 {
		return from.Quat, true
	}
	return mgl32.QuatSlerp(from.Quat, to.Quat, t), true
}

// Channel holds the tracks animating one node, identified by the node's name.
type Channel struct {
	Name   string
	Tracks map[string]*Track
}

// NewChannel returns a new Channel targeting the node with the given name.
func NewChannel(name string) *Channel {
	return &Channel{
		Name:   name,
		Tracks: map[string]*Track{},
	}
}

// AddTrack adds a track of the given type (TrackTypePosition, TrackTypeScale, or TrackTypeRotation) to the Channel.
func (channel *Channel) AddTrack(trackType string) *Track {
	newTrack := newTrack(trackType)
	channel.Tracks[trackType] = newTrack
	return newTrack
}

// Clip is a named animation, made up of channels that each drive one node.
type Clip struct {
	Name     string
	Channels map[string]*Channel
	Length   float32 // Length of the clip in seconds
}

// NewClip returns a new, empty Clip.
func NewClip(name string) *Clip {
	return &Clip{
		Name:     name,
		Channels: map[string]*Channel{},
	}
}

// AddChannel adds a Channel for the named node to the Clip.
func (clip *Clip) AddChannel(name string) *Channel {
	newChannel := NewChannel(name)
	clip.Channels[name] = newChannel
	return newChannel
}

// UpdateLength sets the Clip's length to the time of its latest keyframe.
func (clip *Clip) UpdateLength() {
	clip.Length = 0
	for _, channel := range clip.Channels {
		for _, track := range channel.Tracks {
			if n := len(track.Keyframes); n > 0 && track.Keyframes[n-1].Time > clip.Length {
				clip.Length = track.Keyframes[n-1].Time
			}
		}
	}
}

// FindByName returns the clip with the given name, or nil if there's none.
func FindByName(clips []*Clip, name string) *Clip {
	for _, clip := range clips {
		if clip.Name == name {
			return clip
		}
	}
	return nil
}
