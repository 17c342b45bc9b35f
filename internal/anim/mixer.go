package anim

import (
	"log"

	"github.com/solarlune/tetraroom/internal/scene"
)

const (
	FinishModeLoop = iota
	FinishModePingPong
	FinishModeStop
)

// Action plays a single Clip on the nodes under a Mixer's root.
type Action struct {
	Clip       *Clip
	Playhead   float32
	PlaySpeed  float32
	Playing    bool
	FinishMode int
	OnFinish   func()

	mixer    *Mixer
	channels map[*Channel]*scene.Node
}

// Play starts the Action from the beginning if it isn't already playing.
func (action *Action) Play() *Action {
	if !action.Playing {
		action.Playhead = 0
		action.Playing = true
	}
	return action
}

// Stop stops the Action, leaving its nodes where they are.
func (action *Action) Stop() {
	action.Playing = false
}

func (action *Action) assignChannels() {

	action.channels = map[*Channel]*scene.Node{}

	root := action.mixer.Root

	for _, channel := range action.Clip.Channels {

		if node := root.FindByName(channel.Name); node != nil {
			action.channels[channel] = node
		} else {
			log.Println("anim: cannot find matching node for channel " + channel.Name + " under root " + root.Name())
		}

	}

}

func (action *Action) apply() {

	for channel, node := range action.channels {

		if track, exists := channel.Tracks[TrackTypePosition]; exists {
			if value, ok := track.ValueAsVector(action.Playhead); ok {
				node.Position = value
			}
		}

		if track, exists := channel.Tracks[TrackTypeScale]; exists {
			if value, ok := track.ValueAsVector(action.Playhead); ok {
				node.Scale = value
			}
		}

		if track, exists := channel.Tracks[TrackTypeRotation]; exists {
			if quat, ok := track.ValueAsQuaternion(action.Playhead); ok {
				node.Rotation = scene.QuaternionToEuler(quat.V[0], quat.V[1], quat.V[2], quat.W)
			}
		}

	}

}

func (action *Action) update(dt float32) {

	if !action.Playing {
		return
	}

	if action.channels == nil {
		action.assignChannels()
	}

	length := action.Clip.Length

	action.Playhead += dt * action.PlaySpeed

	switch action.FinishMode {

	case FinishModeLoop:
		if length <= 0 {
			action.Playhead = 0
		} else {
			for action.Playhead >= length {
				action.Playhead -= length
				if action.OnFinish != nil {
					action.OnFinish()
				}
			}
			for action.Playhead < 0 {
				action.Playhead += length
			}
		}

	case FinishModePingPong:
		if action.Playhead > length || action.Playhead < 0 {
			if action.Playhead > length {
				action.Playhead = length
			} else {
				action.Playhead = 0
				if action.OnFinish != nil {
					action.OnFinish()
				}
			}
			action.PlaySpeed *= -1
		}

	default:
		if action.Playhead >= length {
			action.Playhead = length
			action.Playing = false
			if action.OnFinish != nil {
				action.OnFinish()
			}
		}

	}

	action.apply()

}

// Mixer plays any number of Actions on the nodes underneath its root.
type Mixer struct {
	Root    *scene.Node
	actions []*Action
}

// NewMixer returns a Mixer driving the nodes underneath the root given.
func NewMixer(root *scene.Node) *Mixer {
	return &Mixer{Root: root}
}

// ClipAction returns the Mixer's Action for the Clip, creating a looping one if it doesn't exist yet.
func (mixer *Mixer) ClipAction(clip *Clip) *Action {

	for _, action := range mixer.actions {
		if action.Clip == clip {
			return action
		}
	}

	action := &Action{
		Clip:       clip,
		PlaySpeed:  1,
		FinishMode: FinishModeLoop,
		mixer:      mixer,
	}

	mixer.actions = append(mixer.actions, action)

	return action

}

// PlayClips looks up each named clip and plays it looped. Names without a matching clip are skipped.
// It returns the number of clips started.
func (mixer *Mixer) PlayClips(clips []*Clip, names ...string) int {
	started := 0
	for _, name := range names {
		if clip := FindByName(clips, name); clip != nil {
			mixer.ClipAction(clip).Play()
			started++
		}
	}
	return started
}

// Update advances every playing Action by dt seconds.
func (mixer *Mixer) Update(dt float32) {
	for _, action := range mixer.actions {
		action.update(dt)
	}
}
