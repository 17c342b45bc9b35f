package scene

import "image"

// TexturePlayer plays back a looping sequence of image frames, each shown for its own delay in seconds.
// It satisfies TextureSource, so a Material can display whatever frame is current.
type TexturePlayer struct {
	Frames []image.Image
	Delays []float32

	// Playhead is the time, in seconds, into the current frame.
	Playhead float32
	Speed    float32 // Speed is the playback speed, with 1.0 being 100%.
	Playing  bool
	Loop     bool

	frame int
}

// NewTexturePlayer returns a new, playing and looping TexturePlayer. Frames missing a delay use
// the last one given, or 1/10th of a second if no delays are given.
func NewTexturePlayer(frames []image.Image, delays []float32) *TexturePlayer {

	fixed := make([]float32, len(frames))
	last := float32(0.1)
	for i := range fixed {
		if i < len(delays) && delays[i] > 0 {
			last = delays[i]
		}
		fixed[i] = last
	}

	return &TexturePlayer{
		Frames:  frames,
		Delays:  fixed,
		Speed:   1,
		Playing: true,
		Loop:    true,
	}

}

// Update advances the TexturePlayer by the given delta time, in seconds.
func (player *TexturePlayer) Update(dt float32) {

	if !player.Playing || len(player.Frames) < 2 {
		return
	}

	player.Playhead += dt * player.Speed

	for player.Playhead >= player.Delays[player.frame] {
		player.Playhead -= player.Delays[player.frame]
		if player.frame+1 >= len(player.Frames) {
			if !player.Loop {
				player.Playing = false
				player.Playhead = 0
				return
			}
			player.frame = 0
		} else {
			player.frame++
		}
	}

}

// FrameIndex returns the index of the frame currently shown.
func (player *TexturePlayer) FrameIndex() int {
	return player.frame
}

// Frame returns the frame currently shown, or nil if the TexturePlayer has no frames.
func (player *TexturePlayer) Frame() image.Image {
	if len(player.Frames) == 0 {
		return nil
	}
	return player.Frames[player.frame]
}
