package anim

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/tetraroom/internal/scene"
)

func fanClip(name, target string) *Clip {
	clip := NewClip(name)
	rot := clip.AddChannel(target).AddTrack(TrackTypeRotation)
	rot.AddQuatKeyframe(0, mgl32.QuatIdent())
	rot.AddQuatKeyframe(1, mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 0, 1}))
	rot.AddQuatKeyframe(2, mgl32.QuatRotate(math32.Pi, mgl32.Vec3{0, 0, 1}))
	clip.UpdateLength()
	return clip
}

func TestTrackInterpolation(t *testing.T) {

	track := newTrack(TrackTypePosition)
	track.AddVectorKeyframe(0, scene.NewVector3(0, 0, 0))
	track.AddVectorKeyframe(2, scene.NewVector3(2, 4, 0))

	tests := []struct {
		time float32
		want scene.Vector3
	}{
		{-1, scene.NewVector3(0, 0, 0)},
		{1, scene.NewVector3(1, 2, 0)},
		{3, scene.NewVector3(2, 4, 0)},
	}

	for i, test := range tests {
		got, ok := track.ValueAsVector(test.time)
		if !ok || !got.EqualsApprox(test.want, 1e-5) {
			t.Fatal("failed on case #", i, ": got", got, "want", test.want)
		}
	}

}

func TestMixerLoopsClips(t *testing.T) {

	root := scene.NewNode("Scene")
	fan := scene.NewNode("Fan")
	root.AddChildren(fan)

	clips := []*Clip{fanClip("fan_rotation", "Fan"), fanClip("unused", "Fan")}

	mixer := NewMixer(root)

	if started := mixer.PlayClips(clips, "fan_rotation", "fan_rotation.001"); started != 1 {
		t.Fatal("expected exactly one clip to start, got", started)
	}

	mixer.Update(1)
	if math32.Abs(fan.Rotation.Z-math32.Pi/2) > 1e-3 {
		t.Fatal("fan should be a quarter turn in, got", fan.Rotation)
	}

	// 2.5 seconds in, a 2 second clip loops back to 0.5 seconds.
	mixer.Update(1.5)
	action := mixer.ClipAction(clips[0])
	if math32.Abs(action.Playhead-0.5) > 1e-4 {
		t.Fatal("playhead should have wrapped to 0.5, got", action.Playhead)
	}

	if math32.Abs(fan.Rotation.Z-math32.Pi/4) > 1e-3 {
		t.Fatal("fan should be an eighth turn in after looping, got", fan.Rotation)
	}

}
