package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// DecodeImage decodes a PNG, JPEG, WebP, or (first frame of a) GIF image.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Video is a looping sequence of frames, each shown for its delay in seconds.
type Video struct {
	Frames []image.Image
	Delays []float32
}

// DecodeVideo decodes an animated GIF into a Video, compositing each frame over the ones before it
// according to the frame's disposal method.
func DecodeVideo(data []byte) (*Video, error) {

	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode video: %w", err)
	}

	if len(g.Image) == 0 {
		return nil, fmt.Errorf("decode video: no frames")
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	video := &Video{}

	for i, frame := range g.Image {

		var previous *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = image.NewRGBA(bounds)
			draw.Draw(previous, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

		snapshot := image.NewRGBA(bounds)
		draw.Draw(snapshot, bounds, canvas, bounds.Min, draw.Src)
		video.Frames = append(video.Frames, snapshot)

		delay := float32(0.1)
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = float32(g.Delay[i]) / 100
		}
		video.Delays = append(video.Delays, delay)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}

	}

	return video, nil

}
