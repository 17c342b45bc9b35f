package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/chewxy/math32"
)

func readTestdata(t *testing.T, name string) []byte {
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func pngData(t *testing.T, w, h int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func gifData(t *testing.T) []byte {
	frame := func(c uint8) *image.Paletted {
		img := image.NewPaletted(image.Rect(0, 0, 4, 4), palette.Plan9)
		for i := range img.Pix {
			img.Pix[i] = c
		}
		return img
	}
	anim := &gif.GIF{
		Image: []*image.Paletted{frame(10), frame(200)},
		Delay: []int{5, 0},
	}
	buf := &bytes.Buffer{}
	if err := gif.EncodeAll(buf, anim); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadLibrary(t *testing.T) {

	library, err := LoadLibrary(readTestdata(t, "room.gltf"), nil)
	if err != nil {
		t.Fatal(err)
	}

	root := library.Root
	if root.Name() != "Scene" || len(root.Children()) != 7 {
		t.Fatal("unexpected scene root:", root.Name(), len(root.Children()))
	}

	book := root.Get("Book")
	if book == nil || book.Get("Book001") == nil {
		t.Fatal("book and its cover should be loaded as parent and child")
	}

	stand := root.Get("Stand")
	if stand == nil || stand.Mesh != nil || stand.Children()[0].Name() != "Screen" {
		t.Fatal("stand should be an empty node holding the screen")
	}

	if len(root.Get("CPU").Children()) != 2 {
		t.Fatal("CPU should have two glass parts")
	}

	wall := root.Get("Wall")
	if wall.Mesh == nil || wall.Mesh.TriangleCount() != 2 || wall.Scale.X != 2 {
		t.Fatal("wall mesh or transform not loaded")
	}

	mat := wall.Material()
	if mat == nil || mat.Name != "Paint" || math32.Abs(mat.Color.R-0.8) > 1e-5 || math32.Abs(mat.Roughness-0.5) > 1e-5 {
		t.Fatal("material not loaded:", mat)
	}

	if !root.Get("Fan").Properties().Bool("spin") {
		t.Fatal("node extras should be loaded as properties")
	}

	clip := library.Clip("fan_rotation")
	if clip == nil || clip.Length != 1 || clip.Channels["Fan"] == nil {
		t.Fatal("fan clip not loaded")
	}

	if library.Clip("fan_rotation.001") != nil {
		t.Fatal("unexpected clip")
	}

	if len(library.Lights) != 1 {
		t.Fatal("expected one light, got", len(library.Lights))
	}

	light := library.Lights[0]
	if light.Name != "Lamp" || light.Distance != 3 || light.Intensity != 2 || math32.Abs(light.Position.Y-2) > 1e-5 {
		t.Fatalf("unexpected light: %+v", light)
	}

}

func TestDracoIsRejected(t *testing.T) {
	if _, err := LoadLibrary(readTestdata(t, "draco.gltf"), nil); !errors.Is(err, ErrDracoUnsupported) {
		t.Fatal("expected ErrDracoUnsupported, got", err)
	}
}

func TestDecodeVideo(t *testing.T) {

	video, err := DecodeVideo(gifData(t))
	if err != nil {
		t.Fatal(err)
	}

	if len(video.Frames) != 2 || len(video.Delays) != 2 {
		t.Fatal("expected two frames")
	}

	if math32.Abs(video.Delays[0]-0.05) > 1e-5 || math32.Abs(video.Delays[1]-0.1) > 1e-5 {
		t.Fatal("unexpected delays:", video.Delays)
	}

	if _, err := DecodeVideo([]byte("not a gif")); err == nil {
		t.Fatal("expected an error")
	}

}

func TestLoaderAsync(t *testing.T) {

	fsys := fstest.MapFS{
		"models/room.gltf":       {Data: readTestdata(t, "room.gltf")},
		"textures/cover.png":     {Data: pngData(t, 8, 4)},
		"textures/arcane.gif":    {Data: gifData(t)},
		"textures/project-a.png": {Data: pngData(t, 2, 2)},
		"fonts/broken.ttf":       {Data: []byte("nope")},
	}

	loader := NewLoader(fsys, Manifest{
		Room:      "models/room.gltf",
		BookCover: "textures/cover.png",
		BookInner: "textures/missing.jpg",
		Video:     "textures/arcane.gif",
		TitleFont: "fonts/broken.ttf",
		Projects:  []string{"textures/project-a.png", "textures/project-b.png"},
	})

	if loader.Total() != 7 {
		t.Fatal("unexpected total:", loader.Total())
	}

	if _, done := loader.Poll(); done {
		t.Fatal("an unstarted loader can't be done")
	}

	loader.Start(context.Background())

	var result Result
	deadline := time.Now().Add(5 * time.Second)
	for {
		r, done := loader.Poll()
		if done {
			result = r
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("loader never finished")
		}
		time.Sleep(time.Millisecond)
	}

	if result.Err != nil {
		t.Fatal(result.Err)
	}

	bundle := result.Bundle

	if bundle.Library == nil || bundle.BookCover == nil || bundle.BookCover.Bounds().Dx() != 8 {
		t.Fatal("room or cover missing")
	}

	if bundle.BookInner != nil {
		t.Fatal("a missing texture should be left empty")
	}

	if bundle.Video == nil || len(bundle.Video.Frames) != 2 {
		t.Fatal("video not loaded")
	}

	if bundle.Fonts.Title == nil || bundle.Fonts.Subtitle == nil {
		t.Fatal("fonts should fall back to the defaults")
	}

	if len(bundle.Projects) != 2 || bundle.Projects[0] == nil || bundle.Projects[1] != nil {
		t.Fatal("unexpected project images")
	}

	if loader.Progress() != 1 {
		t.Fatal("progress should be complete, got", loader.Progress())
	}

	if again, done := loader.Poll(); !done || again.Bundle != bundle {
		t.Fatal("polling a finished loader should return the same result")
	}

}

func TestLoaderRequiresRoom(t *testing.T) {

	loader := NewLoader(fstest.MapFS{}, Manifest{Room: "models/room.glb"})
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected an error for a missing room")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader = NewLoader(fstest.MapFS{"room.gltf": {Data: readTestdata(t, "room.gltf")}}, Manifest{Room: "room.gltf", BookCover: "cover.png"})
	if _, err := loader.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatal("expected the load to stop when canceled, got", err)
	}

}
