// Package assets loads the room model, its textures, the looping "video" texture, and fonts from a file system.
package assets

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"log"
	"path"
	"sync/atomic"

	"golang.org/x/image/font/opentype"
)

// Manifest lists the files to load, relative to the Loader's file system. Empty entries are skipped.
type Manifest struct {
	Room         string
	BookCover    string
	BookInner    string
	Video        string
	TitleFont    string
	SubtitleFont string
	Projects     []string
}

// Bundle is everything the Loader loaded.
type Bundle struct {
	Library   *Library
	BookCover image.Image
	BookInner image.Image
	Video     *Video
	Fonts     Fonts
	Projects  []image.Image // One per Manifest.Projects entry; nil if the image failed to load.
}

// Result is the outcome of an asynchronous load.
type Result struct {
	Bundle *Bundle
	Err    error
}

// Loader loads a Manifest's files. Only the room model is required; any other file that fails to load is logged
// and left empty.
type Loader struct {
	fsys     fs.FS
	manifest Manifest

	results chan Result
	result  *Result

	loaded atomic.Int32
}

// NewLoader returns a Loader reading from the file system given.
func NewLoader(fsys fs.FS, manifest Manifest) *Loader {
	return &Loader{
		fsys:     fsys,
		manifest: manifest,
	}
}

// Total returns the number of files the Loader will load.
func (loader *Loader) Total() int {
	m := loader.manifest
	total := len(m.Projects)
	for _, p := range []string{m.Room, m.BookCover, m.BookInner, m.Video, m.TitleFont, m.SubtitleFont} {
		if p != "" {
			total++
		}
	}
	return total
}

// Progress returns the fraction of files processed so far, from 0 to 1.
func (loader *Loader) Progress() float32 {
	total := loader.Total()
	if total == 0 {
		return 1
	}
	return float32(loader.loaded.Load()) / float32(total)
}

// Start loads the Manifest on a separate goroutine. Poll the Loader from the frame loop to receive the Result.
// Calling Start more than once does nothing.
func (loader *Loader) Start(ctx context.Context) {

	if loader.results != nil {
		return
	}

	loader.results = make(chan Result, 1)

	go func() {
		bundle, err := loader.Load(ctx)
		loader.results <- Result{Bundle: bundle, Err: err}
	}()

}

// Poll returns the Result of the load started with Start and true once it's finished, or false while it's running.
func (loader *Loader) Poll() (Result, bool) {

	if loader.result != nil {
		return *loader.result, true
	}

	if loader.results == nil {
		return Result{}, false
	}

	select {
	case result := <-loader.results:
		loader.result = &result
		return result, true
	default:
		return Result{}, false
	}

}

// Load loads the Manifest on the calling goroutine.
func (loader *Loader) Load(ctx context.Context) (*Bundle, error) {

	m := loader.manifest
	bundle := &Bundle{Fonts: DefaultFonts()}

	if m.Room == "" {
		return nil, fmt.Errorf("load room: no model given")
	}

	data, err := fs.ReadFile(loader.fsys, m.Room)
	if err != nil {
		return nil, fmt.Errorf("load room: %w", err)
	}

	dir := path.Dir(m.Room)
	bundle.Library, err = LoadLibrary(data, func(uri string) (image.Image, error) {
		return loader.LoadImage(path.Join(dir, uri))
	})
	if err != nil {
		return nil, fmt.Errorf("load room %s: %w", m.Room, err)
	}
	loader.loaded.Add(1)

	steps := []struct {
		path string
		load func(string) error
	}{
		{m.BookCover, func(p string) (err error) { bundle.BookCover, err = loader.LoadImage(p); return }},
		{m.BookInner, func(p string) (err error) { bundle.BookInner, err = loader.LoadImage(p); return }},
		{m.Video, func(p string) (err error) { bundle.Video, err = loader.LoadVideo(p); return }},
		{m.TitleFont, func(p string) error { return loader.loadFont(p, &bundle.Fonts.Title) }},
		{m.SubtitleFont, func(p string) error { return loader.loadFont(p, &bundle.Fonts.Subtitle) }},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if step.path == "" {
			continue
		}
		if err := step.load(step.path); err != nil {
			log.Println("assets:", err)
		}
		loader.loaded.Add(1)
	}

	bundle.Projects = make([]image.Image, len(m.Projects))
	for i, p := range m.Projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := loader.LoadImage(p)
		if err != nil {
			log.Println("assets:", err)
		}
		bundle.Projects[i] = img
		loader.loaded.Add(1)
	}

	return bundle, nil

}

// LoadImage loads a PNG, JPEG, or WebP image.
func (loader *Loader) LoadImage(p string) (image.Image, error) {
	file, err := loader.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer file.Close()
	img, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return img, nil
}

// LoadVideo loads an animated GIF as a Video.
func (loader *Loader) LoadVideo(p string) (*Video, error) {
	data, err := fs.ReadFile(loader.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("load video: %w", err)
	}
	video, err := DecodeVideo(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return video, nil
}

// loadFont replaces the font pointed to with the one at the path, leaving it untouched on failure.
func (loader *Loader) loadFont(p string, target **opentype.Font) error {
	data, err := fs.ReadFile(loader.fsys, p)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	f, err := ParseFont(data)
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	*target = f
	return nil
}
