// Package link opens external pages in a new browsing context (the user's web browser).
package link

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/pkg/browser"
)

// ErrEmptyURL is returned when asked to open nothing.
var ErrEmptyURL = errors.New("link: empty URL")

// Opener opens a URL outside of the application.
type Opener interface {
	Open(target string) error
}

// Browser opens links with the system's web browser. Targets without a scheme (i.e. "birthday.html") are
// treated as files relative to BaseDir.
type Browser struct {
	BaseDir string
}

// NewBrowser returns a Browser resolving relative targets against the base directory given.
func NewBrowser(baseDir string) *Browser {
	return &Browser{BaseDir: baseDir}
}

// Open opens the target in the web browser.
func (b *Browser) Open(target string) error {

	if target == "" {
		return ErrEmptyURL
	}

	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("open %q: %w", target, err)
	}

	if u.Scheme == "" {
		path := target
		if !filepath.IsAbs(path) {
			path = filepath.Join(b.BaseDir, path)
		}
		if err := browser.OpenFile(path); err != nil {
			return fmt.Errorf("open file %s: %w", path, err)
		}
		return nil
	}

	if err := browser.OpenURL(u.String()); err != nil {
		return fmt.Errorf("open url %s: %w", u, err)
	}

	return nil

}

// Recorder is an Opener that remembers the links it was asked to open instead of opening them.
// If Err is set, Open returns it after recording.
type Recorder struct {
	Opened []string
	Err    error
}

// Open records the target.
func (r *Recorder) Open(target string) error {
	if target == "" {
		return ErrEmptyURL
	}
	r.Opened = append(r.Opened, target)
	return r.Err
}

// Last returns the most recently opened target, or an empty string.
func (r *Recorder) Last() string {
	if len(r.Opened) == 0 {
		return ""
	}
	return r.Opened[len(r.Opened)-1]
}
