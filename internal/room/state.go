// Package room is the interactive core of the birthday room: it builds the scene from the loaded model, moves the
// camera between its viewpoints, switches the light and dark themes, and routes pointer clicks to the objects
// they strike.
package room

import "errors"

// ErrMissingObject is reported when an action needs an object the room model didn't provide.
var ErrMissingObject = errors.New("room: object not loaded")

// View is the camera's logical viewpoint.
type View int

const (
	ViewDefault View = iota
	ViewAbout
	ViewProjects
)

func (v View) String() string {
	switch v {
	case ViewAbout:
		return "about"
	case ViewProjects:
		return "projects"
	default:
		return "default"
	}
}

// Theme is the room's visual theme.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// State is the room's single source of truth for the current view and theme.
type State struct {
	View  View
	Theme Theme
}
