// Package config loads the runtime settings (from the environment) and the room layout (from YAML).
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by Env.
const EnvPrefix = "TETRAROOM_"

// Env holds the settings read from the environment.
type Env struct {
	AssetsDir  string `env:"ASSETS_DIR" envDefault:"assets"`
	LayoutPath string `env:"LAYOUT"` // Layout file to use instead of the built-in one.

	Width  int `env:"WIDTH" envDefault:"1280"`
	Height int `env:"HEIGHT" envDefault:"720"`

	// SmallScreenMaxWidth is the widest window, in logical pixels, that gets the small-screen layout at startup.
	SmallScreenMaxWidth int `env:"SMALL_SCREEN_MAX_WIDTH" envDefault:"992"`

	Debug      bool   `env:"DEBUG"`
	OverlayURL string `env:"OVERLAY_URL"` // Overrides the layout's overlay page link.
}

// ParseEnv loads configuration from environment variables. A nil environment reads the process's own.
func ParseEnv(environment map[string]string) (Env, error) {
	cfg := Env{}
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SmallScreen returns true if a window of the given width gets the small-screen layout.
func (e Env) SmallScreen(width int) bool {
	return width <= e.SmallScreenMaxWidth
}
