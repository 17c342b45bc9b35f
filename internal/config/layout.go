package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jinzhu/copier"
	"github.com/solarlune/tetraroom/internal/orbit"
	"github.com/solarlune/tetraroom/internal/scene"
	"github.com/solarlune/tetraroom/internal/ui"
	"gopkg.in/yaml.v3"
)

//go:embed room.yaml
var defaultLayout []byte

// ErrInvalidLayout is returned when a layout file is missing required values.
var ErrInvalidLayout = errors.New("config: invalid layout")

// Vec3 is an X, Y, Z triple (or an R, G, B color) as written in the layout file.
type Vec3 [3]float32

// Vector returns the triple as a scene.Vector3.
func (v Vec3) Vector() scene.Vector3 {
	return scene.NewVector3(v[0], v[1], v[2])
}

// Color returns the triple as an opaque scene.Color.
func (v Vec3) Color() scene.Color {
	return scene.NewColor(v[0], v[1], v[2], 1)
}

// Pose is a camera position and XYZ Euler rotation.
type Pose struct {
	Position Vec3 `yaml:"position"`
	Rotation Vec3 `yaml:"rotation"`
}

// Poses are the named camera viewpoints.
type Poses struct {
	Default  Pose `yaml:"default"`
	About    Pose `yaml:"about"`
	Projects Pose `yaml:"projects"`
}

// Camera configures the perspective camera and its choreographed moves.
type Camera struct {
	FieldOfView float32 `yaml:"fov"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	Duration    float32 `yaml:"duration"` // Length of a camera move, in seconds.
	Target      Vec3    `yaml:"target"`   // Orbit target.
}

// SmallScreen holds the overrides applied once at startup on narrow windows.
type SmallScreen struct {
	Poses       Poses   `yaml:"poses"` // Only About and Projects are used.
	Scale       float32 `yaml:"scale"` // Uniform scale of the room.
	MaxDistance float32 `yaml:"maxDistance"`
	MaxAzimuth  float32 `yaml:"maxAzimuth"`
	ProjectZ    float32 `yaml:"projectZ"`
}

// Shadow mirrors a shadow-casting light's shadow settings.
type Shadow struct {
	Radius  float32 `yaml:"radius"`
	MapSize int     `yaml:"mapSize"`
	Far     float32 `yaml:"far"`
	Bias    float32 `yaml:"bias"`
}

// PointLight places a point light.
type PointLight struct {
	Name       string  `yaml:"name"`
	Color      Vec3    `yaml:"color"`
	Intensity  float32 `yaml:"intensity"`
	Distance   float32 `yaml:"distance"`
	Position   Vec3    `yaml:"position"`
	CastShadow bool    `yaml:"castShadow"`
	Shadow     Shadow  `yaml:"shadow"`
}

// Ambient configures the ambient light.
type Ambient struct {
	Color     Vec3    `yaml:"color"`
	Intensity float32 `yaml:"intensity"`
}

// Lights lists every light in the room.
type Lights struct {
	Ambient Ambient      `yaml:"ambient"`
	Room    PointLight   `yaml:"room"`
	Fans    []PointLight `yaml:"fans"`
	Text    []PointLight `yaml:"text"` // Lights washing over the wall text.
}

// Theme is the bundle of target values for one theme.
type Theme struct {
	RoomColor          Vec3    `yaml:"roomColor"`
	RoomIntensity      float32 `yaml:"roomIntensity"`
	AmbientColor       Vec3    `yaml:"ambientColor"`
	AmbientIntensity   float32 `yaml:"ambientIntensity"`
	AccentLight        string  `yaml:"accentLight"`
	AccentDistance     float32 `yaml:"accentDistance"`
	TextFace           Vec3    `yaml:"textFace"`
	TextSide           Vec3    `yaml:"textSide"`
	TextLightIntensity float32 `yaml:"textLightIntensity"`
	SwitchRotation     float32 `yaml:"switchRotation"` // Z rotation of the switch prop.
	BodyClass          string  `yaml:"bodyClass"`
}

// Themes holds the light and dark bundles.
type Themes struct {
	Duration float32 `yaml:"duration"`
	Light    Theme   `yaml:"light"`
	Dark     Theme   `yaml:"dark"`
	// AboutRoomIntensity is the room light's intensity while reading the book in the light theme.
	AboutRoomIntensity float32 `yaml:"aboutRoomIntensity"`
}

// Text is a line of extruded text on the wall.
type Text struct {
	Name     string  `yaml:"name"`
	Content  string  `yaml:"content"`
	Font     string  `yaml:"font"` // "title" or "subtitle".
	Size     float32 `yaml:"size"`
	Depth    float32 `yaml:"depth"`
	Position Vec3    `yaml:"position"`
	Rotation Vec3    `yaml:"rotation"`
}

// Plane places a flat, textured prop.
type Plane struct {
	Name     string  `yaml:"name"`
	Width    float32 `yaml:"width"`
	Height   float32 `yaml:"height"`
	Position Vec3    `yaml:"position"`
	// TextureWidth and TextureHeight size the drawn texture, in pixels.
	TextureWidth  int `yaml:"textureWidth"`
	TextureHeight int `yaml:"textureHeight"`
}

// Celebration configures the birthday card, its button, and their animations.
type Celebration struct {
	Card   Plane   `yaml:"card"`
	Button Plane   `yaml:"button"`
	Lift   float32 `yaml:"lift"` // How far the card and button rise as they fade in.

	CardHeading    string `yaml:"cardHeading"`
	CardSubheading string `yaml:"cardSubheading"`
	CardHint       string `yaml:"cardHint"`
	ButtonLabel    string `yaml:"buttonLabel"`
	ButtonHint     string `yaml:"buttonHint"`
}

// Project is a clickable image linking to a web page.
type Project struct {
	Image    string  `yaml:"image"`
	URL      string  `yaml:"url"`
	Position Vec3    `yaml:"position"`
	Width    float32 `yaml:"width"`
	Height   float32 `yaml:"height"`
}

// Overlay configures the celebration page.
type Overlay struct {
	Image string `yaml:"image"` // Image shown as the page.
	URL   string `yaml:"url"`   // Link opened when the page can't be shown.
}

// Assets lists the files loaded from the asset directory.
type Assets struct {
	Room         string `yaml:"room"`
	BookCover    string `yaml:"bookCover"`
	BookInner    string `yaml:"bookInner"`
	Video        string `yaml:"video"`
	TitleFont    string `yaml:"titleFont"`
	SubtitleFont string `yaml:"subtitleFont"`
}

// Layout describes everything placed in the room and how it animates.
type Layout struct {
	Camera      Camera       `yaml:"camera"`
	Poses       Poses        `yaml:"poses"`
	SmallScreen SmallScreen  `yaml:"smallScreen"`
	Controls    orbit.Limits `yaml:"controls"`
	Lights      Lights       `yaml:"lights"`
	Themes      Themes       `yaml:"themes"`
	Text        []Text       `yaml:"text"`
	Celebration Celebration  `yaml:"celebration"`
	Projects    []Project    `yaml:"projects"`
	Overlay     Overlay      `yaml:"overlay"`
	FanClips    []string     `yaml:"fanClips"`
	Assets      Assets       `yaml:"assets"`
	Contact     []ui.Link    `yaml:"contact"`
}

// DefaultLayout returns the built-in layout.
func DefaultLayout() (*Layout, error) {
	return ParseLayout(defaultLayout)
}

// LoadLayout reads the layout file at the path from the file system given. An empty path returns the built-in layout.
func LoadLayout(fsys fs.FS, path string) (*Layout, error) {
	if path == "" {
		return DefaultLayout()
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes and validates a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {

	layout := &Layout{}

	if err := yaml.Unmarshal(data, layout); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	if err := layout.Validate(); err != nil {
		return nil, err
	}

	return layout, nil

}

// Validate checks that the layout can drive the room.
func (layout *Layout) Validate() error {

	switch {
	case layout.Camera.FieldOfView <= 0:
		return fmt.Errorf("%w: camera fov must be positive", ErrInvalidLayout)
	case layout.Camera.Near <= 0 || layout.Camera.Far <= layout.Camera.Near:
		return fmt.Errorf("%w: camera near and far planes are out of order", ErrInvalidLayout)
	case layout.Camera.Duration < 0:
		return fmt.Errorf("%w: camera duration can't be negative", ErrInvalidLayout)
	case layout.Controls.MinDistance > layout.Controls.MaxDistance:
		return fmt.Errorf("%w: controls distance limits are out of order", ErrInvalidLayout)
	case layout.Assets.Room == "":
		return fmt.Errorf("%w: no room model given", ErrInvalidLayout)
	}

	return nil

}

// Clone returns a deep copy of the layout, so one can be adjusted without touching the other.
func (layout *Layout) Clone() (*Layout, error) {
	clone := &Layout{}
	if err := copier.CopyWithOption(clone, layout, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy layout: %w", err)
	}
	return clone, nil
}
