package room

import (
	"log"

	"github.com/solarlune/tetraroom/internal/config"
	"github.com/solarlune/tetraroom/internal/scene"
	"github.com/solarlune/tetraroom/internal/tween"
	"github.com/solarlune/tetraroom/internal/ui"
)

// ThemeController switches the room between the light and dark themes. Lights ease to the theme's values;
// the switch prop, the body classes, and the wall text colors change at once.
type ThemeController struct {
	Scene    *scene.Scene
	Registry *Registry
	Document *ui.Document
	Timeline *tween.Timeline
	State    *State
	Themes   config.Themes

	RoomLight  *scene.PointLight
	TextLights []*scene.PointLight
}

// Toggle switches to the other theme, returning it.
func (tc *ThemeController) Toggle() Theme {
	next := tc.State.Theme.Toggled()
	tc.Set(next)
	return next
}

// Set applies the theme. Setting the current theme again re-applies its values.
func (tc *ThemeController) Set(theme Theme) {

	bundle, previous := tc.Themes.Light, tc.Themes.Dark
	if theme == ThemeDark {
		bundle, previous = previous, bundle
	}

	tc.State.Theme = theme

	if sw := tc.Registry.Switch; sw != nil {
		tc.Timeline.To(vectorProps(rotationPath(sw), &sw.Rotation)[2], bundle.SwitchRotation, tween.Instant())
	} else {
		log.Println("room: theme switch:", ErrMissingObject)
	}

	if previous.BodyClass != bundle.BodyClass {
		tc.Document.RemoveClass(previous.BodyClass)
	}
	tc.Document.AddClass(bundle.BodyClass)

	tl := tc.Timeline
	opts := tween.Over(tc.Themes.Duration)

	if room := tc.RoomLight; room != nil {
		tweenColor(tl, lightPath(room)+".color", &room.Color, bundle.RoomColor.Color(), opts)
		tl.To(lightIntensity(room), bundle.RoomIntensity, opts)
	}

	if amb := tc.Scene.Ambient; amb != nil {
		tweenColor(tl, "light.ambient.color", &amb.Color, bundle.AmbientColor.Color(), opts)
		tl.To(tween.Float("light.ambient.intensity", &amb.Intensity), bundle.AmbientIntensity, opts)
	}

	if accent := tc.Scene.PointLight(bundle.AccentLight); accent != nil {
		tl.To(tween.Float(lightPath(accent)+".distance", &accent.Distance), bundle.AccentDistance, opts)
	}

	for _, light := range tc.TextLights {
		tl.To(lightIntensity(light), bundle.TextLightIntensity, opts)
	}

	for _, text := range tc.Registry.Text {
		if len(text.Materials) < 2 {
			continue
		}
		text.Materials[0].Color = bundle.TextFace.Color()
		text.Materials[1].Color = bundle.TextSide.Color()
	}

}

func lightPath(light *scene.PointLight) string {
	return "light." + light.Name
}

// lightIntensity is shared by the theme and the camera moves; the latest change to a light's intensity wins.
func lightIntensity(light *scene.PointLight) tween.Property {
	return tween.Float(lightPath(light)+".intensity", &light.Intensity)
}
