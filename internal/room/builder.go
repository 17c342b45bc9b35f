package room

import (
	"fmt"
	"image"

	"github.com/solarlune/tetraroom/internal/assets"
	"github.com/solarlune/tetraroom/internal/colors"
	"github.com/solarlune/tetraroom/internal/config"
	"github.com/solarlune/tetraroom/internal/scene"
	"golang.org/x/image/font/opentype"
)

// Pixel size wall text is drawn at, per unit of text size.
const textPixelsPerEm = 96

// Build assembles the room: it parents the loaded model under a new scene, adds the layout's lights, dresses the
// model's notable objects, and creates the wall text, the celebration card and button, and the project planes.
func Build(layout *config.Layout, bundle *assets.Bundle) (*scene.Scene, *Registry, error) {

	if bundle == nil || bundle.Library == nil || bundle.Library.Root == nil {
		return nil, nil, fmt.Errorf("build room: %w", ErrMissingObject)
	}

	sc := scene.NewScene("room")
	reg := NewRegistry()

	model := bundle.Library.Root
	sc.Root.AddChildren(model)

	addLights(sc, layout.Lights)
	sc.AddPointLights(bundle.Library.Lights...)

	for _, child := range model.Children() {
		dressChild(child, reg, bundle)
	}

	model.Walk(func(n *scene.Node) bool {
		switch n.Name() {
		case NameBook, NameBookCover:
			reg.Tag(TagBook, n)
		case NameSwitchBoard, NameSwitch:
			reg.Tag(TagSwitchBoard, n)
		}
		return true
	})

	for _, t := range layout.Text {
		f := bundle.Fonts.Subtitle
		if t.Font == "title" {
			f = bundle.Fonts.Title
		}
		text := buildText(t, f)
		sc.Root.AddChildren(text)
		reg.Text = append(reg.Text, text)
	}

	cel := layout.Celebration

	reg.Card = buildPlane(cel.Card, DrawCard(cel, bundle.Fonts))
	reg.CardRest = reg.Card.Position

	reg.Button = buildPlane(cel.Button, DrawButton(cel, bundle.Fonts))
	reg.Button.Properties().Set("action", "loadBirthday")
	reg.ButtonRest = reg.Button.Position
	reg.Tag(TagCelebrationButton, reg.Button)

	sc.Root.AddChildren(reg.Card, reg.Button)

	for i, p := range layout.Projects {

		var img image.Image
		if i < len(bundle.Projects) {
			img = bundle.Projects[i]
		}

		project := buildPlane(config.Plane{
			Name:     NameProject,
			Width:    p.Width,
			Height:   p.Height,
			Position: p.Position,
		}, img)

		if img == nil {
			project.Material().Color = colors.Glass()
		}

		project.Properties().Set("url", p.URL)

		reg.Projects = append(reg.Projects, project)
		reg.Tag(TagProject, project)
		sc.Root.AddChildren(project)

	}

	return sc, reg, nil

}

func addLights(sc *scene.Scene, lights config.Lights) {

	sc.Ambient = scene.NewAmbientLight("ambient", lights.Ambient.Color.Color(), lights.Ambient.Intensity)

	add := func(l config.PointLight) {
		light := scene.NewPointLight(l.Name, l.Color.Color(), l.Intensity, l.Distance)
		light.Position = l.Position.Vector()
		light.CastShadow = l.CastShadow
		light.Shadow = scene.ShadowSettings{
			Radius:  l.Shadow.Radius,
			MapSize: l.Shadow.MapSize,
			Far:     l.Shadow.Far,
			Bias:    l.Shadow.Bias,
		}
		sc.AddPointLights(light)
	}

	add(lights.Room)
	for _, l := range lights.Fans {
		add(l)
	}
	for _, l := range lights.Text {
		add(l)
	}

}

// dressChild sets up shadows and materials for a top-level object of the model and its direct children.
func dressChild(child *scene.Node, reg *Registry, bundle *assets.Bundle) {

	child.CastShadow = child.Name() != NameWall
	child.ReceiveShadow = true

	for _, inner := range child.Children() {

		inner.CastShadow = inner.Name() != NameBookCover && inner.Name() != NameSwitch
		inner.ReceiveShadow = true

		if inner.Name() == NameBookCover {
			cover := scene.NewMaterial("bookCover")
			cover.DoubleSided = true
			cover.Texture = bundle.BookCover
			inner.SetMaterial(cover)
		}

	}

	children := child.Children()

	switch child.Name() {

	case NameWall:
		reg.Wall = child

	case NameStand:
		if len(children) > 0 {
			screen := scene.NewMaterial("screen")
			screen.Kind = scene.MaterialBasic
			if bundle.Video != nil {
				reg.Video = scene.NewTexturePlayer(bundle.Video.Frames, bundle.Video.Delays)
				screen.TextureSource = reg.Video
			}
			children[0].SetMaterial(screen)
			reg.Screen = children[0]
		}

	case NameCPU:
		for i, transmission := range []float32{2, 1} {
			if i >= len(children) {
				break
			}
			children[i].SetMaterial(glassMaterial(transmission))
			reg.CPUGlass = append(reg.CPUGlass, children[i])
		}

	case NameBook:
		reg.Book = child
		if len(children) > 0 {
			reg.BookCover = children[0]
		}
		inner := scene.NewMaterial("bookInner")
		inner.Texture = bundle.BookInner
		child.SetMaterial(inner)

	case NameSwitchBoard:
		reg.SwitchBoard = child
		if len(children) > 0 {
			reg.Switch = children[0]
		}

	}

}

func glassMaterial(transmission float32) *scene.Material {
	glass := scene.NewMaterial("glass")
	glass.Kind = scene.MaterialPhysical
	glass.Roughness = 0
	glass.Color = colors.Glass()
	glass.IOR = 3
	glass.Transmission = transmission
	glass.Opacity = 0.8
	glass.Transparent = true
	glass.DepthWrite = false
	glass.DepthTest = false
	return glass
}

// buildPlane creates a hidden (zero-scale), fully transparent, unlit plane showing the texture given.
func buildPlane(p config.Plane, texture image.Image) *scene.Node {

	mat := scene.NewMaterial(p.Name)
	mat.Kind = scene.MaterialBasic
	mat.Transparent = true
	mat.Opacity = 0
	mat.Texture = texture

	node := scene.NewMeshNode(p.Name, scene.NewPlaneMesh(p.Name, p.Width, p.Height), mat)
	node.Position = p.Position.Vector()
	node.Scale = scene.Vector3{}

	return node

}

// buildText creates a line of wall text. The text is a group holding a front plane with the face material and,
// for text with depth, a back plane with the side material, so the pair reads as extruded lettering.
// The group's Materials are the face, then the side.
func buildText(t config.Text, f *opentype.Font) *scene.Node {

	mask := drawTextMask(f, t.Content, textPixelsPerEm)
	unit := t.Size / textPixelsPerEm
	w, h := mask.width*unit, mask.height*unit

	face := scene.NewMaterial(t.Name + ".face")
	face.Kind = scene.MaterialPhong
	face.Color = colors.Ink()
	face.FlatShading = true
	face.Texture = mask.image

	side := scene.NewMaterial(t.Name + ".side")
	side.Kind = scene.MaterialPhong
	side.Color = colors.White()
	side.Texture = mask.image

	node := scene.NewNode(t.Name)
	node.Materials = []*scene.Material{face, side}
	node.Position = t.Position.Vector()
	node.Rotation = t.Rotation.Vector()

	// The text's origin is the start of its baseline.
	offset := scene.NewVector3(w/2, h/2-mask.descent*unit, t.Depth)

	front := scene.NewMeshNode(t.Name+".front", scene.NewPlaneMesh(t.Name, w, h), face)
	front.Position = offset
	node.AddChildren(front)

	if t.Depth > 0 {
		back := scene.NewMeshNode(t.Name+".back", scene.NewPlaneMesh(t.Name, w, h), side)
		back.Position = scene.NewVector3(offset.X, offset.Y, 0)
		node.AddChildren(back)
	}

	return node

}
