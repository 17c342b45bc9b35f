package assets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"log"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/lightspunctual"
	"github.com/qmuntal/gltf/modeler"
	"github.com/solarlune/tetraroom/internal/anim"
	"github.com/solarlune/tetraroom/internal/scene"
)

// ErrDracoUnsupported is returned for models whose meshes are Draco-compressed.
var ErrDracoUnsupported = errors.New("assets: Draco-compressed meshes are not supported")

const (
	dracoExtension  = "KHR_draco_mesh_compression"
	lightsExtension = "KHR_lights_punctual"
)

// ImageResolver loads an image referenced by URI from a model file.
type ImageResolver func(uri string) (image.Image, error)

// Library is a loaded model: its node tree, animation clips, lights, and materials.
type Library struct {
	Root      *scene.Node
	Clips     []*anim.Clip
	Lights    []*scene.PointLight
	Materials map[string]*scene.Material
}

// Clip returns the animation clip with the given name, or nil if there's none.
func (lib *Library) Clip(name string) *anim.Clip {
	return anim.FindByName(lib.Clips, name)
}

type primitive struct {
	mesh     *scene.Mesh
	material *scene.Material
}

// LoadLibrary decodes a .gltf or .glb file from the data given. Images referenced by URI are loaded through
// resolve; if resolve is nil, they're skipped.
func LoadLibrary(data []byte, resolve ImageResolver) (*Library, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}

	for _, ext := range doc.ExtensionsRequired {
		if ext == dracoExtension {
			return nil, ErrDracoUnsupported
		}
	}

	library := &Library{
		Materials: map[string]*scene.Material{},
	}

	images := make([]image.Image, len(doc.Images))

	for i, gltfImage := range doc.Images {

		var img image.Image
		var err error

		if gltfImage.BufferView != nil {

			imageData, readErr := modeler.ReadBufferView(doc, doc.BufferViews[*gltfImage.BufferView])
			if readErr != nil {
				return nil, readErr
			}
			img, _, err = image.Decode(bytes.NewReader(imageData))

		} else if strings.HasPrefix(gltfImage.URI, "data:") {

			img, err = decodeDataURI(gltfImage.URI)

		} else if gltfImage.URI != "" && resolve != nil {

			img, err = resolve(gltfImage.URI)

		}

		if err != nil {
			return nil, fmt.Errorf("model image %d: %w", i, err)
		}

		images[i] = img

	}

	materials := make([]*scene.Material, len(doc.Materials))

	for i, gltfMat := range doc.Materials {

		mat := scene.NewMaterial(gltfMat.Name)
		mat.DoubleSided = gltfMat.DoubleSided
		mat.Transparent = gltfMat.AlphaMode == gltf.AlphaBlend

		if pbr := gltfMat.PBRMetallicRoughness; pbr != nil {

			color := pbr.BaseColorFactor
			mat.Color = scene.NewColor(float32(color[0]), float32(color[1]), float32(color[2]), 1)
			mat.Opacity = float32(color[3])

			if pbr.RoughnessFactor != nil {
				mat.Roughness = float32(*pbr.RoughnessFactor)
			}

			if texture := pbr.BaseColorTexture; texture != nil {
				if source := doc.Textures[texture.Index].Source; source != nil {
					mat.Texture = images[*source]
				}
			}

		}

		materials[i] = mat
		library.Materials[gltfMat.Name] = mat

	}

	meshes := make([][]primitive, len(doc.Meshes))

	for i, mesh := range doc.Meshes {

		for p, v := range mesh.Primitives {

			if _, compressed := v.Extensions[dracoExtension]; compressed {
				return nil, ErrDracoUnsupported
			}

			name := mesh.Name
			if len(mesh.Primitives) > 1 {
				name = fmt.Sprintf("%s_%d", mesh.Name, p)
			}

			newMesh, err := readPrimitive(doc, name, v)
			if err != nil {
				return nil, fmt.Errorf("mesh %s: %w", name, err)
			}

			prim := primitive{mesh: newMesh}
			if v.Material != nil {
				prim.material = materials[*v.Material]
			} else {
				prim.material = scene.NewMaterial("default")
			}

			meshes[i] = append(meshes[i], prim)

		}

	}

	objects := make([]*scene.Node, len(doc.Nodes))
	lightNodes := map[*scene.Node]*scene.PointLight{}

	for i, node := range doc.Nodes {

		obj := scene.NewNode(node.Name)

		if node.Mesh != nil {

			prims := meshes[*node.Mesh]

			if len(prims) == 1 {
				obj.Mesh = prims[0].mesh
				obj.Materials = []*scene.Material{prims[0].material}
			} else {
				// Each primitive of a multi-material mesh becomes a child, ahead of the node's own children.
				for _, prim := range prims {
					obj.AddChildren(scene.NewMeshNode(prim.mesh.Name, prim.mesh, prim.material))
				}
			}

		} else if lighting, ok := node.Extensions[lightsExtension]; ok {

			if light := readLight(doc, node.Name, lighting); light != nil {
				lightNodes[obj] = light
				library.Lights = append(library.Lights, light)
			}

		}

		setTransform(obj, node)

		if extras, ok := node.Extras.(map[string]any); ok {
			for name, value := range extras {
				obj.Properties().Set(name, value)
			}
		}

		objects[i] = obj

	}

	for i, node := range doc.Nodes {
		for _, child := range node.Children {
			objects[i].AddChildren(objects[int(child)])
		}
	}

	library.Root = scene.NewNode("root")

	if len(doc.Scenes) > 0 {
		sceneIndex := 0
		if doc.Scene != nil {
			sceneIndex = int(*doc.Scene)
		}
		library.Root.SetName(doc.Scenes[sceneIndex].Name)
		for _, n := range doc.Scenes[sceneIndex].Nodes {
			library.Root.AddChildren(objects[int(n)])
		}
	} else {
		for _, obj := range objects {
			if obj.Parent() == nil {
				library.Root.AddChildren(obj)
			}
		}
	}

	for obj, light := range lightNodes {
		light.Position = obj.WorldPosition()
	}

	clips, err := readAnimations(doc)
	if err != nil {
		return nil, err
	}
	library.Clips = clips

	return library, nil

}

func readPrimitive(doc *gltf.Document, name string, v *gltf.Primitive) (*scene.Mesh, error) {

	newMesh := scene.NewMesh(name)

	positionAccessor, ok := v.Attributes[gltf.POSITION]
	if !ok {
		return nil, errors.New("primitive has no positions")
	}

	posBuffer := [][3]float32{}
	vertPos, err := modeler.ReadPosition(doc, doc.Accessors[positionAccessor], posBuffer)
	if err != nil {
		return nil, err
	}

	newMesh.Positions = make([]scene.Vector3, len(vertPos))
	for i, p := range vertPos {
		newMesh.Positions[i] = scene.NewVector3(p[0], p[1], p[2])
	}

	if texCoordAccessor, texCoordExists := v.Attributes[gltf.TEXCOORD_0]; texCoordExists {

		uvBuffer := [][2]float32{}
		texCoords, err := modeler.ReadTextureCoord(doc, doc.Accessors[texCoordAccessor], uvBuffer)
		if err != nil {
			return nil, err
		}

		newMesh.UVs = make([][2]float32, len(texCoords))
		copy(newMesh.UVs, texCoords)

	}

	if normalAccessor, normalExists := v.Attributes[gltf.NORMAL]; normalExists {

		normalBuffer := [][3]float32{}
		normals, err := modeler.ReadNormal(doc, doc.Accessors[normalAccessor], normalBuffer)
		if err != nil {
			return nil, err
		}

		newMesh.Normals = make([]scene.Vector3, len(normals))
		for i, n := range normals {
			newMesh.Normals[i] = scene.NewVector3(n[0], n[1], n[2])
		}

	}

	if v.Indices != nil {

		indexBuffer := []uint32{}
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*v.Indices], indexBuffer)
		if err != nil {
			return nil, err
		}

		newMesh.Indices = make([]int, len(indices))
		for i, j := range indices {
			newMesh.Indices[i] = int(j)
		}

	} else {
		newMesh.Indices = make([]int, len(newMesh.Positions))
		for i := range newMesh.Indices {
			newMesh.Indices[i] = i
		}
	}

	newMesh.GenerateNormals()
	newMesh.UpdateBounds()

	return newMesh, nil

}

func readLight(doc *gltf.Document, name string, lighting any) *scene.PointLight {

	lights, ok := doc.Extensions[lightsExtension].(lightspunctual.Lights)
	if !ok {
		return nil
	}

	index, ok := lighting.(lightspunctual.LightIndex)
	if !ok || int(index) >= len(lights) {
		return nil
	}

	lightData := lights[index]

	if lightData.Type != lightspunctual.TypePoint {
		log.Printf("model light %s: only point lights are supported, skipping", name)
		return nil
	}

	var intensity float32 = 1
	if lightData.Intensity != nil {
		intensity = float32(*lightData.Intensity)
	}

	light := scene.NewPointLight(name, scene.NewColor(float32(lightData.Color[0]), float32(lightData.Color[1]), float32(lightData.Color[2]), 1), intensity, 0)

	if lightData.Range != nil && !math.IsInf(float64(*lightData.Range), 0) {
		light.Distance = float32(*lightData.Range)
	}

	return light

}

func setTransform(obj *scene.Node, node *gltf.Node) {

	matrix := mgl32.Mat4{}
	for i, v := range node.Matrix {
		matrix[i] = float32(v)
	}

	if matrix != (mgl32.Mat4{}) && !matrix.ApproxEqual(mgl32.Ident4()) {

		obj.Position = scene.NewVector3(matrix[12], matrix[13], matrix[14])

		sx := matrix.Col(0).Vec3().Len()
		sy := matrix.Col(1).Vec3().Len()
		sz := matrix.Col(2).Vec3().Len()
		obj.Scale = scene.NewVector3(sx, sy, sz)

		rotation := mgl32.Ident4()
		rotation.SetCol(0, matrix.Col(0).Mul(1/sx))
		rotation.SetCol(1, matrix.Col(1).Mul(1/sy))
		rotation.SetCol(2, matrix.Col(2).Mul(1/sz))
		obj.Rotation = scene.MatrixToEuler(rotation)

		return

	}

	obj.Position = scene.NewVector3(float32(node.Translation[0]), float32(node.Translation[1]), float32(node.Translation[2]))

	// Unset scale and rotation decode as zeroes in some exporters' output.
	if scale := scene.NewVector3(float32(node.Scale[0]), float32(node.Scale[1]), float32(node.Scale[2])); scale != (scene.Vector3{}) {
		obj.Scale = scale
	}

	x, y, z, w := float32(node.Rotation[0]), float32(node.Rotation[1]), float32(node.Rotation[2]), float32(node.Rotation[3])
	if x != 0 || y != 0 || z != 0 || w != 0 {
		obj.Rotation = scene.QuaternionToEuler(x, y, z, w)
	}

}

func readAnimations(doc *gltf.Document) ([]*anim.Clip, error) {

	clips := []*anim.Clip{}

	for _, gltfAnim := range doc.Animations {

		clip := anim.NewClip(gltfAnim.Name)

		for _, channel := range gltfAnim.Channels {

			if channel.Sampler < 0 || channel.Sampler >= len(gltfAnim.Samplers) {
				continue
			}

			sampler := gltfAnim.Samplers[channel.Sampler]

			channelName := "root"
			if channel.Target.Node != nil {
				channelName = doc.Nodes[*channel.Target.Node].Name
			}

			animChannel := clip.Channels[channelName]
			if animChannel == nil {
				animChannel = clip.AddChannel(channelName)
			}

			id, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Input], nil)
			if err != nil {
				return nil, fmt.Errorf("animation %s: %w", gltfAnim.Name, err)
			}

			inputData, ok := id.([]float32)
			if !ok {
				return nil, fmt.Errorf("animation %s: keyframe times aren't floats", gltfAnim.Name)
			}

			od, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Output], nil)
			if err != nil {
				return nil, fmt.Errorf("animation %s: %w", gltfAnim.Name, err)
			}

			switch channel.Target.Path {

			case gltf.TRSTranslation, gltf.TRSScale:

				outputData, ok := od.([][3]float32)
				if !ok {
					return nil, fmt.Errorf("animation %s: unexpected vector keyframes", gltfAnim.Name)
				}

				trackType := anim.TrackTypePosition
				if channel.Target.Path == gltf.TRSScale {
					trackType = anim.TrackTypeScale
				}

				track := animChannel.AddTrack(trackType)
				for i := 0; i < len(inputData) && i < len(outputData); i++ {
					p := outputData[i]
					track.AddVectorKeyframe(inputData[i], scene.NewVector3(p[0], p[1], p[2]))
				}

			case gltf.TRSRotation:

				outputData, ok := od.([][4]float32)
				if !ok {
					return nil, fmt.Errorf("animation %s: unexpected rotation keyframes", gltfAnim.Name)
				}

				track := animChannel.AddTrack(anim.TrackTypeRotation)
				for i := 0; i < len(inputData) && i < len(outputData); i++ {
					p := outputData[i]
					track.AddQuatKeyframe(inputData[i], mgl32.Quat{W: p[3], V: mgl32.Vec3{p[0], p[1], p[2]}})
				}

			}

		}

		clip.UpdateLength()
		clips = append(clips, clip)

	}

	return clips, nil

}

func decodeDataURI(uri string) (image.Image, error) {
	_, payload, found := strings.Cut(uri, ";base64,")
	if !found {
		return nil, errors.New("unsupported data URI")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}
