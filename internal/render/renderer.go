// Package render draws the room with Ebitengine: a painter's-algorithm triangle renderer for the scene, and flat
// drawing for the page chrome, the overlay, and the loading screen.
package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/tetraroom/internal/scene"
)

// Vertices per DrawTriangles call; indices are 16-bit.
const maxBatchVertices = 65535 / 3 * 3

// DebugInfo counts what the last RenderScene call drew.
type DebugInfo struct {
	DrawnMeshes    int
	DrawnTriangles int
	CulledTris     int
	DrawCalls      int
}

// sortingTriangle is a projected triangle waiting to be drawn back-to-front.
type sortingTriangle struct {
	depth    float32
	texture  *ebiten.Image
	vertices [3]ebiten.Vertex
}

// Renderer draws Scenes onto ebiten Images. Textures are uploaded once, the first time they're drawn.
type Renderer struct {
	DebugInfo DebugInfo

	// Lighting disables per-vertex lighting when false; every surface is drawn at its full color.
	Lighting bool

	white    *ebiten.Image
	textures map[image.Image]*ebiten.Image

	tris     []sortingTriangle
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer returns a new Renderer with lighting on.
func NewRenderer() *Renderer {
	white := ebiten.NewImage(4, 4)
	white.Fill(color.White)
	return &Renderer{
		Lighting: true,
		white:    white,
		textures: map[image.Image]*ebiten.Image{},
	}
}

// Texture returns the ebiten Image for the image given, uploading it if it hasn't been drawn before.
func (r *Renderer) Texture(img image.Image) *ebiten.Image {
	if img == nil {
		return r.white
	}
	if eimg, ok := r.textures[img]; ok {
		return eimg
	}
	eimg := ebiten.NewImageFromImage(img)
	r.textures[img] = eimg
	return eimg
}

// RenderScene draws every visible, non-collapsed mesh in the Scene from the camera's point of view. Triangles are
// lit per vertex by the Scene's ambient and point lights, sorted back-to-front, and drawn in batches that share
// a texture. Shadows aren't drawn.
func (r *Renderer) RenderScene(screen *ebiten.Image, sc *scene.Scene, camera *scene.Camera) {

	r.DebugInfo = DebugInfo{}
	r.tris = r.tris[:0]

	bounds := screen.Bounds()
	width, height := float32(bounds.Dx()), float32(bounds.Dy())

	vp := camera.Projection().Mul4(camera.ViewMatrix())

	sc.Root.Walk(func(node *scene.Node) bool {

		if !node.Visible {
			return false
		}

		if node.Mesh != nil && !node.IsCollapsed() {
			r.project(node, sc, vp, width, height)
		}

		return true

	})

	sort.SliceStable(r.tris, func(i, j int) bool { return r.tris[i].depth > r.tris[j].depth })

	r.flush(screen)

}

func (r *Renderer) project(node *scene.Node, sc *scene.Scene, vp mgl32.Mat4, width, height float32) {

	mat := node.Material()
	if mat == nil {
		mat = scene.NewMaterial("default")
	}

	opacity := mat.EffectiveOpacity()
	if opacity <= 0 {
		return
	}

	r.DebugInfo.DrawnMeshes++

	world := node.WorldTransform()
	mvp := vp.Mul4(world)
	normalMatrix := world.Mat3().Inv().Transpose()

	tex := r.Texture(mat.CurrentTexture())
	srcW, srcH := float32(tex.Bounds().Dx()), float32(tex.Bounds().Dy())

	lit := r.Lighting && mat.Kind != scene.MaterialBasic

	mesh := node.Mesh

	for t := 0; t < mesh.TriangleCount(); t++ {

		idx := mesh.Indices[t*3 : t*3+3]

		var clip [3]mgl32.Vec4
		behind := false
		for i, vi := range idx {
			clip[i] = mvp.Mul4x1(mesh.Positions[vi].Vec4(1))
			if clip[i][3] <= 1e-4 {
				behind = true
			}
		}

		if behind {
			r.DebugInfo.CulledTris++
			continue
		}

		var ndc [3]mgl32.Vec2
		outside := [4]int{}
		for i := range clip {
			ndc[i] = mgl32.Vec2{clip[i][0] / clip[i][3], clip[i][1] / clip[i][3]}
			if ndc[i][0] < -1 {
				outside[0]++
			} else if ndc[i][0] > 1 {
				outside[1]++
			}
			if ndc[i][1] < -1 {
				outside[2]++
			} else if ndc[i][1] > 1 {
				outside[3]++
			}
		}

		if outside[0] == 3 || outside[1] == 3 || outside[2] == 3 || outside[3] == 3 {
			r.DebugInfo.CulledTris++
			continue
		}

		// Counter-clockwise in NDC faces the camera.
		area := (ndc[1][0]-ndc[0][0])*(ndc[2][1]-ndc[0][1]) - (ndc[2][0]-ndc[0][0])*(ndc[1][1]-ndc[0][1])
		if area <= 0 && !mat.DoubleSided {
			r.DebugInfo.CulledTris++
			continue
		}

		tri := sortingTriangle{
			depth:   (clip[0][3] + clip[1][3] + clip[2][3]) / 3,
			texture: tex,
		}

		var faceNormal scene.Vector3
		if lit && (mat.FlatShading || len(mesh.Normals) == 0) {
			v0, v1, v2 := mesh.Triangle(t)
			faceNormal = scene.TransformDirection(world, v1.Sub(v0).Cross(v2.Sub(v0))).Unit()
		}

		for i, vi := range idx {

			v := &tri.vertices[i]
			v.DstX = (ndc[i][0] + 1) / 2 * width
			v.DstY = (1 - ndc[i][1]) / 2 * height

			if vi < len(mesh.UVs) {
				v.SrcX = mesh.UVs[vi][0] * srcW
				v.SrcY = mesh.UVs[vi][1] * srcH
			} else {
				v.SrcX, v.SrcY = srcW/2, srcH/2
			}

			cr, cg, cb := mat.Color.R, mat.Color.G, mat.Color.B

			if lit {

				worldPos := scene.TransformPoint(world, mesh.Positions[vi])

				normal := faceNormal
				if !mat.FlatShading && vi < len(mesh.Normals) {
					n := normalMatrix.Mul3x1(mesh.Normals[vi].Vec3())
					normal = scene.NewVector3(n[0], n[1], n[2]).Unit()
				}

				// Back faces of double-sided surfaces are lit from their visible side.
				if area <= 0 {
					normal = normal.Scale(-1)
				}

				lr, lg, lb := sc.Ambient.Light()
				for _, light := range sc.PointLights {
					pr, pg, pb := light.Light(worldPos, normal)
					lr += pr
					lg += pg
					lb += pb
				}

				cr, cg, cb = cr*lr, cg*lg, cb*lb

			}

			v.ColorR = math32.Min(cr, 1)
			v.ColorG = math32.Min(cg, 1)
			v.ColorB = math32.Min(cb, 1)
			v.ColorA = opacity * mat.Color.A

		}

		r.tris = append(r.tris, tri)

	}

}

// flush draws the sorted triangles, batching runs that share a texture.
func (r *Renderer) flush(screen *ebiten.Image) {

	opts := &ebiten.DrawTrianglesOptions{
		Filter:  ebiten.FilterLinear,
		Address: ebiten.AddressRepeat,
	}

	var current *ebiten.Image

	draw := func() {
		if len(r.vertices) == 0 {
			return
		}
		screen.DrawTriangles(r.vertices, r.indices, current, opts)
		r.DebugInfo.DrawCalls++
		r.vertices = r.vertices[:0]
		r.indices = r.indices[:0]
	}

	for _, tri := range r.tris {

		if tri.texture != current || len(r.vertices)+3 > maxBatchVertices {
			draw()
			current = tri.texture
		}

		for _, v := range tri.vertices {
			r.indices = append(r.indices, uint16(len(r.vertices)))
			r.vertices = append(r.vertices, v)
		}

		r.DebugInfo.DrawnTriangles++

	}

	draw()

}
