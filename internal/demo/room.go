package demo

import (
	"glscenes/internal/graphics/displaylist"
	"glscenes/internal/graphics/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// Sampling used for the two kinds of textured surfaces.
var (
	WallSampler  = displaylist.Sampler{Repeat: true, Linear: true}
	FloorSampler = displaylist.Sampler{Repeat: false, Linear: true}
)

// MarkerSphere is the self-colored ball drawn where a light sits.
var MarkerSphere = geometry.Sphere(20, 20)

// Wall draws a width x height textured sheet standing on y=0, rotated by yaw
// degrees about Y and then pushed offset units along its own Z axis.
func Wall(l *displaylist.List, yaw, offset, width, height float32, tex uint32) {
	l.Push()
	l.Rotate(yaw, 0, 1, 0)
	l.Translate(0, 0, offset)
	l.Scale(width, height, 1)
	l.DrawTextured(geometry.Plane, displaylist.Texturing{ID: tex, Env: displaylist.TexDecal, Sampler: WallSampler})
	l.Pop()
}

// Sheet draws a textured sheet with the wall sampling at the current transform.
func Sheet(l *displaylist.List, width, height float32, tex uint32) {
	l.Push()
	l.Scale(width, height, 1)
	l.DrawTextured(geometry.Plane, displaylist.Texturing{ID: tex, Env: displaylist.TexDecal, Sampler: WallSampler})
	l.Pop()
}

// Floor draws a width x depth floor centered on the origin. A zero tex draws
// it untextured with the current material.
func Floor(l *displaylist.List, width, depth float32, tex uint32) {
	l.Push()
	l.Scale(width, 1, depth)
	if tex == 0 {
		l.Draw(geometry.Floor)
	} else {
		l.DrawTextured(geometry.Floor, displaylist.Texturing{ID: tex, Env: displaylist.TexReplace, Sampler: FloorSampler})
	}
	l.Pop()
}

// Marker draws an unlit sphere of the given radius and color at pos.
func Marker(l *displaylist.List, pos mgl32.Vec3, radius float32, color mgl32.Vec3, shape geometry.Shape) {
	l.Push()
	l.Translate(pos[0], pos[1], pos[2])
	l.Scale(radius, radius, radius)
	l.SetColor(color[0], color[1], color[2])
	l.DrawUnlit(shape)
	l.Pop()
}

// Box draws a lit unit cube translated to pos and scaled by size.
func Box(l *displaylist.List, pos, size mgl32.Vec3) {
	l.Push()
	l.Translate(pos[0], pos[1], pos[2])
	l.Scale(size[0], size[1], size[2])
	l.Draw(geometry.Cube)
	l.Pop()
}
