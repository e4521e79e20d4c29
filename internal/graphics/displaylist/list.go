// Package displaylist records a frame's draw calls the way an immediate-mode
// program issues them: a model matrix stack, light placement, material and
// texture state, and one command per primitive. The renderer replays it.
package displaylist

import (
	"glscenes/internal/graphics/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// TexEnv is how a texture combines with the lit fragment color.
type TexEnv int

const (
	TexNone TexEnv = iota
	TexModulate
	TexDecal
	TexReplace
)

// Sampler holds per-draw texture parameters.
type Sampler struct {
	Repeat bool
	Linear bool
}

// Texturing binds a texture to a draw.
type Texturing struct {
	ID      uint32
	Env     TexEnv
	Sampler Sampler
}

// Command is a single primitive draw.
type Command struct {
	Shape geometry.Shape
	// Custom overrides Shape when non-nil; it is streamed every frame.
	Custom *geometry.Mesh

	Model    mgl32.Mat4
	Material Material
	Color    mgl32.Vec4
	Unlit    bool
	Texture  Texturing
}

// Wire reports whether the command draws lines.
func (c Command) Wire() bool {
	if c.Custom != nil {
		return c.Custom.Primitive.IsLine() || c.Custom.Primitive == geometry.Points
	}
	return c.Shape.Kind == geometry.KindWireCube || c.Shape.Kind == geometry.KindWireCylinder
}

// List is one frame of drawing.
type List struct {
	ClearColor    mgl32.Vec4
	View          mgl32.Mat4
	GlobalAmbient mgl32.Vec4
	Smooth        bool
	LocalViewer   bool
	TwoSide       bool
	DepthTest     bool

	Lights   [MaxLights]Light
	Commands []Command

	stack    []mgl32.Mat4
	material Material
	color    mgl32.Vec4
}

// New returns an empty list ready for Begin.
func New() *List {
	l := &List{}
	l.Begin(mgl32.Ident4())
	return l
}

// Begin clears the list for a new frame with the given view transform.
// Light slots keep their state, enabled ones included, until placed again or
// switched off with DisableLight.
func (l *List) Begin(view mgl32.Mat4) {
	l.View = view
	l.Commands = l.Commands[:0]
	l.stack = append(l.stack[:0], mgl32.Ident4())
	l.material = DefaultMaterial
	l.color = mgl32.Vec4{1, 1, 1, 1}
	l.GlobalAmbient = mgl32.Vec4{0.2, 0.2, 0.2, 1}
	l.Smooth = true
	l.DepthTest = true
}

// Current returns the top of the model matrix stack.
func (l *List) Current() mgl32.Mat4 {
	return l.stack[len(l.stack)-1]
}

// Push duplicates the current matrix.
func (l *List) Push() {
	l.stack = append(l.stack, l.Current())
}

// Pop discards the current matrix. Popping the last matrix is ignored and reports false.
func (l *List) Pop() bool {
	if len(l.stack) == 1 {
		return false
	}
	l.stack = l.stack[:len(l.stack)-1]
	return true
}

// Depth returns the number of matrices on the stack.
func (l *List) Depth() int { return len(l.stack) }

func (l *List) mul(m mgl32.Mat4) {
	top := len(l.stack) - 1
	l.stack[top] = l.stack[top].Mul4(m)
}

// Translate post-multiplies a translation.
func (l *List) Translate(x, y, z float32) {
	l.mul(mgl32.Translate3D(x, y, z))
}

// Rotate post-multiplies a rotation of deg degrees about (x,y,z).
func (l *List) Rotate(deg, x, y, z float32) {
	axis := mgl32.Vec3{x, y, z}
	if axis.Len() == 0 {
		return
	}
	l.mul(mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize()))
}

// Scale post-multiplies a scale.
func (l *List) Scale(x, y, z float32) {
	l.mul(mgl32.Scale3D(x, y, z))
}

// SetMaterial sets the material used by subsequent lit draws.
func (l *List) SetMaterial(m Material) { l.material = m }

// SetColor sets the color used by subsequent unlit and wire draws.
func (l *List) SetColor(r, g, b float32) { l.color = mgl32.Vec4{r, g, b, 1} }

// Draw records a lit draw of shape with the current material.
func (l *List) Draw(shape geometry.Shape) {
	l.Commands = append(l.Commands, Command{
		Shape:    shape,
		Model:    l.Current(),
		Material: l.material,
		Color:    l.color,
	})
}

// DrawTextured records a draw of shape with a texture applied.
func (l *List) DrawTextured(shape geometry.Shape, tex Texturing) {
	l.Draw(shape)
	l.Commands[len(l.Commands)-1].Texture = tex
}

// DrawUnlit records a self-colored draw that ignores lighting.
func (l *List) DrawUnlit(shape geometry.Shape) {
	l.Draw(shape)
	l.Commands[len(l.Commands)-1].Unlit = true
}

// DrawVertices records an unlit draw of ad-hoc vertices in the current color.
func (l *List) DrawVertices(mesh geometry.Mesh) {
	l.Commands = append(l.Commands, Command{
		Custom: &mesh,
		Model:  l.Current(),
		Color:  l.color,
		Unlit:  true,
	})
}

// PlaceLight stores light in slot i with its position and spot direction
// transformed by the view and the current model matrix.
func (l *List) PlaceLight(i int, light Light) {
	if i < 0 || i >= MaxLights {
		return
	}
	mv := l.View.Mul4(l.Current())
	light.Position = mv.Mul4x1(light.Position)
	dir := mv.Mat3().Mul3x1(light.SpotDirection)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	light.SpotDirection = dir
	light.Enabled = true
	l.Lights[i] = light
}

// PlaceEyeLight stores light in slot i as given, in eye space. Use it for
// lights that travel with the camera.
func (l *List) PlaceEyeLight(i int, light Light) {
	if i < 0 || i >= MaxLights {
		return
	}
	light.Enabled = true
	l.Lights[i] = light
}

// DisableLight turns off slot i.
func (l *List) DisableLight(i int) {
	if i < 0 || i >= MaxLights {
		return
	}
	l.Lights[i].Enabled = false
}

// EnabledLights counts the enabled slots.
func (l *List) EnabledLights() int {
	n := 0
	for _, li := range l.Lights {
		if li.Enabled {
			n++
		}
	}
	return n
}
