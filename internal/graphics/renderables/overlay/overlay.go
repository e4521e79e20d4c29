package overlay

import (
	"fmt"
	"path/filepath"

	"glscenes/internal/graphics"
	renderer "glscenes/internal/graphics/renderer"
	"glscenes/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	margin = 10
	// extra pixels between lines
	leading = 4
)

// Overlay draws the help text in the top left corner of the window
type Overlay struct {
	shadersDir string
	fontPath   string
	fontSize   float64
	scale      float32

	fontRenderer *graphics.FontRenderer
}

// NewOverlay creates the renderable. An empty fontPath uses the built-in
// bitmap face; fontSize is then ignored.
func NewOverlay(shadersDir, fontPath string, fontSize float64, scale float32) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{
		shadersDir: filepath.Join(shadersDir, "overlay"),
		fontPath:   fontPath,
		fontSize:   fontSize,
		scale:      scale,
	}
}

// Init bakes the glyph atlas and loads the text shader
func (o *Overlay) Init() error {
	face, err := graphics.LoadFace(o.fontPath, o.fontSize)
	if err != nil {
		return fmt.Errorf("overlay font: %w", err)
	}
	atlas := graphics.BuildFontAtlas(face)
	fr, err := graphics.NewFontRenderer(atlas, o.shadersDir)
	if err != nil {
		graphics.DeleteTexture(atlas.TextureID)
		return err
	}
	o.fontRenderer = fr
	return nil
}

// Shaders returns the text program for hot reload.
func (o *Overlay) Shaders() []*graphics.Shader {
	return []*graphics.Shader{o.fontRenderer.Shader()}
}

// Render draws ctx.Overlay, one entry per line
func (o *Overlay) Render(ctx renderer.RenderContext) {
	if len(ctx.Overlay) == 0 {
		return
	}
	defer profiling.Track("renderer.renderOverlay")()

	var widest float32
	for _, line := range ctx.Overlay {
		w, _ := o.fontRenderer.Measure(line, 1)
		widest = max(widest, w)
	}
	scale := FitScale(o.scale, widest, float32(ctx.Width-2*margin))

	step := o.fontRenderer.LineHeight()*scale + leading
	o.fontRenderer.RenderLines(ctx.Overlay, margin, margin+step, step, scale, TextColor(ctx.List.ClearColor))
}

// FitScale shrinks scale so text widest pixels wide at scale 1 fits in room
// pixels. It never enlarges.
func FitScale(scale, widest, room float32) float32 {
	if widest <= 0 || room <= 0 {
		return scale
	}
	return min(scale, room/widest)
}

// TextColor picks black or white, whichever contrasts with the background.
func TextColor(background mgl32.Vec4) mgl32.Vec3 {
	luma := 0.299*background[0] + 0.587*background[1] + 0.114*background[2]
	if luma > 0.5 {
		return mgl32.Vec3{0, 0, 0}
	}
	return mgl32.Vec3{1, 1, 1}
}

// SetViewport updates the pixel projection
func (o *Overlay) SetViewport(width, height int) {
	if o.fontRenderer != nil {
		o.fontRenderer.SetViewport(float32(width), float32(height))
	}
}

// Dispose releases the atlas and shader
func (o *Overlay) Dispose() {
	if o.fontRenderer != nil {
		o.fontRenderer.Dispose()
	}
}
