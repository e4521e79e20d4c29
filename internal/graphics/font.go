package graphics

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance int
}

// FontAtlasInfo contains the OpenGL texture and per-glyph metadata
type FontAtlasInfo struct {
	TextureID  uint32
	AtlasW     int
	AtlasH     int
	LineHeight int
	Characters map[rune]FontCharacter
}

// LoadFace opens a TrueType/OpenType font at the given pixel size. An empty
// path selects the built-in 7x13 bitmap face.
func LoadFace(path string, pixels float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: pixels, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// BakeAtlas packs the printable ASCII glyphs of face into one alpha image.
// atlasW is the row width in pixels; the height grows as needed.
func BakeAtlas(face font.Face, atlasW int) (*image.Alpha, map[rune]FontCharacter) {
	const padding = 1

	// First pass: measure to size the atlas
	rowH := 0
	for r := rune(32); r <= 126; r++ {
		dr, mask, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		rowH = max(rowH, dr.Dy())
	}
	rowH += padding

	offsetX, requiredH := 0, rowH
	for r := rune(32); r <= 126; r++ {
		dr, mask, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		if offsetX+dr.Dx()+padding > atlasW {
			requiredH += rowH
			offsetX = 0
		}
		offsetX += dr.Dx() + padding
	}

	atlasImg := image.NewAlpha(image.Rect(0, 0, atlasW, requiredH))
	characters := make(map[rune]FontCharacter)

	// Second pass: render each glyph into the atlas and record metrics
	offsetX, offsetY := 0, 0
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		fc := FontCharacter{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}
		if gw == 0 || gh == 0 {
			// Space or non-drawable glyph; still record advance
			characters[r] = fc
			continue
		}
		if offsetX+gw+padding > atlasW {
			offsetX = 0
			offsetY += rowH
		}

		dstRect := image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh)
		draw.Draw(atlasImg, dstRect, mask, maskp, draw.Src)

		fc.AtlasX = float32(offsetX)
		fc.AtlasY = float32(offsetY)
		fc.Width = float32(gw)
		fc.Height = float32(gh)
		characters[r] = fc

		offsetX += gw + padding
	}
	return atlasImg, characters
}

// BuildFontAtlas bakes face into an OpenGL texture atlas.
func BuildFontAtlas(face font.Face) *FontAtlasInfo {
	atlasImg, characters := BakeAtlas(face, 512)
	w, h := atlasImg.Rect.Dx(), atlasImg.Rect.Dy()

	// Upload atlas to OpenGL as GL_RED
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	// Ensure tight byte alignment for single-channel (alpha) upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlasImg.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &FontAtlasInfo{
		TextureID:  texture,
		AtlasW:     w,
		AtlasH:     h,
		LineHeight: face.Metrics().Height.Ceil(),
		Characters: characters,
	}
}

// FontRenderer renders ASCII text strings using a prebuilt atlas
type FontRenderer struct {
	atlas      *FontAtlasInfo
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer creates the renderer and loads the text shader from shadersDir
func NewFontRenderer(atlas *FontAtlasInfo, shadersDir string) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(filepath.Join(shadersDir, "overlay.vert"), filepath.Join(shadersDir, "overlay.frag"))
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.SetViewport(1, 1)
	fr.initGL()
	return fr, nil
}

// Shader exposes the text program so it can be hot reloaded.
func (fr *FontRenderer) Shader() *Shader { return fr.shader }

// LineHeight returns the distance between baselines in pixels at scale 1.
func (fr *FontRenderer) LineHeight() float32 { return float32(fr.atlas.LineHeight) }

// SetViewport sets a pixel projection with the origin at the top left.
func (fr *FontRenderer) SetViewport(width, height float32) {
	fr.projection = mgl32.Ortho(0, width, height, 0, -1, 1)
}

func (fr *FontRenderer) initGL() {
	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// RenderLines draws multiple lines of text in a single pass to minimize GL state changes.
// Lines start at (x, yStart), each following line lineStep pixels lower.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	if len(lines) == 0 {
		return
	}

	vertices := make([]float32, 0, 256*6*4)
	y := yStart
	for _, line := range lines {
		vertices = append(vertices, BuildTextVertices(fr.atlas, []rune(line), x, y, scale)...)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color)
	fr.shader.SetMatrix4("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// Orphan the buffer before refilling it
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Measure returns the approximate width and height in pixels the text will occupy at the given scale.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	return MeasureText(fr.atlas, text, scale)
}

// Dispose releases the GL objects.
func (fr *FontRenderer) Dispose() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	DeleteTexture(fr.atlas.TextureID)
	fr.shader.Delete()
}

// MeasureText returns the width and tallest glyph height of text.
func MeasureText(atlas *FontAtlasInfo, text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		fc, ok := atlas.Characters[r]
		if !ok {
			// fall back to space advance if glyph missing
			fc = atlas.Characters[' ']
		}
		width += float32(fc.Advance) * scale
		maxH = max(maxH, fc.Height*scale)
	}
	return width, maxH
}

// BuildTextVertices lays out chars from the baseline at (x,y) as textured
// quads of x, y, u, v.
func BuildTextVertices(atlas *FontAtlasInfo, chars []rune, x, y, scale float32) []float32 {
	vertices := make([]float32, 0, len(chars)*6*4)
	for _, r := range chars {
		fc, ok := atlas.Characters[r]
		if !ok {
			// Skip missing glyphs
			x += float32(atlas.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			vertices = append(vertices, charQuad(atlas, fc, x, y, scale)...)
		}
		x += float32(fc.Advance) * scale
	}
	return vertices
}

func charQuad(atlas *FontAtlasInfo, fc FontCharacter, x, y, scale float32) []float32 {
	// Screen position
	xPos := x + fc.BearingX*scale
	yPos := y - fc.BearingY*scale
	w := fc.Width * scale
	h := fc.Height * scale

	// Texture coordinates (normalized)
	atlasX := fc.AtlasX / float32(atlas.AtlasW)
	atlasY := fc.AtlasY / float32(atlas.AtlasH)
	wA := fc.Width / float32(atlas.AtlasW)
	hA := fc.Height / float32(atlas.AtlasH)

	return []float32{
		// triangle 1
		xPos, yPos + h, atlasX, atlasY + hA,
		xPos, yPos, atlasX, atlasY,
		xPos + w, yPos, atlasX + wA, atlasY,
		// triangle 2
		xPos, yPos + h, atlasX, atlasY + hA,
		xPos + w, yPos, atlasX + wA, atlasY,
		xPos + w, yPos + h, atlasX + wA, atlasY + hA,
	}
}
