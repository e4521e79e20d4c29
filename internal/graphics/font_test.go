package graphics

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestBakeAtlasBasicFont(t *testing.T) {
	img, chars := BakeAtlas(basicfont.Face7x13, 128)
	require.Len(t, chars, 126-32+1)

	bounds := img.Bounds()
	assert.Equal(t, 128, bounds.Dx())
	for r, fc := range chars {
		assert.Equal(t, 7, fc.Advance, "rune %q", r)
		glyph := image.Rect(int(fc.AtlasX), int(fc.AtlasY), int(fc.AtlasX+fc.Width), int(fc.AtlasY+fc.Height))
		assert.True(t, glyph.In(bounds), "rune %q at %v outside %v", r, glyph, bounds)
	}
}

func TestMeasureAndLayoutText(t *testing.T) {
	img, chars := BakeAtlas(basicfont.Face7x13, 256)
	atlas := &FontAtlasInfo{AtlasW: img.Rect.Dx(), AtlasH: img.Rect.Dy(), Characters: chars}

	w, h := MeasureText(atlas, "abc", 2)
	assert.Equal(t, float32(42), w)
	assert.Equal(t, float32(26), h)

	verts := BuildTextVertices(atlas, []rune("ab"), 10, 20, 1)
	assert.Len(t, verts, 2*6*4)
	// second glyph starts one advance to the right of the first
	assert.Equal(t, verts[0]+7, verts[24])

	withMissing := BuildTextVertices(atlas, []rune("aéb"), 10, 20, 1)
	assert.Len(t, withMissing, 2*6*4)
	assert.Equal(t, verts[0]+14, withMissing[24])
}
