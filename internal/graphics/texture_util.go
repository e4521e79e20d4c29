package graphics

import (
	"image"

	"glscenes/internal/graphics/displaylist"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadTexture creates a 2D texture from prepared RGBA pixels and returns its name.
func UploadTexture(img *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	// Rows of odd-width images are not 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(img.Rect.Size().X),
		int32(img.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// ApplySampler sets wrap and filter modes on the texture bound to TEXTURE_2D.
func ApplySampler(s displaylist.Sampler) {
	wrap := int32(gl.CLAMP_TO_EDGE)
	if s.Repeat {
		wrap = gl.REPEAT
	}
	filter := int32(gl.NEAREST)
	if s.Linear {
		filter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
}

// DeleteTexture releases a texture name.
func DeleteTexture(texture uint32) {
	if texture != 0 {
		gl.DeleteTextures(1, &texture)
	}
}
