// Package imaging prepares texture pixels: decoding assets, procedural
// patterns, and the row order and sizes GL expects.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
)

// Checkerboard cell values.
const (
	CheckerLight = 255
	CheckerDark  = 135
	CheckerAlpha = 150
)

// Checkerboard synthesizes a rows x cols RGBA image of 8x8 pixel cells.
func Checkerboard(rows, cols int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			c := uint8(CheckerLight)
			if (i&8)^(j&8) != 0 {
				c = CheckerDark
			}
			idx := img.PixOffset(j, i)
			img.Pix[idx+0] = c
			img.Pix[idx+1] = c
			img.Pix[idx+2] = c
			img.Pix[idx+3] = CheckerAlpha
		}
	}
	return img
}

// Bricks draws a running-bond brick wall of size x size pixels.
func Bricks(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	brickH := size / 8
	if brickH < 2 {
		brickH = 2
	}
	brickW := brickH * 2
	mortar := color.RGBA{200, 195, 185, 255}
	for y := 0; y < size; y++ {
		row := y / brickH
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < size; x++ {
			if y%brickH == 0 || (x+offset)%brickW == 0 {
				img.SetRGBA(x, y, mortar)
				continue
			}
			// Vary each brick's shade a little so the wall does not look flat.
			shade := uint8(((x+offset)/brickW*37 + row*53) % 40)
			img.SetRGBA(x, y, color.RGBA{150 + shade, 60 + shade/2, 45, 255})
		}
	}
	return img
}

// Wood draws concentric grain rings of size x size pixels.
func Wood(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cx, cy := float32(size)*0.3, float32(-size)*0.5
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float32(x)-cx, (float32(y)-cy)*0.25
			d := math32.Sqrt(dx*dx + dy*dy)
			ring := 0.5 + 0.5*math32.Sin(d*0.35+math32.Sin(float32(y)*0.05)*2)
			r := uint8(120 + ring*60)
			g := uint8(75 + ring*40)
			b := uint8(35 + ring*20)
			img.SetRGBA(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

// Decode reads an image and returns it as RGBA.
func Decode(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return ToRGBA(img), nil
}

// Load opens and decodes an image file.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// ToRGBA converts any image to RGBA with its origin at (0,0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy with rows reversed, converting top-left image
// order to GL's bottom-left texture origin.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		dst := out.Pix[(b.Dy()-1-y)*out.Stride:]
		copy(dst[:rowLen], src)
	}
	return out
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n, and 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PowerOfTwo rescales img so both sides are powers of two, capped at maxSize.
// Images that already fit are returned unchanged.
func PowerOfTwo(img *image.RGBA, maxSize int) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	nw, nh := NextPowerOfTwo(w), NextPowerOfTwo(h)
	if maxSize > 0 {
		nw, nh = min(nw, maxSize), min(nh, maxSize)
	}
	if nw == w && nh == h {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

// Prepare readies a decoded image for upload: resized and flipped to GL row order.
func Prepare(img image.Image, maxSize int) *image.RGBA {
	return FlipVertical(Generated(img, maxSize))
}

// Generated readies a synthesized image, already in GL row order, for upload.
func Generated(img image.Image, maxSize int) *image.RGBA {
	return PowerOfTwo(ToRGBA(img), maxSize)
}
